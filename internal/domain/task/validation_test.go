package task_test

import (
	"testing"

	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateInput(t *testing.T) {
	tests := []struct {
		name string
		req  task.CreateRequest
		want error
	}{
		{
			name: "valid",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-07-20", Priority: task.PriorityHigh},
		},
		{
			name: "blank title",
			req:  task.CreateRequest{Title: "   ", DueDate: "2025-07-20", Priority: task.PriorityHigh},
			want: task.ErrEmptyTitle,
		},
		{
			name: "blank due date",
			req:  task.CreateRequest{Title: "Buy book", DueDate: " \t", Priority: task.PriorityHigh},
			want: task.ErrEmptyDueDate,
		},
		{
			name: "month and day out of range",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-13-40", Priority: task.PriorityHigh},
			want: task.ErrInvalidDueDate,
		},
		{
			name: "day past end of month",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-02-30", Priority: task.PriorityLow},
			want: task.ErrInvalidDueDate,
		},
		{
			name: "wrong layout",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "20/07/2025", Priority: task.PriorityLow},
			want: task.ErrInvalidDueDate,
		},
		{
			name: "single digit month",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-7-20", Priority: task.PriorityLow},
			want: task.ErrInvalidDueDate,
		},
		{
			name: "unknown priority",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-07-20", Priority: "Urgent"},
			want: task.ErrInvalidPriority,
		},
		{
			name: "priority is case sensitive",
			req:  task.CreateRequest{Title: "Buy book", DueDate: "2025-07-20", Priority: "high"},
			want: task.ErrInvalidPriority,
		},
		{
			name: "title checked before date",
			req:  task.CreateRequest{Title: "", DueDate: "bad", Priority: "bad"},
			want: task.ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := task.ValidateCreateInput(tt.req)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, task.ErrInvalidInput)
		})
	}
}

func TestPriorityRank(t *testing.T) {
	require.Equal(t, 1, task.PriorityLow.Rank())
	require.Equal(t, 2, task.PriorityMedium.Rank())
	require.Equal(t, 3, task.PriorityHigh.Rank())
	require.Equal(t, 0, task.Priority("Urgent").Rank())
	require.False(t, task.Priority("").Valid())
}
