package task_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	b := task.NewBuilder(func() string { return "fixed-id" }, func() time.Time { return now })

	got := b.Build(task.CreateRequest{
		Title:       "Exercise",
		Description: "Gym for an hour",
		DueDate:     "2025-07-21",
		Priority:    task.PriorityMedium,
		IsRecurring: true,
	})

	require.Equal(t, task.Task{
		ID:            "fixed-id",
		Title:         "Exercise",
		Description:   "Gym for an hour",
		DueDate:       "2025-07-21",
		Priority:      task.PriorityMedium,
		Status:        task.StatusIncomplete,
		CreatedAt:     now,
		LastUpdatedAt: now,
		IsRecurring:   true,
	}, got)
}

func TestBuilder_Defaults(t *testing.T) {
	b := task.NewBuilder(nil, nil)

	first := b.Build(task.CreateRequest{Title: "a", DueDate: "2025-07-20", Priority: task.PriorityLow})
	second := b.Build(task.CreateRequest{Title: "a", DueDate: "2025-07-20", Priority: task.PriorityLow})

	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, first.CreatedAt, first.LastUpdatedAt)
	require.False(t, first.CreatedAt.IsZero())
}
