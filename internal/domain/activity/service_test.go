package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogStampsTime(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.Entry{
		Type:    activity.TypeTaskCreated,
		Summary: "created",
	}
	repo.On("Log", ctx, entry).Return(nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestActivityService_NilRepository(t *testing.T) {
	svc := activity.NewService(nil, nil)
	err := svc.LogActivity(context.Background(), &activity.Entry{Type: activity.TypeDuplicateRejected})
	require.NoError(t, err)
}

func TestActivityService_InvalidEntry(t *testing.T) {
	svc := activity.NewService(nil, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.Entry{}), activity.ErrInvalidInput)
}

func TestActivityService_RepositoryError(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.Anything).Return(errors.New("disk full"))

	svc := activity.NewService(repo, nil)
	err := svc.LogActivity(ctx, &activity.Entry{Type: activity.TypeLoadFailed})
	require.ErrorContains(t, err, "disk full")
}
