package mocks

import (
	"context"

	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/stretchr/testify/mock"
)

// TaskStore is a mock for task.Store.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) Load(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskStore) Save(ctx context.Context, tasks []task.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// ActivityLogger is a mock for task.ActivityLogger.
type ActivityLogger struct {
	mock.Mock
}

func (m *ActivityLogger) LogActivity(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
