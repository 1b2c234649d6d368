package task

import (
	"context"

	"github.com/rpggio/taskbook/internal/domain/activity"
)

// Store loads and saves the whole task collection.
//
// Load returns repository.ErrNotFound when nothing has been stored yet and a
// wrapped repository.ErrCorrupt when the stored content cannot be decoded.
type Store interface {
	Load(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, tasks []Task) error
}

// ActivityLogger records task outcomes.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.Entry) error
}
