package activity

import "context"

// Repository persists activity entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
}
