package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/rpggio/taskbook/internal/repository"
)

// TaskRepository implements task.Store for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Load returns the whole collection in insertion order.
// Returns repository.ErrNotFound when no tasks are stored.
func (r *TaskRepository) Load(ctx context.Context) ([]task.Task, error) {
	query := `
		SELECT id, title, description, due_date, priority, status,
		       created_at, last_updated_at, is_recurring
		FROM tasks
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var createdAt, lastUpdatedAt string
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.DueDate,
			&t.Priority,
			&t.Status,
			&createdAt,
			&lastUpdatedAt,
			&t.IsRecurring,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("%w: task %s created_at: %w", repository.ErrCorrupt, t.ID, err)
		}
		if t.LastUpdatedAt, err = time.Parse(time.RFC3339Nano, lastUpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: task %s last_updated_at: %w", repository.ErrCorrupt, t.ID, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	if len(tasks) == 0 {
		return nil, repository.ErrNotFound
	}

	return tasks, nil
}

// Save replaces the stored collection in a single transaction
func (r *TaskRepository) Save(ctx context.Context, tasks []task.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (
			id, position, title, description, due_date, priority, status,
			created_at, last_updated_at, is_recurring
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		_, err := stmt.ExecContext(ctx,
			t.ID,
			i,
			t.Title,
			t.Description,
			t.DueDate,
			string(t.Priority),
			string(t.Status),
			t.CreatedAt.Format(time.RFC3339Nano),
			t.LastUpdatedAt.Format(time.RFC3339Nano),
			t.IsRecurring,
		)
		if err != nil {
			return insertError(err, t.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
