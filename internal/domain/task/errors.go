package task

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the task fields failed validation.
	ErrInvalidInput = errors.New("invalid task input")
	// ErrEmptyTitle indicates a blank title.
	ErrEmptyTitle = fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	// ErrEmptyDueDate indicates a blank due date.
	ErrEmptyDueDate = fmt.Errorf("%w: due date must not be empty", ErrInvalidInput)
	// ErrInvalidDueDate indicates a due date that is not a real YYYY-MM-DD date.
	ErrInvalidDueDate = fmt.Errorf("%w: due date must be a valid date in YYYY-MM-DD format", ErrInvalidInput)
	// ErrInvalidPriority indicates a priority outside the known tiers.
	ErrInvalidPriority = fmt.Errorf("%w: priority must be one of Low, Medium, High", ErrInvalidInput)
	// ErrDuplicateTask indicates a task with the same title and due date exists.
	ErrDuplicateTask = errors.New("task already exists with the same due date")
	// ErrStoreUnavailable indicates the existing collection could not be loaded.
	ErrStoreUnavailable = errors.New("task store unavailable")
	// ErrPersistFailed indicates the updated collection could not be written.
	ErrPersistFailed = errors.New("failed to persist tasks")
)
