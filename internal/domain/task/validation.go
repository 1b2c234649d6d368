package task

import (
	"strings"
	"time"
)

// ValidateCreateInput checks title, due date and priority, in that order,
// and returns the first violation.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(req.DueDate) == "" {
		return ErrEmptyDueDate
	}
	if _, err := time.Parse(DueDateLayout, req.DueDate); err != nil {
		return ErrInvalidDueDate
	}
	if !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}
