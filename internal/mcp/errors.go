package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/taskbook/internal/domain/task"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. It returns nil for errors
// without a dedicated code.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return &APIError{Code: "INVALID_TITLE", Message: err.Error(), RecoveryHint: "Provide a non-blank title"}
	case errors.Is(err, task.ErrEmptyDueDate), errors.Is(err, task.ErrInvalidDueDate):
		return &APIError{Code: "INVALID_DUE_DATE", Message: err.Error(), RecoveryHint: "Use a real calendar date such as 2025-07-20"}
	case errors.Is(err, task.ErrInvalidPriority):
		return &APIError{Code: "INVALID_PRIORITY", Message: err.Error(), RecoveryHint: "Use Low, Medium, or High"}
	case errors.Is(err, task.ErrDuplicateTask):
		return &APIError{Code: "DUPLICATE_TASK", Message: err.Error(), RecoveryHint: "Change the title or the due date"}
	case errors.Is(err, task.ErrStoreUnavailable):
		return &APIError{Code: "STORE_UNAVAILABLE", Message: err.Error(), RecoveryHint: "Check the task file; it was left untouched"}
	case errors.Is(err, task.ErrPersistFailed):
		return &APIError{Code: "PERSIST_FAILED", Message: err.Error(), RecoveryHint: "Check disk space and permissions, then retry"}
	default:
		return nil
	}
}

// mapError returns the coded error when one exists and err otherwise.
func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
