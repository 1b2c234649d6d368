package sqlite

import (
	"errors"
	"fmt"
	"strings"

	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/rpggio/taskbook/internal/repository"
)

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *driver.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// insertError maps a failed task insert to repository.ErrConflict when a
// uniqueness constraint rejected it.
func insertError(err error, taskID string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: task %s: %w", repository.ErrConflict, taskID, err)
	}
	return fmt.Errorf("failed to insert task %s: %w", taskID, err)
}
