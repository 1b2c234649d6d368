package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// DueDateLayout is the fixed external representation of a due date (YYYY-MM-DD).
const DueDateLayout = "2006-01-02"

// Priority is one of three ordered priority tiers.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the valid tiers, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p exactly matches one of the tier labels.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank returns 1..3 for Low..High and 0 for an unknown label.
func (p Priority) Rank() int {
	for i, tier := range Priorities {
		if p == tier {
			return i + 1
		}
	}
	return 0
}

// Status represents the completion state of a task
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusComplete   Status = "Complete"
)

// Task is one persisted entry of the task list
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueDate       string    `json:"due_date"`
	Priority      Priority  `json:"priority"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	IsRecurring   bool      `json:"is_recurring"`
}

// localTimestampLayout matches ISO 8601 date-times written without a zone.
const localTimestampLayout = "2006-01-02T15:04:05.999999999"

// UnmarshalJSON decodes a task, accepting RFC 3339 timestamps as well as
// zone-less ones, which are read in local time.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	aux := struct {
		*plain
		CreatedAt     string `json:"created_at"`
		LastUpdatedAt string `json:"last_updated_at"`
	}{plain: (*plain)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if t.CreatedAt, err = parseTimestamp(aux.CreatedAt); err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	if t.LastUpdatedAt, err = parseTimestamp(aux.LastUpdatedAt); err != nil {
		return fmt.Errorf("last_updated_at: %w", err)
	}
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	return time.ParseInLocation(localTimestampLayout, s, time.Local)
}

// CreateRequest describes the caller-supplied fields of a new task.
type CreateRequest struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	IsRecurring bool
}
