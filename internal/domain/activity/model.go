package activity

import "time"

// Type represents the kind of task outcome being recorded
type Type string

const (
	TypeTaskCreated        Type = "task_created"
	TypeValidationRejected Type = "validation_rejected"
	TypeDuplicateRejected  Type = "duplicate_rejected"
	TypeLoadFailed         Type = "load_failed"
)

// Entry represents an event in the activity log
type Entry struct {
	ID        int64     `json:"id"`
	TaskID    *string   `json:"task_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
