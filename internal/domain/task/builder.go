package task

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh, globally unique task identifier.
type IDGenerator func() string

// Clock returns the current instant.
type Clock func() time.Time

// Builder assembles new tasks from validated input.
type Builder struct {
	newID IDGenerator
	now   Clock
}

// NewBuilder creates a Builder. Nil arguments default to random UUIDs and time.Now.
func NewBuilder(ids IDGenerator, clock Clock) *Builder {
	if ids == nil {
		ids = uuid.NewString
	}
	if clock == nil {
		clock = time.Now
	}
	return &Builder{newID: ids, now: clock}
}

// Build returns a new incomplete task. Inputs are copied verbatim and are
// expected to have passed ValidateCreateInput.
func (b *Builder) Build(req CreateRequest) Task {
	now := b.now()
	return Task{
		ID:            b.newID(),
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate,
		Priority:      req.Priority,
		Status:        StatusIncomplete,
		CreatedAt:     now,
		LastUpdatedAt: now,
		IsRecurring:   req.IsRecurring,
	}
}
