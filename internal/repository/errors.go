package repository

import "errors"

var (
	// ErrNotFound is returned when the backing store holds no data yet
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when stored data exists but cannot be decoded
	ErrCorrupt = errors.New("stored data is corrupt")

	// ErrConflict is returned when a write would violate a uniqueness constraint
	ErrConflict = errors.New("conflict: entity violates a uniqueness constraint")
)
