package domain

import (
	"errors"
	"fmt"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

var (
	// ErrCheckpointNotFound is returned when no metadata record matches an id.
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	// ErrCheckpointStorageMissing is returned when a record exists but its
	// snapshot directory does not.
	ErrCheckpointStorageMissing = errors.New("checkpoint storage missing")
)

// ProcessingError records why a single file could not be cleaned. It never
// aborts a run.
type ProcessingError struct {
	Path m.Path
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("process %s: %v", e.Path, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
