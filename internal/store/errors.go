package store

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when a task text is empty after trimming.
	ErrEmptyText = errors.New("task text is empty")

	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")
)

// PersistenceError reports a failed snapshot write. The in-memory collection
// has been rolled back to its state before Op ran.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: save snapshot: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
