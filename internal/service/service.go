// Package service defines the interface to the remote task service that local
// tasks are exported to.
package service

import (
	"context"
	"errors"
)

var (
	// ErrListNotFound is returned by ResolveList when no list has the name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned by ResolveList when several lists share the name.
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// Service defines the remote operations used by export.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name, ignoring case and surrounding space.
	// The error wraps ErrListNotFound or ErrAmbiguousList.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateTask inserts t at the top of the list.
	CreateTask(ctx context.Context, listID string, t RemoteTask) error
}
