// Package kv defines the key-value slot interface that task snapshots are
// persisted through.
package kv

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when the slot has never been written.
var ErrNotExist = errors.New("slot does not exist")

// Backend stores opaque values under named slots.
// Implementations never inspect or modify the values they hold.
type Backend interface {
	// Get returns the value stored under key, or ErrNotExist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}
