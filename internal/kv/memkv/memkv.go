// Package memkv is an in-process kv.Backend.
package memkv

import (
	"context"
	"sync"

	"todo/internal/kv"
)

// Store keeps slots in a map. The zero value is not usable; call New.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Get implements kv.Backend.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, kv.ErrNotExist
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements kv.Backend.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.slots[key] = v
	s.mu.Unlock()
	return nil
}
