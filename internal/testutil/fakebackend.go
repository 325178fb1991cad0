// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"todo/internal/kv"
	"todo/internal/task"
)

// FakeBackend is an in-memory kv.Backend for testing.
// It records every write and supports error injection.
type FakeBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte

	// Puts counts successful writes per slot.
	Puts map[string]int

	// Error injection for testing
	GetErr error
	PutErr error
}

// NewFakeBackend creates an empty FakeBackend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		slots: make(map[string][]byte),
		Puts:  make(map[string]int),
	}
}

// SetRaw stores raw bytes under key, bypassing error injection.
func (f *FakeBackend) SetRaw(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[key] = append([]byte(nil), value...)
}

// SetTasks stores a snapshot of tasks under key.
func (f *FakeBackend) SetTasks(key string, tasks []task.Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		panic(err)
	}
	f.SetRaw(key, data)
}

// Raw returns the bytes stored under key.
func (f *FakeBackend) Raw(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.slots[key]
	return v, ok
}

// Tasks decodes the snapshot stored under key.
func (f *FakeBackend) Tasks(key string) ([]task.Task, error) {
	data, ok := f.Raw(key)
	if !ok {
		return nil, kv.ErrNotExist
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get implements kv.Backend.
func (f *FakeBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.slots[key]
	if !ok {
		return nil, kv.ErrNotExist
	}
	return append([]byte(nil), v...), nil
}

// Put implements kv.Backend.
func (f *FakeBackend) Put(ctx context.Context, key string, value []byte) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[key] = append([]byte(nil), value...)
	f.Puts[key]++
	return nil
}
