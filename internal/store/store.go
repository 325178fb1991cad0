// Package store holds the task list, applies mutations to it, and persists a
// snapshot of the whole list to a kv.Backend after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"todo/internal/kv"
	"todo/internal/task"
)

// DefaultSlot is the slot name snapshots are stored under.
const DefaultSlot = "todos"

// Option configures a TaskListStore.
type Option func(*TaskListStore)

// WithSlot sets the slot name.
func WithSlot(slot string) Option {
	return func(s *TaskListStore) { s.slot = slot }
}

// WithClock replaces time.Now, for ids and CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TaskListStore) { s.now = now }
}

// WithLogger sets the logger used for soft failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *TaskListStore) { s.log = l }
}

// TaskListStore owns an ordered, newest-first task list.
//
// Every mutation builds a new slice and persists it before it becomes the
// current list; slices returned to callers are never modified afterwards.
// If the write fails the previous list is kept and a *PersistenceError is
// returned.
type TaskListStore struct {
	mu      sync.Mutex
	backend kv.Backend
	slot    string
	now     func() time.Time
	log     *slog.Logger
	tasks   []task.Task
}

// New creates a store over backend. The list is empty until Load is called.
func New(backend kv.Backend, opts ...Option) *TaskListStore {
	s := &TaskListStore{
		backend: backend,
		slot:    DefaultSlot,
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Slot returns the slot name the store persists to.
func (s *TaskListStore) Slot() string { return s.slot }

// Load replaces the in-memory list with the persisted snapshot.
// A missing, unreadable, or undecodable snapshot yields an empty list.
// Repeated ids are renumbered, keeping the first occurrence.
func (s *TaskListStore) Load(ctx context.Context) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	data, err := s.backend.Get(ctx, s.slot)
	if err != nil {
		if errors.Is(err, kv.ErrNotExist) {
			s.log.Debug("no snapshot", "slot", s.slot)
		} else {
			s.log.Warn("read snapshot failed", "slot", s.slot, "err", err)
		}
		return nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn("decode snapshot failed", "slot", s.slot, "err", err)
		return nil
	}
	if replaced := renumberDuplicates(tasks, s.now()); len(replaced) > 0 {
		s.log.Warn("renumbered duplicate task ids", "slot", s.slot, "ids", replaced)
	}
	s.tasks = tasks
	s.log.Debug("loaded snapshot", "slot", s.slot, "tasks", len(tasks))
	return clone(s.tasks)
}

// Add prepends a new task with the trimmed text.
func (s *TaskListStore) Add(ctx context.Context, text string) (task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.Task{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC().Truncate(time.Millisecond)
	t := task.Task{
		ID:        s.nextID(now),
		Text:      text,
		CreatedAt: now,
	}

	next := make([]task.Task, 0, len(s.tasks)+1)
	next = append(next, t)
	next = append(next, s.tasks...)
	if err := s.commit(ctx, "add", next); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Toggle flips Completed on the task with the given id.
func (s *TaskListStore) Toggle(ctx context.Context, id int64) (task.Task, error) {
	return s.replace(ctx, "toggle", id, func(t task.Task) task.Task {
		t.Completed = !t.Completed
		return t
	})
}

// Edit replaces the text of the task with the given id.
// Empty text is rejected and the original text kept.
func (s *TaskListStore) Edit(ctx context.Context, id int64, text string) (task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.Task{}, ErrEmptyText
	}
	return s.replace(ctx, "edit", id, func(t task.Task) task.Task {
		t.Text = text
		return t
	})
}

// Remove deletes the task with the given id.
func (s *TaskListStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.tasks, id) < 0 {
		return ErrNotFound
	}
	next := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return s.commit(ctx, "remove", next)
}

// ClearCompleted removes every completed task and returns how many were removed.
func (s *TaskListStore) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := task.Apply(s.tasks, task.FilterPending)
	removed := len(s.tasks) - len(next)
	if err := s.commit(ctx, "clear completed", next); err != nil {
		return 0, err
	}
	return removed, nil
}

// ClearAll removes every task and returns how many were removed.
// Confirmation is the caller's job.
func (s *TaskListStore) ClearAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.tasks)
	if err := s.commit(ctx, "clear all", []task.Task{}); err != nil {
		return 0, err
	}
	return removed, nil
}

// SeedIfEmpty installs tasks as the whole list when the list is empty.
// It reports whether the seed was applied.
func (s *TaskListStore) SeedIfEmpty(ctx context.Context, tasks []task.Task) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) > 0 {
		return false, nil
	}
	if err := s.commit(ctx, "seed", clone(tasks)); err != nil {
		return false, err
	}
	return true, nil
}

// FilteredView returns the tasks selected by f in current order.
func (s *TaskListStore) FilteredView(f task.Filter) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.Apply(s.tasks, f)
}

// Tasks returns a copy of the full list.
func (s *TaskListStore) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.tasks)
}

// Get returns the task with the given id.
func (s *TaskListStore) Get(id int64) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Stats returns counts over the full list.
func (s *TaskListStore) Stats() task.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.Count(s.tasks)
}

// replace swaps the task with the given id for fn(task). Callers must not hold mu.
func (s *TaskListStore) replace(ctx context.Context, op string, id int64, fn func(task.Task) task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.tasks, id)
	if i < 0 {
		return task.Task{}, ErrNotFound
	}
	next := clone(s.tasks)
	next[i] = fn(next[i])
	if err := s.commit(ctx, op, next); err != nil {
		return task.Task{}, err
	}
	return next[i], nil
}

// commit persists next and makes it current. On failure the current list is
// left untouched. mu must be held.
func (s *TaskListStore) commit(ctx context.Context, op string, next []task.Task) error {
	data, err := json.Marshal(next)
	if err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	if err := s.backend.Put(ctx, s.slot, data); err != nil {
		s.log.Warn("save snapshot failed, rolled back", "op", op, "slot", s.slot, "err", err)
		return &PersistenceError{Op: op, Err: err}
	}
	s.tasks = next
	s.log.Debug("saved snapshot", "op", op, "slot", s.slot, "tasks", len(next))
	return nil
}

// nextID derives an id from now in Unix milliseconds, bumped past the largest
// existing id when needed. mu must be held.
func (s *TaskListStore) nextID(now time.Time) int64 {
	return uniqueID(s.tasks, now.UnixMilli())
}

// uniqueID returns candidate if it is above every id in tasks, otherwise the
// largest id plus one. When the largest id is math.MaxInt64 it falls back to
// the smallest positive id not in use.
func uniqueID(tasks []task.Task, candidate int64) int64 {
	if len(tasks) == 0 {
		return candidate
	}
	top := tasks[0].ID
	for _, t := range tasks[1:] {
		top = max(top, t.ID)
	}
	if candidate > top {
		return candidate
	}
	if top < math.MaxInt64 {
		return top + 1
	}

	used := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		used[t.ID] = struct{}{}
	}
	for id := int64(1); ; id++ {
		if _, ok := used[id]; !ok {
			return id
		}
	}
}

// renumberDuplicates gives every task whose id repeats an earlier one a fresh
// id, keeping the first occurrence. It reports the ids it replaced.
func renumberDuplicates(tasks []task.Task, now time.Time) []int64 {
	seen := make(map[int64]struct{}, len(tasks))
	var dups []int
	for i, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			dups = append(dups, i)
			continue
		}
		seen[t.ID] = struct{}{}
	}

	replaced := make([]int64, 0, len(dups))
	for _, i := range dups {
		replaced = append(replaced, tasks[i].ID)
		tasks[i].ID = uniqueID(tasks, now.UnixMilli())
	}
	return replaced
}

func indexOf(tasks []task.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clone(tasks []task.Task) []task.Task {
	if tasks == nil {
		return nil
	}
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
