// Package task defines the task record and the views derived from a task list.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the snapshot encoding of CreatedAt: RFC 3339, millisecond
// fraction, always UTC.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Task represents a single to-do record.
type Task struct {
	ID        int64
	Text      string
	Completed bool
	CreatedAt time.Time
}

type taskJSON struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// MarshalJSON writes the snapshot form of a task.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UTC().Format(TimeLayout),
	})
}

// UnmarshalJSON reads the snapshot form of a task.
// Any RFC 3339 timestamp is accepted for createdAt; an empty one yields the zero time.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var createdAt time.Time
	if raw.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid createdAt: %w", err)
		}
		createdAt = parsed.UTC()
	}
	*t = Task{
		ID:        raw.ID,
		Text:      raw.Text,
		Completed: raw.Completed,
		CreatedAt: createdAt,
	}
	return nil
}

// Filter selects a view over the task list.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

// ParseFilter parses a filter name (case-insensitive, trimmed).
// The empty string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "pending":
		return FilterPending, nil
	case "completed":
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter: %s", s)
	}
}

// Match reports whether t belongs to the view selected by f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, cur := range Filters {
		if cur == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Apply returns the tasks matching f, preserving order.
// The result never aliases the input slice.
func Apply(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats holds derived counts over a task list.
type Stats struct {
	Total     int
	Pending   int
	Completed int
}

// Count derives Stats from tasks.
func Count(tasks []Task) Stats {
	var s Stats
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Total = len(tasks)
	s.Pending = s.Total - s.Completed
	return s
}
