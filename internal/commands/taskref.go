package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo/internal/store"
	"todo/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int   // 1-based position in the full list, when ByID is false
	ID   int64 // task id, when ByID is true
	ByID bool
}

func (r TaskRef) String() string {
	if r.ByID {
		return "@" + strconv.FormatInt(r.ID, 10)
	}
	return strconv.Itoa(r.Num)
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskNumOutOfRange indicates a position past the end of the list.
var ErrTaskNumOutOfRange = errors.New("task number out of range")

// ParseTaskRef parses the first argument as a task reference.
//
// Accepted forms:
//   - N   1-based position as printed by `todo list` (full list, newest first)
//   - @ID task id as printed by `todo list --ids`
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	arg := strings.TrimSpace(args[0])

	if rest, ok := strings.CutPrefix(arg, "@"); ok {
		if !isAllDigits(rest) {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	if !isAllDigits(arg) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	return TaskRef{Num: num}, nil
}

// ResolveTaskRef finds the task a reference points at.
// Returns store.ErrNotFound for an unknown id and ErrTaskNumOutOfRange for a
// bad position.
func ResolveTaskRef(st *store.TaskListStore, ref TaskRef) (task.Task, error) {
	if ref.ByID {
		t, ok := st.Get(ref.ID)
		if !ok {
			return task.Task{}, store.ErrNotFound
		}
		return t, nil
	}

	tasks := st.Tasks()
	if ref.Num < 1 || ref.Num > len(tasks) {
		return task.Task{}, ErrTaskNumOutOfRange
	}
	return tasks[ref.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
