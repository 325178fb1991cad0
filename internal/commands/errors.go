package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/store"
)

// reportStoreError prints err from a store operation and returns the exit code.
func reportStoreError(errOut io.Writer, ref string, err error) int {
	var perr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrEmptyText):
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
		return exitcode.UserError
	case errors.Is(err, ErrTaskNumOutOfRange):
		fmt.Fprintf(errOut, "error: task number out of range: %s\n", ref)
		return exitcode.UserError
	case errors.As(err, &perr):
		fmt.Fprintf(errOut, "error: storage error: %v\n", perr.Err)
		return exitcode.BackendError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
}

// parseRef parses a task reference and prints the usual errors.
func parseRef(args []string, errOut io.Writer) (TaskRef, bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return TaskRef{}, false
	}
	return ref, true
}
