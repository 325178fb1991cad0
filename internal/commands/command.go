// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or mutates the task list.
	NeedsStore() bool

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// st is nil unless NeedsStore() returns true; it has already been loaded.
	// svc is nil unless NeedsAuth() returns true.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int
}

// localCmd provides the NeedsStore/NeedsAuth answers for commands that only
// touch the local task list.
type localCmd struct{}

func (localCmd) NeedsStore() bool { return true }
func (localCmd) NeedsAuth() bool  { return false }

// standaloneCmd is for commands that need neither the task list nor Google.
type standaloneCmd struct{}

func (standaloneCmd) NeedsStore() bool { return false }
func (standaloneCmd) NeedsAuth() bool  { return false }
