package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/task"
)

func init() {
	Register(&InitCmd{})
}

// WelcomeTasks returns the sample tasks installed into an empty list.
func WelcomeTasks(now time.Time) []task.Task {
	now = now.UTC().Truncate(time.Millisecond)
	return []task.Task{
		{ID: 1, Text: "Welcome to your todo list!", CreatedAt: now},
		{ID: 2, Text: "Run `todo done 2` to mark a task complete", CreatedAt: now},
		{ID: 3, Text: "Use --filter to view different tasks", Completed: true, CreatedAt: now},
	}
}

// InitCmd implements the init command.
type InitCmd struct{ localCmd }

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Add sample tasks to an empty list" }
func (c *InitCmd) Usage() string     { return "todo init" }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int {
	applied, err := st.SeedIfEmpty(ctx, WelcomeTasks(time.Now()))
	if err != nil {
		return reportStoreError(errOut, "", err)
	}

	if !cfg.Quiet {
		if applied {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintln(out, "list not empty, nothing to do")
		}
	}
	return exitcode.Success
}
