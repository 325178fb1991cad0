package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/task"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command: it copies every local task into a
// Google Tasks list. Each insert lands at the top of the remote list, so tasks
// are sent oldest first and the remote list ends up newest first like the
// local one.
type ExportCmd struct {
	listName string
	filter   string
}

// SetListName sets the list name (for testing).
func (c *ExportCmd) SetListName(name string) {
	c.listName = name
}

// SetFilter sets the filter name (for testing).
func (c *ExportCmd) SetFilter(f string) {
	c.filter = f
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *ExportCmd) Usage() string {
	return "todo export [--list <list-name>] [--filter all|pending|completed]"
}
func (c *ExportCmd) NeedsStore() bool { return true }
func (c *ExportCmd) NeedsAuth() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.filter, "filter", "all", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int {
	filter, err := task.ParseFilter(c.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var list service.TaskList
	if c.listName != "" {
		list, err = svc.ResolveList(ctx, c.listName)
		if err != nil {
			if errors.Is(err, service.ErrListNotFound) {
				fmt.Fprintf(errOut, "error: list not found: %s\n", c.listName)
				return exitcode.UserError
			}
			if errors.Is(err, service.ErrAmbiguousList) {
				fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", c.listName)
				return exitcode.UserError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	} else {
		list, err = svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}

	tasks := st.FilteredView(filter)
	exported := 0
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		err := svc.CreateTask(ctx, list.ID, service.RemoteTask{
			Title:     t.Text,
			Notes:     fmt.Sprintf("todo @%d, created %s", t.ID, t.CreatedAt.Format(task.TimeLayout)),
			Completed: t.Completed,
		})
		if err != nil {
			// Partial export: report what made it across
			fmt.Fprintf(errOut, "error: backend error after %d of %d tasks: %v\n", exported, len(tasks), err)
			return exitcode.BackendError
		}
		exported++
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "exported %d\n", exported)
	}
	return exitcode.Success
}
