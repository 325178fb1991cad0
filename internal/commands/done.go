package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/store"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles, so running it on a
// completed task reopens it.
type DoneCmd struct{ localCmd }

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task between pending and completed" }
func (c *DoneCmd) Usage() string     { return "todo done <ref>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, ok := parseRef(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	target, err := ResolveTaskRef(st, ref)
	if err != nil {
		return reportStoreError(errOut, ref.String(), err)
	}

	toggled, err := st.Toggle(ctx, target.ID)
	if err != nil {
		return reportStoreError(errOut, ref.String(), err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", output.Checkbox(toggled.Completed))
	}
	return exitcode.Success
}
