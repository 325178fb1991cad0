package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
)

func init() {
	Register(&ClearCmd{})
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// PromptConfirm returns a ConfirmFunc that writes prompt to w and reads an
// answer line from r. Only "y" and "yes" (any case) confirm.
func PromptConfirm(r io.Reader, w io.Writer) ConfirmFunc {
	return func(prompt string) bool {
		fmt.Fprintf(w, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

// ClearCmd implements the clear command.
// Without --all it removes completed tasks. With --all it removes every task
// once Confirm agrees, or immediately with --yes.
type ClearCmd struct {
	localCmd
	all bool
	yes bool

	// Confirm is asked before --all. Nil prompts on stdin/stderr.
	Confirm ConfirmFunc
}

// SetAll sets the --all flag (for testing).
func (c *ClearCmd) SetAll(v bool) {
	c.all = v
}

// SetYes sets the --yes flag (for testing).
func (c *ClearCmd) SetYes(v bool) {
	c.yes = v
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Remove completed tasks (or all with --all)" }
func (c *ClearCmd) Usage() string     { return "todo clear [--all [--yes]]" }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if !c.all {
		removed, err := st.ClearCompleted(ctx)
		if err != nil {
			return reportStoreError(errOut, "", err)
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "removed %d\n", removed)
		}
		return exitcode.Success
	}

	if !c.yes {
		confirm := c.Confirm
		if confirm == nil {
			confirm = PromptConfirm(os.Stdin, errOut)
		}
		total := st.Stats().Total
		if !confirm(fmt.Sprintf("Delete all %d tasks?", total)) {
			if !cfg.Quiet {
				fmt.Fprintln(out, "aborted")
			}
			return exitcode.Success
		}
	}

	removed, err := st.ClearAll(ctx)
	if err != nil {
		return reportStoreError(errOut, "", err)
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "removed %d\n", removed)
	}
	return exitcode.Success
}
