package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{ standaloneCmd }

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.TaskListStore, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                         List all tasks
  todo list [--filter all|pending|completed] [--ids]
  todo add <text...>
  todo done <ref>                              Toggle completed
  todo edit <ref> <text...>
  todo rm <ref>
  todo clear [--all [--yes]]                   Remove completed (or all) tasks
  todo stats
  todo init                                    Add sample tasks to an empty list
  todo ui                                      Interactive mode
  todo export [--list <list-name>] [--filter <filter>]
  todo lists                                   Google Tasks lists
  todo login
  todo logout
  todo help
  todo version

A <ref> is a row number from 'todo list' or @ID from 'todo list --ids'.

Common flags:
  --config <dir>       Override config directory
  --backend <name>     file, sql or memory (default from TODO_BACKEND, else file)
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr
`
