// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
	"todo/internal/task"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, text)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Checkbox(t.Completed), normalizeText(t.Text))
}

// FormatTaskWithID is FormatTask followed by the task id, for --ids.
func FormatTaskWithID(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s  @%d\n", num, Checkbox(t.Completed), normalizeText(t.Text), t.ID)
}

// FormatStats formats the summary line.
func FormatStats(w io.Writer, s task.Stats) {
	fmt.Fprintln(w, StatsLine(s))
}

// StatsLine returns "total: T  pending: P  completed: C".
func StatsLine(s task.Stats) string {
	return fmt.Sprintf("total: %d  pending: %d  completed: %d", s.Total, s.Pending, s.Completed)
}

// Checkbox renders a completion marker.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatListName formats a remote list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	title := normalizeListTitle(list.Title)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// SingleLine flattens newlines so a task fits on one row.
func SingleLine(text string) string {
	return normalizeText(text)
}

// normalizeText replaces newlines with spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
