// Package tui is the interactive controller for the task list.
//
// The model calls the store synchronously from Update and re-renders from
// FilteredView and Stats after every mutation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/output"
	"todo/internal/store"
	"todo/internal/task"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmClearAll
)

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	st     *store.TaskListStore
	filter task.Filter
	cursor int
	mode   mode
	input  textinput.Model

	// editing is the id of the task being edited in modeEdit.
	editing int64

	status   string
	isError  bool
	quitting bool
}

// New returns a model over an already loaded store.
func New(ctx context.Context, st *store.TaskListStore) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 0 // unlimited
	ti.Prompt = "> "
	return Model{
		ctx:    ctx,
		st:     st,
		filter: task.FilterAll,
		input:  ti,
	}
}

// Run starts the program on in/out and blocks until the user quits.
func Run(ctx context.Context, st *store.TaskListStore, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, st),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Filter returns the active filter.
func (m Model) Filter() task.Filter { return m.filter }

// Cursor returns the selected row in the visible view.
func (m Model) Cursor() int { return m.cursor }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeAdd || m.mode == modeEdit {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateInput(key)
	case modeConfirmClearAll:
		return m.updateConfirm(key)
	default:
		return m.updateBrowse(key)
	}
}

func (m Model) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.st.FilteredView(m.filter)

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "tab":
		m.filter = m.filter.Next()
		m.cursor = 0
		m.setStatus("filter: " + string(m.filter))
	case "a":
		m.mode = modeAdd
		m.input.Reset()
		return m, m.input.Focus()
	case "e":
		if len(visible) == 0 {
			break
		}
		sel := visible[m.cursor]
		m.mode = modeEdit
		m.editing = sel.ID
		m.input.SetValue(sel.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case " ", "space", "enter":
		if len(visible) == 0 {
			break
		}
		t, err := m.st.Toggle(m.ctx, visible[m.cursor].ID)
		if err != nil {
			m.setError(err)
			break
		}
		m.setStatus("marked " + stateName(t.Completed))
	case "d":
		if len(visible) == 0 {
			break
		}
		if err := m.st.Remove(m.ctx, visible[m.cursor].ID); err != nil {
			m.setError(err)
			break
		}
		m.setStatus("deleted")
	case "c":
		n, err := m.st.ClearCompleted(m.ctx)
		if err != nil {
			m.setError(err)
			break
		}
		m.setStatus(fmt.Sprintf("removed %d completed", n))
	case "X":
		if m.st.Stats().Total == 0 {
			break
		}
		m.mode = modeConfirmClearAll
		m.setStatus(fmt.Sprintf("Delete all %d tasks? (y/n)", m.st.Stats().Total))
	}

	m.clampCursor()
	return m, nil
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.setStatus("")
		return m, nil
	case "enter":
		var err error
		if m.mode == modeAdd {
			_, err = m.st.Add(m.ctx, m.input.Value())
			if err == nil {
				m.setStatus("added")
			}
		} else {
			_, err = m.st.Edit(m.ctx, m.editing, m.input.Value())
			if err == nil {
				m.setStatus("saved")
			}
		}
		if errors.Is(err, store.ErrEmptyText) {
			// Empty input leaves the list alone
			m.setStatus("")
			err = nil
		}
		if err != nil {
			m.setError(err)
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.input.Reset()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	switch strings.ToLower(key.String()) {
	case "y":
		n, err := m.st.ClearAll(m.ctx)
		if err != nil {
			m.setError(err)
			break
		}
		m.setStatus(fmt.Sprintf("removed %d", n))
	default:
		m.setStatus("aborted")
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.st.FilteredView(m.filter))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isError = false
}

func (m *Model) setError(err error) {
	var perr *store.PersistenceError
	switch {
	case errors.As(err, &perr):
		m.status = "not saved: " + perr.Err.Error()
	case errors.Is(err, store.ErrNotFound):
		m.status = "task no longer exists"
	default:
		m.status = err.Error()
	}
	m.isError = true
}

func stateName(completed bool) string {
	if completed {
		return "completed"
	}
	return "pending"
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "todo  [%s]\n\n", m.filter)

	visible := m.st.FilteredView(m.filter)
	if len(visible) == 0 {
		b.WriteString("  No tasks found. Press a to add one.\n")
	}
	for i, t := range visible {
		pointer := "  "
		if i == m.cursor && m.mode != modeAdd {
			pointer = "> "
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, output.Checkbox(t.Completed), output.SingleLine(t.Text))
	}

	b.WriteString("\n")
	b.WriteString(output.StatsLine(m.st.Stats()))
	b.WriteString("\n")

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		prefix := ""
		if m.isError {
			prefix = "error: "
		}
		fmt.Fprintf(&b, "\n%s%s\n", prefix, m.status)
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd, modeEdit:
		b.WriteString("enter save • esc cancel\n")
	case modeConfirmClearAll:
		b.WriteString("y confirm • any other key cancels\n")
	default:
		b.WriteString("a add • e edit • space toggle • d delete • c clear done • X clear all • tab filter • q quit\n")
	}
	return b.String()
}
