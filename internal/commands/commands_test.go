package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/task"
	"todo/internal/testutil"
)

var created = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// sampleTasks returns a newest-first list: C (completed), B, A.
func sampleTasks() []task.Task {
	return []task.Task{
		{ID: 3, Text: "C", Completed: true, CreatedAt: created.Add(2 * time.Second)},
		{ID: 2, Text: "B", CreatedAt: created.Add(time.Second)},
		{ID: 1, Text: "A", CreatedAt: created},
	}
}

// newStore returns a loaded store over a FakeBackend seeded with tasks.
func newStore(t *testing.T, tasks ...task.Task) (*store.TaskListStore, *testutil.FakeBackend) {
	t.Helper()
	backend := testutil.NewFakeBackend()
	if len(tasks) > 0 {
		backend.SetTasks(store.DefaultSlot, tasks)
	}
	st := store.New(backend)
	st.Load(context.Background())
	return st, backend
}

// runCommand is a helper to run a command against a store and FakeService.
func runCommand(t *testing.T, cmd commands.Command, st *store.TaskListStore, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:     t.TempDir(),
		Backend: config.BackendMemory,
		Slot:    store.DefaultSlot,
		Quiet:   quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, st, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, nil, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, nil, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "help", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	st, _ := newStore(t)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "no tasks found\ntotal: 0  pending: 0  completed: 0\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_FilterHidesEverythingStillShowsStats(t *testing.T) {
	st, _ := newStore(t, sampleTasks()[1])

	cmd := &commands.ListCmd{}
	cmd.SetFilter("completed")
	stdout, stderr, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "no tasks found\ntotal: 1  pending: 1  completed: 0\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	st, _ := newStore(t)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, st, nil, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_All(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_all", stdout)
}

func TestListCommand_PendingKeepsPositions(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	cmd := &commands.ListCmd{}
	cmd.SetFilter("pending")
	stdout, _, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   2  [ ] B\n   3  [ ] A\ntotal: 3  pending: 2  completed: 1\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_CompletedWithIDs(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	cmd := &commands.ListCmd{}
	cmd.SetFilter("completed")
	cmd.SetShowIDs(true)
	stdout, _, _ := runCommand(t, cmd, st, nil, nil, true)

	expected := "   1  [x] C  @3\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_InvalidFilter(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	cmd := &commands.ListCmd{}
	cmd.SetFilter("someday")
	stdout, stderr, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: invalid filter: someday\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand(t *testing.T) {
	st, backend := newStore(t, sampleTasks()...)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, st, nil, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	first := st.Tasks()[0]
	if first.Text != "Buy milk" || first.Completed {
		t.Errorf("first task = %+v, want pending 'Buy milk'", first)
	}
	saved, err := backend.Tasks(store.DefaultSlot)
	if err != nil || len(saved) != 4 {
		t.Errorf("snapshot = %d tasks (err %v), want 4", len(saved), err)
	}
}

func TestAddCommand_EmptyText(t *testing.T) {
	st, backend := newStore(t)

	_, stderr, code := runCommand(t, &commands.AddCmd{}, st, nil, []string{"  "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: text required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if backend.Puts[store.DefaultSlot] != 0 {
		t.Error("empty text should not write a snapshot")
	}
}

func TestAddCommand_StorageError(t *testing.T) {
	st, backend := newStore(t, sampleTasks()...)
	backend.PutErr = errors.New("disk full")

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, st, nil, []string{"lost"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: storage error: disk full\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if got := st.Stats().Total; got != 3 {
		t.Errorf("Total = %d after failed add, want 3", got)
	}
}

func TestDoneCommand_ByNumber(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, st, nil, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok [x]\n" {
		t.Errorf("expected 'ok [x]\\n', got %q", stdout)
	}
	if b, _ := st.Get(2); !b.Completed {
		t.Error("task B should be completed")
	}
}

func TestDoneCommand_ByIDReopens(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, st, nil, []string{"@3"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok [ ]\n" {
		t.Errorf("expected 'ok [ ]\\n', got %q", stdout)
	}
	if c, _ := st.Get(3); c.Completed {
		t.Error("task C should be pending again")
	}
}

func TestDoneCommand_RefErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"missing", nil, "error: task reference required\n"},
		{"out of range", []string{"9"}, "error: task number out of range: 9\n"},
		{"zero", []string{"0"}, "error: task number out of range: 0\n"},
		{"unknown id", []string{"@999"}, "error: task not found: @999\n"},
		{"garbage", []string{"abc"}, "error: invalid task reference: abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, backend := newStore(t, sampleTasks()...)

			stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, st, nil, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != tt.stderr {
				t.Errorf("expected %q, got %q", tt.stderr, stderr)
			}
			if backend.Puts[store.DefaultSlot] != 0 {
				t.Error("failed lookup should not write a snapshot")
			}
		})
	}
}

func TestEditCommand(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, _, code := runCommand(t, &commands.EditCmd{}, st, nil, []string{"3", "  Apples", "and pears "}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	a, _ := st.Get(1)
	if a.Text != "Apples and pears" {
		t.Errorf("text = %q, want trimmed 'Apples and pears'", a.Text)
	}
}

func TestEditCommand_MissingText(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	_, stderr, code := runCommand(t, &commands.EditCmd{}, st, nil, []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: text required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if c, _ := st.Get(3); c.Text != "C" {
		t.Errorf("text changed to %q", c.Text)
	}
}

func TestRmCommand(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, _, code := runCommand(t, &commands.RmCmd{}, st, nil, []string{"@2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if _, ok := st.Get(2); ok {
		t.Error("task B should be gone")
	}
	if got := st.Stats().Total; got != 2 {
		t.Errorf("Total = %d, want 2", got)
	}
}

func TestClearCommand_Completed(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, _, code := runCommand(t, &commands.ClearCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "removed 1\n" {
		t.Errorf("expected 'removed 1\\n', got %q", stdout)
	}
	if got := st.Stats(); got.Total != 2 || got.Completed != 0 {
		t.Errorf("Stats() = %+v, want 2 pending", got)
	}
}

func TestClearCommand_AllDeclined(t *testing.T) {
	st, backend := newStore(t, sampleTasks()...)

	var asked string
	cmd := &commands.ClearCmd{Confirm: func(prompt string) bool {
		asked = prompt
		return false
	}}
	cmd.SetAll(true)
	stdout, _, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if asked != "Delete all 3 tasks?" {
		t.Errorf("prompt = %q", asked)
	}
	if stdout != "aborted\n" {
		t.Errorf("expected 'aborted\\n', got %q", stdout)
	}
	if got := st.Stats().Total; got != 3 {
		t.Errorf("Total = %d, want 3", got)
	}
	if backend.Puts[store.DefaultSlot] != 0 {
		t.Error("declined clear should not write a snapshot")
	}
}

func TestClearCommand_AllConfirmed(t *testing.T) {
	st, backend := newStore(t, sampleTasks()...)

	cmd := &commands.ClearCmd{Confirm: func(string) bool { return true }}
	cmd.SetAll(true)
	stdout, _, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "removed 3\n" {
		t.Errorf("expected 'removed 3\\n', got %q", stdout)
	}
	saved, err := backend.Tasks(store.DefaultSlot)
	if err != nil || len(saved) != 0 {
		t.Errorf("snapshot = %v (err %v), want empty", saved, err)
	}
	if raw, _ := backend.Raw(store.DefaultSlot); string(raw) != "[]" {
		t.Errorf("raw snapshot = %s, want []", raw)
	}
}

func TestClearCommand_AllYesSkipsPrompt(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	cmd := &commands.ClearCmd{Confirm: func(string) bool {
		t.Error("Confirm should not be called with --yes")
		return false
	}}
	cmd.SetAll(true)
	cmd.SetYes(true)
	_, _, code := runCommand(t, cmd, st, nil, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got := st.Stats().Total; got != 0 {
		t.Errorf("Total = %d, want 0", got)
	}
}

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}

	for _, tt := range tests {
		var prompt bytes.Buffer
		confirm := commands.PromptConfirm(strings.NewReader(tt.input), &prompt)
		if got := confirm("Delete?"); got != tt.want {
			t.Errorf("input %q: got %v, want %v", tt.input, got, tt.want)
		}
		if prompt.String() != "Delete? [y/N] " {
			t.Errorf("prompt = %q", prompt.String())
		}
	}
}

func TestStatsCommand(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, _, code := runCommand(t, &commands.StatsCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "total: 3  pending: 2  completed: 1\n" {
		t.Errorf("unexpected stats %q", stdout)
	}
}

func TestStatsCommand_Quiet(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)

	stdout, stderr, code := runCommand(t, &commands.StatsCmd{}, st, nil, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output in quiet mode, got stdout %q stderr %q", stdout, stderr)
	}
}

func TestInitCommand_SeedsEmptyList(t *testing.T) {
	st, _ := newStore(t)

	stdout, _, code := runCommand(t, &commands.InitCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	got := st.Stats()
	if got.Total != 3 || got.Completed != 1 {
		t.Errorf("Stats() = %+v, want 3 total, 1 completed", got)
	}
}

func TestInitCommand_LeavesExistingList(t *testing.T) {
	st, backend := newStore(t, sampleTasks()[:1]...)

	stdout, _, code := runCommand(t, &commands.InitCmd{}, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "list not empty, nothing to do\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if backend.Puts[store.DefaultSlot] != 0 {
		t.Error("init on a non-empty list should not write")
	}
}

func TestWelcomeTasks(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
	tasks := commands.WelcomeTasks(now)

	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, tk := range tasks {
		if tk.ID != int64(i+1) {
			t.Errorf("tasks[%d].ID = %d, want %d", i, tk.ID, i+1)
		}
		if tk.CreatedAt.Location() != time.UTC || tk.CreatedAt.Nanosecond() != 123000000 {
			t.Errorf("tasks[%d].CreatedAt = %v, want UTC millisecond precision", i, tk.CreatedAt)
		}
	}
	if !tasks[2].Completed {
		t.Error("third welcome task should be completed")
	}
}

func TestExportCommand_DefaultList(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.ExportCmd{}, st, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "exported 3\n" {
		t.Errorf("expected 'exported 3\\n', got %q", stdout)
	}

	remote := svc.Tasks(testutil.DefaultListID)
	if len(remote) != 3 {
		t.Fatalf("remote tasks = %d, want 3", len(remote))
	}
	// Oldest first
	if remote[0].Title != "A" || remote[1].Title != "B" || remote[2].Title != "C" {
		t.Errorf("remote order = %q %q %q, want A B C", remote[0].Title, remote[1].Title, remote[2].Title)
	}
	if !remote[2].Completed || remote[0].Completed {
		t.Error("completion state not carried over")
	}
	if remote[0].Notes != "todo @1, created 2025-03-01T12:00:00.000Z" {
		t.Errorf("notes = %q", remote[0].Notes)
	}
}

func TestExportCommand_NamedListWithFilter(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)
	svc := testutil.NewFakeService()
	svc.AddList("work", "Work")

	cmd := &commands.ExportCmd{}
	cmd.SetListName(" work ")
	cmd.SetFilter("pending")
	stdout, _, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "exported 2\n" {
		t.Errorf("expected 'exported 2\\n', got %q", stdout)
	}
	if got := len(svc.Tasks("work")); got != 2 {
		t.Errorf("work list has %d tasks, want 2", got)
	}
	if got := len(svc.Tasks(testutil.DefaultListID)); got != 0 {
		t.Errorf("default list has %d tasks, want 0", got)
	}
}

func TestExportCommand_ListNotFound(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)
	svc := testutil.NewFakeService()

	cmd := &commands.ExportCmd{}
	cmd.SetListName("Nope")
	_, stderr, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list not found: Nope\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestExportCommand_AmbiguousList(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)
	svc := testutil.NewFakeService()
	svc.AddList("w1", "Work")
	svc.AddList("w2", "work")

	cmd := &commands.ExportCmd{}
	cmd.SetListName("Work")
	_, stderr, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: ambiguous list name: Work\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestExportCommand_PartialFailure(t *testing.T) {
	st, _ := newStore(t, sampleTasks()...)
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("quota exceeded")
	svc.FailAfter = 1

	stdout, stderr, code := runCommand(t, &commands.ExportCmd{}, st, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: backend error after 1 of 3 tasks: quota exceeded\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if got := st.Stats().Total; got != 3 {
		t.Errorf("export must not change the local list, Total = %d", got)
	}
}

func TestListsCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("shopping", "Shopping")
	svc.AddList("blank", "  ")

	stdout, stderr, code := runCommand(t, &commands.ListsCmd{}, nil, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "My Tasks [default]\nShopping\n(untitled)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListsCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListListsErr = errors.New("request timed out")

	_, stderr, code := runCommand(t, &commands.ListsCmd{}, nil, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: request timed out\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRegistry_Aliases(t *testing.T) {
	tests := map[string]string{
		"ls":     "list",
		"create": "add",
		"toggle": "done",
		"delete": "rm",
	}
	for alias, name := range tests {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("first Register err = %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Fatal("expected error registering add twice")
	}
}

func TestRegistry_AllSorted(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("All() not sorted: %v", names)
		}
	}
}
