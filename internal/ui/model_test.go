package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiwariParth/go-task-manager/internal/board"
	"github.com/tiwariParth/go-task-manager/internal/models"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestModel(showCompleted bool) (Model, *board.Board) {
	b := board.New()
	m := New(b, Options{
		Now:           func() time.Time { return fixedNow },
		ShowCompleted: showCompleted,
	})
	return m, b
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

// addItem types a name, picks a priority by pressing right n times, and
// submits from the priority selector.
func addItem(t *testing.T, m Model, name string, n int) Model {
	t.Helper()
	m = send(t, m, runes(name), tab)
	for i := 0; i < n; i++ {
		m = send(t, m, right)
	}
	m = send(t, m, enter)
	return send(t, m, tab, tab, tab) // priority -> due -> list -> name
}

func TestAddTask(t *testing.T) {
	m, b := newTestModel(true)

	m = send(t, m, runes("Pay rent"), tab, right, enter)

	if b.Len() != 1 {
		t.Fatalf("board has %d items, want 1", b.Len())
	}
	it := b.Visible(true)[0]
	if it.Name != "Pay rent" || it.Priority != models.High {
		t.Errorf("unexpected item %+v", it)
	}
	if got := it.Due.Format(models.DateLayout); got != "2026-03-10" {
		t.Errorf("due = %s, want today", got)
	}
	if m.status != "Task 'Pay rent' has been added successfully!" || m.statusBad {
		t.Errorf("status = %q (bad=%v)", m.status, m.statusBad)
	}
	if m.name.Value() != "" || m.priority != 0 {
		t.Error("form should be cleared after a successful add")
	}
}

func TestPrioritySelectorCycles(t *testing.T) {
	m, _ := newTestModel(true)
	m = send(t, m, tab)
	if got := m.priorityView(); got != "< Select task priority >" {
		t.Errorf("priorityView() = %q", got)
	}

	m = send(t, m, left)
	if got := m.priorityView(); got != "< Low >" {
		t.Errorf("after left priorityView() = %q, want Low", got)
	}
	m = send(t, m, right, right)
	if got := m.priorityView(); got != "< High >" {
		t.Errorf("after right right priorityView() = %q, want High", got)
	}
}

func TestAddTaskValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m Model) Model
		want  string
	}{
		{
			name:  "empty name",
			setup: func(t *testing.T, m Model) Model { return send(t, m, tab, right, enter) },
			want:  "Task name cannot be empty!",
		},
		{
			name:  "no priority",
			setup: func(t *testing.T, m Model) Model { return send(t, m, runes("x"), enter) },
			want:  "Please select a task priority!",
		},
		{
			name: "past due date",
			setup: func(t *testing.T, m Model) Model {
				m = send(t, m, runes("x"), tab, right)
				m.due.SetValue("2020-01-01")
				return send(t, m, enter)
			},
			want: "Due date cannot be in the past!",
		},
		{
			name: "bad date format",
			setup: func(t *testing.T, m Model) Model {
				m = send(t, m, runes("x"), tab, right)
				m.due.SetValue("soon")
				return send(t, m, enter)
			},
			want: "Due date must be in YYYY-MM-DD format!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, b := newTestModel(true)
			m = tt.setup(t, m)
			if m.status != tt.want || !m.statusBad {
				t.Errorf("status = %q (bad=%v), want warning %q", m.status, m.statusBad, tt.want)
			}
			if b.Len() != 0 {
				t.Errorf("board has %d items after rejected add", b.Len())
			}
		})
	}
}

func TestAddDuplicate(t *testing.T) {
	m, b := newTestModel(true)
	m = addItem(t, m, "Pay rent", 1)
	m = send(t, m, runes("pay rent"), tab, right, enter)

	if b.Len() != 1 {
		t.Errorf("board has %d items, want 1", b.Len())
	}
	if m.status != "Task 'pay rent' already exists!" {
		t.Errorf("status = %q", m.status)
	}
}

func TestTypingQInFormDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(true)
	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if m.name.Value() != "q" {
		t.Errorf("name = %q, want q", m.name.Value())
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("typing q in the name field must not quit")
		}
	}
}

func TestQuitFromList(t *testing.T) {
	m, _ := newTestModel(true)
	m = send(t, m, tab, tab, tab)
	if m.focus != focusList {
		t.Fatalf("focus = %v, want list", m.focus)
	}
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestForceQuit(t *testing.T) {
	m, _ := newTestModel(true)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestDeleteWithConfirmation(t *testing.T) {
	m, b := newTestModel(true)
	m = addItem(t, m, "a", 1)
	m = addItem(t, m, "b", 2)
	m = addItem(t, m, "c", 3)

	m = send(t, m, tab, tab, tab) // to list
	m = send(t, m, space, down, down, space)
	m = send(t, m, runes("d"))
	if !m.confirming {
		t.Fatal("expected confirmation prompt")
	}

	m = send(t, m, runes("n"))
	if b.Len() != 3 {
		t.Fatalf("cancelled delete removed items, Len() = %d", b.Len())
	}

	m = send(t, m, runes("d"), runes("y"))
	if m.status != "Selected task(s) have been deleted successfully!" {
		t.Errorf("status = %q", m.status)
	}
	vis := b.Visible(true)
	if len(vis) != 1 || vis[0].Name != "b" {
		t.Errorf("remaining = %+v, want only b", vis)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.cursor)
	}
}

func TestDeleteWithoutTasks(t *testing.T) {
	m, _ := newTestModel(true)
	m = send(t, m, tab, tab, tab, runes("d"))
	if m.confirming {
		t.Error("should not ask for confirmation with nothing selected")
	}
	if m.status != "No task selected!" {
		t.Errorf("status = %q", m.status)
	}
}

func TestToggleAndShowCompleted(t *testing.T) {
	m, b := newTestModel(true)
	m = addItem(t, m, "a", 1)
	m = addItem(t, m, "b", 1)

	m = send(t, m, tab, tab, tab, runes("t")) // toggles the item under the cursor
	if m.status != "Status of selected task(s) has been toggled!" {
		t.Errorf("status = %q", m.status)
	}
	if !b.Visible(true)[0].Completed {
		t.Fatal("expected first item completed")
	}
	if !strings.Contains(m.View(), "a | Priority: High | Due: 2026-03-10 | Status: Completed") {
		t.Error("view should show the completed label")
	}

	m = send(t, m, runes("c"))
	if m.showCompleted {
		t.Fatal("expected completed items hidden")
	}
	if strings.Contains(m.View(), "Status: Completed") {
		t.Error("completed item still rendered while hidden")
	}
	if !strings.Contains(m.View(), "[ ] Show Completed Tasks") {
		t.Error("checkbox should render unchecked")
	}

	m = send(t, m, runes("t")) // toggles b, which then hides too
	if len(b.Visible(false)) != 0 {
		t.Errorf("expected no pending items, got %+v", b.Visible(false))
	}

	m = send(t, m, runes("c"), down, runes("t"))
	if b.Visible(true)[1].Completed {
		t.Error("toggling a completed item should make it pending again")
	}
}

func TestViewRendersForm(t *testing.T) {
	m, _ := newTestModel(true)
	view := m.View()
	for _, want := range []string{"To-Do List", "Select task priority", "2026-03-10", "No tasks", "[x] Show Completed Tasks"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(true)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 {
		t.Errorf("width = %d, want 100", m.width)
	}
}
