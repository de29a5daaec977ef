// Package ui is the Bubble Tea front end for the task board.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tiwariParth/go-task-manager/internal/board"
	"github.com/tiwariParth/go-task-manager/internal/logging"
	"github.com/tiwariParth/go-task-manager/internal/models"
)

type focusArea int

const (
	focusName focusArea = iota
	focusPriority
	focusDue
	focusList
	focusCount
)

const priorityPlaceholder = "Select task priority"

// priorityOptions mirrors the priority drop-down; index 0 is the placeholder.
var priorityOptions = append([]models.Priority{0}, models.Priorities...)

// Options configures a Model.
type Options struct {
	Logger        *log.Logger
	Now           func() time.Time
	ShowCompleted bool
}

// Model is the board screen.
type Model struct {
	board *board.Board
	keys  KeyMap
	log   *log.Logger
	now   func() time.Time

	name     textinput.Model
	due      textinput.Model
	priority int
	focus    focusArea

	cursor        int
	marked        map[uuid.UUID]bool
	showCompleted bool
	confirming    bool

	status    string
	statusBad bool
	width     int
}

// New creates the board screen over b.
func New(b *board.Board, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	name := textinput.New()
	name.Placeholder = "Enter task name"
	name.CharLimit = 120
	name.Focus()

	due := textinput.New()
	due.Placeholder = models.DateLayout
	due.CharLimit = len(models.DateLayout)
	due.SetValue(now().Format(models.DateLayout))

	return Model{
		board:         b,
		keys:          DefaultKeyMap(),
		log:           logger,
		now:           now,
		name:          name,
		due:           due,
		marked:        make(map[uuid.UUID]bool),
		showCompleted: opts.ShowCompleted,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var nameCmd, dueCmd tea.Cmd
	m.name, nameCmd = m.name.Update(msg)
	m.due, dueCmd = m.due.Update(msg)
	return m, tea.Batch(nameCmd, dueCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirming = false
			m.deleteSelected()
		case key.Matches(msg, m.keys.Cancel):
			m.confirming = false
			m.setStatus("Deletion cancelled.", false)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}

	if key.Matches(msg, m.keys.Submit) {
		m.addTask()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDue:
		m.due, cmd = m.due.Update(msg)
	case focusPriority:
		switch {
		case key.Matches(msg, m.keys.Right):
			m.priority = (m.priority + 1) % len(priorityOptions)
		case key.Matches(msg, m.keys.Left):
			m.priority = (m.priority + len(priorityOptions) - 1) % len(priorityOptions)
		}
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.board.Visible(m.showCompleted)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(visible) {
			id := visible[m.cursor].ID
			if m.marked[id] {
				delete(m.marked, id)
			} else {
				m.marked[id] = true
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.selection()) == 0 {
			m.setStatus("No task selected!", true)
			break
		}
		m.confirming = true
		m.setStatus("Are you sure you want to delete the selected task(s)? (y/n)", true)
	case key.Matches(msg, m.keys.Toggle):
		ids := m.selection()
		if _, err := m.board.Toggle(ids...); err != nil {
			m.setStatus("No task selected!", true)
			break
		}
		m.log.Debug("toggled", "count", len(ids))
		m.setStatus("Status of selected task(s) has been toggled!", false)
		m.clampCursor()
	case key.Matches(msg, m.keys.ShowDone):
		m.showCompleted = !m.showCompleted
		m.clampCursor()
	}
	return m, nil
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.due.Blur()
	switch f {
	case focusName:
		return m.name.Focus()
	case focusDue:
		return m.due.Focus()
	}
	return nil
}

func (m *Model) addTask() {
	due, err := models.ParseDueDate(m.due.Value())
	if err != nil {
		m.setStatus("Due date must be in YYYY-MM-DD format!", true)
		return
	}
	today := m.now()
	if due.IsZero() {
		due = today
	}

	it, err := m.board.Add(m.name.Value(), priorityOptions[m.priority], due, today)
	switch {
	case errors.Is(err, board.ErrEmptyName):
		m.setStatus("Task name cannot be empty!", true)
	case errors.Is(err, board.ErrNoPriority):
		m.setStatus("Please select a task priority!", true)
	case errors.Is(err, board.ErrPastDueDate):
		m.setStatus("Due date cannot be in the past!", true)
	case errors.Is(err, board.ErrDuplicate):
		m.setStatus(fmt.Sprintf("Task '%s' already exists!", strings.TrimSpace(m.name.Value())), true)
	case err != nil:
		m.log.Error("add task", "err", err)
		m.setStatus(err.Error(), true)
	default:
		m.log.Debug("task added", "id", it.ID, "name", it.Name)
		m.name.Reset()
		m.priority = 0
		m.due.SetValue(today.Format(models.DateLayout))
		m.setStatus(fmt.Sprintf("Task '%s' has been added successfully!", it.Name), false)
	}
}

func (m *Model) deleteSelected() {
	ids := m.selection()
	n, err := m.board.Delete(ids...)
	if err != nil {
		m.setStatus("No task selected!", true)
		return
	}
	m.log.Debug("deleted", "count", n)
	for _, id := range ids {
		delete(m.marked, id)
	}
	m.clampCursor()
	m.setStatus("Selected task(s) have been deleted successfully!", false)
}

// selection returns the marked visible items, or the item under the cursor
// when nothing is marked.
func (m Model) selection() []uuid.UUID {
	visible := m.board.Visible(m.showCompleted)
	var ids []uuid.UUID
	for _, it := range visible {
		if m.marked[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	if len(ids) == 0 && m.cursor < len(visible) {
		ids = append(ids, visible[m.cursor].ID)
	}
	return ids
}

func (m *Model) clampCursor() {
	n := len(m.board.Visible(m.showCompleted))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string, bad bool) {
	m.status = s
	m.statusBad = bad
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("To-Do List"))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel("Name", focusName) + m.name.View() + "\n")
	b.WriteString(m.fieldLabel("Priority", focusPriority) + m.priorityView() + "\n")
	b.WriteString(m.fieldLabel("Due", focusDue) + m.due.View() + "\n\n")

	listStyle := ListStyle
	if m.focus == focusList {
		listStyle = FocusedListStyle
	}
	b.WriteString(listStyle.Render(m.listView()))
	b.WriteString("\n")

	check := "[ ]"
	if m.showCompleted {
		check = "[x]"
	}
	b.WriteString(check + " Show Completed Tasks\n")

	if m.status != "" {
		style := InfoStyle
		if m.statusBad {
			style = WarningStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}

	b.WriteString(HelpStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) fieldLabel(text string, f focusArea) string {
	if m.focus == f {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m Model) priorityView() string {
	label := priorityPlaceholder
	if p := priorityOptions[m.priority]; p.Valid() {
		label = p.String()
	}
	return "< " + label + " >"
}

func (m Model) listView() string {
	visible := m.board.Visible(m.showCompleted)
	if len(visible) == 0 {
		return CompletedStyle.Render("No tasks")
	}

	rows := make([]string, 0, len(visible))
	for i, it := range visible {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = "> "
		}
		mark := "[ ] "
		if m.marked[it.ID] {
			mark = "[*] "
		}
		style := priorityStyle(it.Priority)
		if it.Completed {
			style = CompletedStyle
		}
		rows = append(rows, cursor+mark+style.Render(it.Label()))
	}
	return strings.Join(rows, "\n")
}

func (m Model) helpView() string {
	bindings := m.keys.FormHelp()
	if m.focus == focusList {
		bindings = m.keys.ListHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
