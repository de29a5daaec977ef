package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the only accepted due date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned when a due date is not YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("due date must be in YYYY-MM-DD format")

// Task represents a to-do item.
type Task struct {
	ID        uuid.UUID
	Name      string
	Priority  Priority
	Completed bool
	DueDate   time.Time // zero means no due date
}

// NewTask creates a pending task with a fresh identity.
func NewTask(name string, priority Priority, dueDate time.Time) Task {
	return Task{
		ID:       uuid.New(),
		Name:     name,
		Priority: priority,
		DueDate:  dueDate,
	}
}

// HasDueDate reports whether a due date was set.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// Status returns the status word shown in listings.
func (t Task) Status() string {
	// Lower-case "completed" next to capitalised "Pending" is the established
	// output format.
	if t.Completed {
		return "completed"
	}
	return "Pending"
}

// String renders the task as "<name> - <Priority> Priority - <status> - Due: <date>".
func (t Task) String() string {
	due := "No due date"
	if t.HasDueDate() {
		due = t.DueDate.Format(DateLayout)
	}
	return fmt.Sprintf("%s - %s Priority - %s - Due: %s", t.Name, t.Priority, t.Status(), due)
}

// Validate checks if the task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("task name cannot be empty")
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Complete marks the task as completed.
func (t *Task) Complete() {
	t.Completed = true
}

// MatchesName compares names case-insensitively, ignoring surrounding whitespace.
func (t Task) MatchesName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name))
}

// ParseDueDate parses an optional YYYY-MM-DD date. Blank input yields the
// zero time.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return d, nil
}
