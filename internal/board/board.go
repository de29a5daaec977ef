// Package board models the windowed task form: a flat list of labelled
// items that can be added, deleted, toggled and filtered.
package board

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

var (
	ErrEmptyName   = errors.New("task name cannot be empty")
	ErrNoPriority  = errors.New("no task priority selected")
	ErrPastDueDate = errors.New("due date cannot be in the past")
	ErrDuplicate   = errors.New("task already exists")
	ErrNoSelection = errors.New("no task selected")
)

// Item is one row of the board.
type Item struct {
	ID        uuid.UUID
	Name      string
	Priority  models.Priority
	Due       time.Time
	Completed bool
}

// Status returns "Completed" or "Pending".
func (it Item) Status() string {
	if it.Completed {
		return "Completed"
	}
	return "Pending"
}

// Label renders the row text.
func (it Item) Label() string {
	return fmt.Sprintf("%s | Priority: %s | Due: %s | Status: %s",
		it.Name, it.Priority, it.Due.Format(models.DateLayout), it.Status())
}

// Board holds items in insertion order.
type Board struct {
	items []Item
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Len returns the number of items, hidden ones included.
func (b *Board) Len() int {
	return len(b.items)
}

// Add validates and appends a pending item. Due dates are compared with
// today at day granularity.
func (b *Board) Add(name string, p models.Priority, due, today time.Time) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	if !p.Valid() {
		return Item{}, ErrNoPriority
	}
	due = truncateDay(due)
	if due.Before(truncateDay(today)) {
		return Item{}, ErrPastDueDate
	}
	for _, it := range b.items {
		if strings.EqualFold(it.Name, name) {
			return Item{}, fmt.Errorf("%w: %s", ErrDuplicate, it.Name)
		}
	}

	it := Item{
		ID:       uuid.New(),
		Name:     name,
		Priority: p,
		Due:      due,
	}
	b.items = append(b.items, it)
	return it, nil
}

// Delete removes the given items and returns how many were removed.
func (b *Board) Delete(ids ...uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	before := len(b.items)
	b.items = slices.DeleteFunc(b.items, func(it Item) bool {
		return slices.Contains(ids, it.ID)
	})
	return before - len(b.items), nil
}

// Toggle flips each given item between Pending and Completed.
func (b *Board) Toggle(ids ...uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	n := 0
	for i := range b.items {
		if slices.Contains(ids, b.items[i].ID) {
			b.items[i].Completed = !b.items[i].Completed
			n++
		}
	}
	return n, nil
}

// Visible returns the items to display, in insertion order.
func (b *Board) Visible(showCompleted bool) []Item {
	out := make([]Item, 0, len(b.items))
	for _, it := range b.items {
		if it.Completed && !showCompleted {
			continue
		}
		out = append(out, it)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
