package task

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

// TaskStore manages an ordered collection of tasks for one session.
// It is not safe for concurrent use.
type TaskStore struct {
	tasks []models.Task // storage (insertion) order
	log   *log.Logger
}

// NewTaskStore initializes an empty TaskStore. A nil logger discards output.
func NewTaskStore(logger *log.Logger) *TaskStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TaskStore{log: logger}
}

// Len returns the number of stored tasks.
func (ts *TaskStore) Len() int {
	return len(ts.tasks)
}

// AddTask validates the raw input and appends a new pending task.
func (ts *TaskStore) AddTask(name, priority, dueDate string) (models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Task{}, ErrEmptyName
	}

	p, err := models.ParsePriority(priority)
	if err != nil {
		ts.log.Debug("rejected priority", "input", priority)
		return models.Task{}, err
	}

	due, err := models.ParseDueDate(dueDate)
	if err != nil {
		ts.log.Debug("rejected due date", "input", dueDate)
		return models.Task{}, err
	}

	task := models.NewTask(name, p, due)
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	ts.tasks = append(ts.tasks, task)
	ts.log.Debug("task added", "id", task.ID, "name", task.Name, "priority", task.Priority)
	return task, nil
}

// CountNamed returns how many tasks match name case-insensitively.
func (ts *TaskStore) CountNamed(name string) int {
	n := 0
	for _, t := range ts.tasks {
		if t.MatchesName(name) {
			n++
		}
	}
	return n
}

// List returns the tasks in display order: high, then medium, then low
// priority; within a priority, pending before completed; otherwise
// insertion order.
func (ts *TaskStore) List() View {
	view := slices.Clone(ts.tasks)
	slices.SortStableFunc(view, func(a, b models.Task) int {
		return displayRank(b) - displayRank(a)
	})
	return view
}

// displayRank packs the descending key (high, medium, pending) into one int.
func displayRank(t models.Task) int {
	rank := 0
	if t.Priority == models.High {
		rank |= 4
	}
	if t.Priority == models.Medium {
		rank |= 2
	}
	if !t.Completed {
		rank |= 1
	}
	return rank
}

// MarkCompleted completes the first task, in storage order, whose name
// matches. Duplicate names beyond the first are never reached.
func (ts *TaskStore) MarkCompleted(name string) (models.Task, error) {
	i := ts.indexNamed(name)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}

	task := &ts.tasks[i]
	if task.Completed {
		return *task, ErrAlreadyCompleted
	}

	task.Complete()
	ts.log.Debug("task completed", "id", task.ID, "name", task.Name)
	return *task, nil
}

// RemoveTask removes the task shown at the 1-based position index in view.
// view must be the ordering the user chose from.
func (ts *TaskStore) RemoveTask(index string, view View) (models.Task, error) {
	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		ts.log.Debug("rejected task number", "input", index)
		return models.Task{}, ErrInvalidInput
	}
	return ts.RemoveAt(n, view)
}

// RemoveAt is RemoveTask with an already parsed position.
func (ts *TaskStore) RemoveAt(n int, view View) (models.Task, error) {
	selected, ok := view.At(n)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}

	i := slices.IndexFunc(ts.tasks, func(t models.Task) bool { return t.ID == selected.ID })
	if i < 0 {
		return models.Task{}, ErrNotFound
	}

	removed := ts.tasks[i]
	ts.tasks = slices.Delete(ts.tasks, i, i+1)
	ts.log.Debug("task removed", "id", removed.ID, "name", removed.Name)
	return removed, nil
}

func (ts *TaskStore) indexNamed(name string) int {
	return slices.IndexFunc(ts.tasks, func(t models.Task) bool { return t.MatchesName(name) })
}
