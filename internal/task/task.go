// Package task holds the in-memory task list behind the console shell.
package task

import (
	"errors"
	"iter"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

// Errors reported by TaskStore operations. None of them leave the store
// modified.
var (
	ErrEmptyName         = errors.New("task name cannot be empty")
	ErrInvalidPriority   = models.ErrInvalidPriority
	ErrInvalidDateFormat = models.ErrInvalidDateFormat
	ErrNotFound          = errors.New("task not found")
	ErrAlreadyCompleted  = errors.New("task is already completed")
	ErrInvalidIndex      = errors.New("task number out of range")
	ErrInvalidInput      = errors.New("task number is not a number")
)

// View is a snapshot of the store in display order. Positions are 1-based
// when presented to the user.
type View []models.Task

// All yields each task with its 1-based display position.
func (v View) All() iter.Seq2[int, models.Task] {
	return func(yield func(int, models.Task) bool) {
		for i, t := range v {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// Len returns the number of tasks in the view.
func (v View) Len() int { return len(v) }

// At returns the task at 1-based position n.
func (v View) At(n int) (models.Task, bool) {
	if n < 1 || n > len(v) {
		return models.Task{}, false
	}
	return v[n-1], true
}
