package models

import (
	"errors"
	"strings"
)

// ErrInvalidPriority is returned when text does not name a known priority.
var ErrInvalidPriority = errors.New("priority must be high, medium, or low")

// Priority represents the importance level of a task.
// The zero value is not a valid priority.
type Priority int

const (
	Low Priority = iota + 1
	Medium
	High
)

// Priorities lists the valid priorities from most to least important.
var Priorities = []Priority{High, Medium, Low}

// String returns the capitalised name used in display output.
func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	return p == Low || p == Medium || p == High
}

// ParsePriority accepts "high", "medium" or "low" in any case, ignoring
// surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	}
	return 0, ErrInvalidPriority
}
