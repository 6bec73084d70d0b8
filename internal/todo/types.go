package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Status represents a task status.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

// Filter selects a subsequence of a list for display.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter mode in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter mode name. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("%w: unknown filter %q, must be one of: all, active, completed", ErrInvalidInput, s)
}

// Match reports whether t is visible under the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return t.Status == StatusActive
	case FilterCompleted:
		return t.Status == StatusCompleted
	default:
		return true
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Task is a single to-do entry.
type Task struct {
	ID     int    `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status" yaml:"status"`
	Order  int    `json:"order" yaml:"order"`
}

// Completed reports whether the task is done.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

var (
	// ErrInvalidInput is returned for blank task text and malformed input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when an id or order matches no task.
	ErrNotFound = errors.New("not found")
)
