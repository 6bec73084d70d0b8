// Package session owns the current task list of one interactive session.
//
// The presentation layer turns user events into Actions and hands them to
// Dispatch. Each action produces a new todo.List that replaces the current
// one wholesale. Actions that change nothing (blank text, unknown ids, an
// abandoned drag) are no-ops; Dispatch reports why so callers can surface it.
//
// A Session is not safe for concurrent use. It is driven from a single event
// loop.
package session

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tidy/internal/logging"
	"github.com/nibzard/tidy/internal/todo"
)

// Session holds the current list, filter and drag gesture.
type Session struct {
	list    todo.List
	filter  todo.Filter
	drag    *int // order of the grabbed task
	logger  *log.Logger
	applied int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for action outcomes.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFilter sets the initial filter mode.
func WithFilter(f todo.Filter) Option {
	return func(s *Session) {
		s.filter = f
	}
}

// New starts a session over list.
func New(list todo.List, opts ...Option) *Session {
	s := &Session{
		list:   list,
		filter: todo.FilterAll,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the current list.
func (s *Session) List() todo.List {
	return s.list
}

// Filter returns the current filter mode.
func (s *Session) Filter() todo.Filter {
	return s.filter
}

// Visible returns the tasks shown under the current filter, in display order.
func (s *Session) Visible() []todo.Task {
	return slices.Collect(s.list.Filter(s.filter))
}

// ItemsLeft returns the number of active tasks.
func (s *Session) ItemsLeft() int {
	return s.list.Count(todo.FilterActive)
}

// Applied returns how many dispatched actions were accepted.
func (s *Session) Applied() int {
	return s.applied
}

// Dispatch applies a and replaces the current list with the result. A non-nil
// error means the action was a no-op and wraps todo.ErrInvalidInput or
// todo.ErrNotFound; the session is unchanged in that case.
func (s *Session) Dispatch(a Action) error {
	next, err := a.apply(s)
	if err != nil {
		s.logger.Debug("no-op", "action", a.String(), "reason", err)
		return err
	}
	s.list = next
	s.applied++
	s.logger.Info("applied", "action", a.String(), "tasks", s.list.Len(), "left", s.ItemsLeft())
	return nil
}

// Replay dispatches actions in order. No-ops are logged and skipped; Replay
// returns how many actions were no-ops.
func (s *Session) Replay(actions []Action) int {
	skipped := 0
	for _, a := range actions {
		if err := s.Dispatch(a); err != nil {
			skipped++
		}
	}
	return skipped
}

// BeginDrag grabs the task with the given order. Grabbing while another task
// is held replaces the grab.
func (s *Session) BeginDrag(order int) error {
	if _, ok := s.list.Position(order); !ok {
		return fmt.Errorf("drag task with order %d: %w", order, todo.ErrNotFound)
	}
	s.drag = &order
	s.logger.Debug("drag started", "order", order)
	return nil
}

// Dragging returns the order of the grabbed task.
func (s *Session) Dragging() (int, bool) {
	if s.drag == nil {
		return 0, false
	}
	return *s.drag, true
}

// Drop ends the drag gesture by dropping the grabbed task after the task with
// targetOrder. Dropping with nothing grabbed, or onto a target that is gone,
// is a no-op.
func (s *Session) Drop(targetOrder int) error {
	dragged, ok := s.Dragging()
	if !ok {
		return fmt.Errorf("drop: %w: no task grabbed", todo.ErrInvalidInput)
	}
	s.drag = nil
	return s.Dispatch(Reorder{Dragged: dragged, Target: targetOrder})
}

// CancelDrag abandons the drag gesture, leaving the list as it was.
func (s *Session) CancelDrag() {
	if s.drag != nil {
		s.logger.Debug("drag abandoned", "order", *s.drag)
	}
	s.drag = nil
}
