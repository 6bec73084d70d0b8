package todo

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// List is an ordered collection of tasks. The zero value is an empty list.
//
// A List is never modified in place: every method that changes the list
// returns a new List. Copies of a List share storage, which is safe because
// no method writes to storage it did not allocate.
type List struct {
	tasks []Task
	// High-water marks for id and order. New tasks take max(mark, max in
	// tasks) + 1 so values are never reused after deletion.
	lastID    int
	lastOrder int
}

// NewList builds a list from tasks in display order. The caller must
// guarantee ids and orders are unique; use Snapshot.List to build a list from
// untrusted input.
func NewList(tasks ...Task) List {
	return List{tasks: slices.Clone(tasks)}
}

// Tasks returns a copy of the tasks in display order.
func (l List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l.tasks)
}

// Empty reports whether the list holds no tasks.
func (l List) Empty() bool {
	return len(l.tasks) == 0
}

// Count returns the number of tasks visible under the filter.
func (l List) Count(f Filter) int {
	n := 0
	for _, t := range l.tasks {
		if f.Match(t) {
			n++
		}
	}
	return n
}

// Get returns the task with the given id.
func (l List) Get(id int) (Task, bool) {
	if i := l.indexOfID(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

// LastID returns the highest id the list has ever assigned or held.
func (l List) LastID() int {
	last := l.lastID
	for _, t := range l.tasks {
		last = max(last, t.ID)
	}
	return last
}

// LastOrder returns the highest order the list has ever assigned or held.
func (l List) LastOrder() int {
	last := l.lastOrder
	for _, t := range l.tasks {
		last = max(last, t.Order)
	}
	return last
}

// Add appends a new active task. Blank text is a no-op.
func (l List) Add(text string) List {
	next, _ := l.TryAdd(text)
	return next
}

// TryAdd is Add with an explicit outcome. It returns the list unchanged and
// an error wrapping ErrInvalidInput when text is blank or the id or order
// space is used up.
func (l List) TryAdd(text string) (List, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return l, fmt.Errorf("%w: task text is blank", ErrInvalidInput)
	}
	if l.LastID() == math.MaxInt || l.LastOrder() == math.MaxInt {
		return l, fmt.Errorf("%w: no ids left", ErrInvalidInput)
	}

	task := Task{
		ID:     l.LastID() + 1,
		Text:   text,
		Status: StatusActive,
		Order:  l.LastOrder() + 1,
	}

	tasks := make([]Task, len(l.tasks), len(l.tasks)+1)
	copy(tasks, l.tasks)
	return List{
		tasks:     append(tasks, task),
		lastID:    task.ID,
		lastOrder: task.Order,
	}, nil
}

// Complete marks the task with the given id completed. An unknown id is a
// no-op, and completing a completed task leaves the list as it was.
func (l List) Complete(id int) List {
	next, _ := l.TryComplete(id)
	return next
}

// TryComplete is Complete with an explicit outcome.
func (l List) TryComplete(id int) (List, error) {
	i := l.indexOfID(id)
	if i < 0 {
		return l, fmt.Errorf("complete task %d: %w", id, ErrNotFound)
	}
	if l.tasks[i].Completed() {
		return l, nil
	}

	next := l.withTasks(slices.Clone(l.tasks))
	next.tasks[i].Status = StatusCompleted
	return next, nil
}

// Delete removes the task with the given id. An unknown id is a no-op.
func (l List) Delete(id int) List {
	next, _ := l.TryDelete(id)
	return next
}

// TryDelete is Delete with an explicit outcome.
func (l List) TryDelete(id int) (List, error) {
	i := l.indexOfID(id)
	if i < 0 {
		return l, fmt.Errorf("delete task %d: %w", id, ErrNotFound)
	}
	return l.withTasks(slices.Delete(slices.Clone(l.tasks), i, i+1)), nil
}

// ClearCompleted removes every completed task.
func (l List) ClearCompleted() List {
	tasks := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if !t.Completed() {
			tasks = append(tasks, t)
		}
	}
	return l.withTasks(tasks)
}

// Filter returns a view of the tasks visible under f in display order. The
// sequence can be ranged over any number of times and is unaffected by later
// operations on the list.
func (l List) Filter(f Filter) iter.Seq[Task] {
	tasks := l.tasks
	return func(yield func(Task) bool) {
		for _, t := range tasks {
			if !f.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// withTasks returns a list holding tasks with l's high-water marks carried
// forward.
func (l List) withTasks(tasks []Task) List {
	return List{
		tasks:     tasks,
		lastID:    l.LastID(),
		lastOrder: l.LastOrder(),
	}
}

func (l List) indexOfID(id int) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
}

func (l List) indexOfOrder(order int) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.Order == order })
}
