package todo

import (
	"fmt"
	"slices"
)

// Reorder moves the task whose order is draggedOrder so that it sits directly
// after the task whose order is dropTargetOrder. Order values are left as they
// are; only positions change.
//
// Dropping a task onto itself, dragging an unknown task and dropping onto a
// target that no longer exists are all no-ops.
func (l List) Reorder(draggedOrder, dropTargetOrder int) List {
	next, _ := l.TryReorder(draggedOrder, dropTargetOrder)
	return next
}

// TryReorder is Reorder with an explicit outcome. Dropping a task onto itself
// is not an error.
func (l List) TryReorder(draggedOrder, dropTargetOrder int) (List, error) {
	from := l.indexOfOrder(draggedOrder)
	if from < 0 {
		return l, fmt.Errorf("reorder: dragged task with order %d: %w", draggedOrder, ErrNotFound)
	}
	if draggedOrder == dropTargetOrder {
		return l, nil
	}

	dragged := l.tasks[from]
	rest := slices.Delete(slices.Clone(l.tasks), from, from+1)

	to := slices.IndexFunc(rest, func(t Task) bool { return t.Order == dropTargetOrder })
	if to < 0 {
		return l, fmt.Errorf("reorder: drop target with order %d: %w", dropTargetOrder, ErrNotFound)
	}

	return l.withTasks(slices.Insert(rest, to+1, dragged)), nil
}

// Position returns the display index of the task with the given order.
func (l List) Position(order int) (int, bool) {
	i := l.indexOfOrder(order)
	return i, i >= 0
}
