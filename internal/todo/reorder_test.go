package todo

import (
	"errors"
	"slices"
	"testing"
)

func abc() List {
	return List{}.Add("A").Add("B").Add("C")
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name    string
		dragged int
		target  int
		want    []string
	}{
		{"first after last", 1, 3, []string{"B", "C", "A"}},
		{"first after middle", 1, 2, []string{"B", "A", "C"}},
		{"last after first", 3, 1, []string{"A", "C", "B"}},
		{"middle after last", 2, 3, []string{"A", "C", "B"}},
		{"onto self", 2, 2, []string{"A", "B", "C"}},
		{"already after target", 2, 1, []string{"A", "B", "C"}},
		{"unknown dragged", 9, 1, []string{"A", "B", "C"}},
		{"unknown target", 1, 9, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(abc().Reorder(tt.dragged, tt.target).Tasks())
			if !slices.Equal(got, tt.want) {
				t.Errorf("Reorder(%d, %d): got %v, want %v", tt.dragged, tt.target, got, tt.want)
			}
		})
	}
}

func TestReorderKeepsOrderValues(t *testing.T) {
	got := abc().Reorder(1, 3).Tasks()
	if len(got) != 3 {
		t.Fatalf("Tasks count: got %d, want 3", len(got))
	}

	orders := []int{got[0].Order, got[1].Order, got[2].Order}
	ids := []int{got[0].ID, got[1].ID, got[2].ID}
	if want := []int{2, 3, 1}; !slices.Equal(orders, want) {
		t.Errorf("orders: got %v, want %v", orders, want)
	}
	if want := []int{2, 3, 1}; !slices.Equal(ids, want) {
		t.Errorf("ids: got %v, want %v", ids, want)
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	l := abc()
	before := l.Tasks()

	_ = l.Reorder(1, 3)
	_ = l.Reorder(3, 1)

	if !slices.Equal(before, l.Tasks()) {
		t.Errorf("input list was mutated: got %+v, want %+v", l.Tasks(), before)
	}
}

func TestTryReorderErrors(t *testing.T) {
	l := abc()

	if _, err := l.TryReorder(9, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("TryReorder(9, 1): got %v, want ErrNotFound", err)
	}

	next, err := l.TryReorder(1, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("TryReorder(1, 9): got %v, want ErrNotFound", err)
	}
	if !slices.Equal(l.Tasks(), next.Tasks()) {
		t.Errorf("TryReorder(1, 9) moved the task: %v", texts(next.Tasks()))
	}

	if _, err := l.TryReorder(2, 2); err != nil {
		t.Errorf("TryReorder(2, 2): unexpected error %v", err)
	}
}

func TestReorderAfterDeleteOfTarget(t *testing.T) {
	got := texts(abc().Delete(3).Reorder(1, 3).Tasks())
	if want := []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("Reorder onto deleted task: got %v, want %v", got, want)
	}
}

func TestAddAfterReorderAppends(t *testing.T) {
	l := abc().Reorder(3, 1).Add("D")

	if got, want := texts(l.Tasks()), []string{"A", "C", "B", "D"}; !slices.Equal(got, want) {
		t.Errorf("Tasks: got %v, want %v", got, want)
	}
	d, ok := l.Get(4)
	if !ok {
		t.Fatal("Get(4) returned false")
	}
	if d.Order != 4 {
		t.Errorf("Order: got %d, want 4", d.Order)
	}
}

func TestPosition(t *testing.T) {
	l := abc().Reorder(1, 3)

	pos, ok := l.Position(1)
	if !ok || pos != 2 {
		t.Errorf("Position(1): got %d, %v, want 2, true", pos, ok)
	}
	if _, ok := l.Position(42); ok {
		t.Error("Position(42): got true, want false")
	}
}
