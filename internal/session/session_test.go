package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/tidy/internal/todo"
)

func visibleTexts(s *Session) []string {
	var out []string
	for _, t := range s.Visible() {
		out = append(out, t.Text)
	}
	return out
}

func TestDispatch(t *testing.T) {
	s := New(todo.List{})

	require.NoError(t, s.Dispatch(Add{Text: "buy milk"}))
	require.NoError(t, s.Dispatch(Add{Text: "walk dog"}))
	assert.ErrorIs(t, s.Dispatch(Add{Text: " "}), todo.ErrInvalidInput)
	assert.Equal(t, 2, s.List().Len())

	require.NoError(t, s.Dispatch(Complete{ID: 1}))
	assert.ErrorIs(t, s.Dispatch(Complete{ID: 9}), todo.ErrNotFound)
	assert.Equal(t, 1, s.ItemsLeft())

	require.NoError(t, s.Dispatch(SetFilter{Filter: todo.FilterCompleted}))
	assert.Equal(t, []string{"buy milk"}, visibleTexts(s))

	assert.ErrorIs(t, s.Dispatch(SetFilter{Filter: "done"}), todo.ErrInvalidInput)
	assert.Equal(t, todo.FilterCompleted, s.Filter())

	require.NoError(t, s.Dispatch(ClearCompleted{}))
	assert.Empty(t, visibleTexts(s))

	require.NoError(t, s.Dispatch(Delete{ID: 2}))
	assert.ErrorIs(t, s.Dispatch(Delete{ID: 2}), todo.ErrNotFound)
	assert.True(t, s.List().Empty())
	assert.Equal(t, 6, s.Applied())
}

func TestDispatchLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(todo.List{}, WithLogger(logger))

	require.NoError(t, s.Dispatch(Add{Text: "a"}))
	require.Error(t, s.Dispatch(Delete{ID: 5}))

	out := buf.String()
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "add a")
	assert.Contains(t, out, "no-op")
	assert.Contains(t, out, "delete 5")
}

func TestDragAndDrop(t *testing.T) {
	s := New(todo.List{}.Add("A").Add("B").Add("C"))

	require.NoError(t, s.BeginDrag(1))
	order, ok := s.Dragging()
	require.True(t, ok)
	assert.Equal(t, 1, order)

	require.NoError(t, s.Drop(3))
	assert.Equal(t, []string{"B", "C", "A"}, visibleTexts(s))

	_, ok = s.Dragging()
	assert.False(t, ok, "drop ends the gesture")
}

func TestDropOntoSelf(t *testing.T) {
	s := New(todo.List{}.Add("A").Add("B").Add("C"))
	require.NoError(t, s.BeginDrag(2))
	require.NoError(t, s.Drop(2))
	assert.Equal(t, []string{"A", "B", "C"}, visibleTexts(s))
}

func TestAbandonedDrag(t *testing.T) {
	s := New(todo.List{}.Add("A").Add("B"))

	assert.ErrorIs(t, s.BeginDrag(7), todo.ErrNotFound)
	_, ok := s.Dragging()
	assert.False(t, ok)

	assert.ErrorIs(t, s.Drop(1), todo.ErrInvalidInput, "drop with nothing grabbed")

	require.NoError(t, s.BeginDrag(1))
	s.CancelDrag()
	_, ok = s.Dragging()
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B"}, visibleTexts(s))

	// Target removed mid-drag.
	require.NoError(t, s.BeginDrag(1))
	require.NoError(t, s.Dispatch(Delete{ID: 2}))
	assert.ErrorIs(t, s.Drop(2), todo.ErrNotFound)
	assert.Equal(t, []string{"A"}, visibleTexts(s))
}

func TestReplay(t *testing.T) {
	script := `
# groceries
add A
add B
add C
add
reorder 1 3
complete 2
delete 42
filter active
`
	actions, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, actions, 8)

	s := New(todo.List{})
	skipped := s.Replay(actions)

	assert.Equal(t, 2, skipped)
	assert.Equal(t, []string{"C", "A"}, visibleTexts(s))
	assert.Equal(t, todo.FilterActive, s.Filter())
}

func TestWithFilter(t *testing.T) {
	s := New(todo.List{}.Add("A").Complete(1), WithFilter(todo.FilterActive))
	assert.Empty(t, s.Visible())
}
