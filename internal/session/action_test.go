package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/tidy/internal/todo"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		line    string
		want    Action
		wantErr bool
	}{
		{"add buy milk", Add{Text: "buy milk"}, false},
		{"  add   spaced   text ", Add{Text: "spaced   text"}, false},
		{"add", Add{Text: ""}, false},
		{"complete 3", Complete{ID: 3}, false},
		{"done 3", Complete{ID: 3}, false},
		{"delete 2", Delete{ID: 2}, false},
		{"rm 2", Delete{ID: 2}, false},
		{"clear", ClearCompleted{}, false},
		{"filter Completed", SetFilter{Filter: todo.FilterCompleted}, false},
		{"reorder 1 3", Reorder{Dragged: 1, Target: 3}, false},
		{"MOVE 2 1", Reorder{Dragged: 2, Target: 1}, false},
		{"complete", nil, true},
		{"complete x", nil, true},
		{"delete 1 2", nil, true},
		{"clear now", nil, true},
		{"filter", nil, true},
		{"filter done", nil, true},
		{"reorder 1", nil, true},
		{"undo", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseAction(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, todo.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionStringParsesBack(t *testing.T) {
	actions := []Action{
		Add{Text: "buy milk"},
		Complete{ID: 1},
		Delete{ID: 2},
		ClearCompleted{},
		SetFilter{Filter: todo.FilterActive},
		Reorder{Dragged: 1, Target: 3},
	}
	for _, a := range actions {
		got, err := ParseAction(a.String())
		require.NoError(t, err, a.String())
		assert.Equal(t, a, got)
	}
}

func TestParseScriptReportsLine(t *testing.T) {
	_, err := ParseScript(strings.NewReader("add a\n\n# note\nreorder 1\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line 4:"), "error %q should name line 4", err)
}
