package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tidy/internal/session"
	"github.com/nibzard/tidy/internal/todo"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
)

// Model is the bubbletea model for the task list. Every key press becomes a
// session action; the view is rebuilt from the session after each one.
type Model struct {
	session  *session.Session
	input    textinput.Model
	help     help.Model
	keys     keyMap
	mode     inputMode
	cursor   int
	status   string
	showHelp bool
	width    int
}

// NewModel returns a model driving s.
func NewModel(s *session.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Create a new todo..."
	ti.Prompt = "› "
	ti.CharLimit = 200

	return &Model{
		session: s,
		input:   ti,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Session returns the session the model drives.
func (m *Model) Session() *session.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		if _, dragging := m.session.Dragging(); dragging {
			return m.updateDrag(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.report(m.session.Dispatch(session.Add{Text: m.input.Value()}), "Added")
		m.input.Reset()
		m.cursor = len(m.session.Visible()) - 1
		m.clampCursor()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		m.input.Reset()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.cancel):
		m.session.CancelDrag()
		m.status = "Move cancelled"
	case key.Matches(msg, m.keys.drop):
		dragged, _ := m.session.Dragging()
		target, ok := m.selected()
		if !ok {
			m.session.CancelDrag()
			m.status = "Move cancelled"
			return m, nil
		}
		m.report(m.session.Drop(target.Order), "Moved")
		m.focusOrder(dragged)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.add):
		m.mode = modeAdd
		m.status = ""
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.complete):
		if t, ok := m.selected(); ok {
			m.report(m.session.Dispatch(session.Complete{ID: t.ID}), "Completed")
		}
	case key.Matches(msg, m.keys.remove):
		if t, ok := m.selected(); ok {
			m.report(m.session.Dispatch(session.Delete{ID: t.ID}), "Deleted")
		}
	case key.Matches(msg, m.keys.clear):
		n := m.session.List().Count(todo.FilterCompleted)
		m.report(m.session.Dispatch(session.ClearCompleted{}), fmt.Sprintf("Cleared %d completed", n))
	case key.Matches(msg, m.keys.nextFilter):
		m.setFilter(m.session.Filter().Next())
	case key.Matches(msg, m.keys.showAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.showActive):
		m.setFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.showDone):
		m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.grab):
		if t, ok := m.selected(); ok {
			hint := fmt.Sprintf("Moving %q: pick a task to drop after, esc to cancel", t.Text)
			m.report(m.session.BeginDrag(t.Order), hint)
		}
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) setFilter(f todo.Filter) {
	m.report(m.session.Dispatch(session.SetFilter{Filter: f}), "")
	m.cursor = 0
	m.status = ""
}

// report turns an action outcome into the status line.
func (m *Model) report(err error, done string) {
	switch {
	case err == nil:
		m.status = done
	case errors.Is(err, todo.ErrInvalidInput), errors.Is(err, todo.ErrNotFound):
		m.status = "Nothing to do: " + err.Error()
	default:
		m.status = "Error: " + err.Error()
	}
}

func (m *Model) selected() (todo.Task, bool) {
	visible := m.session.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.session.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// focusOrder moves the cursor onto the task with the given order if it is
// visible.
func (m *Model) focusOrder(order int) {
	for i, t := range m.session.Visible() {
		if t.Order == order {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}
