package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tidy/internal/todo"
)

// emptyMessage is shown when the list holds no tasks at all.
const emptyMessage = "You cleared all tasks, very nice!"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle    = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	grabbedStyle   = lipgloss.NewStyle().Reverse(true)
	filterOnStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle     = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TODO"))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	writeTasks(&b, m)
	writeFooter(&b, m)

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString(mutedStyle.Render("enter add • esc done"))
	} else {
		m.help.ShowAll = m.showHelp
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

func writeTasks(b *strings.Builder, m *Model) {
	if m.session.List().Empty() {
		b.WriteString("  " + mutedStyle.Render(emptyMessage) + "\n\n")
		return
	}

	visible := m.session.Visible()
	if len(visible) == 0 {
		b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("No %s tasks.", m.session.Filter())) + "\n\n")
		return
	}

	grabbed, dragging := m.session.Dragging()
	for i, t := range visible {
		b.WriteString(formatTask(t, i == m.cursor && m.mode == modeBrowse, dragging && t.Order == grabbed))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func formatTask(t todo.Task, selected, grabbed bool) string {
	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}

	check := "( )"
	text := t.Text
	if t.Completed() {
		check = "(x)"
		text = completedStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", check, text)
	if grabbed {
		line = grabbedStyle.Render(line)
	}
	return pointer + line
}

func writeFooter(b *strings.Builder, m *Model) {
	left := m.session.ItemsLeft()
	noun := "items"
	if left == 1 {
		noun = "item"
	}

	filters := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		name := string(f)
		if f == m.session.Filter() {
			name = filterOnStyle.Render(name)
		}
		filters = append(filters, name)
	}

	fmt.Fprintf(b, "%d %s left   %s\n", left, noun, strings.Join(filters, "  "))
}
