package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nibzard/tidy/internal/todo"
)

// Action is a single user event applied to a session.
type Action interface {
	// apply returns the next list and the reason the action was a no-op, if
	// it was one.
	apply(s *Session) (todo.List, error)
	// String returns the action in script form.
	String() string
}

// Add adds a task.
type Add struct{ Text string }

// Complete marks a task completed.
type Complete struct{ ID int }

// Delete removes a task.
type Delete struct{ ID int }

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

// SetFilter switches the visible filter mode.
type SetFilter struct{ Filter todo.Filter }

// Reorder moves the task with order Dragged to sit after the task with order
// Target.
type Reorder struct{ Dragged, Target int }

func (a Add) apply(s *Session) (todo.List, error)      { return s.list.TryAdd(a.Text) }
func (a Complete) apply(s *Session) (todo.List, error) { return s.list.TryComplete(a.ID) }
func (a Delete) apply(s *Session) (todo.List, error)   { return s.list.TryDelete(a.ID) }

func (ClearCompleted) apply(s *Session) (todo.List, error) {
	return s.list.ClearCompleted(), nil
}

func (a SetFilter) apply(s *Session) (todo.List, error) {
	f, err := todo.ParseFilter(string(a.Filter))
	if err != nil {
		return s.list, err
	}
	s.filter = f
	return s.list, nil
}

func (a Reorder) apply(s *Session) (todo.List, error) {
	return s.list.TryReorder(a.Dragged, a.Target)
}

func (a Add) String() string          { return "add " + a.Text }
func (a Complete) String() string     { return fmt.Sprintf("complete %d", a.ID) }
func (a Delete) String() string       { return fmt.Sprintf("delete %d", a.ID) }
func (ClearCompleted) String() string { return "clear" }
func (a SetFilter) String() string    { return "filter " + string(a.Filter) }
func (a Reorder) String() string      { return fmt.Sprintf("reorder %d %d", a.Dragged, a.Target) }

// ParseAction parses one script line:
//
//	add <text...>
//	complete <id>
//	delete <id>
//	clear
//	filter all|active|completed
//	reorder <draggedOrder> <dropTargetOrder>
func ParseAction(line string) (Action, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch strings.ToLower(verb) {
	case "add":
		return Add{Text: rest}, nil
	case "complete", "done":
		id, err := intArgs(verb, args, 1)
		if err != nil {
			return nil, err
		}
		return Complete{ID: id[0]}, nil
	case "delete", "rm":
		id, err := intArgs(verb, args, 1)
		if err != nil {
			return nil, err
		}
		return Delete{ID: id[0]}, nil
	case "clear", "clear-completed":
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", todo.ErrInvalidInput, verb)
		}
		return ClearCompleted{}, nil
	case "filter":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: filter takes one mode", todo.ErrInvalidInput)
		}
		f, err := todo.ParseFilter(args[0])
		if err != nil {
			return nil, err
		}
		return SetFilter{Filter: f}, nil
	case "reorder", "move":
		orders, err := intArgs(verb, args, 2)
		if err != nil {
			return nil, err
		}
		return Reorder{Dragged: orders[0], Target: orders[1]}, nil
	case "":
		return nil, fmt.Errorf("%w: empty action", todo.ErrInvalidInput)
	}
	return nil, fmt.Errorf("%w: unknown action %q", todo.ErrInvalidInput, verb)
}

func intArgs(verb string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s takes %d numeric argument(s), got %d", todo.ErrInvalidInput, verb, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a number", todo.ErrInvalidInput, verb, a)
		}
		out[i] = v
	}
	return out, nil
}

// ParseScript reads one action per line. Blank lines and lines starting with
// # are skipped.
func ParseScript(r io.Reader) ([]Action, error) {
	var actions []Action
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		actions = append(actions, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return actions, nil
}
