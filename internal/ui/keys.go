package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for browse mode.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	add        key.Binding
	complete   key.Binding
	remove     key.Binding
	clear      key.Binding
	nextFilter key.Binding
	showAll    key.Binding
	showActive key.Binding
	showDone   key.Binding
	grab       key.Binding
	drop       key.Binding
	cancel     key.Binding
	help       key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		add:        key.NewBinding(key.WithKeys("a", "n", "i"), key.WithHelp("a", "add")),
		complete:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "complete")),
		remove:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		nextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		showAll:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		showActive: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		showDone:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		grab:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "grab to move")),
		drop:       key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter", "drop after")),
		cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.complete, k.remove, k.grab, k.nextFilter, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.add, k.complete, k.remove},
		{k.clear, k.nextFilter, k.showAll, k.showActive, k.showDone},
		{k.grab, k.drop, k.cancel, k.help, k.quit},
	}
}
