package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
//
// Printable keys are left to the inputs, so every binding that works everywhere uses a modifier or a navigation key.
type keyMap struct {
	next     key.Binding
	prev     key.Binding
	enter    key.Binding
	submit   key.Binding
	search   key.Binding
	sortNext key.Binding
	sortPrev key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/search")),
		submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add song")),
		search:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search")),
		sortNext: key.NewBinding(key.WithKeys("right", " "), key.WithHelp("→/space", "next sort")),
		sortPrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev sort")),
		quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.enter, k.submit, k.search, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.enter},
		{k.submit, k.search},
		{k.sortNext, k.sortPrev, k.quit},
	}
}
