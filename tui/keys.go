package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	All    key.Binding
	Drawer key.Binding
	Close  key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Next:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next section")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "previous section")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all sections")),
	Drawer: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close details")),
}
