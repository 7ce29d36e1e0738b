package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next       key.Binding
	prev       key.Binding
	submit     key.Binding
	copy       key.Binding
	info       key.Binding
	cancel     key.Binding
	prevOption key.Binding
	nextOption key.Binding
}

var keys = keyMap{
	next:       key.NewBinding(key.WithKeys("tab")),
	prev:       key.NewBinding(key.WithKeys("shift+tab")),
	submit:     key.NewBinding(key.WithKeys("enter")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	info:       key.NewBinding(key.WithKeys("f1")),
	cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	prevOption: key.NewBinding(key.WithKeys("left", "h")),
	nextOption: key.NewBinding(key.WithKeys("right", "l", " ")),
}
