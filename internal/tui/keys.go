package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	next    key.Binding
	prev    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	refresh key.Binding
	add     key.Binding
	toggle  key.Binding
	copy    key.Binding
	login   key.Binding
	logout  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	next:    key.NewBinding(key.WithKeys("tab", "right", "l")),
	prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	add:     key.NewBinding(key.WithKeys("a")),
	toggle:  key.NewBinding(key.WithKeys("t", "d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	login:   key.NewBinding(key.WithKeys("s")),
	logout:  key.NewBinding(key.WithKeys("o")),
}
