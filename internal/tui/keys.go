package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	chat       key.Binding
	knowledge  key.Binding
	buildInfo  key.Binding
	newSession key.Binding
	copy       key.Binding
	search     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	reload     key.Binding
	save       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	pageUp:     key.NewBinding(key.WithKeys("pgup")),
	pageDown:   key.NewBinding(key.WithKeys("pgdown")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	chat:       key.NewBinding(key.WithKeys("f1")),
	knowledge:  key.NewBinding(key.WithKeys("f2")),
	buildInfo:  key.NewBinding(key.WithKeys("f10")),
	newSession: key.NewBinding(key.WithKeys("ctrl+n")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	search:     key.NewBinding(key.WithKeys("/")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	reload:     key.NewBinding(key.WithKeys("r")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
