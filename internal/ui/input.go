package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap collects the switcher's key bindings. Paging bindings are disabled
// up front when paging is off, so the footer help never advertises a binding
// that does nothing.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Prev     key.Binding
	Next     key.Binding
	Commit   key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

func NewKeyMap(paging bool) KeyMap {
	km := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("("),
			key.WithHelp("(", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys(")"),
			key.WithHelp(")", "next"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "switch"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.PageUp.SetEnabled(paging)
	km.PageDown.SetEnabled(paging)
	return km
}
