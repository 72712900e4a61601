package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the app-level keyboard bindings. Screen-specific keys live
// with their views.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Dismiss   key.Binding
	Escape    key.Binding
	Debug     key.Binding
	Book      key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "dismiss"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug log"),
		),
		Book: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "book"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
	}
}
