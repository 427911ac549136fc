package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the console key bindings.
type KeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings: space or p to pause
// ventilation, q or ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
