package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the calendar view's controls.
type KeyMap struct {
	EditDate key.Binding
	Query    key.Binding
	Platform key.Binding
	NewOnly  key.Binding
	Export   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		EditDate: key.NewBinding(
			key.WithKeys("d", "/"),
			key.WithHelp("d", "edit date"),
		),
		Query: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "query"),
		),
		Platform: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p", "platform"),
		),
		NewOnly: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new only"),
		),
		Export: key.NewBinding(
			key.WithKeys("c", "e"),
			key.WithHelp("c", "copy json"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
