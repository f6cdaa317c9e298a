package tui

import "github.com/charmbracelet/bubbles/key"

// replKeys holds key bindings for the REPL.
type replKeys struct {
	Submit     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings for the help bar.
func (k replKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ScrollUp, k.ScrollDown, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k replKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit},
		{k.ScrollUp, k.ScrollDown, k.Quit},
	}
}

// ReplKeyMap returns the key bindings for the REPL.
func ReplKeyMap() replKeys {
	return replKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
