package tui

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles for the REPL. With color disabled
// every style is a plain pass-through.
type styles struct {
	Prompt   lipgloss.Style
	Echo     lipgloss.Style
	Contacts lipgloss.Style
	Empty    lipgloss.Style
}

// newStyles builds the REPL styles. Colors adapt to light and dark
// terminal backgrounds.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{Prompt: plain, Echo: plain, Contacts: plain, Empty: plain}
	}
	return styles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Contacts: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "5", Dark: "13"}),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
			Italic(true),
	}
}
