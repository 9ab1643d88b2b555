// Package styles centralizes the lipgloss styling for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the rendering styles used by the calendar view.
type Styles struct {
	Title    lipgloss.Style
	FilterOn lipgloss.Style
	Stats    lipgloss.Style
	Time     lipgloss.Style
	Event    lipgloss.Style
	Platform lipgloss.Style
	Stars    lipgloss.Style
	NewBadge lipgloss.Style
	Detail   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		FilterOn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Stats:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Event:    lipgloss.NewStyle().Bold(true),
		Platform: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Stars:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		NewBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
