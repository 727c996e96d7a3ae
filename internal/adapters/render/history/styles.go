package history

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	user       lipgloss.Style
	pattern    lipgloss.Style
	detail     lipgloss.Style
	completed  lipgloss.Style
	terminated lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		pattern:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		completed:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		terminated: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
