package garden

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cluster  lipgloss.Style
	detail   lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	key      lipgloss.Style
	meta     lipgloss.Style
	petal    lipgloss.Style
	lotus    lipgloss.Style
	overflow lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cluster:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		petal:    lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
		lotus:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		overflow: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
}
