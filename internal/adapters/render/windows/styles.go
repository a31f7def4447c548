package windows

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	name    lipgloss.Style
	detail  lipgloss.Style
	faint   lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	states  map[string]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		states: map[string]lipgloss.Style{
			"unversioned": lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			"added":       lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			"modified":    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			"deleted":     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			"conflicted":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			"missing":     lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
			"replaced":    lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
		},
	}
}

func (s styles) state(name string) lipgloss.Style {
	if style, ok := s.states[name]; ok {
		return style
	}
	return s.detail
}
