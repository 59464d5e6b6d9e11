package tui

import (
	"github.com/bnema/contractlock-cli/internal/adapters/render/escrow"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	escrow.Styles

	App       lipgloss.Style
	Banner    lipgloss.Style
	Option    lipgloss.Style
	Cursor    lipgloss.Style
	Field     lipgloss.Style
	Focused   lipgloss.Style
	Hint      lipgloss.Style
	Prompt    lipgloss.Style
	Busy      lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Blocking  lipgloss.Style
	HelpStyle lipgloss.Style
}

func newStyles() styles {
	return styles{
		Styles:    escrow.NewStyles(),
		App:       lipgloss.NewStyle().Padding(1, 2),
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		Option:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Field:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Hint:      lipgloss.NewStyle().Faint(true),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Busy:      lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Blocking:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1),
		HelpStyle: lipgloss.NewStyle().MarginTop(1),
	}
}
