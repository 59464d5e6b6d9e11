package escrow

import "github.com/charmbracelet/lipgloss"

// Styles is shared with the interactive UI so both surfaces look alike.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	Note       lipgloss.Style
	Action     lipgloss.Style
	Warning    lipgloss.Style
	Section    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Muted:      lipgloss.NewStyle().Faint(true),
		Note:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Action:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		Warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Section:    lipgloss.NewStyle().MarginTop(1),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
