package tui

import (
	"strings"

	"github.com/bnema/contractlock-cli/internal/adapters/render/escrow"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	s := m.styles
	sections := []string{s.Banner.Render("ContractLock")}

	if m.session.Account != "" {
		sections = append(sections, s.Header.Render(
			"account: "+m.session.Account.String()+"  network: "+m.session.Network.String(),
		))
	}

	switch m.screen {
	case screenConnect:
		sections = append(sections, s.Section.Render(m.connectView()))
	case screenRole:
		sections = append(sections, s.Section.Render(m.roleView()))
	case screenCreator:
		sections = append(sections, s.Section.Render(m.creatorView()))
	case screenPayer:
		sections = append(sections, s.Section.Render(m.payerView()))
	}

	if status := m.statusView(); status != "" {
		sections = append(sections, s.Section.Render(status))
	}

	sections = append(sections, s.HelpStyle.Render(m.help.View(m.helpBindings())))

	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) connectView() string {
	return m.styles.Option.Render("Connect your wallet to create or manage escrows.")
}

func (m Model) roleView() string {
	s := m.styles
	lines := []string{s.Title.Render("What do you want to do?")}
	for i, role := range roleOptions {
		label := "  " + roleLabel(role)
		if i == m.roleCursor {
			lines = append(lines, s.Cursor.Render("> "+roleLabel(role)))
			continue
		}
		lines = append(lines, s.Option.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func roleLabel(role domain.Role) string {
	switch role {
	case domain.RoleCreator:
		return "Create an escrow"
	case domain.RolePayer:
		return "Open the payer dashboard"
	default:
		return role.Label()
	}
}

func (m Model) creatorView() string {
	s := m.styles
	lines := []string{s.Title.Render("Create Escrow")}
	for i, input := range m.inputs {
		label := s.Field.Render(fieldLabels[i])
		if i == m.focus {
			label = s.Focused.Render(fieldLabels[i])
		}
		lines = append(lines, "", label, input.View())
	}
	lines = append(lines, "", s.Hint.Render("Payments use the native token. Deadline format: YYYY-MM-DDTHH:MM."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) payerView() string {
	escrows := m.escrows
	if escrows == nil {
		escrows = []domain.EscrowID{}
	}

	return escrow.View(escrow.Report{
		Title:   "Payer Dashboard",
		Escrows: escrows,
		Cursor:  m.cursor,
		Detail:  m.snapshot,
		Caller:  m.session.Account,
	}, escrow.RenderOptions{
		Now:      m.deps.Clock.Now(),
		Location: m.deps.Location,
		KeyHints: true,
	}, m.styles.Styles)
}

func (m Model) statusView() string {
	s := m.styles
	var parts []string

	if m.busy != "" {
		parts = append(parts, m.spinner.View()+" "+s.Busy.Render(m.busy))
	}
	if m.pending != nil {
		parts = append(parts, s.Prompt.Render(m.pending.prompt+" (y/n)"))
	}
	if m.notice != nil {
		text := m.notice.text
		switch {
		case m.blocked:
			parts = append(parts, s.Blocking.Render(s.Failure.Render(text)))
		case m.notice.kind == noticeFailure:
			parts = append(parts, s.Failure.Render(text))
		default:
			parts = append(parts, s.Success.Render(text))
		}
	}

	return strings.Join(parts, "\n")
}
