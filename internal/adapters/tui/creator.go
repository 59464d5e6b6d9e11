package tui

import (
	"fmt"

	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldBeneficiary = iota
	fieldPayers
	fieldAmount
	fieldDeadline
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldBeneficiary: "Beneficiary address",
	fieldPayers:      "Payer addresses (comma separated)",
	fieldAmount:      "Amount per payer (ETH)",
	fieldDeadline:    "Deadline (local time)",
}

func newCreatorInputs() []textinput.Model {
	placeholders := [fieldCount]string{
		fieldBeneficiary: "0x…",
		fieldPayers:      "0x…, 0x…",
		fieldAmount:      "0.1",
		fieldDeadline:    "2006-01-02T15:04",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.Width = 64
		inputs[i] = ti
	}
	inputs[fieldBeneficiary].Focus()

	return inputs
}

func (m Model) creatorForm() application.CreateEscrowForm {
	return application.CreateEscrowForm{
		Beneficiary:    m.inputs[fieldBeneficiary].Value(),
		Payers:         m.inputs[fieldPayers].Value(),
		AmountPerPayer: m.inputs[fieldAmount].Value(),
		Deadline:       m.inputs[fieldDeadline].Value(),
	}
}

func (m Model) handleCreatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.backToRoles(), nil
	case key.Matches(msg, m.keys.Submit):
		return m.requestCreate(), nil
	case key.Matches(msg, m.keys.Enter):
		if m.focus == fieldCount-1 {
			return m.requestCreate(), nil
		}
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m, m.inputs[m.focus].Focus()
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// requestCreate parses the form up front so the confirmation can show the
// decoded values. The creator form parses again on submit.
func (m Model) requestCreate() Model {
	form := m.creatorForm()
	request, err := application.ParseCreateEscrowForm(form, m.deps.Location)
	if err != nil {
		m.notice = failure("Cannot create escrow: %v", err)
		return m
	}

	m.notice = nil
	m.pending = &confirmation{
		prompt: fmt.Sprintf(
			"Create an escrow for %d payer(s) paying %s ETH each to %s, deadline %s?",
			len(request.Payers),
			domain.FormatEther(request.AmountPerPayer),
			request.Beneficiary.Short(),
			request.Deadline.In(m.deps.Location).Format("2006-01-02 15:04"),
		),
		label: "Creating escrow...",
		run:   m.createCmd(form),
	}
	return m
}

func (m Model) createCmd(form application.CreateEscrowForm) tea.Cmd {
	ctx, creator := m.ctx, m.creator
	return func() tea.Msg {
		receipt, err := creator.Submit(ctx, form)
		return escrowCreatedMsg{receipt: receipt, err: err}
	}
}

func (m Model) handleEscrowCreated(msg escrowCreatedMsg) Model {
	m.busy = ""
	if msg.err != nil {
		m.notice = failure("Create escrow failed: %v", msg.err)
		return m
	}

	m.notice = &notice{
		kind: noticeSuccess,
		text: fmt.Sprintf("Escrow created in block %d (tx %s)", msg.receipt.BlockNumber, msg.receipt.TxHash),
	}
	return m
}
