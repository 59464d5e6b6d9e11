package tui

import (
	"fmt"
	"strings"

	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handlePayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.backToRoles(), nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.escrows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if len(m.escrows) == 0 {
			return m, nil
		}
		id := m.escrows[m.cursor]
		return m.startBusy("Loading escrow #"+id.String()+"...", m.selectEscrowCmd(id))
	case key.Matches(msg, m.keys.Refresh):
		return m.startBusy("Loading escrows...", m.listEscrowsCmd())
	case key.Matches(msg, m.keys.Pay):
		return m.requestAction(application.PayerActionPay), nil
	case key.Matches(msg, m.keys.Withdraw):
		return m.requestAction(application.PayerActionWithdraw), nil
	case key.Matches(msg, m.keys.Claim):
		return m.requestAction(application.PayerActionClaim), nil
	}

	return m, nil
}

// requestAction checks the same guards the dashboard enforces so a hidden
// action never reaches the confirmation prompt.
func (m Model) requestAction(action application.PayerAction) Model {
	if m.snapshot == nil {
		m.notice = failure("Select an escrow first: %v", domain.ErrNoEscrowSelected)
		return m
	}

	snapshot := *m.snapshot
	actions := domain.AvailableActions(m.deps.Clock.Now(), snapshot, m.session.Account)
	if !action.Allowed(actions) {
		m.notice = failure("Cannot %s escrow #%s: %v", action, snapshot.ID, domain.ErrActionUnavailable)
		return m
	}

	m.notice = nil
	m.pending = &confirmation{
		prompt: action.Prompt(snapshot),
		label:  fmt.Sprintf("Waiting for %s transaction...", action),
		run:    m.actionCmd(action),
	}
	return m
}

func (m Model) listEscrowsCmd() tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		ids, err := dashboard.ListEscrows(ctx)
		return escrowsLoadedMsg{ids: ids, err: err}
	}
}

func (m Model) selectEscrowCmd(id domain.EscrowID) tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		snapshot, err := dashboard.SelectEscrow(ctx, id)
		return snapshotLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m Model) actionCmd(action application.PayerAction) tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		receipt, err := dashboard.Do(ctx, action)
		msg := actionDoneMsg{action: action, receipt: receipt, err: err}
		if snapshot, ok := dashboard.Selection(); ok {
			msg.snapshot = &snapshot
		}
		return msg
	}
}

func (m Model) handleEscrowsLoaded(msg escrowsLoadedMsg) Model {
	m.busy = ""
	if msg.err != nil {
		m.notice = failure("Could not load escrows: %v", msg.err)
		return m
	}

	m.escrows = msg.ids
	if m.cursor >= len(m.escrows) {
		m.cursor = max(0, len(m.escrows)-1)
	}
	return m
}

func (m Model) handleSnapshotLoaded(msg snapshotLoadedMsg) Model {
	m.busy = ""
	if msg.err != nil {
		m.notice = failure("Could not load escrow: %v", msg.err)
		return m
	}

	snapshot := msg.snapshot
	m.snapshot = &snapshot
	return m
}

func (m Model) handleActionDone(msg actionDoneMsg) Model {
	m.busy = ""
	if msg.snapshot != nil {
		m.snapshot = msg.snapshot
	}
	if msg.err != nil {
		m.notice = failure("%s failed: %v", capitalize(string(msg.action)), msg.err)
		return m
	}

	m.notice = &notice{
		kind: noticeSuccess,
		text: fmt.Sprintf("%s confirmed in block %d (tx %s)", capitalize(string(msg.action)), msg.receipt.BlockNumber, msg.receipt.TxHash),
	}
	return m
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
