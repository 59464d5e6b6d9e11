package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type screen int

const (
	screenConnect screen = iota
	screenRole
	screenCreator
	screenPayer
)

var roleOptions = []domain.Role{domain.RoleCreator, domain.RolePayer}

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeFailure
)

type notice struct {
	kind noticeKind
	text string
}

// confirmation stands in for the wallet's approval dialog. Rejecting it is
// reported as domain.ErrUserRejected.
type confirmation struct {
	prompt string
	label  string
	run    tea.Cmd
}

type Deps struct {
	Controller *application.SessionController
	Clock      ports.Clock
	Location   *time.Location
	Logger     zerolog.Logger
}

type Model struct {
	ctx     context.Context
	deps    Deps
	keys    KeyMap
	styles  styles
	help    help.Model
	spinner spinner.Model

	screen     screen
	session    application.Session
	roleCursor int

	busy    string
	blocked bool
	notice  *notice
	pending *confirmation

	creator *application.CreatorForm
	inputs  []textinput.Model
	focus   int

	dashboard *application.PayerDashboard
	escrows   []domain.EscrowID
	cursor    int
	snapshot  *domain.EscrowSnapshot
}

func NewModel(ctx context.Context, deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}

	return Model{
		ctx:    ctx,
		deps:   deps,
		keys:   DefaultKeyMap(),
		styles: newStyles(),
		help:   help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		screen: screenConnect,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case connectedMsg:
		return m.handleConnected(msg), nil
	case escrowsLoadedMsg:
		return m.handleEscrowsLoaded(msg), nil
	case snapshotLoadedMsg:
		return m.handleSnapshotLoaded(msg), nil
	case escrowCreatedMsg:
		return m.handleEscrowCreated(msg), nil
	case actionDoneMsg:
		return m.handleActionDone(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenCreator {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.blocked {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.busy != "" {
		return m, nil
	}
	if m.pending != nil {
		return m.handleConfirmKey(msg)
	}

	switch m.screen {
	case screenConnect:
		return m.handleConnectKey(msg)
	case screenRole:
		return m.handleRoleKey(msg)
	case screenCreator:
		return m.handleCreatorKey(msg)
	case screenPayer:
		return m.handlePayerKey(msg)
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		pending := m.pending
		m.pending = nil
		return m.startBusy(pending.label, pending.run)
	case key.Matches(msg, m.keys.Reject):
		m.deps.Logger.Info().Err(domain.ErrUserRejected).Str("request", m.pending.label).Msg("request rejected")
		m.pending = nil
		m.notice = &notice{kind: noticeFailure, text: "Request rejected: " + domain.ErrUserRejected.Error()}
	}

	return m, nil
}

func (m Model) handleConnectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		return m.startBusy("Connecting wallet...", m.connectCmd())
	}

	return m, nil
}

func (m Model) handleConnected(msg connectedMsg) Model {
	m.busy = ""
	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrWalletUnavailable) {
			m.blocked = true
			m.notice = &notice{
				kind: noticeFailure,
				text: "No wallet is available. Import a key with `cl wallet import`, then restart.\n" + msg.err.Error(),
			}
			return m
		}

		m.notice = &notice{kind: noticeFailure, text: "Wallet connection failed: " + msg.err.Error()}
		return m
	}

	m.session = msg.session
	m.screen = screenRole
	m.notice = &notice{kind: noticeSuccess, text: "Connected as " + msg.session.Account.String()}
	return m
}

func (m Model) handleRoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.roleCursor < len(roleOptions)-1 {
			m.roleCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		return m.enterRole(roleOptions[m.roleCursor])
	}

	return m, nil
}

func (m Model) enterRole(role domain.Role) (tea.Model, tea.Cmd) {
	if err := m.deps.Controller.SelectRole(role); err != nil {
		m.notice = &notice{kind: noticeFailure, text: err.Error()}
		return m, nil
	}
	m.notice = nil

	switch role {
	case domain.RoleCreator:
		m.creator = application.NewCreatorForm(m.session, m.deps.Location, m.deps.Logger)
		m.inputs = newCreatorInputs()
		m.focus = 0
		m.screen = screenCreator
		return m, textinput.Blink
	case domain.RolePayer:
		m.dashboard = application.NewPayerDashboard(m.session, m.deps.Clock, m.deps.Logger)
		m.escrows = nil
		m.cursor = 0
		m.snapshot = nil
		m.screen = screenPayer
		return m.startBusy("Loading escrows...", m.listEscrowsCmd())
	}

	return m, nil
}

func (m Model) backToRoles() Model {
	m.deps.Controller.ClearRole()
	m.screen = screenRole
	m.notice = nil
	m.pending = nil
	return m
}

func (m Model) startBusy(label string, work tea.Cmd) (Model, tea.Cmd) {
	m.busy = label
	m.notice = nil
	return m, tea.Batch(m.spinner.Tick, work)
}

func (m Model) connectCmd() tea.Cmd {
	ctx, controller := m.ctx, m.deps.Controller
	return func() tea.Msg {
		session, err := controller.Connect(ctx)
		return connectedMsg{session: session, err: err}
	}
}

func failure(format string, args ...any) *notice {
	return &notice{kind: noticeFailure, text: fmt.Sprintf(format, args...)}
}
