package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding

	Pay      key.Binding
	Withdraw key.Binding
	Claim    key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	Confirm key.Binding
	Reject  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "change role"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Pay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pay"),
		),
		Withdraw: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "withdraw"),
		),
		Claim: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "claim"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "create escrow"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Reject: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "reject"),
		),
	}
}

// bindings adapts a fixed binding list to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func (m Model) helpBindings() bindings {
	k := m.keys
	switch {
	case m.pending != nil:
		return bindings{k.Confirm, k.Reject}
	case m.blocked:
		return bindings{k.Quit}
	}

	switch m.screen {
	case screenConnect:
		return bindings{withHelp(k.Enter, "connect wallet"), k.Quit}
	case screenRole:
		return bindings{k.Up, k.Down, k.Enter, k.Quit}
	case screenCreator:
		return bindings{k.NextField, k.PrevField, k.Submit, k.Back}
	case screenPayer:
		return bindings{k.Up, k.Down, withHelp(k.Enter, "open"), k.Refresh, k.Pay, k.Withdraw, k.Claim, k.Back, k.Quit}
	default:
		return bindings{k.Quit}
	}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
