package tui

import (
	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
)

type connectedMsg struct {
	session application.Session
	err     error
}

type escrowsLoadedMsg struct {
	ids []domain.EscrowID
	err error
}

type snapshotLoadedMsg struct {
	snapshot domain.EscrowSnapshot
	err      error
}

type escrowCreatedMsg struct {
	receipt domain.Receipt
	err     error
}

type actionDoneMsg struct {
	action   application.PayerAction
	receipt  domain.Receipt
	snapshot *domain.EscrowSnapshot
	err      error
}
