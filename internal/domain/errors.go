package domain

import "errors"

var (
	ErrWalletUnavailable   = errors.New("wallet unavailable")
	ErrUserRejected        = errors.New("user rejected request")
	ErrNotConnected        = errors.New("wallet not connected")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDeadline     = errors.New("invalid deadline")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidEscrowID     = errors.New("invalid escrow id")
	ErrNoEscrowSelected    = errors.New("no escrow selected")
	ErrActionUnavailable   = errors.New("action not available for this escrow")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrWalletNotFound      = errors.New("wallet profile not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrInvalidWalletName   = errors.New("invalid wallet name")
	ErrWalletExists        = errors.New("wallet profile already exists")
)
