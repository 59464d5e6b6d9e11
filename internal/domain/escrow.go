package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// EscrowID is the decimal form of the contract's uint256 escrow identifier.
type EscrowID string

func ParseEscrowID(raw string) (EscrowID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !isDigits(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEscrowID, raw)
	}

	value, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidEscrowID, raw)
	}

	return EscrowID(value.String()), nil
}

func EscrowIDFromBig(value *big.Int) EscrowID {
	if value == nil {
		return "0"
	}
	return EscrowID(value.String())
}

func (id EscrowID) String() string {
	return string(id)
}

func (id EscrowID) BigInt() (*big.Int, error) {
	value, ok := new(big.Int).SetString(string(id), 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEscrowID, string(id))
	}
	return value, nil
}

type EscrowDetails struct {
	Beneficiary        Address
	AmountPerPayer     *big.Int
	Deadline           time.Time
	BeneficiaryClaimed bool
}

// EscrowSnapshot is one consistent read of an escrow from the caller's point
// of view. It is replaced as a whole, never field by field.
type EscrowSnapshot struct {
	ID            EscrowID
	Details       EscrowDetails
	AllPaid       bool
	CallerDeposit *big.Int
	FetchedAt     time.Time
}

func (s EscrowSnapshot) BeneficiaryClaimed() bool {
	return s.Details.BeneficiaryClaimed
}

func (s EscrowSnapshot) depositSign() int {
	if s.CallerDeposit == nil {
		return 0
	}
	return s.CallerDeposit.Sign()
}

type CreateEscrowRequest struct {
	Beneficiary    Address
	Payers         []Address
	AmountPerPayer *big.Int
	Deadline       time.Time
	Token          Address
}

type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailed  ReceiptStatus = "failed"
)

type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
	Status      ReceiptStatus
}
