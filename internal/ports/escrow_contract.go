package ports

import (
	"context"
	"math/big"

	"github.com/bnema/contractlock-cli/internal/domain"
)

// Transaction is a submitted transaction awaiting inclusion.
type Transaction interface {
	Hash() string
	Wait(ctx context.Context) (domain.Receipt, error)
}

type EscrowContract interface {
	CreateEscrow(ctx context.Context, req domain.CreateEscrowRequest) (Transaction, error)
	GetUserEscrows(ctx context.Context, account domain.Address) ([]domain.EscrowID, error)
	GetEscrowDetails(ctx context.Context, id domain.EscrowID) (domain.EscrowDetails, error)
	AllPaid(ctx context.Context, id domain.EscrowID) (bool, error)
	DepositedOf(ctx context.Context, id domain.EscrowID, account domain.Address) (*big.Int, error)
	Pay(ctx context.Context, id domain.EscrowID, value *big.Int) (Transaction, error)
	WithdrawRefund(ctx context.Context, id domain.EscrowID) (Transaction, error)
	ClaimBeneficiary(ctx context.Context, id domain.EscrowID) (Transaction, error)
}
