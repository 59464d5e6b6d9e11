package ports

import (
	"context"

	"github.com/bnema/contractlock-cli/internal/domain"
)

// Signer authorizes transactions for a single account.
type Signer interface {
	Address() domain.Address
}

type Wallet interface {
	RequestAccounts(ctx context.Context) ([]domain.Address, error)
	GetNetwork(ctx context.Context) (domain.Network, error)
	GetSigner(ctx context.Context) (Signer, error)
}

// ContractDialer binds an escrow contract handle at address to signer.
type ContractDialer interface {
	Dial(ctx context.Context, address domain.Address, signer Signer) (EscrowContract, error)
}

type WalletProfileRepository interface {
	GetByName(ctx context.Context, name string) (domain.WalletProfile, error)
	List(ctx context.Context) ([]domain.WalletProfile, error)
	Save(ctx context.Context, profile domain.WalletProfile) error
	Delete(ctx context.Context, name string) error
}

// KeyManager validates imported account keys and creates new ones. Keys are
// exchanged as hex strings so they can go to a SecretStore unchanged.
type KeyManager interface {
	Parse(raw string) (domain.Address, string, error)
	Generate() (domain.Address, string, error)
}
