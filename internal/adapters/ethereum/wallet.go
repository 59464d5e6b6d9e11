package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Signer signs with a locally held key through bind.TransactOpts.
type Signer struct {
	opts *bind.TransactOpts
}

var _ ports.Signer = (*Signer)(nil)

func NewSigner(key *ecdsa.PrivateKey, chainID *big.Int) (*Signer, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("build keyed transactor: %w", err)
	}
	return &Signer{opts: opts}, nil
}

func (s *Signer) Address() domain.Address {
	return fromCommonAddress(s.opts.From)
}

func (s *Signer) transactOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	opts := *s.opts
	opts.Context = ctx
	opts.Value = value
	return &opts
}

type chainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

type dialFunc func(ctx context.Context, rawURL string) (Backend, chainIDReader, error)

// KeyWallet exposes one private key from the secret store as a wallet. The
// node connection is opened on first use.
type KeyWallet struct {
	rpcURL  string
	profile domain.WalletProfile
	secrets ports.SecretStore
	dial    dialFunc

	mu      sync.Mutex
	backend Backend
	chain   chainIDReader
	key     *ecdsa.PrivateKey
}

var _ ports.Wallet = (*KeyWallet)(nil)

func NewKeyWallet(rpcURL string, profile domain.WalletProfile, secrets ports.SecretStore) *KeyWallet {
	return &KeyWallet{
		rpcURL:  rpcURL,
		profile: profile,
		secrets: secrets,
		dial:    dialEthclient,
	}
}

func dialEthclient(ctx context.Context, rawURL string) (Backend, chainIDReader, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client, nil
}

func (w *KeyWallet) RequestAccounts(ctx context.Context) ([]domain.Address, error) {
	key, err := w.privateKey(ctx)
	if err != nil {
		return nil, err
	}

	return []domain.Address{fromCommonAddress(crypto.PubkeyToAddress(key.PublicKey))}, nil
}

func (w *KeyWallet) GetNetwork(ctx context.Context) (domain.Network, error) {
	chainID, err := w.chainID(ctx)
	if err != nil {
		return domain.Network{}, err
	}

	return networkFor(chainID.Uint64()), nil
}

func (w *KeyWallet) GetSigner(ctx context.Context) (ports.Signer, error) {
	key, err := w.privateKey(ctx)
	if err != nil {
		return nil, err
	}

	chainID, err := w.chainID(ctx)
	if err != nil {
		return nil, err
	}

	return NewSigner(key, chainID)
}

// Backend returns the node connection, dialing it if needed.
func (w *KeyWallet) Backend(ctx context.Context) (Backend, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.backend != nil {
		return w.backend, nil
	}

	if strings.TrimSpace(w.rpcURL) == "" {
		return nil, fmt.Errorf("%w: rpc url is empty", domain.ErrWalletUnavailable)
	}

	backend, chain, err := w.dial(ctx, w.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", domain.ErrWalletUnavailable, w.rpcURL, err)
	}

	w.backend = backend
	w.chain = chain

	return backend, nil
}

func (w *KeyWallet) chainID(ctx context.Context) (*big.Int, error) {
	if _, err := w.Backend(ctx); err != nil {
		return nil, err
	}

	chainID, err := w.chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read chain id: %w", err)
	}

	return chainID, nil
}

func (w *KeyWallet) privateKey(ctx context.Context) (*ecdsa.PrivateKey, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.key != nil {
		return w.key, nil
	}

	if w.secrets == nil || w.profile.SecretRef == "" {
		return nil, fmt.Errorf("%w: no wallet profile configured", domain.ErrWalletUnavailable)
	}

	raw, err := w.secrets.Get(ctx, w.profile.SecretRef)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load key for wallet %q: %v", domain.ErrWalletUnavailable, w.profile.Name, err)
	}

	key, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: wallet %q: %v", domain.ErrWalletUnavailable, w.profile.Name, err)
	}

	w.key = key
	return key, nil
}

// ParsePrivateKey accepts a hex secp256k1 key with or without a 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	if trimmed == "" {
		return nil, errors.New("private key is empty")
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}

	return key, nil
}

// AddressOf derives the account address for a parsed key.
func AddressOf(key *ecdsa.PrivateKey) domain.Address {
	return fromCommonAddress(crypto.PubkeyToAddress(key.PublicKey))
}

// BackendSource hands out the node connection shared with the wallet.
type BackendSource interface {
	Backend(ctx context.Context) (Backend, error)
}

// Dialer binds Escrow handles over the wallet's node connection.
type Dialer struct {
	source BackendSource
}

var _ ports.ContractDialer = (*Dialer)(nil)

func NewDialer(source BackendSource) *Dialer {
	return &Dialer{source: source}
}

func (d *Dialer) Dial(ctx context.Context, address domain.Address, signer ports.Signer) (ports.EscrowContract, error) {
	keyed, ok := signer.(*Signer)
	if !ok {
		return nil, fmt.Errorf("unsupported signer %T", signer)
	}

	backend, err := d.source.Backend(ctx)
	if err != nil {
		return nil, err
	}

	return NewEscrow(address, backend, keyed)
}
