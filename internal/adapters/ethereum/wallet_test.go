package ethereum

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports/mocks"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWallet(t *testing.T, secretValue string, secretErr error) (*KeyWallet, *fakeBackend) {
	t.Helper()

	parsed, err := EscrowABI()
	require.NoError(t, err)
	backend := newFakeBackend(parsed)

	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, "contractlock/wallets/main/private_key").Return(secretValue, secretErr).Maybe()

	wallet := NewKeyWallet("http://127.0.0.1:8545", domain.WalletProfile{
		Name:      "main",
		SecretRef: "contractlock/wallets/main/private_key",
	}, store)
	wallet.dial = func(context.Context, string) (Backend, chainIDReader, error) {
		return backend, backend, nil
	}

	return wallet, backend
}

func TestKeyWalletExposesKeyAccountAndNetwork(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet, _ := newTestWallet(t, hexutil.Encode(crypto.FromECDSA(key))+"\n", nil)

	accounts, err := wallet.RequestAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].Equal(AddressOf(key)))

	network, err := wallet.GetNetwork(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Network{Name: "localhost", ChainID: 31337}, network)

	signer, err := wallet.GetSigner(context.Background())
	require.NoError(t, err)
	assert.True(t, signer.Address().Equal(accounts[0]))
}

func TestKeyWalletMissingKeyIsUnavailable(t *testing.T) {
	wallet, _ := newTestWallet(t, "", domain.ErrSecretNotFound)

	_, err := wallet.RequestAccounts(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestKeyWalletWithoutProfileIsUnavailable(t *testing.T) {
	wallet := NewKeyWallet("http://127.0.0.1:8545", domain.WalletProfile{}, nil)

	_, err := wallet.RequestAccounts(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestKeyWalletDialFailureIsUnavailable(t *testing.T) {
	wallet, _ := newTestWallet(t, "", nil)
	wallet.dial = func(context.Context, string) (Backend, chainIDReader, error) {
		return nil, nil, errors.New("connection refused")
	}

	_, err := wallet.GetNetwork(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestParsePrivateKeyAcceptsPrefixedHex(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	encoded := hexutil.Encode(crypto.FromECDSA(key))

	withPrefix, err := ParsePrivateKey("  " + encoded + "  ")
	require.NoError(t, err)
	withoutPrefix, err := ParsePrivateKey(encoded[2:])
	require.NoError(t, err)

	assert.Equal(t, AddressOf(key), AddressOf(withPrefix))
	assert.Equal(t, AddressOf(key), AddressOf(withoutPrefix))

	_, err = ParsePrivateKey("")
	require.Error(t, err)
	_, err = ParsePrivateKey("not-a-key")
	require.Error(t, err)
}

func TestDialerBindsEscrowOverWalletBackend(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet, _ := newTestWallet(t, hexutil.Encode(crypto.FromECDSA(key)), nil)

	signer, err := wallet.GetSigner(context.Background())
	require.NoError(t, err)

	contract, err := NewDialer(wallet).Dial(context.Background(), testContract, signer)
	require.NoError(t, err)
	assert.NotNil(t, contract)

	_, err = NewDialer(wallet).Dial(context.Background(), "not-an-address", signer)
	require.ErrorIs(t, err, domain.ErrInvalidAddress)

	_, err = NewDialer(wallet).Dial(context.Background(), testContract, mocks.NewMockSigner(t))
	require.Error(t, err)
}

func TestNetworkForUnknownChain(t *testing.T) {
	assert.Equal(t, domain.Network{Name: "sepolia", ChainID: 11155111}, networkFor(11155111))
	assert.Equal(t, domain.Network{Name: "unknown", ChainID: 999}, networkFor(999))
}
