package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	passstore "github.com/bnema/contractlock-cli/internal/adapters/secrets/pass"
	"github.com/bnema/contractlock-cli/internal/domain"
	portmocks "github.com/bnema/contractlock-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const walletKeyRef = "contractlock/wallets/main/private_key"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback, zerolog.Nop())
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t), zerolog.Nop())
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil, zerolog.Nop())
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, walletKeyRef).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), walletKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPassIsUnavailable(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, walletKeyRef).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, walletKeyRef).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), walletKeyRef)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundWhenNeitherBackendHasTheKey(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, walletKeyRef).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, walletKeyRef).Return("", fmt.Errorf("key: %w", domain.ErrSecretNotFound)).Once()

	_, err := store.Get(context.Background(), walletKeyRef)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.NotContains(t, err.Error(), "primary backend")
}

func TestStoreGetCombinesUnrelatedFailures(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, walletKeyRef).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, walletKeyRef).Return("", errors.New("disk failed")).Once()

	_, err := store.Get(context.Background(), walletKeyRef)
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "disk failed")
}

func TestStoreSkipsFallbackOnContextErrors(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Put(mock.Anything, walletKeyRef, "0xabc").Return(context.DeadlineExceeded).Once()

	err := store.Put(context.Background(), walletKeyRef, "0xabc")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStorePutAndDeleteFallBack(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, walletKeyRef, "0xabc").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, walletKeyRef, "0xabc").Return(nil).Once()
	primary.EXPECT().Delete(mock.Anything, walletKeyRef).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, walletKeyRef).Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), walletKeyRef, "0xabc"))
	require.NoError(t, store.Delete(context.Background(), walletKeyRef))
}
