package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testContractAddress = domain.Address("0x6c1890822B283F5f222E0c1dd507fFfd79d9885d")

func TestSessionControllerConnectBindsContractToSigner(t *testing.T) {
	wallet := mocks.NewMockWallet(t)
	dialer := mocks.NewMockContractDialer(t)
	signer := mocks.NewMockSigner(t)
	contract := mocks.NewMockEscrowContract(t)

	wallet.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.Address{"0xAAA", "0xBBB"}, nil)
	wallet.EXPECT().GetNetwork(mockAnyContext()).Return(domain.Network{Name: "sepolia", ChainID: 11155111}, nil)
	wallet.EXPECT().GetSigner(mockAnyContext()).Return(signer, nil)
	dialer.EXPECT().Dial(mockAnyContext(), testContractAddress, signer).Return(contract, nil)

	controller := NewSessionController(wallet, dialer, testContractAddress, zerolog.Nop())
	assert.Equal(t, domain.SessionDisconnected, controller.State())

	session, err := controller.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Address("0xAAA"), session.Account)
	assert.Equal(t, uint64(11155111), session.Network.ChainID)
	assert.Same(t, contract, session.Contract)
	assert.Equal(t, domain.SessionConnected, controller.State())

	again, err := controller.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, again)
}

func TestSessionControllerWithoutWalletIsUnavailable(t *testing.T) {
	controller := NewSessionController(nil, nil, testContractAddress, zerolog.Nop())

	_, err := controller.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
	assert.Equal(t, domain.SessionDisconnected, controller.State())

	_, ok := controller.Session()
	assert.False(t, ok)
}

func TestSessionControllerRejectedConnectionStaysDisconnected(t *testing.T) {
	wallet := mocks.NewMockWallet(t)
	dialer := mocks.NewMockContractDialer(t)
	wallet.EXPECT().RequestAccounts(mockAnyContext()).Return(nil, domain.ErrUserRejected)

	controller := NewSessionController(wallet, dialer, testContractAddress, zerolog.Nop())

	_, err := controller.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrUserRejected)
	assert.Equal(t, domain.SessionDisconnected, controller.State())
	require.ErrorIs(t, controller.SelectRole(domain.RolePayer), domain.ErrNotConnected)
}

func TestSessionControllerEmptyAccountListIsUnavailable(t *testing.T) {
	wallet := mocks.NewMockWallet(t)
	dialer := mocks.NewMockContractDialer(t)
	wallet.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.Address{}, nil)

	controller := NewSessionController(wallet, dialer, testContractAddress, zerolog.Nop())

	_, err := controller.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestSessionControllerDialFailureStaysDisconnected(t *testing.T) {
	wallet := mocks.NewMockWallet(t)
	dialer := mocks.NewMockContractDialer(t)
	signer := mocks.NewMockSigner(t)
	dialErr := errors.New("no code at address")

	wallet.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.Address{"0xAAA"}, nil)
	wallet.EXPECT().GetNetwork(mockAnyContext()).Return(domain.Network{Name: "localhost", ChainID: 31337}, nil)
	wallet.EXPECT().GetSigner(mockAnyContext()).Return(signer, nil)
	dialer.EXPECT().Dial(mockAnyContext(), testContractAddress, signer).Return(nil, dialErr)

	controller := NewSessionController(wallet, dialer, testContractAddress, zerolog.Nop())

	_, err := controller.Connect(context.Background())
	require.ErrorIs(t, err, dialErr)
	assert.Equal(t, domain.SessionDisconnected, controller.State())
}

func TestSessionControllerRoleCycle(t *testing.T) {
	controller := connectedController(t)

	require.ErrorIs(t, controller.SelectRole(domain.RoleNone), domain.ErrInvalidRole)

	for i := 0; i < 2; i++ {
		require.NoError(t, controller.SelectRole(domain.RoleCreator))
		assert.Equal(t, domain.SessionRoleSelected, controller.State())
		assert.Equal(t, domain.RoleCreator, controller.Role())

		controller.ClearRole()
		assert.Equal(t, domain.SessionConnected, controller.State())
		assert.Equal(t, domain.RoleNone, controller.Role())

		require.NoError(t, controller.SelectRole(domain.RolePayer))
		assert.Equal(t, domain.RolePayer, controller.Role())
		controller.ClearRole()
	}
}

func connectedController(t *testing.T) *SessionController {
	t.Helper()

	wallet := mocks.NewMockWallet(t)
	dialer := mocks.NewMockContractDialer(t)
	signer := mocks.NewMockSigner(t)
	contract := mocks.NewMockEscrowContract(t)

	wallet.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.Address{"0xAAA"}, nil)
	wallet.EXPECT().GetNetwork(mockAnyContext()).Return(domain.Network{Name: "localhost", ChainID: 31337}, nil)
	wallet.EXPECT().GetSigner(mockAnyContext()).Return(signer, nil)
	dialer.EXPECT().Dial(mockAnyContext(), mock.Anything, signer).Return(contract, nil)

	controller := NewSessionController(wallet, dialer, testContractAddress, zerolog.Nop())
	_, err := controller.Connect(context.Background())
	require.NoError(t, err)

	return controller
}

func mockAnyContext() interface{} {
	return mock.Anything
}
