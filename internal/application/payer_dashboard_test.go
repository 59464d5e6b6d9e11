package application

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var (
	dashboardNow   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	payerAccount   = domain.Address("0x1111111111111111111111111111111111111111")
	beneficiaryRaw = domain.Address("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01")
)

func newDashboard(t *testing.T, account domain.Address) (*PayerDashboard, *mocks.MockEscrowContract) {
	t.Helper()

	contract := mocks.NewMockEscrowContract(t)
	dashboard := NewPayerDashboard(Session{Account: account, Contract: contract}, fixedClock{now: dashboardNow}, zerolog.Nop())

	return dashboard, contract
}

func expectSnapshot(contract *mocks.MockEscrowContract, id domain.EscrowID, account domain.Address, details domain.EscrowDetails, allPaid bool, deposit int64) {
	contract.EXPECT().GetEscrowDetails(mockAnyContext(), id).Return(details, nil).Once()
	contract.EXPECT().AllPaid(mockAnyContext(), id).Return(allPaid, nil).Once()
	contract.EXPECT().DepositedOf(mockAnyContext(), id, account).Return(big.NewInt(deposit), nil).Once()
}

func openDetails(deadline time.Time) domain.EscrowDetails {
	return domain.EscrowDetails{
		Beneficiary:    beneficiaryRaw,
		AmountPerPayer: big.NewInt(5),
		Deadline:       deadline,
	}
}

func TestPayerDashboardListEscrowsKeepsPreviousListOnFailure(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)

	contract.EXPECT().GetUserEscrows(mockAnyContext(), payerAccount).Return([]domain.EscrowID{"3", "1", "2"}, nil).Once()
	ids, err := dashboard.ListEscrows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.EscrowID{"3", "1", "2"}, ids)

	readErr := errors.New("rpc timeout")
	contract.EXPECT().GetUserEscrows(mockAnyContext(), payerAccount).Return(nil, readErr).Once()
	ids, err = dashboard.ListEscrows(context.Background())
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, []domain.EscrowID{"3", "1", "2"}, ids)
	assert.Equal(t, []domain.EscrowID{"3", "1", "2"}, dashboard.Escrows())
}

func TestPayerDashboardSelectEscrowPerformsThreeReads(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	expectSnapshot(contract, "7", payerAccount, openDetails(dashboardNow.Add(time.Hour)), false, 0)

	snapshot, err := dashboard.SelectEscrow(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowID("7"), snapshot.ID)
	assert.Equal(t, dashboardNow, snapshot.FetchedAt)

	selected, ok := dashboard.Selection()
	require.True(t, ok)
	assert.Equal(t, snapshot, selected)

	contract.AssertNumberOfCalls(t, "GetEscrowDetails", 1)
	contract.AssertNumberOfCalls(t, "AllPaid", 1)
	contract.AssertNumberOfCalls(t, "DepositedOf", 1)
}

func TestPayerDashboardFailedReadKeepsPreviousSnapshot(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	expectSnapshot(contract, "1", payerAccount, openDetails(dashboardNow.Add(time.Hour)), false, 0)

	first, err := dashboard.SelectEscrow(context.Background(), "1")
	require.NoError(t, err)

	readErr := errors.New("execution reverted")
	contract.EXPECT().GetEscrowDetails(mockAnyContext(), domain.EscrowID("2")).Return(openDetails(dashboardNow), nil).Once()
	contract.EXPECT().AllPaid(mockAnyContext(), domain.EscrowID("2")).Return(true, nil).Once()
	contract.EXPECT().DepositedOf(mockAnyContext(), domain.EscrowID("2"), payerAccount).Return(nil, readErr).Once()

	_, err = dashboard.SelectEscrow(context.Background(), "2")
	require.ErrorIs(t, err, readErr)

	current, ok := dashboard.Selection()
	require.True(t, ok)
	assert.Equal(t, first, current)
	assert.Equal(t, domain.Actions{Pay: true}, dashboard.Actions())
}

func TestPayerDashboardActionsFollowTheClock(t *testing.T) {
	contract := mocks.NewMockEscrowContract(t)
	clock := mocks.NewMockClock(t)
	dashboard := NewPayerDashboard(Session{Account: payerAccount, Contract: contract}, clock, zerolog.Nop())
	deadline := dashboardNow.Add(time.Minute)

	clock.EXPECT().Now().Return(dashboardNow).Times(2)
	clock.EXPECT().Now().Return(deadline).Once()
	expectSnapshot(contract, "9", payerAccount, openDetails(deadline), false, 0)

	snapshot, err := dashboard.SelectEscrow(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, dashboardNow, snapshot.FetchedAt)
	assert.Equal(t, domain.Actions{Pay: true}, dashboard.Actions())

	// Same snapshot, deadline reached: pay disappears without a re-read.
	assert.Equal(t, domain.Actions{}, dashboard.Actions())
}

func TestPayerDashboardPayScenario(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	tx := mocks.NewMockTransaction(t)
	details := openDetails(dashboardNow.Add(24 * time.Hour))

	expectSnapshot(contract, "4", payerAccount, details, false, 0)
	_, err := dashboard.SelectEscrow(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, domain.Actions{Pay: true}, dashboard.Actions())

	contract.EXPECT().Pay(mockAnyContext(), domain.EscrowID("4"), big.NewInt(5)).Return(tx, nil).Once()
	tx.EXPECT().Hash().Return("0xpay")
	tx.EXPECT().Wait(mockAnyContext()).Return(domain.Receipt{TxHash: "0xpay", Status: domain.ReceiptStatusSuccess}, nil).Once()
	expectSnapshot(contract, "4", payerAccount, details, false, 5)

	receipt, err := dashboard.Pay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xpay", receipt.TxHash)

	assert.Equal(t, domain.Actions{}, dashboard.Actions())
	assert.Equal(t, []string{"You have already paid."}, dashboard.StatusNotes())
}

func TestPayerDashboardWithdrawScenario(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	tx := mocks.NewMockTransaction(t)
	details := openDetails(dashboardNow.Add(-24 * time.Hour))

	expectSnapshot(contract, "9", payerAccount, details, false, 5)
	_, err := dashboard.SelectEscrow(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, domain.Actions{Withdraw: true}, dashboard.Actions())

	contract.EXPECT().WithdrawRefund(mockAnyContext(), domain.EscrowID("9")).Return(tx, nil).Once()
	tx.EXPECT().Hash().Return("0xrefund")
	tx.EXPECT().Wait(mockAnyContext()).Return(domain.Receipt{TxHash: "0xrefund"}, nil).Once()
	expectSnapshot(contract, "9", payerAccount, details, false, 0)

	_, err = dashboard.Do(context.Background(), PayerActionWithdraw)
	require.NoError(t, err)
	assert.Equal(t, []string{"You have withdrawn your funds."}, dashboard.StatusNotes())
}

func TestPayerDashboardClaimScenarioComparesAddressesCaseInsensitively(t *testing.T) {
	caller := domain.Address("0xabcdef0123456789abcdef0123456789abcdef01")
	dashboard, contract := newDashboard(t, caller)
	tx := mocks.NewMockTransaction(t)
	details := openDetails(dashboardNow.Add(24 * time.Hour))

	expectSnapshot(contract, "2", caller, details, true, 0)
	_, err := dashboard.SelectEscrow(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, domain.Actions{Claim: true}, dashboard.Actions())

	claimed := details
	claimed.BeneficiaryClaimed = true
	contract.EXPECT().ClaimBeneficiary(mockAnyContext(), domain.EscrowID("2")).Return(tx, nil).Once()
	tx.EXPECT().Hash().Return("0xclaim")
	tx.EXPECT().Wait(mockAnyContext()).Return(domain.Receipt{TxHash: "0xclaim"}, nil).Once()
	expectSnapshot(contract, "2", caller, claimed, true, 0)

	_, err = dashboard.Claim(context.Background())
	require.NoError(t, err)
	assert.Contains(t, dashboard.StatusNotes(), "You have already claimed.")
}

func TestPayerActionAllowedMapsEachGuard(t *testing.T) {
	tests := []struct {
		action  PayerAction
		actions domain.Actions
	}{
		{action: PayerActionPay, actions: domain.Actions{Pay: true}},
		{action: PayerActionWithdraw, actions: domain.Actions{Withdraw: true}},
		{action: PayerActionClaim, actions: domain.Actions{Claim: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.True(t, tt.action.Allowed(tt.actions))
			assert.False(t, tt.action.Allowed(domain.Actions{}))
			for _, other := range tests {
				if other.action != tt.action {
					assert.False(t, tt.action.Allowed(other.actions), string(other.action))
				}
			}
		})
	}

	assert.False(t, PayerAction("refund").Allowed(domain.Actions{Pay: true, Withdraw: true, Claim: true}))
}

func TestPayerDashboardGuardsBlockUnavailableActions(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)

	_, err := dashboard.Pay(context.Background())
	require.ErrorIs(t, err, domain.ErrNoEscrowSelected)

	expectSnapshot(contract, "5", payerAccount, openDetails(dashboardNow.Add(time.Hour)), false, 5)
	_, err = dashboard.SelectEscrow(context.Background(), "5")
	require.NoError(t, err)

	for _, action := range []PayerAction{PayerActionPay, PayerActionWithdraw, PayerActionClaim} {
		_, err := dashboard.Do(context.Background(), action)
		require.ErrorIs(t, err, domain.ErrActionUnavailable, string(action))
	}

	contract.AssertNotCalled(t, "Pay")
	contract.AssertNotCalled(t, "WithdrawRefund")
	contract.AssertNotCalled(t, "ClaimBeneficiary")
}

func TestPayerDashboardRevertedPaymentKeepsSnapshot(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	tx := mocks.NewMockTransaction(t)

	expectSnapshot(contract, "4", payerAccount, openDetails(dashboardNow.Add(time.Hour)), false, 0)
	before, err := dashboard.SelectEscrow(context.Background(), "4")
	require.NoError(t, err)

	contract.EXPECT().Pay(mockAnyContext(), domain.EscrowID("4"), big.NewInt(5)).Return(tx, nil).Once()
	tx.EXPECT().Hash().Return("0xpay")
	tx.EXPECT().Wait(mockAnyContext()).Return(domain.Receipt{}, domain.ErrTransactionReverted).Once()

	_, err = dashboard.Pay(context.Background())
	require.ErrorIs(t, err, domain.ErrTransactionReverted)

	after, ok := dashboard.Selection()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestPayerDashboardRefreshFailureStillReportsReceipt(t *testing.T) {
	dashboard, contract := newDashboard(t, payerAccount)
	tx := mocks.NewMockTransaction(t)

	expectSnapshot(contract, "4", payerAccount, openDetails(dashboardNow.Add(time.Hour)), false, 0)
	_, err := dashboard.SelectEscrow(context.Background(), "4")
	require.NoError(t, err)

	contract.EXPECT().Pay(mockAnyContext(), domain.EscrowID("4"), big.NewInt(5)).Return(tx, nil).Once()
	tx.EXPECT().Hash().Return("0xpay")
	tx.EXPECT().Wait(mockAnyContext()).Return(domain.Receipt{TxHash: "0xpay"}, nil).Once()
	contract.EXPECT().GetEscrowDetails(mockAnyContext(), domain.EscrowID("4")).Return(domain.EscrowDetails{}, errors.New("rpc down")).Once()

	receipt, err := dashboard.Pay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xpay", receipt.TxHash)
}
