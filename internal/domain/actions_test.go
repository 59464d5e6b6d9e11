package domain

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	testNow         = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testBeneficiary = Address("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01")
	testPayer       = Address("0x1111111111111111111111111111111111111111")
)

func snapshotAt(deadline time.Time, allPaid, claimed bool, deposit int64) EscrowSnapshot {
	return EscrowSnapshot{
		ID: "1",
		Details: EscrowDetails{
			Beneficiary:        testBeneficiary,
			AmountPerPayer:     big.NewInt(5),
			Deadline:           deadline,
			BeneficiaryClaimed: claimed,
		},
		AllPaid:       allPaid,
		CallerDeposit: big.NewInt(deposit),
	}
}

func TestShowPayBoundaryCombinations(t *testing.T) {
	for _, future := range []bool{true, false} {
		for _, deposited := range []bool{true, false} {
			for _, isBeneficiary := range []bool{true, false} {
				name := fmt.Sprintf("future=%t deposited=%t beneficiary=%t", future, deposited, isBeneficiary)
				t.Run(name, func(t *testing.T) {
					deadline := testNow.Add(-time.Hour)
					if future {
						deadline = testNow.Add(time.Hour)
					}
					var deposit int64
					if deposited {
						deposit = 5
					}
					caller := testPayer
					if isBeneficiary {
						caller = testBeneficiary
					}

					want := future && !deposited && !isBeneficiary
					assert.Equal(t, want, ShowPay(testNow, snapshotAt(deadline, false, false, deposit), caller))
				})
			}
		}
	}
}

func TestDeadlineEqualToNowCountsAsPassed(t *testing.T) {
	snapshot := snapshotAt(testNow, false, false, 0)

	assert.True(t, DeadlinePassed(testNow, snapshot.Details))
	assert.False(t, ShowPay(testNow, snapshot, testPayer))

	deposited := snapshotAt(testNow, false, false, 5)
	assert.True(t, ShowWithdraw(testNow, deposited))
}

func TestShowWithdraw(t *testing.T) {
	tests := []struct {
		name    string
		passed  bool
		allPaid bool
		deposit int64
		claimed bool
		want    bool
	}{
		{name: "refund owed", passed: true, deposit: 5, want: true},
		{name: "deadline ahead", passed: false, deposit: 5},
		{name: "everyone paid", passed: true, allPaid: true, deposit: 5},
		{name: "nothing deposited", passed: true},
		{name: "beneficiary already claimed", passed: true, deposit: 5, claimed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline := testNow.Add(time.Hour)
			if tt.passed {
				deadline = testNow.Add(-time.Hour)
			}
			assert.Equal(t, tt.want, ShowWithdraw(testNow, snapshotAt(deadline, tt.allPaid, tt.claimed, tt.deposit)))
		})
	}
}

func TestShowClaimIgnoresDeadlineAndCase(t *testing.T) {
	lower := Address("0xabcdef0123456789abcdef0123456789abcdef01")

	for _, deadline := range []time.Time{testNow.Add(time.Hour), testNow.Add(-time.Hour)} {
		assert.True(t, ShowClaim(snapshotAt(deadline, true, false, 0), lower))
	}
	assert.False(t, ShowClaim(snapshotAt(testNow, false, false, 0), lower))
	assert.False(t, ShowClaim(snapshotAt(testNow, true, false, 0), testPayer))
}

func TestAvailableActionsScenarios(t *testing.T) {
	t.Run("fresh payer sees only pay", func(t *testing.T) {
		got := AvailableActions(testNow, snapshotAt(testNow.Add(24*time.Hour), false, false, 0), testPayer)
		assert.Equal(t, Actions{Pay: true}, got)
	})

	t.Run("expired unpaid escrow offers refund", func(t *testing.T) {
		got := AvailableActions(testNow, snapshotAt(testNow.Add(-24*time.Hour), false, false, 5), testPayer)
		assert.Equal(t, Actions{Withdraw: true}, got)
	})

	t.Run("beneficiary claims once everyone paid", func(t *testing.T) {
		caller := Address("0XABCDEF0123456789ABCDEF0123456789ABCDEF01")
		got := AvailableActions(testNow, snapshotAt(testNow.Add(24*time.Hour), true, false, 0), caller)
		assert.Equal(t, Actions{Claim: true}, got)
		assert.True(t, got.Any())
	})

	t.Run("nil deposit reads as zero", func(t *testing.T) {
		snapshot := snapshotAt(testNow.Add(time.Hour), false, false, 0)
		snapshot.CallerDeposit = nil
		assert.True(t, AvailableActions(testNow, snapshot, testPayer).Pay)
	})
}

func TestStatusNotes(t *testing.T) {
	claimed := snapshotAt(testNow.Add(-time.Hour), true, true, 0)
	assert.Equal(t, []string{"You have already claimed."}, StatusNotes(testNow, claimed, testBeneficiary))
	assert.True(t, EveryoneSettled(claimed))

	paid := snapshotAt(testNow.Add(time.Hour), false, false, 5)
	assert.Equal(t, []string{"You have already paid."}, StatusNotes(testNow, paid, testPayer))

	refunded := snapshotAt(testNow.Add(-time.Hour), false, false, 0)
	assert.Equal(t, []string{"You have withdrawn your funds."}, StatusNotes(testNow, refunded, testPayer))
	assert.False(t, EveryoneSettled(refunded))
}
