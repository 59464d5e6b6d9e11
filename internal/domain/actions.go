package domain

import "time"

type Actions struct {
	Pay      bool
	Withdraw bool
	Claim    bool
}

func (a Actions) Any() bool {
	return a.Pay || a.Withdraw || a.Claim
}

// DeadlinePassed treats a deadline equal to now as already passed.
func DeadlinePassed(now time.Time, details EscrowDetails) bool {
	return !details.Deadline.After(now)
}

func ShowPay(now time.Time, snapshot EscrowSnapshot, caller Address) bool {
	return !DeadlinePassed(now, snapshot.Details) &&
		snapshot.depositSign() == 0 &&
		!caller.Equal(snapshot.Details.Beneficiary)
}

func ShowWithdraw(now time.Time, snapshot EscrowSnapshot) bool {
	return DeadlinePassed(now, snapshot.Details) &&
		!snapshot.AllPaid &&
		snapshot.depositSign() > 0 &&
		!snapshot.BeneficiaryClaimed()
}

func ShowClaim(snapshot EscrowSnapshot, caller Address) bool {
	return snapshot.AllPaid && caller.Equal(snapshot.Details.Beneficiary)
}

// AvailableActions evaluates every guard on its own. The contract's state
// machine makes them exclusive in practice but nothing here relies on it.
func AvailableActions(now time.Time, snapshot EscrowSnapshot, caller Address) Actions {
	return Actions{
		Pay:      ShowPay(now, snapshot, caller),
		Withdraw: ShowWithdraw(now, snapshot),
		Claim:    ShowClaim(snapshot, caller),
	}
}

// StatusNotes are the informational lines shown under an escrow's details.
func StatusNotes(now time.Time, snapshot EscrowSnapshot, caller Address) []string {
	notes := make([]string, 0, 3)

	if caller.Equal(snapshot.Details.Beneficiary) && snapshot.BeneficiaryClaimed() {
		notes = append(notes, "You have already claimed.")
	}
	if snapshot.depositSign() > 0 {
		notes = append(notes, "You have already paid.")
	}
	if DeadlinePassed(now, snapshot.Details) && !snapshot.AllPaid && snapshot.depositSign() == 0 {
		notes = append(notes, "You have withdrawn your funds.")
	}

	return notes
}

// EveryoneSettled backs the "all payers have paid" line. A claimed escrow
// counts as settled.
func EveryoneSettled(snapshot EscrowSnapshot) bool {
	return snapshot.AllPaid || snapshot.BeneficiaryClaimed()
}
