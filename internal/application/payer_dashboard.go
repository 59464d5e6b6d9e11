package application

import (
	"context"
	"fmt"
	"math/big"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
)

type PayerAction string

const (
	PayerActionPay      PayerAction = "pay"
	PayerActionWithdraw PayerAction = "withdraw"
	PayerActionClaim    PayerAction = "claim"
)

// Allowed reports whether actions offers a.
func (a PayerAction) Allowed(actions domain.Actions) bool {
	switch a {
	case PayerActionPay:
		return actions.Pay
	case PayerActionWithdraw:
		return actions.Withdraw
	case PayerActionClaim:
		return actions.Claim
	default:
		return false
	}
}

// Prompt is the question asked before a sends its transaction.
func (a PayerAction) Prompt(snapshot domain.EscrowSnapshot) string {
	switch a {
	case PayerActionPay:
		return fmt.Sprintf("Pay %s ETH into escrow #%s?", domain.FormatEther(snapshot.Details.AmountPerPayer), snapshot.ID)
	case PayerActionWithdraw:
		return fmt.Sprintf("Withdraw your refund from escrow #%s?", snapshot.ID)
	case PayerActionClaim:
		return fmt.Sprintf("Claim the funds of escrow #%s?", snapshot.ID)
	default:
		return fmt.Sprintf("Run %s on escrow #%s?", a, snapshot.ID)
	}
}

type PayerDashboard struct {
	contract ports.EscrowContract
	account  domain.Address
	clock    ports.Clock
	logger   zerolog.Logger

	escrows   []domain.EscrowID
	selection *domain.EscrowSnapshot
}

func NewPayerDashboard(session Session, clock ports.Clock, logger zerolog.Logger) *PayerDashboard {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PayerDashboard{
		contract: session.Contract,
		account:  session.Account,
		clock:    clock,
		logger:   logger,
	}
}

func (d *PayerDashboard) Account() domain.Address {
	return d.account
}

// ListEscrows refreshes the caller's escrow ids. A failed read keeps the
// previous list.
func (d *PayerDashboard) ListEscrows(ctx context.Context) ([]domain.EscrowID, error) {
	ids, err := d.contract.GetUserEscrows(ctx, d.account)
	if err != nil {
		d.logger.Error().Err(err).Str("account", d.account.String()).Msg("fetch user escrows failed")
		return d.Escrows(), fmt.Errorf("get user escrows: %w", err)
	}

	d.escrows = append([]domain.EscrowID(nil), ids...)
	d.logger.Debug().Int("count", len(ids)).Msg("user escrows loaded")

	return d.Escrows(), nil
}

func (d *PayerDashboard) Escrows() []domain.EscrowID {
	return append([]domain.EscrowID(nil), d.escrows...)
}

// SelectEscrow reads details, the all-paid flag and the caller's deposit, in
// that order. The selection only changes once all three reads succeed.
func (d *PayerDashboard) SelectEscrow(ctx context.Context, id domain.EscrowID) (domain.EscrowSnapshot, error) {
	snapshot, err := d.readSnapshot(ctx, id)
	if err != nil {
		d.logger.Error().Err(err).Str("escrow", string(id)).Msg("fetch escrow details failed")
		return domain.EscrowSnapshot{}, err
	}

	d.selection = &snapshot
	d.logger.Debug().
		Str("escrow", string(id)).
		Bool("all_paid", snapshot.AllPaid).
		Str("deposit", snapshot.CallerDeposit.String()).
		Msg("escrow selected")

	return snapshot, nil
}

func (d *PayerDashboard) readSnapshot(ctx context.Context, id domain.EscrowID) (domain.EscrowSnapshot, error) {
	details, err := d.contract.GetEscrowDetails(ctx, id)
	if err != nil {
		return domain.EscrowSnapshot{}, fmt.Errorf("get escrow details: %w", err)
	}

	allPaid, err := d.contract.AllPaid(ctx, id)
	if err != nil {
		return domain.EscrowSnapshot{}, fmt.Errorf("get all paid: %w", err)
	}

	deposit, err := d.contract.DepositedOf(ctx, id, d.account)
	if err != nil {
		return domain.EscrowSnapshot{}, fmt.Errorf("get deposit: %w", err)
	}
	if deposit == nil {
		deposit = new(big.Int)
	}

	return domain.EscrowSnapshot{
		ID:            id,
		Details:       details,
		AllPaid:       allPaid,
		CallerDeposit: deposit,
		FetchedAt:     d.clock.Now(),
	}, nil
}

// Selection reports the current snapshot, if any.
func (d *PayerDashboard) Selection() (domain.EscrowSnapshot, bool) {
	if d.selection == nil {
		return domain.EscrowSnapshot{}, false
	}
	return *d.selection, true
}

// Actions is recomputed against the clock on every call.
func (d *PayerDashboard) Actions() domain.Actions {
	if d.selection == nil {
		return domain.Actions{}
	}
	return domain.AvailableActions(d.clock.Now(), *d.selection, d.account)
}

func (d *PayerDashboard) StatusNotes() []string {
	if d.selection == nil {
		return nil
	}
	return domain.StatusNotes(d.clock.Now(), *d.selection, d.account)
}

func (d *PayerDashboard) Pay(ctx context.Context) (domain.Receipt, error) {
	return d.submit(ctx, PayerActionPay,
		func(snapshot domain.EscrowSnapshot) (ports.Transaction, error) {
			return d.contract.Pay(ctx, snapshot.ID, snapshot.Details.AmountPerPayer)
		})
}

func (d *PayerDashboard) Withdraw(ctx context.Context) (domain.Receipt, error) {
	return d.submit(ctx, PayerActionWithdraw,
		func(snapshot domain.EscrowSnapshot) (ports.Transaction, error) {
			return d.contract.WithdrawRefund(ctx, snapshot.ID)
		})
}

func (d *PayerDashboard) Claim(ctx context.Context) (domain.Receipt, error) {
	return d.submit(ctx, PayerActionClaim,
		func(snapshot domain.EscrowSnapshot) (ports.Transaction, error) {
			return d.contract.ClaimBeneficiary(ctx, snapshot.ID)
		})
}

// Do dispatches a named action.
func (d *PayerDashboard) Do(ctx context.Context, action PayerAction) (domain.Receipt, error) {
	switch action {
	case PayerActionPay:
		return d.Pay(ctx)
	case PayerActionWithdraw:
		return d.Withdraw(ctx)
	case PayerActionClaim:
		return d.Claim(ctx)
	default:
		return domain.Receipt{}, fmt.Errorf("%w: %q", domain.ErrActionUnavailable, action)
	}
}

func (d *PayerDashboard) submit(
	ctx context.Context,
	action PayerAction,
	send func(domain.EscrowSnapshot) (ports.Transaction, error),
) (domain.Receipt, error) {
	snapshot, ok := d.Selection()
	if !ok {
		return domain.Receipt{}, domain.ErrNoEscrowSelected
	}
	if !action.Allowed(d.Actions()) {
		return domain.Receipt{}, fmt.Errorf("%s escrow %s: %w", action, snapshot.ID, domain.ErrActionUnavailable)
	}

	tx, err := send(snapshot)
	if err != nil {
		d.logger.Error().Err(err).Str("action", string(action)).Str("escrow", string(snapshot.ID)).Msg("transaction not sent")
		return domain.Receipt{}, fmt.Errorf("%s escrow %s: %w", action, snapshot.ID, err)
	}

	d.logger.Info().Str("action", string(action)).Str("escrow", string(snapshot.ID)).Str("tx", tx.Hash()).Msg("transaction submitted")

	receipt, err := tx.Wait(ctx)
	if err != nil {
		d.logger.Error().Err(err).Str("action", string(action)).Str("tx", tx.Hash()).Msg("transaction failed")
		return domain.Receipt{}, fmt.Errorf("wait for %s: %w", action, err)
	}

	d.logger.Info().Str("action", string(action)).Str("tx", receipt.TxHash).Uint64("block", receipt.BlockNumber).Msg("transaction confirmed")

	if _, err := d.SelectEscrow(ctx, snapshot.ID); err != nil {
		d.logger.Warn().Err(err).Str("escrow", string(snapshot.ID)).Msg("snapshot refresh after transaction failed")
	}

	return receipt, nil
}
