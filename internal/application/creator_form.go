package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
)

// CreateEscrowForm holds the creator's raw input exactly as typed.
type CreateEscrowForm struct {
	Beneficiary    string
	Payers         string
	AmountPerPayer string
	Deadline       string
}

type CreatorForm struct {
	contract ports.EscrowContract
	location *time.Location
	logger   zerolog.Logger
}

func NewCreatorForm(session Session, location *time.Location, logger zerolog.Logger) *CreatorForm {
	if location == nil {
		location = time.Local
	}

	return &CreatorForm{
		contract: session.Contract,
		location: location,
		logger:   logger,
	}
}

func ParseCreateEscrowForm(form CreateEscrowForm, location *time.Location) (domain.CreateEscrowRequest, error) {
	amount, err := domain.ParseEther(form.AmountPerPayer)
	if err != nil {
		return domain.CreateEscrowRequest{}, fmt.Errorf("parse amount per payer: %w", err)
	}

	deadline, err := domain.ParseDeadline(form.Deadline, location)
	if err != nil {
		return domain.CreateEscrowRequest{}, fmt.Errorf("parse deadline: %w", err)
	}

	return domain.CreateEscrowRequest{
		Beneficiary:    domain.Address(strings.TrimSpace(form.Beneficiary)),
		Payers:         domain.ParsePayerList(form.Payers),
		AmountPerPayer: amount,
		Deadline:       deadline,
		Token:          domain.NativeToken,
	}, nil
}

// Submit sends one createEscrow transaction and blocks until it is mined.
// The form is never modified, so a failed submission can be resent as is.
func (f *CreatorForm) Submit(ctx context.Context, form CreateEscrowForm) (domain.Receipt, error) {
	req, err := ParseCreateEscrowForm(form, f.location)
	if err != nil {
		f.logger.Warn().Err(err).Msg("create escrow form rejected")
		return domain.Receipt{}, err
	}

	if f.contract == nil {
		return domain.Receipt{}, domain.ErrNotConnected
	}

	tx, err := f.contract.CreateEscrow(ctx, req)
	if err != nil {
		f.logger.Error().Err(err).Msg("create escrow failed")
		return domain.Receipt{}, fmt.Errorf("create escrow: %w", err)
	}

	f.logger.Info().
		Str("tx", tx.Hash()).
		Str("beneficiary", req.Beneficiary.String()).
		Int("payers", len(req.Payers)).
		Int64("deadline", req.Deadline.Unix()).
		Msg("create escrow submitted")

	receipt, err := tx.Wait(ctx)
	if err != nil {
		f.logger.Error().Err(err).Str("tx", tx.Hash()).Msg("create escrow not confirmed")
		return domain.Receipt{}, fmt.Errorf("wait for create escrow: %w", err)
	}

	f.logger.Info().Str("tx", receipt.TxHash).Uint64("block", receipt.BlockNumber).Msg("escrow created")

	return receipt, nil
}
