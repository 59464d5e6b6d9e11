package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	escrowrender "github.com/bnema/contractlock-cli/internal/adapters/render/escrow"
	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newEscrowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Inspect and settle your escrows",
	}

	cmd.AddCommand(
		newEscrowListCmd(app),
		newEscrowShowCmd(app),
		newEscrowActionCmd(app, application.PayerActionPay, "Pay the amount per payer into an escrow"),
		newEscrowActionCmd(app, application.PayerActionWithdraw, "Withdraw your refund after a missed deadline"),
		newEscrowActionCmd(app, application.PayerActionClaim, "Claim a fully paid escrow as its beneficiary"),
	)

	return cmd
}

type escrowListJSON struct {
	Account  domain.Address    `json:"account"`
	Network  string            `json:"network"`
	Contract domain.Address    `json:"contract"`
	Escrows  []domain.EscrowID `json:"escrows"`
}

func newEscrowListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the escrows the contract reports for your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dashboard, session, err := app.dashboard(cmd.Context())
			if err != nil {
				return err
			}

			ids, err := dashboard.ListEscrows(cmd.Context())
			if err != nil {
				return err
			}
			if ids == nil {
				ids = []domain.EscrowID{}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(escrowListJSON{
					Account:  session.Account,
					Network:  session.Network.String(),
					Contract: app.settings.ContractAddress,
					Escrows:  ids,
				})
			}

			return app.printReport(cmd, escrowrender.Report{
				Title:    "Payer dashboard",
				Account:  session.Account,
				Network:  session.Network,
				Contract: app.settings.ContractAddress,
				Escrows:  ids,
				Cursor:   -1,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

type escrowJSON struct {
	ID                 domain.EscrowID `json:"id"`
	Beneficiary        domain.Address  `json:"beneficiary"`
	AmountPerPayer     string          `json:"amount_per_payer_eth"`
	Deadline           time.Time       `json:"deadline"`
	DeadlinePassed     bool            `json:"deadline_passed"`
	AllPaid            bool            `json:"all_paid"`
	BeneficiaryClaimed bool            `json:"beneficiary_claimed"`
	YourDeposit        string          `json:"your_deposit_eth"`
	Actions            []string        `json:"actions"`
	Notes              []string        `json:"notes"`
}

func toEscrowJSON(snapshot domain.EscrowSnapshot, now time.Time, caller domain.Address) escrowJSON {
	actions := domain.AvailableActions(now, snapshot, caller)
	names := []string{}
	for _, action := range []application.PayerAction{
		application.PayerActionPay,
		application.PayerActionWithdraw,
		application.PayerActionClaim,
	} {
		if action.Allowed(actions) {
			names = append(names, string(action))
		}
	}

	notes := domain.StatusNotes(now, snapshot, caller)
	if notes == nil {
		notes = []string{}
	}

	return escrowJSON{
		ID:                 snapshot.ID,
		Beneficiary:        snapshot.Details.Beneficiary,
		AmountPerPayer:     domain.FormatEther(snapshot.Details.AmountPerPayer),
		Deadline:           snapshot.Details.Deadline,
		DeadlinePassed:     domain.DeadlinePassed(now, snapshot.Details),
		AllPaid:            snapshot.AllPaid,
		BeneficiaryClaimed: snapshot.BeneficiaryClaimed(),
		YourDeposit:        domain.FormatEther(snapshot.CallerDeposit),
		Actions:            names,
		Notes:              notes,
	}
}

func newEscrowShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one escrow and the actions available to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseEscrowID(args[0])
			if err != nil {
				return err
			}

			dashboard, session, err := app.dashboard(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, err := dashboard.SelectEscrow(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toEscrowJSON(snapshot, app.clock.Now(), session.Account))
			}

			return app.printReport(cmd, escrowrender.Report{
				Account:  session.Account,
				Network:  session.Network,
				Contract: app.settings.ContractAddress,
				Detail:   &snapshot,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newEscrowActionCmd(app *app, action application.PayerAction, short string) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   string(action) + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseEscrowID(args[0])
			if err != nil {
				return err
			}

			dashboard, _, err := app.dashboard(cmd.Context())
			if err != nil {
				return err
			}

			snapshot, err := dashboard.SelectEscrow(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !action.Allowed(dashboard.Actions()) {
				return fmt.Errorf("%w: %s on escrow #%s", domain.ErrActionUnavailable, action, id)
			}

			if err := confirm(cmd, action.Prompt(snapshot), assumeYes); err != nil {
				return err
			}

			receipt, err := dashboard.Do(cmd.Context(), action)
			if err != nil {
				return err
			}

			printReceipt(cmd, capitalize(string(action)), receipt)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (a *app) printReport(cmd *cobra.Command, report escrowrender.Report) error {
	rendered, err := a.renderEscrow(report, escrowrender.RenderOptions{
		Now:      a.clock.Now(),
		Location: a.location,
	})
	if err != nil {
		return fmt.Errorf("render escrow report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
