package cmd

import (
	"fmt"

	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCreateCmd(app *app) *cobra.Command {
	var form application.CreateEscrowForm
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an escrow",
		Example: `  cl create --beneficiary 0xabc... --payers 0x111...,0x222... \
    --amount 0.5 --deadline "2026-12-31 18:00"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := application.ParseCreateEscrowForm(form, app.location)
			if err != nil {
				return err
			}

			session, err := app.connect(cmd.Context())
			if err != nil {
				return err
			}

			question := fmt.Sprintf("Create an escrow for %d payer(s) paying %s ETH each to %s, deadline %s?",
				len(req.Payers),
				domain.FormatEther(req.AmountPerPayer),
				req.Beneficiary,
				req.Deadline.In(app.location).Format("2006-01-02 15:04"),
			)
			if err := confirm(cmd, question, assumeYes); err != nil {
				return err
			}

			receipt, err := application.NewCreatorForm(session, app.location, app.logger).Submit(cmd.Context(), form)
			if err != nil {
				return err
			}

			printReceipt(cmd, "Escrow creation", receipt)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Beneficiary, "beneficiary", "", "Beneficiary address")
	cmd.Flags().StringVar(&form.Payers, "payers", "", "Comma-separated payer addresses")
	cmd.Flags().StringVar(&form.AmountPerPayer, "amount", "", "Amount per payer in ETH")
	cmd.Flags().StringVar(&form.Deadline, "deadline", "", "Deadline in local time (YYYY-MM-DDTHH:MM or YYYY-MM-DD HH:MM)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("beneficiary")
	_ = cmd.MarkFlagRequired("payers")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}
