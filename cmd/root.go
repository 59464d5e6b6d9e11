package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	if err != nil {
		rootCmd := baseRootCmd()
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	return newRootCmdWithApp(app)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cl",
		Short:         "ContractLock CLI (cl): create and settle escrows",
		Long:          "cl talks to the ContractLock escrow contract. Creators lock in a beneficiary, payers and a deadline. Payers deposit, withdraw refunds after a missed deadline, and beneficiaries claim once everyone has paid. Run without a subcommand for the interactive UI.",
		SilenceUsage:  true,
	}
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := baseRootCmd()
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return app.runInteractive(cmd)
	}

	rootCmd.PersistentFlags().StringVar(&app.settings.WalletName, "wallet", app.settings.WalletName, "Wallet profile to sign with")

	rootCmd.AddCommand(
		newVersionCmd(),
		newUICmd(app),
		newConnectCmd(app),
		newCreateCmd(app),
		newEscrowCmd(app),
		newWalletCmd(app),
	)

	return rootCmd
}
