package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the wallet and print account, network and contract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.connect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account: %s\n", session.Account)
			fmt.Fprintf(out, "network: %s\n", session.Network)
			fmt.Fprintf(out, "contract: %s\n", app.settings.ContractAddress)
			return nil
		},
	}
}
