package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage local signing wallets",
	}

	cmd.AddCommand(
		newWalletImportCmd(app),
		newWalletNewCmd(app),
		newWalletListCmd(app),
		newWalletRemoveCmd(app),
	)

	return cmd
}

func newWalletImportCmd(app *app) *cobra.Command {
	var name string
	var keyFile string
	var keyStdin bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a hex private key into the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawKey, err := readKey(cmd, keyFile, keyStdin)
			if err != nil {
				return err
			}

			profile, err := app.wallets.Import(cmd.Context(), name, rawKey, overwrite)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported wallet %s (%s)\n", profile.Name, profile.Address)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", app.settings.WalletName, "Wallet profile name")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "File holding the hex private key")
	cmd.Flags().BoolVar(&keyStdin, "key-stdin", false, "Read the hex private key from stdin")
	cmd.Flags().BoolVar(&overwrite, "force", false, "Replace an existing profile with the same name")
	cmd.MarkFlagsOneRequired("key-file", "key-stdin")
	cmd.MarkFlagsMutuallyExclusive("key-file", "key-stdin")

	return cmd
}

func readKey(cmd *cobra.Command, keyFile string, keyStdin bool) (string, error) {
	var raw []byte
	var err error

	if keyStdin {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(keyFile)
	}
	if err != nil {
		return "", fmt.Errorf("read private key: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

func newWalletNewCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a fresh key and store it as a wallet profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.wallets.Create(cmd.Context(), name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created wallet %s (%s)\n", profile.Name, profile.Address)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Wallet profile name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWalletListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallet profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.wallets.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, "no wallets; import one with `cl wallet import`")
				return nil
			}

			for _, profile := range profiles {
				marker := " "
				if profile.Name == app.settings.WalletName {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\t%s\n", marker, profile.Name, profile.Address)
			}
			return nil
		},
	}
}

func newWalletRemoveCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a wallet profile and its stored key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.wallets.Remove(cmd.Context(), name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed wallet %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Wallet profile name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
