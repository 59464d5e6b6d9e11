package cmd

import (
	"fmt"
	"runtime"

	"github.com/bnema/contractlock-cli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the cl version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "cl %s (%s %s/%s)\n", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cl %s\n", version.Version)
			return err
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include Go toolchain and platform")

	return cmd
}
