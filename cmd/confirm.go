package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the command's streams. Anything but
// an explicit yes is domain.ErrUserRejected.
func confirm(cmd *cobra.Command, question string, assumeYes bool) error {
	if assumeYes {
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N] ", question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return domain.ErrUserRejected
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return domain.ErrUserRejected
	}
}

func printReceipt(cmd *cobra.Command, label string, receipt domain.Receipt) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s confirmed in block %d (tx %s)\n", label, receipt.BlockNumber, receipt.TxHash)
}
