package cmd

import (
	"io"

	"github.com/bnema/contractlock-cli/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive escrow UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runInteractive(cmd)
		},
	}
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	logger, closer, err := a.uiLogger()
	if err != nil {
		a.logger.Warn().Err(err).Msg("ui log file unavailable, logging disabled")
	}
	if closer != nil {
		defer func(c io.Closer) { _ = c.Close() }(closer)
	}

	return a.runUI(cmd.Context(), tui.Deps{
		Controller: a.sessionController(cmd.Context(), logger),
		Clock:      a.clock,
		Location:   a.location,
		Logger:     logger,
	})
}
