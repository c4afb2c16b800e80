package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		h, err := a.history.List(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), h)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(h)
		return nil
	})
}
