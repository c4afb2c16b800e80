package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a saved analysis (the latest when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		entry, err := a.history.Resolve(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load entry: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		p := observability.NewPrinter(cmd.OutOrStdout())
		p.PrintEntry(entry, "")
		p.PrintSummary(entry)
		return nil
	})
}
