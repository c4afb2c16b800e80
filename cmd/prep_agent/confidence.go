package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence <id> <skill> [know|practice]",
	Short: "Record confidence in a skill and recompute the readiness score",
	Long: `Record whether you know a skill or still need to practice it. Without a state,
the skill toggles between know and practice; skills never rated count as practice.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runConfidence,
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
}

func runConfidence(cmd *cobra.Command, args []string) error {
	id, skill := args[0], args[1]

	return withApp(cmd, func(ctx context.Context, a *app) error {
		var (
			entry *types.Entry
			err   error
		)
		if len(args) == 3 {
			entry, err = a.history.UpdateConfidence(ctx, id, skill, types.Confidence(args[2]))
		} else {
			entry, err = a.history.ToggleConfidence(ctx, id, skill)
		}
		if err != nil {
			return fmt.Errorf("failed to update confidence: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", skill, entry.SkillConfidenceMap[skill])
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Readiness score: %d/100\n", entry.FinalScore)
		return nil
	})
}
