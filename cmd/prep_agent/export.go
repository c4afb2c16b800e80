package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <plan|checklist|questions|all> [id]",
	Short: "Export part of a saved analysis as plain text",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runExport,
}

var exportOutFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind, err := export.ParseKind(args[0])
	if err != nil {
		return err
	}
	id := ""
	if len(args) == 2 {
		id = args[1]
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		entry, err := a.history.Resolve(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load entry: %w", err)
		}
		text, err := export.Text(entry, kind)
		if err != nil {
			return err
		}

		if exportOutFile == "" {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}
		if err := os.WriteFile(exportOutFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", exportOutFile)
		return nil
	})
}
