package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/schemas"
	embedded "github.com/OmBelgali/placement-readiness-platform-4/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every saved entry against the entry JSON schema",
	Long: `Normalize every stored record and validate the result against schemas/entry.schema.json.
Records that cannot be read at all are reported as corrupted.

With --file, validate a JSON file instead (a single entry or an exported history array) as-is,
without normalizing it first.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

// validateWorkers bounds concurrent schema validations
const validateWorkers = 4

var validateFile string

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Validate a JSON file of entries instead of the stored history")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateFile != "" {
		if err := schemas.ValidateFile(embedded.EntrySchema, validateFile); err != nil {
			return fmt.Errorf("%s: %w", validateFile, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", validateFile)
		return nil
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		h, err := a.history.List(ctx)
		if err != nil {
			return err
		}

		var (
			mu      sync.Mutex
			invalid = map[string]error{}
		)
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(validateWorkers)
		for i := range h.Entries {
			entry := &h.Entries[i]
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				if err := schemas.ValidateEntry(entry); err != nil {
					mu.Lock()
					invalid[entry.ID] = err
					mu.Unlock()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range h.Entries {
			if err, ok := invalid[e.ID]; ok {
				_, _ = fmt.Fprintf(out, "%s: %v\n", e.ID, err)
			}
		}
		_, _ = fmt.Fprintf(out, "Checked %d entries: %d valid, %d invalid, %d corrupted\n",
			len(h.Entries), len(h.Entries)-len(invalid), len(invalid), h.CorruptedCount)

		if len(invalid) > 0 {
			return fmt.Errorf("%d entries do not validate against the entry schema", len(invalid))
		}
		return nil
	})
}
