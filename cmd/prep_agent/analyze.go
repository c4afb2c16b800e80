package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/analysis"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/fetch"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/observability"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one or more job descriptions and save them to history",
	Long: `Analyze job descriptions into extracted skills, a round-wise checklist, a 7-day plan,
likely interview questions and a readiness score. Each analysis is saved as a new history entry.

Pass the JD inline with --text, as files with --jd (repeatable, "-" reads stdin) or as
job posting pages with --url (repeatable). Files and pages are read concurrently and saved
in the order given, files first.`,
	RunE: runAnalyze,
}

var (
	analyzeCompany string
	analyzeRole    string
	analyzeText    string
	analyzeFiles   []string
	analyzeURLs    []string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company name")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Role title")
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Job description text")
	analyzeCmd.Flags().StringArrayVar(&analyzeFiles, "jd", nil, "Path to a job description file (repeatable, - for stdin)")
	analyzeCmd.Flags().StringArrayVar(&analyzeURLs, "url", nil, "URL of a job posting page (repeatable)")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzed is one prepared analysis waiting to be saved
type analyzed struct {
	req     types.AnalyzeRequest
	result  types.AnalysisResult
	warning string
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	sources := len(analyzeFiles) + len(analyzeURLs)
	if analyzeText == "" && sources == 0 {
		return fmt.Errorf("must provide --text or at least one --jd file or --url")
	}
	if analyzeText != "" && sources > 0 {
		return fmt.Errorf("cannot use --text with --jd or --url")
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		pages := fetch.NewCached(a.store, nil, 0, a.log)
		jobs, err := prepareAnalyses(ctx, cmd.InOrStdin(), pages)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printer := observability.NewPrinter(out)
		saved := make([]*types.Entry, 0, len(jobs))

		for _, job := range jobs {
			entry, err := a.history.Save(ctx, job.req, job.result)
			if err != nil {
				return fmt.Errorf("failed to save analysis: %w", err)
			}
			saved = append(saved, entry)

			if !jsonOutput {
				printer.PrintEntry(entry, job.warning)
				printer.PrintSummary(entry)
			}
		}

		if jsonOutput {
			if len(saved) == 1 {
				return printJSON(out, saved[0])
			}
			return printJSON(out, saved)
		}
		return nil
	})
}

// jdSource reads the text of one job description
type jdSource struct {
	name string
	read func(ctx context.Context) (string, error)
}

// prepareAnalyses reads every JD source and runs the analysis for each concurrently.
// Results keep the order of the inputs.
func prepareAnalyses(ctx context.Context, stdin io.Reader, pages *fetch.Cached) ([]analyzed, error) {
	if analyzeText != "" {
		job, err := prepare(analyzeText)
		if err != nil {
			return nil, err
		}
		return []analyzed{job}, nil
	}

	var srcs []jdSource
	for _, path := range analyzeFiles {
		srcs = append(srcs, jdSource{name: path, read: func(context.Context) (string, error) {
			return readJD(path, stdin)
		}})
	}
	for _, u := range analyzeURLs {
		srcs = append(srcs, jdSource{name: u, read: func(ctx context.Context) (string, error) {
			return pages.JobDescription(ctx, u)
		}})
	}

	jobs := make([]analyzed, len(srcs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			text, err := src.read(gCtx)
			if err != nil {
				return err
			}
			job, err := prepare(text)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			jobs[i] = job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// prepare validates and analyzes one JD with the shared company and role
func prepare(jdText string) (analyzed, error) {
	req := types.AnalyzeRequest{Company: analyzeCompany, Role: analyzeRole, JDText: jdText}
	if err := req.Validate(); err != nil {
		return analyzed{}, fmt.Errorf("invalid analyze request: %w", err)
	}
	req = req.Trim()

	return analyzed{
		req:     req,
		result:  analysis.AnalyzeJD(req.Company, req.Role, req.JDText),
		warning: analysis.Warning(req.JDText),
	}, nil
}

func readJD(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read JD file: %w", err)
	}
	return string(data), nil
}
