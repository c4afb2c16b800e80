// Package main provides the entry point for the placement readiness CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "prep_agent",
	Short:         "Placement readiness analyzer",
	Long:          "prep_agent analyzes job descriptions into skills, a round-wise checklist, a 7-day plan, likely questions and a readiness score, and keeps a history of analyses.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
