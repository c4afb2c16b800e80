package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes analysis and history endpoints as JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		port := a.cfg.Port
		if servePort != 0 {
			port = servePort
		}
		srv := server.New(server.Config{Port: port}, a.history, a.log)
		return srv.Start()
	})
}
