package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/config"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/history"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/logging"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/store"
)

var (
	configPath string
	storeFlag  string
	storePath  string
	storeKey   string
	logMode    string
	jsonOutput bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to JSON config file")
	flags.StringVar(&storeFlag, "store", "", "Record store backend: memory, file, redis or postgres")
	flags.StringVar(&storePath, "store-path", "", "Directory for the file store")
	flags.StringVar(&storeKey, "store-key", "", "Key the history is stored under")
	flags.StringVar(&logMode, "log-mode", "", "Logger mode: development or production")
	flags.BoolVar(&jsonOutput, "json", false, "Print JSON instead of formatted text")
}

// app bundles the services a command needs
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	store   store.Store
	history *history.Service
}

// setup resolves configuration and opens the record store. Flags win over the
// environment, which wins over the config file.
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	flagCfg := config.Config{Store: storeFlag, StorePath: storePath, StoreKey: storeKey, LogMode: logMode}
	merged := flagCfg.MergeWithDefaults(*cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	cfg = &merged

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, store.Options{
		Backend:     cfg.Store,
		Path:        cfg.StorePath,
		RedisAddr:   cfg.RedisAddr,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	log.Debug("opened record store", "store", cfg.Store, "key", cfg.StoreKey)

	svc := history.NewService(st, cfg.StoreKey,
		history.WithLimit(cfg.HistoryLimit),
		history.WithLogger(log),
	)
	return &app{cfg: cfg, log: log, store: st, history: svc}, nil
}

// Close releases the store and flushes the logger
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close store", "error", err)
	}
	a.log.Sync()
}

// withApp runs fn with a ready app and closes it afterwards
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
