// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Defaults
const (
	DefaultStore        = "file"
	DefaultStorePath    = ".placement"
	DefaultStoreKey     = "placement_readiness_history"
	DefaultHistoryLimit = 50
	DefaultLogMode      = "development"
	DefaultPort         = 8080
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from the environment and defaults.
type Config struct {
	// Storage
	Store       string `json:"store,omitempty" validate:"omitempty,oneof=memory file redis postgres"` // Record store backend
	StorePath   string `json:"store_path,omitempty"`                                                // Directory for the file backend
	StoreKey    string `json:"store_key,omitempty"`                                                 // Key the history is stored under
	RedisAddr   string `json:"redis_addr,omitempty" validate:"omitempty,hostname_port"`             // Redis address for the redis backend
	DatabaseURL string `json:"database_url,omitempty"`                                              // PostgreSQL connection URL

	// Limits
	HistoryLimit int `json:"history_limit,omitempty" validate:"gte=0,lte=1000"` // Entries retained, newest first

	// Behavior
	LogMode string `json:"log_mode,omitempty" validate:"omitempty,oneof=development production dev prod"` // Logger mode
	Port    int    `json:"port,omitempty" validate:"gte=0,lte=65535"`                                   // HTTP server port
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Store:        DefaultStore,
		StorePath:    DefaultStorePath,
		StoreKey:     DefaultStoreKey,
		HistoryLimit: DefaultHistoryLimit,
		LogMode:      DefaultLogMode,
		Port:         DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Backend-specific requirements
	switch c.Store {
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("config error: 'redis_addr' is required for the redis store")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	case "file":
		if c.StorePath == "" {
			return fmt.Errorf("config error: 'store_path' is required for the file store")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer file, environment and built-in values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.StoreKey == "" {
		result.StoreKey = defaults.StoreKey
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}

	// Int fields: use default if zero
	if result.HistoryLimit == 0 {
		result.HistoryLimit = defaults.HistoryLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}
