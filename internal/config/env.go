package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvStore        = "PREP_STORE"
	EnvStorePath    = "PREP_STORE_PATH"
	EnvStoreKey     = "PREP_STORE_KEY"
	EnvRedisAddr    = "REDIS_ADDR"
	EnvDatabaseURL  = "DATABASE_URL"
	EnvHistoryLimit = "PREP_HISTORY_LIMIT"
	EnvLogMode      = "LOG_MODE"
	EnvPort         = "PORT"
)

// FromEnv reads configuration from environment variables. Unset variables leave fields empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Store:       os.Getenv(EnvStore),
		StorePath:   os.Getenv(EnvStorePath),
		StoreKey:    os.Getenv(EnvStoreKey),
		RedisAddr:   os.Getenv(EnvRedisAddr),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		LogMode:     os.Getenv(EnvLogMode),
	}

	if v := os.Getenv(EnvHistoryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvHistoryLimit, err)
		}
		cfg.HistoryLimit = n
	}

	if v := os.Getenv(EnvPort); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		cfg.Port = n
	}

	return cfg, nil
}

// Resolve layers the environment over an optional config file over the built-in defaults.
// CLI flags are applied by the caller on top of the result.
func Resolve(path string) (*Config, error) {
	base := Default()
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		base = file.MergeWithDefaults(base)
	}

	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	layered := env.MergeWithDefaults(base)
	if err := layered.Validate(); err != nil {
		return nil, err
	}
	return &layered, nil
}
