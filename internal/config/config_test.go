package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"store": "redis",
		"redis_addr": "localhost:6379",
		"history_limit": 20,
		"log_mode": "production"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, "production", cfg.LogMode)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Default(), ""},
		{"memory", Config{Store: "memory"}, ""},
		{"unknown store", Config{Store: "sqlite"}, "oneof"},
		{"redis without addr", Config{Store: "redis"}, "redis_addr"},
		{"redis bad addr", Config{Store: "redis", RedisAddr: "no-port"}, "hostname_port"},
		{"redis ok", Config{Store: "redis", RedisAddr: "localhost:6379"}, ""},
		{"postgres without url", Config{Store: "postgres"}, "database_url"},
		{"file without path", Config{Store: "file"}, "store_path"},
		{"negative limit", Config{Store: "memory", HistoryLimit: -1}, "HistoryLimit"},
		{"bad port", Config{Store: "memory", Port: 70000}, "Port"},
		{"bad log mode", Config{Store: "memory", LogMode: "loud"}, "LogMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Store: "memory", HistoryLimit: 10}
	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "memory", merged.Store)
	assert.Equal(t, 10, merged.HistoryLimit)
	assert.Equal(t, DefaultStorePath, merged.StorePath)
	assert.Equal(t, DefaultStoreKey, merged.StoreKey)
	assert.Equal(t, DefaultLogMode, merged.LogMode)
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Store: "file"}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "file", merged.Store)
	assert.Empty(t, merged.StorePath)
	assert.Zero(t, merged.HistoryLimit)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvStore, "postgres")
	t.Setenv(EnvDatabaseURL, "postgres://localhost/prep")
	t.Setenv(EnvHistoryLimit, "25")
	t.Setenv(EnvPort, "9090")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, "postgres://localhost/prep", cfg.DatabaseURL)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, 9090, cfg.Port)
}

func TestFromEnv_InvalidNumbers(t *testing.T) {
	t.Setenv(EnvHistoryLimit, "many")
	_, err := FromEnv()
	assert.ErrorContains(t, err, EnvHistoryLimit)
}

func TestResolve_Precedence(t *testing.T) {
	path := writeConfig(t, `{"store": "memory", "history_limit": 20, "port": 3000}`)
	t.Setenv(EnvStore, "")
	t.Setenv(EnvHistoryLimit, "")
	t.Setenv(EnvPort, "4000")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, DefaultStoreKey, cfg.StoreKey)
}

func TestResolve_Invalid(t *testing.T) {
	t.Setenv(EnvStore, "redis")
	t.Setenv(EnvRedisAddr, "")
	_, err := Resolve("")
	assert.ErrorContains(t, err, "redis_addr")
}
