package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one method on a path. A path ending in "/" matches by prefix.
type Rule struct {
	Method string
	Path   string
	Limit  int           // requests per window; zero or less means unlimited
	Window time.Duration // refill window
	Burst  int           // bucket capacity; defaults to Limit
}

// Config holds rate limiting configuration
type Config struct {
	Enabled   bool
	Default   Rule
	Rules     []Rule
	Whitelist map[string]bool
	IdleTTL   time.Duration // buckets unused for this long are dropped
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		Default: Rule{
			Limit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
			Window: getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		},
		Rules:     DefaultRules(),
		Whitelist: parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		IdleTTL:   getEnvDuration("RATE_LIMIT_IDLE_TTL", time.Hour),
	}
}

// DefaultRules returns the per-endpoint limits. Reads fall through to the default rule.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Path: "/health", Limit: 0},
		{Method: "POST", Path: "/analyze", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: "PUT", Path: "/history/", Limit: 240, Window: time.Minute, Burst: 30},
		{Method: "DELETE", Path: "/history", Limit: 10, Window: time.Minute, Burst: 2},
	}
}

// match returns the first rule for method and path, exact paths before prefixes
func (c *Config) match(method, path string) Rule {
	for _, r := range c.Rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	for _, r := range c.Rules {
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return c.Default
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
