package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig sets the limit for one endpoint. Paths ending in "/" match
// by prefix, which covers routes with trailing path parameters.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig reads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: completion-backed endpoints (strictest)
		{Path: "/applications/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/assist/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/profile/analyze", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/scan", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},

		// Tier 2: write operations
		{Path: "/applications", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/applications/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/applications/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/profile", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/import", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/auth/session", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 3: reads are covered by the default limit.
		// Tier 4: /health is unlimited, special-cased in the matcher.
	}
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
