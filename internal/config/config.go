// Package config provides environment-based configuration for the tracker.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration for the server and CLI commands.
type Config struct {
	Port        int
	DatabaseURL string

	// GeminiAPIKey authenticates against the text-completion service. The
	// server starts without it; every AI endpoint then serves fallback
	// content only.
	GeminiAPIKey string

	// AppID namespaces stored records per application instance, so several
	// deployments can share one database.
	AppID string

	// SeedOnFirstRun populates a brand-new user with the bundled starter
	// dataset and default profile context.
	SeedOnFirstRun bool

	// ApplicantName is embedded into generated email drafts.
	ApplicantName string
}

// Load reads configuration from the environment. DATABASE_URL is required;
// everything else has a sensible default.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           port,
		DatabaseURL:    databaseURL,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AppID:          getEnv("APP_ID", "default-app-id"),
		SeedOnFirstRun: getEnvBool("SEED_ON_FIRST_RUN", true),
		ApplicantName:  getEnv("APPLICANT_NAME", "Zefanya Williams"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
