package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL            string
	Port             string
	QuoteTTLMinutes  int
	PriceRefreshCron string
}

// Load reads configuration from the environment, with a .env file as the
// local-development fallback
func Load() (*Config, error) {
	// Ignore the error: a missing .env file just means real env vars.
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	quoteTTL := 5
	if v := os.Getenv("QUOTE_TTL_MINUTES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("QUOTE_TTL_MINUTES must be a positive integer, got %q", v)
		}
		quoteTTL = parsed
	}

	refreshCron := os.Getenv("PRICE_REFRESH_CRON")
	if refreshCron == "" {
		refreshCron = "@hourly"
	}

	return &Config{
		PGURL:            pgURL,
		Port:             port,
		QuoteTTLMinutes:  quoteTTL,
		PriceRefreshCron: refreshCron,
	}, nil
}
