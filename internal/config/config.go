package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the service.
type Config struct {
	Port string

	// Upstream NASA POWER client settings.
	ProviderBaseURL string
	ProviderTimeout time.Duration

	// HistoryYears is how far back point analyses look.
	HistoryYears int

	// GridStep is the sampling resolution for region rasterization, in
	// degrees. Defaults to the provider's native 0.5° grid.
	GridStep float64

	// FetchConcurrency caps simultaneous upstream fetches during a
	// region fan-out.
	FetchConcurrency int

	// Per-IP rate limiting for the HTTP surface.
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment with sensible
// defaults. A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getenvDefault("PORT", ":8080"),
		ProviderBaseURL:  os.Getenv("POWER_BASE_URL"),
		HistoryYears:     getenvInt("HISTORY_YEARS", 20),
		FetchConcurrency: getenvInt("FETCH_CONCURRENCY", 8),
		RateLimit:        getenvInt("RATE_LIMIT", 120),
	}

	timeoutStr := getenvDefault("PROVIDER_TIMEOUT", "60s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.ProviderTimeout = timeout

	windowStr := getenvDefault("RATE_LIMIT_WINDOW", "1m")
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.RateLimitWindow = window

	stepStr := getenvDefault("GRID_STEP", "0.5")
	step, err := strconv.ParseFloat(stepStr, 64)
	if err != nil || step <= 0 {
		return nil, fmt.Errorf("invalid GRID_STEP: %q", stepStr)
	}
	cfg.GridStep = step

	if cfg.HistoryYears < 1 {
		return nil, fmt.Errorf("HISTORY_YEARS must be positive")
	}
	if cfg.FetchConcurrency < 1 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
