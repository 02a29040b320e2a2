// Package config centralizes defaults, environment overrides, and CLI flag
// handling for ssqfetch.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lotto-works/ssqfetch/internal/client"
)

// Config holds application configuration values.
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	APIBaseURL  string
	Game        string

	// Pagination
	PageSize int
	MaxPages int
	BulkSize int

	// Politeness pacing between page fetches
	RateLimitRPS   float64
	RateLimitBurst int
	JitterMin      time.Duration
	JitterMax      time.Duration
}

// Load builds a Config by combining defaults, environment variables, and CLI
// flags, in that order of precedence. Caller should pass the root
// *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		HTTPTimeout:    DefaultHTTPTimeout,
		UserAgent:      DefaultUserAgent,
		APIBaseURL:     client.DefaultBaseURL,
		Game:           DefaultGame,
		PageSize:       DefaultPageSize,
		MaxPages:       DefaultMaxPages,
		BulkSize:       DefaultBulkSize,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		JitterMin:      DefaultJitterMin,
		JitterMax:      DefaultJitterMax,
	}

	// Environment overrides
	if v := os.Getenv("SSQFETCH_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SSQFETCH_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SSQFETCH_GAME"); v != "" {
		cfg.Game = v
	}

	// CLI flag overrides
	if cmd != nil {
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("api-url"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.APIBaseURL = s
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.HTTPTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "error"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
