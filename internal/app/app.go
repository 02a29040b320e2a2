// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lotto-works/ssqfetch/internal/client"
	"github.com/lotto-works/ssqfetch/internal/config"
	"github.com/lotto-works/ssqfetch/internal/detail"
	"github.com/lotto-works/ssqfetch/internal/ratelimit"
)

// Application holds all application dependencies and manages their lifecycle.
// It is created once at startup and shared across all CLI commands.
type Application struct {
	Config     *config.Config
	Logger     *zerolog.Logger
	HTTPClient *http.Client
	Client     *client.Client
	Detail     *detail.Fetcher
	Pacer      *ratelimit.Pacer
	startTime  time.Time
}

// New creates and initializes a new Application: logger, HTTP client, the
// draw API client, the detail page fetcher, and the politeness pacer.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.NewConsoleWriter()
	}
	logger := log.Output(logWriter).With().Timestamp().Logger()
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	logger.Debug().Dur("timeout", cfg.HTTPTimeout).Msg("HTTP client initialized")

	pacer := ratelimit.NewPacer(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.JitterMin, cfg.JitterMax)
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Dur("jitter_min", cfg.JitterMin).
		Dur("jitter_max", cfg.JitterMax).
		Msg("Pacer initialized")

	apiClient := client.New(httpClient, cfg.APIBaseURL, cfg.UserAgent, cfg.Game)
	detailFetcher := detail.NewFetcher(httpClient, cfg.UserAgent)

	app := &Application{
		Config:     cfg,
		Logger:     &logger,
		HTTPClient: httpClient,
		Client:     apiClient,
		Detail:     detailFetcher,
		Pacer:      pacer,
		startTime:  time.Now(),
	}

	logger.Debug().Msg("Application initialized")
	return app, nil
}

// Close releases application resources.
func (a *Application) Close(ctx context.Context) error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}
	a.Logger.Debug().Dur("uptime", time.Since(a.startTime)).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
