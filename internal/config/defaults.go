package config

import "time"

// Default constants for application configuration.
const (
	DefaultLogLevel = "info"
	DefaultJSONLog  = false

	// DefaultUserAgent mimics a desktop Chrome; the API rejects obviously
	// scripted clients with 403.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	DefaultHTTPTimeout = 15 * time.Second

	// DefaultGame is the dataset name served by the draw notice endpoint.
	DefaultGame = "ssq"

	// DefaultPageSize is the official per-page cap.
	DefaultPageSize = 30
	// DefaultMaxPages bounds a history run: 60 pages * 30 draws = 1800 draws.
	DefaultMaxPages = 60
	// DefaultBulkSize is the single-request size of bulk mode.
	DefaultBulkSize = 2000

	DefaultRateLimitRPS   = 2.0
	DefaultRateLimitBurst = 1
	DefaultJitterMin      = 500 * time.Millisecond
	DefaultJitterMax      = 1500 * time.Millisecond
)
