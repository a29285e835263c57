// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// analytics server. It is populated by merging built-in defaults, an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the visitor salt secret and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the blob store and event database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and CORS settings of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Tracking tunes the ingestion pipeline.
	Tracking Tracking `envPrefix:"TRACKING_"`

	// Workers holds intervals and limits of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the API address used by the terminal dashboard.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// VisitorSalt is the secret the daily visitor salts are derived from.
	// Rotating it breaks visitor continuity within the current day.
	// Env: APP_VISITOR_SALT
	VisitorSalt string `env:"VISITOR_SALT"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC ingest server. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists origins allowed to call the dashboard API.
	// The tracking endpoints accept any origin.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS"`

	// AuthRateLimit is the number of auth requests allowed per IP per minute.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`

	// PublicURL is the externally visible base URL used in tracking snippets.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// DisableMetrics removes the /metrics endpoint.
	// Env: SERVER_DISABLE_METRICS
	DisableMetrics bool `env:"DISABLE_METRICS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Blob holds the key-value store settings for accounts and configuration.
	Blob Blob `envPrefix:"BLOB_"`

	// Events holds the event database settings.
	Events Events `envPrefix:"EVENTS_"`
}

// Blob configures the badger key-value store.
type Blob struct {
	// Dir is the directory badger keeps its files in.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`

	// InMemory keeps everything in memory. Intended for tests and demos.
	// Env: STORAGE_BLOB_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Events configures the event database.
type Events struct {
	// DSN selects the backend by scheme:
	// "postgres://", "sqlite://<path>" or "clickhouse://".
	// Env: STORAGE_EVENTS_DSN
	DSN string `env:"DSN"`
}

// Tracking tunes the ingestion pipeline.
type Tracking struct {
	// BatchSize is the number of buffered events that forces a flush.
	// Env: TRACKING_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// FlushInterval is the longest time an event waits in the buffer.
	// Env: TRACKING_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`

	// QueueSize bounds the number of events waiting to be written.
	// Env: TRACKING_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// SiteRate is the sustained number of hits per second accepted per site.
	// Env: TRACKING_SITE_RATE
	SiteRate float64 `env:"SITE_RATE"`

	// SiteBurst is the burst size of the per-site limiter.
	// Env: TRACKING_SITE_BURST
	SiteBurst int `env:"SITE_BURST"`

	// SessionTimeout ends a session after this much inactivity.
	// Env: TRACKING_SESSION_TIMEOUT
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT"`

	// RespectDNT drops hits carrying "DNT: 1".
	// Env: TRACKING_RESPECT_DNT
	RespectDNT bool `env:"RESPECT_DNT"`

	// DisableHostnameCheck accepts hits whose URL host differs from the site domain.
	// Env: TRACKING_DISABLE_HOSTNAME_CHECK
	DisableHostnameCheck bool `env:"DISABLE_HOSTNAME_CHECK"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AlertInterval is how often alerts are evaluated.
	// Env: WORKERS_ALERT_INTERVAL
	AlertInterval time.Duration `env:"ALERT_INTERVAL"`

	// WebhookTimeout bounds a single webhook delivery.
	// Env: WORKERS_WEBHOOK_TIMEOUT
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT"`

	// WebhookMaxFailures deactivates a webhook after this many consecutive failures.
	// Env: WORKERS_WEBHOOK_MAX_FAILURES
	WebhookMaxFailures int `env:"WEBHOOK_MAX_FAILURES"`

	// CleanupInterval is how often idle sessions and rate limiters are evicted.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// Adapter holds the settings of the dashboard's API client.
type Adapter struct {
	// HTTPAddress is the base URL of the analytics API (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound dashboard request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are applied in the following priority order (later wins for
// non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withArgs(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	return cfg, nil
}
