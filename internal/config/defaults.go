package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-pixel-analytics",
			TokenDuration: 24 * time.Hour,
			Version:       "0.0.0-dev",
			LogLevel:      "info",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
			CORSOrigins:    []string{"*"},
			AuthRateLimit:  10,
			PublicURL:      "http://localhost:8080",
		},
		Storage: Storage{
			Blob:   Blob{Dir: "data/blob"},
			Events: Events{DSN: "sqlite://data/events.db"},
		},
		Tracking: Tracking{
			BatchSize:      500,
			FlushInterval:  2 * time.Second,
			QueueSize:      10_000,
			SiteRate:       50,
			SiteBurst:      100,
			SessionTimeout: 30 * time.Minute,
		},
		Workers: Workers{
			AlertInterval:      time.Minute,
			WebhookTimeout:     5 * time.Second,
			WebhookMaxFailures: 10,
			CleanupInterval:    time.Minute,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
