package config

import (
	"fmt"
	"os"
	"time"
)

// DashboardConfig is the configuration of the terminal dashboard.
type DashboardConfig struct {
	// APIAddress is the base URL of the analytics API.
	APIAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// LogLevel is the zerolog level of the dashboard's file logger.
	LogLevel string
}

// GetDashboardConfig builds and validates the dashboard config from the same
// sources as the server, keeping only the adapter settings.
func GetDashboardConfig() (*DashboardConfig, error) {
	cfg, err := newConfigBuilder().
		withArgs(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dashboardCfg := &DashboardConfig{
		APIAddress:     cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
	}

	return dashboardCfg, dashboardCfg.validate()
}
