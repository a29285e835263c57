// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.VisitorSalt == "" {
		return ErrMissingVisitorSalt
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Events.DSN == "" || (cfg.Storage.Blob.Dir == "" && !cfg.Storage.Blob.InMemory) {
		return ErrInvalidStorageConfigs
	}

	t := cfg.Tracking
	if t.BatchSize <= 0 || t.FlushInterval <= 0 || t.QueueSize < t.BatchSize ||
		t.SiteRate <= 0 || t.SiteBurst <= 0 || t.SessionTimeout <= 0 {
		return ErrInvalidTrackingConfigs
	}

	w := cfg.Workers
	if w.AlertInterval <= 0 || w.WebhookTimeout <= 0 || w.WebhookMaxFailures <= 0 || w.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DashboardConfig) validate() error {
	if cfg.APIAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.APIAddress, "http://") && !strings.HasPrefix(cfg.APIAddress, "https://") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
