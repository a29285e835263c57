// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of the analytics service.
//
// [DashboardClient] decouples the terminal dashboard from the REST API it
// talks to. [WebhookSender] POSTs signed notifications to customer webhooks,
// each webhook behind its own circuit breaker.
//
// Error responses of the API are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DashboardClient is the API surface used by the terminal dashboard.
type DashboardClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Login authenticates with e-mail and password and stores the returned
	// token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout revokes the stored token on the server and forgets it.
	Logout(ctx context.Context) error

	ListSites(ctx context.Context) ([]models.SiteResponse, error)
	Stats(ctx context.Context, siteID string, period models.Period) (models.StatsReport, error)
	Realtime(ctx context.Context, siteID string) (models.Realtime, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
