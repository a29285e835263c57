package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts.
type UserRepository interface {
	// CreateUser stores a new user. It returns [ErrAlreadyExists] when the
	// e-mail is taken.
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
}

// SiteRepository stores tracked sites.
type SiteRepository interface {
	// CreateSite stores a new site. It returns [ErrAlreadyExists] when the
	// owner already has a site with the same domain.
	CreateSite(ctx context.Context, site models.Site) error
	GetSite(ctx context.Context, id string) (models.Site, error)
	UpdateSite(ctx context.Context, site models.Site) error
	// DeleteSite removes the site together with its goals, webhooks,
	// alerts and annotations.
	DeleteSite(ctx context.Context, id string) error
	ListSitesByOwner(ctx context.Context, ownerID string) ([]models.Site, error)
	ListSitesByTeam(ctx context.Context, teamID string) ([]models.Site, error)
}

// GoalRepository stores conversion goals.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) error
	GetGoal(ctx context.Context, id string) (models.Goal, error)
	ListGoals(ctx context.Context, siteID string) ([]models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// WebhookRepository stores webhook subscriptions.
type WebhookRepository interface {
	CreateWebhook(ctx context.Context, webhook models.Webhook) error
	GetWebhook(ctx context.Context, id string) (models.Webhook, error)
	ListWebhooks(ctx context.Context, siteID string) ([]models.Webhook, error)
	UpdateWebhook(ctx context.Context, webhook models.Webhook) error
	DeleteWebhook(ctx context.Context, id string) error
}

// AlertRepository stores threshold alerts.
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert models.Alert) error
	GetAlert(ctx context.Context, id string) (models.Alert, error)
	ListAlerts(ctx context.Context, siteID string) ([]models.Alert, error)
	// ListAllAlerts returns the alerts of every site.
	ListAllAlerts(ctx context.Context) ([]models.Alert, error)
	UpdateAlert(ctx context.Context, alert models.Alert) error
	DeleteAlert(ctx context.Context, id string) error
}

// AnnotationRepository stores chart annotations.
type AnnotationRepository interface {
	CreateAnnotation(ctx context.Context, annotation models.Annotation) error
	GetAnnotation(ctx context.Context, id string) (models.Annotation, error)
	ListAnnotations(ctx context.Context, siteID string) ([]models.Annotation, error)
	DeleteAnnotation(ctx context.Context, id string) error
}

// APIKeyRepository stores hashed API keys.
type APIKeyRepository interface {
	CreateAPIKey(ctx context.Context, key models.APIKey) error
	GetAPIKey(ctx context.Context, id string) (models.APIKey, error)
	FindAPIKeyByHash(ctx context.Context, hash string) (models.APIKey, error)
	ListAPIKeys(ctx context.Context, userID string) ([]models.APIKey, error)
	UpdateAPIKey(ctx context.Context, key models.APIKey) error
	DeleteAPIKey(ctx context.Context, id string) error
}

// TeamRepository stores teams and keeps the member index in sync.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team models.Team) error
	GetTeam(ctx context.Context, id string) (models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) error
	// ListTeamsByUser returns the teams userID owns or belongs to.
	ListTeamsByUser(ctx context.Context, userID string) ([]models.Team, error)
}

// TokenRepository tracks revoked access tokens until they expire.
type TokenRepository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// EventRepository stores tracked events and answers aggregate queries over
// them. Timestamps are unix milliseconds in UTC; ranges are half-open
// [From, To).
type EventRepository interface {
	InsertEvents(ctx context.Context, events []models.Event) error
	// InsertImported upserts imported daily rows keyed by (site, day, path).
	InsertImported(ctx context.Context, rows []models.ImportedPageviews) error

	// Summary returns pageviews, visitors, sessions and custom events.
	// BounceRate is left to the caller, see Bounces.
	Summary(ctx context.Context, filter models.EventFilter) (models.Summary, error)
	// Bounces counts sessions with exactly one pageview.
	Bounces(ctx context.Context, filter models.EventFilter) (int64, error)
	// Timeseries groups by buckets of size milliseconds starting at offset
	// (bucket = (ts - offset) / size * size + offset). Empty buckets are
	// not returned.
	Timeseries(ctx context.Context, filter models.EventFilter, size, offset int64) ([]models.TimeseriesPoint, error)
	Breakdown(ctx context.Context, filter models.EventFilter, dim models.Dimension, limit int) ([]models.BreakdownItem, error)
	// GoalConversions returns one entry per goal with conversions and
	// converted visitors; ConversionRate is left to the caller.
	GoalConversions(ctx context.Context, filter models.EventFilter, goals []models.Goal) ([]models.GoalConversion, error)
	ActiveVisitors(ctx context.Context, siteID string, since int64) (int64, error)
	Clicks(ctx context.Context, filter models.EventFilter, path string, limit int) ([]models.Click, error)
	// ImportedDaily returns imported rows for days in [fromDay, toDay].
	ImportedDaily(ctx context.Context, siteID, fromDay, toDay string) ([]models.ImportedPageviews, error)
	CountEvents(ctx context.Context, siteIDs []string, from, to int64) (int64, error)
	DeleteSite(ctx context.Context, siteID string) error

	// Classify tells whether err returned by this repository is worth retrying.
	Classify(err error) ErrorClassification
	Close() error
}
