package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, models.Token, error)
	// Logout revokes the token until it expires.
	Logout(ctx context.Context, token models.Token) error
	// ParseToken validates a signed JWT and rejects revoked tokens.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// AuthenticateAPIKey resolves a plaintext API key to its stored record.
	AuthenticateAPIKey(ctx context.Context, key string) (models.APIKey, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type UserService interface {
	Status(ctx context.Context, userID string) (models.UserStatus, error)
	ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error
}

// AccessService decides what a user may do with a site or team.
type AccessService interface {
	// AuthorizeSite loads the site and checks that userID may perform action on it.
	AuthorizeSite(ctx context.Context, userID, siteID string, action Action) (models.Site, error)
	// AuthorizeTeam loads the team and checks that userID may perform action on it.
	AuthorizeTeam(ctx context.Context, userID, teamID string, action Action) (models.Team, error)
}

type SiteService interface {
	CreateSite(ctx context.Context, userID string, req models.SiteRequest) (models.SiteResponse, error)
	GetSite(ctx context.Context, userID, siteID string) (models.SiteResponse, error)
	// ListSites returns the sites the user owns followed by the sites shared
	// with the user's teams.
	ListSites(ctx context.Context, userID string) ([]models.SiteResponse, error)
	UpdateSite(ctx context.Context, userID, siteID string, req models.SiteRequest) (models.SiteResponse, error)
	// DeleteSite removes the site, its configuration records and its events.
	DeleteSite(ctx context.Context, userID, siteID string) error
}

type GoalService interface {
	CreateGoal(ctx context.Context, userID string, req models.GoalRequest) (models.Goal, error)
	ListGoals(ctx context.Context, userID, siteID string) ([]models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

type AnnotationService interface {
	CreateAnnotation(ctx context.Context, userID string, req models.AnnotationRequest) (models.Annotation, error)
	ListAnnotations(ctx context.Context, userID, siteID string) ([]models.Annotation, error)
	DeleteAnnotation(ctx context.Context, userID, annotationID string) error
}

type APIKeyService interface {
	// CreateAPIKey returns the only copy of the plaintext key.
	CreateAPIKey(ctx context.Context, userID string, req models.APIKeyRequest) (models.CreatedAPIKey, error)
	ListAPIKeys(ctx context.Context, userID string) ([]models.APIKey, error)
	DeleteAPIKey(ctx context.Context, userID, keyID string) error
}

type TeamService interface {
	CreateTeam(ctx context.Context, userID string, req models.TeamRequest) (models.Team, error)
	ListTeams(ctx context.Context, userID string) ([]models.Team, error)
	GetTeam(ctx context.Context, userID, teamID string) (models.Team, error)
	AddMember(ctx context.Context, userID, teamID string, req models.MemberRequest) (models.Team, error)
	// RemoveMember removes memberID from the team. Members may remove themselves.
	RemoveMember(ctx context.Context, userID, teamID, memberID string) (models.Team, error)
}

type WebhookService interface {
	// CreateWebhook returns the webhook with its signing secret; the secret
	// is never returned again.
	CreateWebhook(ctx context.Context, userID string, req models.WebhookRequest) (models.Webhook, error)
	ListWebhooks(ctx context.Context, userID, siteID string) ([]models.Webhook, error)
	DeleteWebhook(ctx context.Context, userID, webhookID string) error
	// TestWebhook sends a webhook.test notification synchronously.
	TestWebhook(ctx context.Context, userID, webhookID string) (models.DeliveryResult, error)
}

type AlertService interface {
	CreateAlert(ctx context.Context, userID string, req models.AlertRequest) (models.Alert, error)
	ListAlerts(ctx context.Context, userID, siteID string) ([]models.Alert, error)
	DeleteAlert(ctx context.Context, userID, alertID string) error
	// EvaluateAlerts checks every enabled alert at now and returns the ones
	// that fired.
	EvaluateAlerts(ctx context.Context, now time.Time) ([]models.AlertFired, error)
}

type TrackingService interface {
	// Track runs a hit through the ingestion pipeline. Dropped hits return nil.
	Track(ctx context.Context, req models.TrackRequest, client models.ClientInfo) error
}

type StatsService interface {
	Report(ctx context.Context, userID string, params models.StatsParams) (models.StatsReport, error)
	Realtime(ctx context.Context, userID, siteID string) (models.Realtime, error)
}

type HeatmapService interface {
	Heatmap(ctx context.Context, userID string, params models.HeatmapParams) (models.Heatmap, error)
}

type ImportService interface {
	// ImportGA reads a Google Analytics CSV export into the imported table of the site.
	ImportGA(ctx context.Context, userID, siteID string, csv io.Reader) (models.ImportResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// EventQueue accepts events for asynchronous storage.
type EventQueue interface {
	// Enqueue must not block; it fails when the queue is full.
	Enqueue(events ...models.Event) error
}

// Notifier publishes notifications for webhook delivery.
type Notifier interface {
	PublishNotification(n models.Notification) error
}

// WebhookSender delivers a notification to one webhook.
type WebhookSender interface {
	Send(ctx context.Context, hook models.Webhook, n models.Notification) models.DeliveryResult
}
