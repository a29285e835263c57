package service

import (
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/ratelimit"
	"github.com/MKhiriev/go-pixel-analytics/internal/service/rbac"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Dependencies are the runtime collaborators the services share with the
// background workers.
type Dependencies struct {
	Queue     EventQueue
	Notifier  Notifier
	Sender    WebhookSender
	Processor *ingest.Processor
	Limiter   *ratelimit.Limiter
	Build     models.AppBuildInfo
}

type Services struct {
	AuthService       AuthService
	UserService       UserService
	AccessService     AccessService
	SiteService       SiteService
	GoalService       GoalService
	AnnotationService AnnotationService
	APIKeyService     APIKeyService
	TeamService       TeamService
	WebhookService    WebhookService
	AlertService      AlertService
	TrackingService   TrackingService
	StatsService      StatsService
	HeatmapService    HeatmapService
	ImportService     ImportService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, deps Dependencies, logger *logger.Logger) (*Services, error) {
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return nil, fmt.Errorf("error building access policy: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	access := NewAccessService(storages.SiteRepository, storages.TeamRepository, enforcer, logger)

	return &Services{
		AuthService:       NewAuthService(storages, cfg.App, logger),
		UserService:       NewUserService(storages, logger),
		AccessService:     access,
		SiteService:       NewSiteService(storages, access, cfg.Server, logger),
		GoalService:       NewGoalService(storages, access, logger),
		AnnotationService: NewAnnotationService(storages, access, logger),
		APIKeyService:     NewAPIKeyService(storages, logger),
		TeamService:       NewTeamService(storages, access, logger),
		WebhookService:    NewWebhookService(storages, access, deps.Sender, logger),
		AlertService:      NewAlertService(storages, access, deps.Notifier, logger),
		TrackingService:   NewTrackingService(storages.SiteRepository, deps.Processor, deps.Limiter, deps.Queue, logger),
		StatsService:      NewStatsService(storages, access, logger),
		HeatmapService:    NewHeatmapService(storages, access, logger),
		ImportService:     NewImportService(storages, access, logger),
		AppInfoService:    appInfo,
	}, nil
}
