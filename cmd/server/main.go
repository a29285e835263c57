package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/handler"
	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/live"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/pubsub"
	"github.com/MKhiriev/go-pixel-analytics/internal/ratelimit"
	"github.com/MKhiriev/go-pixel-analytics/internal/server"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/workers"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine; the environment and flags still apply
	_ = godotenv.Load()

	log := logger.NewLogger("pixel-analytics-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log.Named("store"))
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	bus := pubsub.NewBus(log.Named("bus"))
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing event bus")
		}
	}()

	batcher := workers.NewBatcher(storages.EventRepository, bus, cfg.Tracking, log.Named("batcher"))
	sessions := ingest.NewSessionTracker(cfg.Tracking.SessionTimeout)
	processor := ingest.NewProcessor(ingest.NewVisitorHasher(cfg.App.VisitorSalt), sessions, ingest.Options{
		RespectDNT:    cfg.Tracking.RespectDNT,
		CheckHostname: !cfg.Tracking.DisableHostnameCheck,
	})
	limiter := ratelimit.New(cfg.Tracking.SiteRate, cfg.Tracking.SiteBurst)
	sender := adapter.NewWebhookSender(cfg.Workers, log.Named("webhooks"))

	services, err := service.NewServices(storages, *cfg, service.Dependencies{
		Queue:     batcher,
		Notifier:  bus,
		Sender:    sender,
		Processor: processor,
		Limiter:   limiter,
		Build:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, log.Named("service"))
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	hub := live.NewHub(bus, cfg.Server.CORSOrigins, log.Named("live"))

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	background := workers.NewWorkers(
		batcher,
		workers.NewWebhookDispatcher(bus, storages.WebhookRepository, storages.GoalRepository, sender,
			cfg.Workers.WebhookMaxFailures, log.Named("dispatcher")),
		workers.NewAlertEvaluator(services.AlertService, cfg.Workers.AlertInterval, log.Named("alerts")),
		workers.NewCleanup(sessions, limiter, cfg.Workers.CleanupInterval, log.Named("cleanup")),
		hub,
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
