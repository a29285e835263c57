package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/tui"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	// stdout belongs to the terminal UI
	log := logger.NewFileLogger("pixel-analytics-dashboard", filepath.Join(os.TempDir(), "pixel-analytics-dashboard.log"))
	cfg, err := config.GetDashboardConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	client, err := adapter.NewHTTPDashboardClient(*cfg, log.Named("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	ui := tui.New(client, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("dashboard run error")
		stop()
		os.Exit(1)
	}
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
