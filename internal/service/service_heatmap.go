package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/stats"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type heatmapService struct {
	events store.EventRepository
	access AccessService

	sanitizer ingest.Sanitizer
	now       func() time.Time

	logger *logger.Logger
}

func NewHeatmapService(storages *store.Storages, access AccessService, logger *logger.Logger) HeatmapService {
	return &heatmapService{
		events:    storages.EventRepository,
		access:    access,
		sanitizer: ingest.NewSanitizer(),
		now:       time.Now,
		logger:    logger,
	}
}

// Heatmap aggregates click positions recorded on one page. The path goes
// through the same sanitizer as tracked URLs so it matches stored paths.
func (h *heatmapService) Heatmap(ctx context.Context, userID string, params models.HeatmapParams) (models.Heatmap, error) {
	if params.Path == "" {
		return models.Heatmap{}, invalid("path", "path is required")
	}
	page, err := h.sanitizer.Page(params.Path)
	if err != nil {
		return models.Heatmap{}, invalid("path", "path must be a page path or URL")
	}

	site, err := h.access.AuthorizeSite(ctx, userID, params.SiteID, ActionStatsRead)
	if err != nil {
		return models.Heatmap{}, err
	}

	r, err := stats.ResolveRange(params.Period, params.From, params.To, h.now())
	if err != nil {
		return models.Heatmap{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	filter := stats.Filter(site.ID, r, nil)
	filter.Types = []models.EventType{models.EventClick}
	clicks, err := h.events.Clicks(ctx, filter, page.Path, stats.MaxHeatmapClicks)
	if err != nil {
		return models.Heatmap{}, err
	}

	cells, total, maxCell := stats.BuildHeatmap(clicks, models.HeatmapGridSize)
	return models.Heatmap{
		SiteID:      site.ID,
		Path:        page.Path,
		Range:       r,
		GridSize:    models.HeatmapGridSize,
		Cells:       cells,
		TotalClicks: total,
		MaxCell:     maxCell,
	}, nil
}
