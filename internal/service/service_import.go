package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pixel-analytics/internal/gaimport"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type importService struct {
	events store.EventRepository
	access AccessService
	parser *gaimport.Parser

	logger *logger.Logger
}

func NewImportService(storages *store.Storages, access AccessService, logger *logger.Logger) ImportService {
	return &importService{
		events: storages.EventRepository,
		access: access,
		parser: gaimport.NewParser(),
		logger: logger,
	}
}

// ImportGA stores the daily page rows of a Google Analytics export.
// Re-importing a day replaces the rows of that day and path.
func (s *importService) ImportGA(ctx context.Context, userID, siteID string, csv io.Reader) (models.ImportResult, error) {
	site, err := s.access.AuthorizeSite(ctx, userID, siteID, ActionSiteConfigure)
	if err != nil {
		return models.ImportResult{}, err
	}

	rows, result, err := s.parser.Parse(csv)
	switch {
	case errors.Is(err, gaimport.ErrEmptyFile), errors.Is(err, gaimport.ErrMissingColumn):
		return models.ImportResult{}, invalid("file", err.Error())
	case err != nil:
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	imported := gaimport.Aggregate(site.ID, rows)
	if len(imported) > 0 {
		if err = s.events.InsertImported(ctx, imported); err != nil {
			logger.FromContext(ctx).Err(err).Str("site_id", site.ID).Msg("error storing imported rows")
			return models.ImportResult{}, err
		}
	}
	result.RowsImported = len(rows)

	logger.FromContext(ctx).Info().
		Str("site_id", site.ID).
		Int("rows_read", result.RowsRead).
		Int("rows_imported", result.RowsImported).
		Int("days_paths", len(imported)).
		Msg("google analytics export imported")
	return result, nil
}
