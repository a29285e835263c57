package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/ratelimit"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// trackingService is the entry point of the ingestion pipeline.
type trackingService struct {
	sites     store.SiteRepository
	processor *ingest.Processor
	limiter   *ratelimit.Limiter
	queue     EventQueue

	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewTrackingService(sites store.SiteRepository, processor *ingest.Processor, limiter *ratelimit.Limiter, queue EventQueue, logger *logger.Logger) TrackingService {
	return &trackingService{
		sites:     sites,
		processor: processor,
		limiter:   limiter,
		queue:     queue,
		validator: validators.NewValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Track validates the hit, resolves its site, applies the per-site rate
// limit and queues the processed event. Bots, prefetches, DNT hits and hits
// from foreign hosts are counted and dropped without an error.
func (t *trackingService) Track(ctx context.Context, req models.TrackRequest, client models.ClientInfo) error {
	log := logger.FromContext(ctx)

	if err := t.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	site, err := t.sites.GetSite(ctx, req.SiteID)
	if err != nil {
		return storeError(err, ErrSiteNotFound, nil)
	}

	if err = t.limiter.Check(site.ID); err != nil {
		metrics.RecordEventDropped("rate_limited")
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	event, err := t.processor.Process(req, client, site, t.now())
	switch {
	case errors.Is(err, ingest.ErrDropped):
		reason := ingest.DropReason(err)
		metrics.RecordEventDropped(reason)
		log.Debug().Str("site_id", site.ID).Str("reason", reason).Msg("hit dropped")
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err = t.queue.Enqueue(event); err != nil {
		metrics.RecordEventDropped("queue_full")
		log.Warn().Err(err).Str("site_id", site.ID).Msg("event queue rejected hit")
		return ErrQueueFull
	}

	metrics.RecordEventReceived(string(event.Type))
	return nil
}
