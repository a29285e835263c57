package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	flushAttempts = 3

	// flushTimeout bounds one batch write, retries included. Writes are
	// detached from the worker context so a stop never aborts them midway.
	flushTimeout = 10 * time.Second
)

// ErrQueueFull is returned by [Batcher.Enqueue] when the queue has no room.
var ErrQueueFull = errors.New("event queue is full")

// Batcher buffers tracked events and writes them to the event database in
// batches. A batch is written when BatchSize events are buffered or
// FlushInterval has passed since the last write, whichever comes first.
type Batcher struct {
	events    store.EventRepository
	publisher EventPublisher

	queue         chan models.Event
	batchSize     int
	flushInterval time.Duration
	retryBackoff  time.Duration

	logger *logger.Logger
}

func NewBatcher(events store.EventRepository, publisher EventPublisher, cfg config.Tracking, logger *logger.Logger) *Batcher {
	return &Batcher{
		events:        events,
		publisher:     publisher,
		queue:         make(chan models.Event, cfg.QueueSize),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		retryBackoff:  200 * time.Millisecond,
		logger:        logger.Named("batcher"),
	}
}

// Enqueue adds events to the queue without blocking. Events that do not fit
// are rejected with [ErrQueueFull]; the ones before them stay queued.
func (b *Batcher) Enqueue(events ...models.Event) error {
	defer func() { metrics.QueueDepth.Set(float64(len(b.queue))) }()

	for _, e := range events {
		select {
		case b.queue <- e:
		default:
			return ErrQueueFull
		}
	}
	return nil
}

// Serve collects queued events until ctx is done, then drains the queue and
// writes what is left.
func (b *Batcher) Serve(ctx context.Context) error {
	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	batch := make([]models.Event, 0, b.batchSize)
	for {
		select {
		case <-ctx.Done():
			b.shutdown(ctx, batch)
			return ctx.Err()

		case e := <-b.queue:
			batch = append(batch, e)
			if len(batch) >= b.batchSize {
				b.flush(ctx, batch)
				batch = batch[:0]
				ticker.Reset(b.flushInterval)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *Batcher) String() string {
	return "batcher"
}

func (b *Batcher) shutdown(ctx context.Context, batch []models.Event) {
	for {
		select {
		case e := <-b.queue:
			batch = append(batch, e)
			if len(batch) >= b.batchSize {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
			continue
		default:
		}
		break
	}

	if len(batch) > 0 {
		b.flush(ctx, batch)
	}
	b.logger.Info().Msg("event queue drained")
}

// flush writes batch, retrying errors the repository classifies as
// retryable. A batch that still fails is dropped.
func (b *Batcher) flush(ctx context.Context, batch []models.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	started := time.Now()
	metrics.QueueDepth.Set(float64(len(b.queue)))

	var err error
	for attempt := 1; attempt <= flushAttempts; attempt++ {
		if err = b.events.InsertEvents(ctx, batch); err == nil {
			break
		}
		if b.events.Classify(err) != store.Retryable || attempt == flushAttempts {
			break
		}

		b.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying batch write")
		select {
		case <-time.After(time.Duration(attempt) * b.retryBackoff):
		case <-ctx.Done():
			err = errors.Join(err, ctx.Err())
			attempt = flushAttempts
		}
	}

	metrics.RecordBatchFlush(len(batch), time.Since(started), err)
	if err != nil {
		b.logger.Err(err).Int("events", len(batch)).Msg("dropping batch after failed write")
		return
	}

	b.logger.Debug().Int("events", len(batch)).Dur("took", time.Since(started)).Msg("batch written")
	if b.publisher == nil {
		return
	}
	// the bus owns the slice after publishing
	published := make([]models.Event, len(batch))
	copy(published, batch)
	if err = b.publisher.PublishEvents(published); err != nil {
		b.logger.Err(err).Msg("error publishing stored events")
	}
}
