package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/mock"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var _ service.EventQueue = (*Batcher)(nil)

type fakePublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (p *fakePublisher) PublishEvents(events []models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *fakePublisher) published() []models.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Event(nil), p.events...)
}

func newTestBatcher(t *testing.T, cfg config.Tracking) (*Batcher, *mock.MockEventRepository, *fakePublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockEventRepository(ctrl)
	pub := &fakePublisher{}

	b := NewBatcher(repo, pub, cfg, logger.Nop())
	b.retryBackoff = time.Millisecond
	return b, repo, pub
}

func testEvents(n int) []models.Event {
	events := make([]models.Event, n)
	for i := range events {
		events[i] = models.Event{ID: string(rune('a' + i)), SiteID: "site-1", Type: models.EventPageview, Path: "/"}
	}
	return events
}

func serveBatcher(t *testing.T, b *Batcher) (cancel func() error) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Serve(ctx) }()

	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("batcher did not stop")
			return nil
		}
	}
}

func TestBatcher_FlushesFullBatch(t *testing.T) {
	b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 3, FlushInterval: time.Hour, QueueSize: 10})

	written := make(chan struct{})
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(context.Context, []models.Event) error {
			close(written)
			return nil
		})

	stop := serveBatcher(t, b)
	require.NoError(t, b.Enqueue(testEvents(3)...))

	select {
	case <-written:
	case <-time.After(2 * time.Second):
		t.Fatal("batch was not written")
	}
	assert.ErrorIs(t, stop(), context.Canceled)
	assert.Len(t, pub.published(), 3)
}

func TestBatcher_FlushesOnInterval(t *testing.T) {
	b, repo, _ := newTestBatcher(t, config.Tracking{BatchSize: 100, FlushInterval: 20 * time.Millisecond, QueueSize: 10})

	written := make(chan struct{})
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(context.Context, []models.Event) error {
			close(written)
			return nil
		})

	stop := serveBatcher(t, b)
	require.NoError(t, b.Enqueue(testEvents(2)...))

	select {
	case <-written:
	case <-time.After(2 * time.Second):
		t.Fatal("batch was not written on interval")
	}
	_ = stop()
}

func TestBatcher_DrainsQueueOnStop(t *testing.T) {
	b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 100, FlushInterval: time.Hour, QueueSize: 10})
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(4)).Return(nil)

	require.NoError(t, b.Enqueue(testEvents(4)...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Serve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, pub.published(), 4)
}

func TestBatcher_StopDoesNotAbortWrite(t *testing.T) {
	b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 3, FlushInterval: time.Hour, QueueSize: 10})
	ctx, stop := context.WithCancel(context.Background())

	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(writeCtx context.Context, _ []models.Event) error {
			stop()
			<-ctx.Done()
			return writeCtx.Err()
		})

	require.NoError(t, b.Enqueue(testEvents(3)...))

	assert.ErrorIs(t, b.Serve(ctx), context.Canceled)
	assert.Len(t, pub.published(), 3)
}

func TestBatcher_Enqueue_QueueFull(t *testing.T) {
	b, _, _ := newTestBatcher(t, config.Tracking{BatchSize: 10, FlushInterval: time.Hour, QueueSize: 2})

	err := b.Enqueue(testEvents(3)...)

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Len(t, b.queue, 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.QueueDepth))
}

func TestBatcher_Flush(t *testing.T) {
	errTransient := errors.New("connection reset")
	errBadData := errors.New("invalid input")

	tests := []struct {
		name          string
		results       []error
		class         store.ErrorClassification
		wantPublished int
	}{
		{
			name:          "first attempt",
			results:       []error{nil},
			wantPublished: 2,
		},
		{
			name:          "retryable then success",
			results:       []error{errTransient, errTransient, nil},
			class:         store.Retryable,
			wantPublished: 2,
		},
		{
			name:    "retryable gives up after three attempts",
			results: []error{errTransient, errTransient, errTransient},
			class:   store.Retryable,
		},
		{
			name:    "non-retryable is not retried",
			results: []error{errBadData},
			class:   store.NonRetryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 10, FlushInterval: time.Hour, QueueSize: 10})

			calls := make([]any, 0, len(tt.results))
			for _, res := range tt.results {
				calls = append(calls, repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(2)).Return(res))
			}
			gomock.InOrder(calls...)
			repo.EXPECT().Classify(gomock.Any()).Return(tt.class).AnyTimes()

			b.flush(context.Background(), testEvents(2))

			assert.Len(t, pub.published(), tt.wantPublished)
		})
	}
}

func TestBatcher_Flush_PublishErrorIsNotFatal(t *testing.T) {
	b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 10, FlushInterval: time.Hour, QueueSize: 10})
	pub.err = errors.New("bus closed")
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Any()).Return(nil)

	assert.NotPanics(t, func() { b.flush(context.Background(), testEvents(1)) })
}

func TestBatcher_Flush_PublishesCopy(t *testing.T) {
	b, repo, pub := newTestBatcher(t, config.Tracking{BatchSize: 10, FlushInterval: time.Hour, QueueSize: 10})
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Any()).Return(nil)

	batch := testEvents(1)
	b.flush(context.Background(), batch)
	batch[0].Path = "/changed"

	require.Len(t, pub.published(), 1)
	assert.Equal(t, "/", pub.published()[0].Path)
}
