package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/ratelimit"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

func newTestTrackingService(t *testing.T, queue EventQueue, burst int) *trackingService {
	t.Helper()

	storages := newTestStorages(t)
	require.NoError(t, storages.SiteRepository.CreateSite(context.Background(),
		models.Site{ID: "s1", OwnerID: "u1", Domain: "example.com"}))

	processor := ingest.NewProcessor(ingest.NewVisitorHasher("secret"), ingest.NewSessionTracker(30*time.Minute),
		ingest.Options{RespectDNT: true, CheckHostname: true})
	svc := NewTrackingService(storages.SiteRepository, processor, ratelimit.New(1, burst), queue, logger.Nop()).(*trackingService)
	svc.now = func() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestTrackingService_Track(t *testing.T) {
	queue := &fakeQueue{}
	svc := newTestTrackingService(t, queue, 100)
	client := models.ClientInfo{IP: "203.0.113.7", UserAgent: browserUA}

	err := svc.Track(context.Background(), models.TrackRequest{
		SiteID: "s1",
		URL:    "https://www.example.com/pricing?utm_source=newsletter",
	}, client)
	require.NoError(t, err)

	require.Len(t, queue.events, 1)
	event := queue.events[0]
	assert.Equal(t, models.EventPageview, event.Type)
	assert.Equal(t, "/pricing", event.Path)
	assert.Equal(t, "newsletter", event.UTMSource)
	assert.NotEmpty(t, event.VisitorID)
	assert.NotContains(t, event.VisitorID, "203.0.113.7")
}

func TestTrackingService_Track_Outcomes(t *testing.T) {
	x, y := 0.5, 0.25

	tests := []struct {
		name     string
		req      models.TrackRequest
		client   models.ClientInfo
		wantErr  error
		enqueued bool
	}{
		{
			name:     "custom event",
			req:      models.TrackRequest{SiteID: "s1", Type: models.EventCustom, Name: "Signup", URL: "/welcome"},
			client:   models.ClientInfo{UserAgent: browserUA},
			enqueued: true,
		},
		{
			name:     "click",
			req:      models.TrackRequest{SiteID: "s1", Type: models.EventClick, URL: "/", X: &x, Y: &y},
			client:   models.ClientInfo{UserAgent: browserUA},
			enqueued: true,
		},
		{
			name:    "missing url",
			req:     models.TrackRequest{SiteID: "s1"},
			wantErr: ErrValidation,
		},
		{
			name:    "custom event without name",
			req:     models.TrackRequest{SiteID: "s1", Type: models.EventCustom, URL: "/"},
			client:  models.ClientInfo{UserAgent: browserUA},
			wantErr: ErrValidation,
		},
		{
			name:    "unknown site",
			req:     models.TrackRequest{SiteID: "nope", URL: "/"},
			wantErr: ErrSiteNotFound,
		},
		{
			name:   "bot is dropped silently",
			req:    models.TrackRequest{SiteID: "s1", URL: "/"},
			client: models.ClientInfo{UserAgent: "Googlebot/2.1 (+http://www.google.com/bot.html)"},
		},
		{
			name:   "do not track is honoured",
			req:    models.TrackRequest{SiteID: "s1", URL: "/"},
			client: models.ClientInfo{UserAgent: browserUA, DNT: true},
		},
		{
			name:   "foreign host is dropped",
			req:    models.TrackRequest{SiteID: "s1", URL: "https://copycat.net/"},
			client: models.ClientInfo{UserAgent: browserUA},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := &fakeQueue{}
			svc := newTestTrackingService(t, queue, 100)

			err := svc.Track(context.Background(), tt.req, tt.client)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.enqueued, len(queue.events) == 1)
		})
	}
}

func TestTrackingService_Track_RateLimited(t *testing.T) {
	svc := newTestTrackingService(t, &fakeQueue{}, 2)
	ctx := context.Background()
	req := models.TrackRequest{SiteID: "s1", URL: "/"}
	client := models.ClientInfo{UserAgent: browserUA}

	require.NoError(t, svc.Track(ctx, req, client))
	require.NoError(t, svc.Track(ctx, req, client))

	err := svc.Track(ctx, req, client)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, ratelimit.ErrLimitExceeded)
}

func TestTrackingService_Track_QueueFull(t *testing.T) {
	queue := &fakeQueue{enqueueF: func(...models.Event) error { return errors.New("queue is full") }}
	svc := newTestTrackingService(t, queue, 100)

	err := svc.Track(context.Background(), models.TrackRequest{SiteID: "s1", URL: "/"}, models.ClientInfo{UserAgent: browserUA})
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.ErrorIs(t, err, ErrUnavailable)
}
