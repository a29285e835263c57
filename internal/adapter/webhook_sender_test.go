package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func newTestSender() *WebhookSender {
	return NewWebhookSender(config.Workers{WebhookTimeout: 2 * time.Second}, logger.Nop())
}

func testNotification() models.Notification {
	return models.Notification{
		ID:        "n1",
		Type:      models.NotifyPageview,
		SiteID:    "site-1",
		Timestamp: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Data:      map[string]string{"path": "/pricing"},
	}
}

func TestWebhookSender_Send_SignsBody(t *testing.T) {
	const secret = "whsec-test"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, models.NotifyPageview, r.Header.Get(HeaderEvent))
		assert.Equal(t, "n1", r.Header.Get(HeaderDelivery))
		assert.True(t, utils.VerifySignature(body, secret, r.Header.Get(HeaderSignature)))

		var n models.Notification
		require.NoError(t, json.Unmarshal(body, &n))
		assert.Equal(t, "site-1", n.SiteID)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := models.Webhook{ID: "h1", URL: srv.URL, Secret: secret}
	result := newTestSender().Send(context.Background(), hook, testNotification())

	assert.True(t, result.Delivered)
	assert.Equal(t, http.StatusNoContent, result.StatusCode)
	assert.Equal(t, "h1", result.WebhookID)
	assert.Empty(t, result.Error)
}

func TestWebhookSender_Send_Failures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name:       "server error",
			handler:    func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "client error",
			handler:    func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusGone) },
			wantStatus: http.StatusGone,
		},
		{
			name: "redirect is not followed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "http://127.0.0.1:1/elsewhere", http.StatusFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			result := newTestSender().Send(context.Background(), models.Webhook{ID: "h1", URL: srv.URL}, testNotification())

			assert.False(t, result.Delivered)
			assert.NotEmpty(t, result.Error)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, result.StatusCode)
			}
		})
	}
}

func TestWebhookSender_Send_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	result := newTestSender().Send(context.Background(), models.Webhook{ID: "h1", URL: url}, testNotification())

	assert.False(t, result.Delivered)
	assert.Zero(t, result.StatusCode)
	assert.NotEmpty(t, result.Error)
}

func TestWebhookSender_CircuitOpensPerWebhook(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := newTestSender()
	broken := models.Webhook{ID: "broken", URL: srv.URL}

	for range breakerTripFailures {
		result := sender.Send(context.Background(), broken, testNotification())
		require.False(t, result.Delivered)
	}
	require.Equal(t, int32(breakerTripFailures), hits.Load())

	result := sender.Send(context.Background(), broken, testNotification())
	assert.False(t, result.Delivered)
	assert.Contains(t, result.Error, "circuit open")
	assert.Equal(t, int32(breakerTripFailures), hits.Load(), "open circuit must not reach the endpoint")

	// another webhook on the same host has its own breaker
	sender.Send(context.Background(), models.Webhook{ID: "other", URL: srv.URL}, testNotification())
	assert.Equal(t, int32(breakerTripFailures+1), hits.Load())

	// forgetting the webhook resets its breaker
	sender.Forget("broken")
	sender.Send(context.Background(), broken, testNotification())
	assert.Equal(t, int32(breakerTripFailures+2), hits.Load())
}
