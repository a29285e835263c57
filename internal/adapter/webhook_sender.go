package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Webhook request headers.
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderEvent     = "X-Webhook-Event"
	HeaderDelivery  = "X-Webhook-Delivery"
)

const (
	// breakerTripFailures opens a webhook's circuit after this many
	// consecutive failed deliveries.
	breakerTripFailures = 5
	breakerOpenTimeout  = time.Minute
)

var errUnexpectedStatus = errors.New("unexpected status")

// WebhookSender POSTs signed notifications to webhook URLs. Every webhook has
// its own circuit breaker so a dead endpoint is not hit on every event.
type WebhookSender struct {
	client *utils.HTTPClient

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*resty.Response]

	logger *logger.Logger
}

func NewWebhookSender(cfg config.Workers, logger *logger.Logger) *WebhookSender {
	client := utils.NewHTTPClient(cfg.WebhookTimeout)
	client.SetRedirectPolicy(resty.NoRedirectPolicy())

	return &WebhookSender{
		client:   client,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*resty.Response]),
		logger:   logger.Named("webhook-sender"),
	}
}

// Send delivers n to hook. The body is signed with the webhook secret:
// X-Webhook-Signature carries "sha256=" and the hex HMAC-SHA256 of the body.
// Any non-2xx status counts as a failure.
func (s *WebhookSender) Send(ctx context.Context, hook models.Webhook, n models.Notification) models.DeliveryResult {
	result := models.DeliveryResult{WebhookID: hook.ID}

	body, err := json.Marshal(n)
	if err != nil {
		result.Error = fmt.Sprintf("encode notification: %v", err)
		metrics.RecordWebhookDelivery("failed")
		return result
	}

	resp, err := s.breaker(hook.ID).Execute(func() (*resty.Response, error) {
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader(HeaderSignature, utils.SignPayload(body, hook.Secret)).
			SetHeader(HeaderEvent, n.Type).
			SetHeader(HeaderDelivery, n.ID).
			SetBody(body).
			Post(hook.URL)
		if err != nil {
			return resp, err
		}
		if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
			return resp, fmt.Errorf("%w %d", errUnexpectedStatus, resp.StatusCode())
		}
		return resp, nil
	})
	if resp != nil {
		result.StatusCode = resp.StatusCode()
	}

	switch {
	case err == nil:
		result.Delivered = true
		metrics.RecordWebhookDelivery("delivered")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result.Error = "circuit open: " + err.Error()
		metrics.RecordWebhookDelivery("circuit_open")
	default:
		result.Error = err.Error()
		metrics.RecordWebhookDelivery("failed")
	}
	return result
}

// Forget drops the circuit breaker of a deleted webhook.
func (s *WebhookSender) Forget(hookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.breakers, hookID)
}

func (s *WebhookSender) breaker(hookID string) *gobreaker.CircuitBreaker[*resty.Response] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, ok := s.breakers[hookID]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        hookID,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Info().
				Str("webhook_id", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("webhook circuit state changed")
		},
	})
	s.breakers[hookID] = cb
	return cb
}
