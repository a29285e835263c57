// Package metrics registers the Prometheus collectors of the analytics
// server with the default registry and offers small helpers to record them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Ingestion

	EventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_received_total",
			Help: "Accepted hits by event type",
		},
		[]string{"type"},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_dropped_total",
			Help: "Hits ignored by the ingestion pipeline by reason",
		},
		[]string{"reason"},
	)

	EventsStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_stored_total",
			Help: "Events written to the event database",
		},
	)

	BatchFlushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_batch_flush_duration_seconds",
			Help:    "Duration of batch writes to the event database",
			Buckets: prometheus.DefBuckets,
		},
	)

	BatchFlushErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_batch_flush_errors_total",
			Help: "Batches that could not be written after retries",
		},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_ingest_queue_depth",
			Help: "Events waiting to be written",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_active_sessions",
			Help: "Sessions tracked in memory",
		},
	)

	// Workers

	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_webhook_deliveries_total",
			Help: "Webhook deliveries by result",
		},
		[]string{"result"},
	)

	AlertsTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_alerts_triggered_total",
			Help: "Alerts that fired",
		},
	)

	LiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_live_connections",
			Help: "Open live stream WebSocket connections",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordEventReceived(eventType string) {
	EventsReceived.WithLabelValues(eventType).Inc()
}

func RecordEventDropped(reason string) {
	EventsDropped.WithLabelValues(reason).Inc()
}

// RecordBatchFlush records a batch write attempt.
func RecordBatchFlush(size int, duration time.Duration, err error) {
	BatchFlushDuration.Observe(duration.Seconds())
	if err != nil {
		BatchFlushErrors.Inc()
		return
	}
	EventsStored.Add(float64(size))
}

// RecordWebhookDelivery records a delivery outcome: "delivered", "failed"
// or "circuit_open".
func RecordWebhookDelivery(result string) {
	WebhookDeliveries.WithLabelValues(result).Inc()
}
