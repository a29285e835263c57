package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/stats", "200"))

	RecordHTTPRequest("GET", "/api/stats", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/stats", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordBatchFlush(t *testing.T) {
	stored := testutil.ToFloat64(EventsStored)
	failed := testutil.ToFloat64(BatchFlushErrors)

	RecordBatchFlush(10, time.Millisecond, nil)
	RecordBatchFlush(5, time.Millisecond, errors.New("db down"))

	assert.Equal(t, stored+10, testutil.ToFloat64(EventsStored))
	assert.Equal(t, failed+1, testutil.ToFloat64(BatchFlushErrors))
}

func TestRecordEventCounters(t *testing.T) {
	received := testutil.ToFloat64(EventsReceived.WithLabelValues("pageview"))
	dropped := testutil.ToFloat64(EventsDropped.WithLabelValues("bot"))
	delivered := testutil.ToFloat64(WebhookDeliveries.WithLabelValues("delivered"))

	RecordEventReceived("pageview")
	RecordEventDropped("bot")
	RecordWebhookDelivery("delivered")

	assert.Equal(t, received+1, testutil.ToFloat64(EventsReceived.WithLabelValues("pageview")))
	assert.Equal(t, dropped+1, testutil.ToFloat64(EventsDropped.WithLabelValues("bot")))
	assert.Equal(t, delivered+1, testutil.ToFloat64(WebhookDeliveries.WithLabelValues("delivered")))
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"analytics_http_requests_total", "analytics_events_stored_total", "analytics_ingest_queue_depth")
	require.NoError(t, err)
	assert.Empty(t, problems)
}
