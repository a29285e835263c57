package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
)

func loggedRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(zerolog.New(buf).WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		handler  http.HandlerFunc
		wantLogs []string
	}{
		{
			name:   "status and size",
			method: http.MethodGet,
			target: "/api/sites?limit=5",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("[]"))
			},
			wantLogs: []string{`"method":"GET"`, `"uri":"/api/sites?limit=5"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "error status",
			method: http.MethodPost,
			target: "/api/goals",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantLogs: []string{`"method":"POST"`, `"status":400`, `"size":0`},
		},
		{
			name:     "no explicit status is 200",
			method:   http.MethodDelete,
			target:   "/api/keys/k1",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			wantLogs: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec := httptest.NewRecorder()

			newTestHandler().withLogging(tt.handler).ServeHTTP(rec, loggedRequest(tt.method, tt.target, &buf))

			for _, want := range tt.wantLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_MetricsUseRoutePattern(t *testing.T) {
	h := newTestHandler()
	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/sites/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/sites/{id}", "204")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before, beforeUnmatched := testutil.ToFloat64(counter), testutil.ToFloat64(unmatched)

	var buf bytes.Buffer
	router.ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/api/sites/abc", &buf))
	router.ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/api/sites/def", &buf))
	router.ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/nowhere", &buf))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}

func TestWithLogging_NopLogger(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
