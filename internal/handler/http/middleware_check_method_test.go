// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/api/sites", ok)
	router.Post("/api/sites", ok)
	router.Route("/api/goals", func(r chi.Router) {
		r.Get("/", ok)
		r.Delete("/{id}", ok)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "registered method passes", method: http.MethodGet, path: "/api/sites", wantStatus: http.StatusOK},
		{name: "wrong method on flat route", method: http.MethodDelete, path: "/api/sites",
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "wrong method on sub-router param", method: http.MethodPut, path: "/api/goals/g1",
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unknown path", method: http.MethodGet, path: "/api/nope",
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Allow"))
			if tt.wantCode == "" {
				return
			}
			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestAllowedMethods(t *testing.T) {
	router := buildRouter()

	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, allowedMethods(router, "/api/sites"))
	assert.Equal(t, []string{http.MethodDelete}, allowedMethods(router, "/api/goals/g1"))
	assert.Empty(t, allowedMethods(router, "/api/unknown"))
}
