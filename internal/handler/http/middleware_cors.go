package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"
)

// withCORS answers preflights and sets CORS headers before routing, so every
// path gets them regardless of which methods it registers. Tracking paths
// accept any origin without credentials; the rest of the API accepts only the
// configured dashboard origins.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	public := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         int((12 * time.Hour).Seconds()),
	})
	dashboard := cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", apiKeyHeader, traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return func(next http.Handler) http.Handler {
		publicNext, dashboardNext := public(next), dashboard(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				publicNext.ServeHTTP(w, r)
				return
			}
			dashboardNext.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/api/track") || path == scriptPath
}
