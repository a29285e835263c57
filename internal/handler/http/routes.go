package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the HTTP router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "application/javascript", "text/plain"))
	router.Use(h.withCORS())

	router.Post("/api/track", h.track)
	router.Get(trackGIFPath, h.trackGIF)
	router.Get(scriptPath, h.script)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	if !h.cfg.DisableMetrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	// live stream is long-lived, so it stays outside the request timeout
	router.With(withWebSocketToken, h.auth).Get("/api/live", h.liveStream)

	router.Group(func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// ───── Authentication ─────
		r.Group(func(r chi.Router) {
			if h.cfg.AuthRateLimit > 0 {
				r.Use(httprate.Limit(h.cfg.AuthRateLimit, time.Minute,
					httprate.WithKeyFuncs(httprate.KeyByIP),
					httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
						writeError(w, r, errTooManyAttempts)
					}),
				))
			}
			r.Post("/api/auth/register", h.register)
			r.Post("/api/auth/login", h.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			h.authorizedRoutes(r)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) authorizedRoutes(r chi.Router) {
	r.Get("/api/auth/me", h.me)
	r.With(sessionOnly).Post("/api/auth/logout", h.logout)

	r.Route("/api/user", func(r chi.Router) {
		r.Get("/status", h.userStatus)
		r.With(sessionOnly).Put("/password", h.changePassword)
	})

	r.Route("/api/sites", func(r chi.Router) {
		r.Get("/", h.listSites)
		r.Post("/", h.createSite)
		r.Get("/{id}", h.getSite)
		r.Put("/{id}", h.updateSite)
		r.Delete("/{id}", h.deleteSite)
	})

	r.Get("/api/stats", h.stats)
	r.Get("/api/stats/realtime", h.realtime)
	r.Get("/api/heatmaps", h.heatmap)
	r.Post("/api/import/ga", h.importGA)

	r.Route("/api/goals", func(r chi.Router) {
		r.Get("/", h.listGoals)
		r.Post("/", h.createGoal)
		r.Delete("/{id}", h.deleteGoal)
	})

	r.Route("/api/annotations", func(r chi.Router) {
		r.Get("/", h.listAnnotations)
		r.Post("/", h.createAnnotation)
		r.Delete("/{id}", h.deleteAnnotation)
	})

	r.Route("/api/webhooks", func(r chi.Router) {
		r.Get("/", h.listWebhooks)
		r.Post("/", h.createWebhook)
		r.Delete("/{id}", h.deleteWebhook)
		r.Post("/{id}/test", h.testWebhook)
	})

	r.Route("/api/alerts", func(r chi.Router) {
		r.Get("/", h.listAlerts)
		r.Post("/", h.createAlert)
		r.Delete("/{id}", h.deleteAlert)
	})

	r.Route("/api/keys", func(r chi.Router) {
		r.Use(sessionOnly)
		r.Get("/", h.listAPIKeys)
		r.Post("/", h.createAPIKey)
		r.Delete("/{id}", h.deleteAPIKey)
	})

	r.Route("/api/teams", func(r chi.Router) {
		r.Get("/", h.listTeams)
		r.Post("/", h.createTeam)
		r.Get("/{id}", h.getTeam)
		r.Post("/{id}/members", h.addTeamMember)
		r.Delete("/{id}/members/{userID}", h.removeTeamMember)
	})
}
