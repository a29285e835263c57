package http

import (
	"net/http"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
)

// LiveStreamer upgrades a request to a live event stream of a site.
type LiveStreamer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, siteID string) error
}

type Handler struct {
	services *service.Services
	live     LiveStreamer

	cfg config.Server

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. live may be nil, in which case the
// live stream endpoint answers 503.
func NewHandler(services *service.Services, live LiveStreamer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		live:     live,
		cfg:      cfg,
		logger:   logger,
	}
}
