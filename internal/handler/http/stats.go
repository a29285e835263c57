package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	params, err := service.StatsParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.StatsService.Report(r.Context(), userID(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) realtime(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rt, err := h.services.StatsService.Realtime(r.Context(), userID(r), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, rt, http.StatusOK)
}

func (h *Handler) heatmap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := models.HeatmapParams{
		SiteID: q.Get("site_id"),
		Path:   q.Get("path"),
		Period: models.Period(q.Get("period")),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	heatmap, err := h.services.HeatmapService.Heatmap(r.Context(), userID(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, heatmap, http.StatusOK)
}

// importGA reads a Google Analytics CSV export from the request body.
func (h *Handler) importGA(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxImportBody)
	result, err := h.services.ImportService.ImportGA(r.Context(), userID(r), siteID, body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			err = errBodyTooLarge
		}
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// liveStream upgrades to a WebSocket streaming the site's events.
func (h *Handler) liveStream(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.live == nil {
		writeError(w, r, errLiveDisabled)
		return
	}

	if _, err = h.services.AccessService.AuthorizeSite(r.Context(), userID(r), siteID, service.ActionStatsRead); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.live.ServeWS(w, r, siteID); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("site_id", siteID).Msg("live stream not started")
	}
}
