package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const trackGIFPath = "/api/track.gif"

// transparentGIF is a 1x1 transparent GIF.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// track accepts a JSON hit. navigator.sendBeacon posts text/plain, so the
// content type is not checked. Dropped hits (bots, DNT) are accepted too.
func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	var req models.TrackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TrackingService.Track(r.Context(), req, clientInfo(r)); err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, models.TrackResponse{Accepted: true}, http.StatusAccepted)
}

// trackGIF accepts a hit encoded in query parameters and always answers
// with the pixel; failures only change the status code.
func (h *Handler) trackGIF(w http.ResponseWriter, r *http.Request) {
	req, err := trackRequestFromQuery(r)
	if err == nil {
		err = h.services.TrackingService.Track(r.Context(), req, clientInfo(r))
	}

	status := http.StatusOK
	if err != nil {
		status, _ = classifyError(err)
		logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("pixel hit rejected")
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.WriteHeader(status)
	_, _ = w.Write(transparentGIF)
}

var errInvalidCoordinate = errors.New("coordinate must be a number")

// trackRequestFromQuery reads site_id, type, name, url, referrer, x, y and
// p.<key> props. Without url the page is taken from the Referer header.
func trackRequestFromQuery(r *http.Request) (models.TrackRequest, error) {
	q := r.URL.Query()

	req := models.TrackRequest{
		SiteID:   q.Get("site_id"),
		Type:     models.EventType(q.Get("type")),
		Name:     q.Get("name"),
		URL:      q.Get("url"),
		Referrer: q.Get("referrer"),
	}
	if req.URL == "" {
		req.URL = r.Referer()
	}

	for key, values := range q {
		prop, ok := strings.CutPrefix(key, "p.")
		if !ok || prop == "" || len(values) == 0 {
			continue
		}
		if req.Props == nil {
			req.Props = make(map[string]string)
		}
		req.Props[prop] = values[0]
	}

	for name, dst := range map[string]**float64{"x": &req.X, "y": &req.Y} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.TrackRequest{}, fmt.Errorf("%w: %w", service.ErrValidation,
				validators.NewValidationError(name, errInvalidCoordinate.Error()))
		}
		*dst = &v
	}

	return req, nil
}
