package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type errorKind struct {
	target error
	status int
	code   string
}

// errorKinds maps service error kinds to responses. Order matters: the first
// match wins.
var errorKinds = []errorKind{
	{errBodyTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	{service.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{validators.ErrInvalidData, http.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{service.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{service.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{service.ErrConflict, http.StatusConflict, "CONFLICT"},
	{service.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
	{service.ErrUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
}

func classifyError(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// writeError writes the JSON error body for err. Internal errors are logged
// and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)
	resp := models.ErrorResponse{Error: err.Error(), Code: code}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("internal error")
		resp.Error = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request failed")
	}

	if status == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", "1")
	}
	_, _ = utils.WriteJSON(w, resp, status)
}
