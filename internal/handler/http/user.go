package http

import (
	"net/http"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func (h *Handler) userStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.UserService.Status(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.PasswordChange
	if err := decodeJSON(w, r, &change); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), userID(r), change); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
