package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func (h *Handler) listSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.services.SiteService.ListSites(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, sites, http.StatusOK)
}

func (h *Handler) createSite(w http.ResponseWriter, r *http.Request) {
	var req models.SiteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	site, err := h.services.SiteService.CreateSite(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, site, http.StatusCreated)
}

func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.services.SiteService.GetSite(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, site, http.StatusOK)
}

func (h *Handler) updateSite(w http.ResponseWriter, r *http.Request) {
	var req models.SiteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	site, err := h.services.SiteService.UpdateSite(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, site, http.StatusOK)
}

func (h *Handler) deleteSite(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SiteService.DeleteSite(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
