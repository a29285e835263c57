package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Goals, annotations, webhooks and alerts belong to a site. They are listed
// with ?site_id= and created with site_id in the body; a missing body
// site_id falls back to the query parameter.

// ───── Goals ─────

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goals, err := h.services.GoalService.ListGoals(r.Context(), userID(r), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var req models.GoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.SiteID == "" {
		req.SiteID = r.URL.Query().Get("site_id")
	}

	goal, err := h.services.GoalService.CreateGoal(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.services.GoalService.DeleteGoal(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ───── Annotations ─────

func (h *Handler) listAnnotations(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	annotations, err := h.services.AnnotationService.ListAnnotations(r.Context(), userID(r), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, annotations, http.StatusOK)
}

func (h *Handler) createAnnotation(w http.ResponseWriter, r *http.Request) {
	var req models.AnnotationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.SiteID == "" {
		req.SiteID = r.URL.Query().Get("site_id")
	}

	annotation, err := h.services.AnnotationService.CreateAnnotation(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, annotation, http.StatusCreated)
}

func (h *Handler) deleteAnnotation(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AnnotationService.DeleteAnnotation(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ───── Webhooks ─────

func (h *Handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	hooks, err := h.services.WebhookService.ListWebhooks(r.Context(), userID(r), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, hooks, http.StatusOK)
}

// createWebhook returns the webhook with its signing secret. This is the
// only response that carries the secret.
func (h *Handler) createWebhook(w http.ResponseWriter, r *http.Request) {
	var req models.WebhookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.SiteID == "" {
		req.SiteID = r.URL.Query().Get("site_id")
	}

	hook, err := h.services.WebhookService.CreateWebhook(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, hook, http.StatusCreated)
}

func (h *Handler) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	if err := h.services.WebhookService.DeleteWebhook(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) testWebhook(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.WebhookService.TestWebhook(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// ───── Alerts ─────

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	siteID, err := siteIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	alerts, err := h.services.AlertService.ListAlerts(r.Context(), userID(r), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, alerts, http.StatusOK)
}

func (h *Handler) createAlert(w http.ResponseWriter, r *http.Request) {
	var req models.AlertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.SiteID == "" {
		req.SiteID = r.URL.Query().Get("site_id")
	}

	alert, err := h.services.AlertService.CreateAlert(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, alert, http.StatusCreated)
}

func (h *Handler) deleteAlert(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AlertService.DeleteAlert(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
