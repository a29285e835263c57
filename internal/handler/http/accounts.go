package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// ───── API keys ─────

func (h *Handler) listAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.APIKeyService.ListAPIKeys(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, keys, http.StatusOK)
}

// createAPIKey returns the plaintext key. It is never shown again.
func (h *Handler) createAPIKey(w http.ResponseWriter, r *http.Request) {
	var req models.APIKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	key, err := h.services.APIKeyService.CreateAPIKey(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, key, http.StatusCreated)
}

func (h *Handler) deleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := h.services.APIKeyService.DeleteAPIKey(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ───── Teams ─────

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.services.TeamService.ListTeams(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, teams, http.StatusOK)
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var req models.TeamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	team, err := h.services.TeamService.CreateTeam(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, team, http.StatusCreated)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.services.TeamService.GetTeam(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, team, http.StatusOK)
}

func (h *Handler) addTeamMember(w http.ResponseWriter, r *http.Request) {
	var req models.MemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	team, err := h.services.TeamService.AddMember(r.Context(), userID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, team, http.StatusOK)
}

func (h *Handler) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	team, err := h.services.TeamService.RemoveMember(r.Context(), userID(r), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, team, http.StatusOK)
}
