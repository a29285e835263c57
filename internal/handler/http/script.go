package http

import (
	_ "embed"
	"net/http"
	"strconv"
)

const scriptPath = "/js/script.js"

//go:embed static/script.js
var trackingScript []byte

// script serves the tracking script referenced by site snippets.
func (h *Handler) script(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(trackingScript)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(trackingScript)
}
