package http

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	maxJSONBody   = 1 << 20
	maxImportBody = 32 << 20
)

// decodeJSON reads a JSON body of at most maxJSONBody bytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return errInvalidJSON
	}
	if err = json.Unmarshal(body, v); err != nil {
		return errInvalidJSON
	}
	return nil
}

// principal returns the authenticated caller. Routes using it are mounted
// behind the auth middleware.
func principal(r *http.Request) models.Principal {
	p, _ := utils.PrincipalFromContext(r.Context())
	return p
}

func userID(r *http.Request) string {
	return principal(r).UserID
}

func siteIDParam(r *http.Request) (string, error) {
	siteID := strings.TrimSpace(r.URL.Query().Get("site_id"))
	if siteID == "" {
		return "", errMissingSiteID
	}
	return siteID, nil
}

// clientInfo extracts the tracking-relevant parts of the request. The IP is
// taken from the connection; chi's RealIP middleware has already applied
// trusted forwarding headers.
func clientInfo(r *http.Request) models.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	purpose := r.Header.Get("Sec-Purpose") + r.Header.Get("Purpose") + r.Header.Get("X-Purpose") + r.Header.Get("X-Moz")
	return models.ClientInfo{
		IP:        ip,
		UserAgent: r.UserAgent(),
		DNT:       r.Header.Get("DNT") == "1",
		Prefetch:  strings.Contains(strings.ToLower(purpose), "prefetch") || strings.Contains(strings.ToLower(purpose), "preview"),
	}
}
