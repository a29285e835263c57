package ingest

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
)

const visitorIDLength = 32

// VisitorHasher derives anonymous visitor ids. The salt of a day is
// HMAC(secret, "YYYY-MM-DD"), so an id cannot be linked to the same person on
// another day and cannot be reversed to the IP address it came from.
type VisitorHasher struct {
	secret []byte

	mu      sync.Mutex
	saltDay string
	salt    []byte
}

func NewVisitorHasher(secret string) *VisitorHasher {
	return &VisitorHasher{secret: []byte(secret)}
}

// ID returns the visitor id of a hit received at the given time.
func (h *VisitorHasher) ID(siteID, ip, userAgent string, at time.Time) string {
	salt := h.dailySalt(at)
	sum := utils.HMAC([]byte(siteID+"|"+ip+"|"+userAgent), salt)
	return hex.EncodeToString(sum)[:visitorIDLength]
}

func (h *VisitorHasher) dailySalt(at time.Time) []byte {
	day := at.UTC().Format(time.DateOnly)

	h.mu.Lock()
	defer h.mu.Unlock()

	if day != h.saltDay {
		h.salt = utils.HMAC([]byte(day), h.secret)
		h.saltDay = day
	}
	return h.salt
}
