package grpc

import "github.com/MKhiriev/go-pixel-analytics/models"

// TrackMessage is a hit sent by a server-side SDK. The SDK runs on the
// customer's backend, so it forwards the visitor's address and user agent
// itself.
type TrackMessage struct {
	models.TrackRequest

	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	DNT       bool   `json:"dnt,omitempty"`
}

func (m *TrackMessage) clientInfo() models.ClientInfo {
	return models.ClientInfo{
		IP:        m.IP,
		UserAgent: m.UserAgent,
		DNT:       m.DNT,
	}
}

// TrackReply acknowledges a hit.
type TrackReply = models.TrackResponse
