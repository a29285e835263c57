package live

import "github.com/MKhiriev/go-pixel-analytics/models"

// Message types sent to clients.
const (
	MessageEvent = "event"
	MessagePing  = "ping"
	MessagePong  = "pong"
)

// Message is the JSON frame exchanged with clients.
type Message struct {
	Type string     `json:"type"`
	Data *LiveEvent `json:"data,omitempty"`
}

// LiveEvent is the part of a stored event shown in the live view. Visitor
// and session ids stay on the server.
type LiveEvent struct {
	Type     models.EventType `json:"type"`
	Name     string           `json:"name,omitempty"`
	Path     string           `json:"path"`
	Referrer string           `json:"referrer,omitempty"`
	Device   string           `json:"device,omitempty"`
	Browser  string           `json:"browser,omitempty"`
	OS       string           `json:"os,omitempty"`
	Time     int64            `json:"ts"`
}

func newLiveEvent(e models.Event) *LiveEvent {
	return &LiveEvent{
		Type:     e.Type,
		Name:     e.Name,
		Path:     e.Path,
		Referrer: e.Referrer,
		Device:   e.Device,
		Browser:  e.Browser,
		OS:       e.OS,
		Time:     e.Timestamp,
	}
}
