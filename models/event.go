package models

// EventType is the kind of tracked hit.
type EventType string

const (
	EventPageview EventType = "pageview"
	EventCustom   EventType = "event"
	EventClick    EventType = "click"
)

// TrackRequest is the payload sent by the tracking script or a server-side SDK.
type TrackRequest struct {
	SiteID   string            `json:"site_id" validate:"required,max=64"`
	Type     EventType         `json:"type" validate:"omitempty,oneof=pageview event click"`
	Name     string            `json:"name,omitempty" validate:"max=120"`
	URL      string            `json:"url" validate:"required,max=2048"`
	Referrer string            `json:"referrer,omitempty" validate:"max=2048"`
	Props    map[string]string `json:"props,omitempty"`
	X        *float64          `json:"x,omitempty" validate:"omitempty,gte=0,lte=1"`
	Y        *float64          `json:"y,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// ClientInfo describes the sender of a hit. None of it is persisted as is.
type ClientInfo struct {
	IP        string
	UserAgent string

	// DNT is true when the request carried "DNT: 1".
	DNT bool

	// Prefetch is true for speculative loads (Purpose/Sec-Purpose headers).
	Prefetch bool
}

// Event is a sanitized hit ready to be written to the event database.
// Timestamp is unix milliseconds in UTC.
type Event struct {
	ID          string            `json:"id"`
	SiteID      string            `json:"site_id"`
	Type        EventType         `json:"type"`
	Name        string            `json:"name,omitempty"`
	VisitorID   string            `json:"visitor_id"`
	SessionID   string            `json:"session_id"`
	Path        string            `json:"path"`
	Referrer    string            `json:"referrer,omitempty"`
	UTMSource   string            `json:"utm_source,omitempty"`
	UTMMedium   string            `json:"utm_medium,omitempty"`
	UTMCampaign string            `json:"utm_campaign,omitempty"`
	Device      string            `json:"device,omitempty"`
	Browser     string            `json:"browser,omitempty"`
	OS          string            `json:"os,omitempty"`
	X           float64           `json:"x,omitempty"`
	Y           float64           `json:"y,omitempty"`
	Props       map[string]string `json:"props,omitempty"`
	Timestamp   int64             `json:"ts"`
}

// TrackResponse acknowledges an accepted hit.
type TrackResponse struct {
	Accepted bool `json:"accepted"`
}
