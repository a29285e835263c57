package models

import "time"

// Notification types a webhook may subscribe to.
const (
	NotifyPageview       = "pageview"
	NotifyEvent          = "event"
	NotifyGoalCompleted  = "goal.completed"
	NotifyAlertTriggered = "alert.triggered"
	NotifyTest           = "webhook.test"
)

// Webhook forwards site events to an external URL.
type Webhook struct {
	ID       string   `json:"id"`
	SiteID   string   `json:"site_id"`
	URL      string   `json:"url"`
	Events   []string `json:"events"`
	Secret   string   `json:"secret,omitempty"`
	Active   bool     `json:"active"`
	Failures int      `json:"failures"`

	LastDeliveryAt *time.Time `json:"last_delivery_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Subscribed reports whether w should receive notifications of type t.
func (w Webhook) Subscribed(t string) bool {
	if t == NotifyTest {
		return true
	}
	for _, e := range w.Events {
		if e == t {
			return true
		}
	}
	return false
}

// WebhookRequest is the payload for creating a webhook.
type WebhookRequest struct {
	SiteID string   `json:"site_id" validate:"required"`
	URL    string   `json:"url" validate:"required,url,max=2048"`
	Events []string `json:"events" validate:"required,min=1,dive,oneof=pageview event goal.completed alert.triggered"`
}

// Notification is the body POSTed to webhooks.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	SiteID    string    `json:"site_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// DeliveryResult reports the outcome of one webhook delivery.
type DeliveryResult struct {
	WebhookID  string `json:"webhook_id"`
	StatusCode int    `json:"status_code"`
	Delivered  bool   `json:"delivered"`
	Error      string `json:"error,omitempty"`
}
