package models

import "time"

// AlertMetric is the value an alert watches.
type AlertMetric string

const (
	AlertPageviews AlertMetric = "pageviews"
	AlertVisitors  AlertMetric = "visitors"
	AlertEvents    AlertMetric = "events"
)

// AlertCondition compares a metric to the threshold.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// Alert notifies when a metric crosses a threshold within a window.
type Alert struct {
	ID              string         `json:"id"`
	SiteID          string         `json:"site_id"`
	Name            string         `json:"name"`
	Metric          AlertMetric    `json:"metric"`
	Condition       AlertCondition `json:"condition"`
	Threshold       int64          `json:"threshold"`
	WindowMinutes   int            `json:"window_minutes"`
	CooldownMinutes int            `json:"cooldown_minutes"`
	Enabled         bool           `json:"enabled"`

	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Triggered reports whether value satisfies the alert condition.
func (a Alert) Triggered(value int64) bool {
	switch a.Condition {
	case AlertAbove:
		return value > a.Threshold
	case AlertBelow:
		return value < a.Threshold
	}
	return false
}

// CoolingDown reports whether the alert fired too recently to fire again at now.
func (a Alert) CoolingDown(now time.Time) bool {
	if a.LastTriggeredAt == nil {
		return false
	}
	return now.Before(a.LastTriggeredAt.Add(time.Duration(a.CooldownMinutes) * time.Minute))
}

// AlertRequest is the payload for creating an alert.
type AlertRequest struct {
	SiteID          string         `json:"site_id" validate:"required"`
	Name            string         `json:"name" validate:"required,max=100"`
	Metric          AlertMetric    `json:"metric" validate:"required,oneof=pageviews visitors events"`
	Condition       AlertCondition `json:"condition" validate:"required,oneof=above below"`
	Threshold       int64          `json:"threshold" validate:"gte=0"`
	WindowMinutes   int            `json:"window_minutes" validate:"required,gte=5,lte=1440"`
	CooldownMinutes int            `json:"cooldown_minutes" validate:"gte=0,lte=10080"`
}

// AlertFired is the payload of an alert.triggered notification.
type AlertFired struct {
	AlertID   string         `json:"alert_id"`
	Name      string         `json:"name"`
	Metric    AlertMetric    `json:"metric"`
	Condition AlertCondition `json:"condition"`
	Threshold int64          `json:"threshold"`
	Value     int64          `json:"value"`
	Window    int            `json:"window_minutes"`
}
