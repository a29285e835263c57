package models

import (
	"strings"
	"time"
)

// GoalType selects what a goal matches on.
type GoalType string

const (
	// GoalPageview matches pageviews whose path fits Pattern ("*" is a wildcard).
	GoalPageview GoalType = "pageview"
	// GoalEvent matches custom events named EventName.
	GoalEvent GoalType = "event"
)

// Goal is a conversion target of a site.
type Goal struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Name      string    `json:"name"`
	Type      GoalType  `json:"type"`
	Pattern   string    `json:"pattern,omitempty"`
	EventName string    `json:"event_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalRequest is the payload for creating a goal.
type GoalRequest struct {
	SiteID    string   `json:"site_id" validate:"required"`
	Name      string   `json:"name" validate:"required,max=100"`
	Type      GoalType `json:"type" validate:"required,oneof=pageview event"`
	Pattern   string   `json:"pattern,omitempty" validate:"required_if=Type pageview,max=512"`
	EventName string   `json:"event_name,omitempty" validate:"required_if=Type event,max=120"`
}

// Matches reports whether e completes the goal. Pageview patterns treat "*"
// as a wildcard for any run of characters, slashes included.
func (g Goal) Matches(e Event) bool {
	switch g.Type {
	case GoalPageview:
		return e.Type == EventPageview && wildcardMatch(g.Pattern, e.Path)
	case GoalEvent:
		return e.Type == EventCustom && e.Name == g.EventName
	}
	return false
}

func wildcardMatch(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		i := strings.Index(s, part)
		if i < 0 {
			return false
		}
		s = s[i+len(part):]
	}
	return strings.HasSuffix(s, last)
}
