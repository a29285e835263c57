package models

import "time"

// Site is a tracked website.
type Site struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	// TeamID is set when the site is shared with a team.
	TeamID string `json:"team_id,omitempty"`

	// Domain is the normalized host name events are accepted from.
	Domain string `json:"domain"`
	Name   string `json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

// SiteRequest is the payload for creating or updating a site.
type SiteRequest struct {
	Domain string `json:"domain" validate:"required,max=253"`
	Name   string `json:"name" validate:"max=100"`
	TeamID string `json:"team_id,omitempty"`
}

// SiteResponse adds the embeddable tracking snippet to a site.
type SiteResponse struct {
	Site
	Snippet string `json:"snippet"`
}
