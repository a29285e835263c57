package models

import "time"

// Annotation marks a day on a site's charts.
type Annotation struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// AnnotationRequest is the payload for creating an annotation.
type AnnotationRequest struct {
	SiteID string `json:"site_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Text   string `json:"text" validate:"required,max=280"`
}
