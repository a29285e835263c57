package tui

import (
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// navigateTo switches the root model to another page.
type navigateTo struct {
	page   string
	siteID string
}

type loginDoneMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

type sitesLoadedMsg struct {
	sites []models.SiteResponse
	err   error
}

type statsLoadedMsg struct {
	siteID   string
	period   models.Period
	report   models.StatsReport
	realtime models.Realtime
	err      error
}

type versionLoadedMsg struct {
	version models.VersionResponse
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
