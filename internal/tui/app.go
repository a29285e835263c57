package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	pageLogin = "login"
	pageSites = "sites"
	pageStats = "stats"
)

// RootModel is the dashboard router:
// 1) keeps the active page
// 2) handles global keys (quit, sign out, about window)
// 3) handles navigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	client adapter.DashboardClient

	pages   map[string]tea.Model
	current string

	buildInfo     models.AppBuildInfo
	serverVersion *models.VersionResponse
	showBuildInfo bool

	overlay    *errorOverlayModel
	quitByUser bool
}

// NewRootModel builds every page and opens the site list when client already
// holds a token, the login page otherwise.
func NewRootModel(ctx context.Context, client adapter.DashboardClient, buildInfo models.AppBuildInfo) RootModel {
	start := pageLogin
	if client.Token() != "" {
		start = pageSites
	}

	return RootModel{
		ctx:    ctx,
		client: client,
		pages: map[string]tea.Model{
			pageLogin: NewLoginModel(ctx, client),
			pageSites: NewSitesModel(ctx, client),
			pageStats: NewStatsModel(ctx, client),
		},
		current:   start,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		// the login page owns every printable key
		if r.current != pageLogin {
			switch {
			case key.Matches(msg, keys.quit):
				r.quitByUser = true
				return r, tea.Quit
			case key.Matches(msg, keys.logout):
				return r, r.cmdLogout()
			case key.Matches(msg, keys.version) && r.current == pageSites:
				r.showBuildInfo = true
				return r, r.cmdVersion()
			}
		}

	case navigateTo:
		return r.navigate(msg)

	case logoutDoneMsg:
		if msg.err != nil {
			r.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		return r.navigate(navigateTo{page: pageLogin})

	case versionLoadedMsg:
		if msg.err == nil {
			v := msg.version
			r.serverVersion = &v
		}
		return r, nil

	case loginDoneMsg, sitesLoadedMsg, statsLoadedMsg, copiedMsg, clearStatusMsg:
		// async results always go to the page that requested them
		return r.forward(pageFor(msg), msg)
	}

	return r.forward(r.current, msg)
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return appStyle.Render(r.overlay.View())
	}
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}
	return appStyle.Render(r.pages[r.current].View())
}

func (r RootModel) navigate(msg navigateTo) (tea.Model, tea.Cmd) {
	page, ok := r.pages[msg.page]
	if !ok {
		return r, nil
	}
	if stats, isStats := page.(*StatsModel); isStats {
		stats.SetSite(msg.siteID)
	}
	r.current = msg.page
	return r, page.Init()
}

func (r RootModel) forward(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return r, cmd
}

func pageFor(msg tea.Msg) string {
	switch msg.(type) {
	case loginDoneMsg:
		return pageLogin
	case statsLoadedMsg:
		return pageStats
	default:
		return pageSites
	}
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	client := r.client

	return func() tea.Msg {
		return logoutDoneMsg{err: client.Logout(ctx)}
	}
}

func (r RootModel) cmdVersion() tea.Cmd {
	ctx := r.ctx
	client := r.client

	return func() tea.Msg {
		v, err := client.Version(ctx)
		return versionLoadedMsg{version: v, err: err}
	}
}
