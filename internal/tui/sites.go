package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const statusTTL = 2 * time.Second

// SitesModel lists the sites visible to the signed-in user.
type SitesModel struct {
	ctx    context.Context
	client adapter.DashboardClient

	sites   []models.SiteResponse
	table   table.Model
	spinner spinner.Model
	loading bool
	status  string
	errMsg  string

	// copy writes text to the system clipboard.
	copy func(text string) error
}

func NewSitesModel(ctx context.Context, client adapter.DashboardClient) *SitesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Domain", Width: 32},
			{Title: "ID", Width: 36},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &SitesModel{
		ctx:     ctx,
		client:  client,
		table:   t,
		spinner: s,
		loading: true,
		copy:    clipboard.WriteAll,
	}
}

func (m *SitesModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *SitesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sitesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setSites(msg.sites)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Tracking snippet copied to clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			site, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return navigateTo{page: pageStats, siteID: site.ID} }
		case key.Matches(msg, keys.copy):
			site, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, m.cmdCopy(site.Snippet)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *SitesModel) View() string {
	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Loading sites..."
	case len(m.sites) == 0:
		body = "No sites yet. Add one through the API or the web dashboard."
	default:
		body = m.table.View()
		if site, ok := m.selected(); ok {
			body += "\n\n" + fitText(site.Snippet, 100)
		}
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return renderPage(fmt.Sprintf("SITES (%d)", len(m.sites)), body,
		"enter: stats │ c: copy snippet │ r: refresh │ v: about │ ctrl+l: sign out │ q: quit")
}

func (m *SitesModel) setSites(sites []models.SiteResponse) {
	m.sites = sites
	rows := make([]table.Row, 0, len(sites))
	for _, s := range sites {
		rows = append(rows, table.Row{fitText(s.Name, 24), fitText(s.Domain, 32), s.ID})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m *SitesModel) selected() (models.SiteResponse, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sites) {
		return models.SiteResponse{}, false
	}
	return m.sites[i], true
}

func (m *SitesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		sites, err := client.ListSites(ctx)
		return sitesLoadedMsg{sites: sites, err: err}
	}
}

func (m *SitesModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
