package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pixel-analytics/internal/adapter"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	maxTimeseriesRows = 14
	maxTopRows        = 10
)

var dashboardPeriods = []models.Period{
	models.PeriodToday,
	models.Period7Days,
	models.Period30Days,
	models.PeriodMonth,
	models.Period12Months,
}

// StatsModel shows the report of one site for a selectable period.
type StatsModel struct {
	ctx    context.Context
	client adapter.DashboardClient

	siteID    string
	periodIdx int

	report   models.StatsReport
	realtime models.Realtime
	loaded   bool
	loading  bool
	spinner  spinner.Model
	errMsg   string
}

func NewStatsModel(ctx context.Context, client adapter.DashboardClient) *StatsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	// 7 days by default
	return &StatsModel{ctx: ctx, client: client, spinner: s, periodIdx: 1}
}

// SetSite selects the site whose stats are loaded by the next Init.
func (m *StatsModel) SetSite(siteID string) {
	if m.siteID != siteID {
		m.loaded = false
		m.report = models.StatsReport{}
		m.realtime = models.Realtime{}
	}
	m.siteID = siteID
}

func (m *StatsModel) period() models.Period {
	return dashboardPeriods[m.periodIdx]
}

func (m *StatsModel) Init() tea.Cmd {
	if m.siteID == "" {
		return nil
	}
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad(m.siteID, m.period()))
}

func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		// drop answers for a site or period that is no longer shown
		if msg.siteID != m.siteID || msg.period != m.period() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.report = msg.report
		m.realtime = msg.realtime
		m.loaded = true
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
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return navigateTo{page: pageSites} }
		case key.Matches(msg, keys.right, keys.tab):
			m.periodIdx = (m.periodIdx + 1) % len(dashboardPeriods)
			return m, m.Init()
		case key.Matches(msg, keys.left, keys.backtab):
			m.periodIdx = (m.periodIdx - 1 + len(dashboardPeriods)) % len(dashboardPeriods)
			return m, m.Init()
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}

	return m, nil
}

func (m *StatsModel) View() string {
	var b strings.Builder

	b.WriteString("Period: ")
	for i, p := range dashboardPeriods {
		if i == m.periodIdx {
			b.WriteString(titleStyle.Render("[" + string(p) + "]"))
		} else {
			b.WriteString(" " + string(p) + " ")
		}
		b.WriteString(" ")
	}
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	if m.loaded {
		writeSummary(&b, m.report.Summary, m.realtime)
		writeTimeseries(&b, m.report.Timeseries, m.report.Interval)
		writeBreakdown(&b, "Top pages", m.report.Breakdowns[models.DimPath])
		writeBreakdown(&b, "Top referrers", m.report.Breakdowns[models.DimReferrer])
		if len(m.report.Goals) > 0 {
			b.WriteString("\nGoals\n")
			for _, g := range m.report.Goals {
				fmt.Fprintf(&b, "  %-30s %8d  %s\n", fitText(g.Name, 30), g.Conversions, formatPercent(g.ConversionRate))
			}
		}
	}

	return renderPage("STATS · "+m.siteID, strings.TrimRight(b.String(), "\n"),
		"←/→: period │ r: refresh │ esc: sites │ q: quit")
}

func writeSummary(b *strings.Builder, s models.Summary, rt models.Realtime) {
	fmt.Fprintf(b, "Visitors now: %d (last %d min)\n", rt.Visitors, rt.Minutes)
	fmt.Fprintf(b, "Visitors: %d   Pageviews: %d   Sessions: %d   Bounce rate: %s   Events: %d\n",
		s.Visitors, s.Pageviews, s.Sessions, formatPercent(s.BounceRate), s.CustomEvents)
}

func writeTimeseries(b *strings.Builder, points []models.TimeseriesPoint, interval models.Interval) {
	if len(points) == 0 {
		return
	}
	if len(points) > maxTimeseriesRows {
		points = points[len(points)-maxTimeseriesRows:]
	}

	layout := "Jan 02"
	switch interval {
	case models.IntervalHour:
		layout = "15:04"
	case models.IntervalMonth:
		layout = "Jan 2006"
	}

	var peak int64
	for _, p := range points {
		peak = max(peak, p.Pageviews)
	}

	b.WriteString("\nPageviews\n")
	for _, p := range points {
		fmt.Fprintf(b, "  %-8s %6d %s\n", p.Time.Format(layout), p.Pageviews, bar(p.Pageviews, peak))
	}
}

func writeBreakdown(b *strings.Builder, title string, items []models.BreakdownItem) {
	if len(items) == 0 {
		return
	}
	if len(items) > maxTopRows {
		items = items[:maxTopRows]
	}

	b.WriteString("\n" + title + "\n")
	for _, it := range items {
		value := it.Value
		if value == "" {
			value = "(none)"
		}
		fmt.Fprintf(b, "  %-40s %8d %8d\n", fitText(value, 40), it.Visitors, it.Pageviews)
	}
}

func (m *StatsModel) cmdLoad(siteID string, period models.Period) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		report, err := client.Stats(ctx, siteID, period)
		if err != nil {
			return statsLoadedMsg{siteID: siteID, period: period, err: err}
		}
		realtime, err := client.Realtime(ctx, siteID)
		return statsLoadedMsg{siteID: siteID, period: period, report: report, realtime: realtime, err: err}
	}
}
