package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// seedStats stores two days of traffic for site s1 owned by u1:
// visitor a bounces on 2026-03-02, visitor b views two pages and signs up on 2026-03-03.
func seedStats(t *testing.T) (StatsService, ImportService, *statsService) {
	t.Helper()

	storages := newTestStorages(t)
	access := newTestAccess(t, storages)
	createUser(t, storages, "u1", models.PlanPro)
	createSite(t, storages, "s1", "u1", "")
	ctx := context.Background()

	day1 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	require.NoError(t, storages.EventRepository.InsertEvents(ctx, []models.Event{
		{ID: "e1", SiteID: "s1", Type: models.EventPageview, VisitorID: "a", SessionID: "a1", Path: "/", Browser: "Firefox", Timestamp: day1.UnixMilli()},
		{ID: "e2", SiteID: "s1", Type: models.EventPageview, VisitorID: "b", SessionID: "b1", Path: "/", Browser: "Chrome", Timestamp: day2.UnixMilli()},
		{ID: "e3", SiteID: "s1", Type: models.EventPageview, VisitorID: "b", SessionID: "b1", Path: "/pricing", Browser: "Chrome", Timestamp: day2.Add(time.Minute).UnixMilli()},
		{ID: "e4", SiteID: "s1", Type: models.EventCustom, Name: "Signup", VisitorID: "b", SessionID: "b1", Path: "/pricing", Browser: "Chrome", Timestamp: day2.Add(2 * time.Minute).UnixMilli()},
	}))
	require.NoError(t, storages.GoalRepository.CreateGoal(ctx, models.Goal{ID: "g1", SiteID: "s1", Name: "signup", Type: models.GoalEvent, EventName: "Signup"}))
	require.NoError(t, storages.AnnotationRepository.CreateAnnotation(ctx, models.Annotation{ID: "n1", SiteID: "s1", Date: "2026-03-03", Text: "launch"}))
	require.NoError(t, storages.AnnotationRepository.CreateAnnotation(ctx, models.Annotation{ID: "n2", SiteID: "s1", Date: "2026-04-01", Text: "later"}))

	svc := NewStatsService(storages, access, logger.Nop())
	concrete := svc.(*statsService)
	concrete.now = func() time.Time { return day2.Add(time.Hour) }
	return svc, NewImportService(storages, access, logger.Nop()), concrete
}

func TestStatsService_Report(t *testing.T) {
	svc, _, _ := seedStats(t)

	report, err := svc.Report(context.Background(), "u1", models.StatsParams{
		SiteID: "s1", Period: models.PeriodCustom, From: "2026-03-01", To: "2026-03-07",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntervalDay, report.Interval)
	assert.Equal(t, int64(3), report.Summary.Pageviews)
	assert.Equal(t, int64(2), report.Summary.Visitors)
	assert.Equal(t, int64(2), report.Summary.Sessions)
	assert.Equal(t, int64(1), report.Summary.CustomEvents)
	assert.InDelta(t, 50.0, report.Summary.BounceRate, 0.001)

	require.Len(t, report.Timeseries, 7)
	assert.Equal(t, int64(1), report.Timeseries[1].Pageviews)
	assert.Equal(t, int64(2), report.Timeseries[2].Pageviews)

	require.NotEmpty(t, report.Breakdowns[models.DimPath])
	assert.Equal(t, "/", report.Breakdowns[models.DimPath][0].Value)
	require.Len(t, report.Breakdowns[models.DimEventName], 1)
	assert.Equal(t, "Signup", report.Breakdowns[models.DimEventName][0].Value)

	require.Len(t, report.Goals, 1)
	assert.Equal(t, int64(1), report.Goals[0].Conversions)
	assert.InDelta(t, 50.0, report.Goals[0].ConversionRate, 0.001)

	require.Len(t, report.Annotations, 1)
	assert.Equal(t, "launch", report.Annotations[0].Text)
	assert.False(t, report.Imported)
}

func TestStatsService_Report_Filtered(t *testing.T) {
	svc, _, _ := seedStats(t)

	report, err := svc.Report(context.Background(), "u1", models.StatsParams{
		SiteID:  "s1",
		Period:  models.PeriodCustom,
		From:    "2026-03-01",
		To:      "2026-03-07",
		Filters: map[models.Dimension]string{models.DimBrowser: "Chrome"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Summary.Pageviews)
	assert.Equal(t, int64(1), report.Summary.Visitors)
}

func TestStatsService_Report_MergesImported(t *testing.T) {
	svc, importer, _ := seedStats(t)
	ctx := context.Background()

	csv := "Page,Date,Pageviews,Users\n/,20260301,10,4\n/old,20260301,5,5\n/,20250101,99,99\n"
	result, err := importer.ImportGA(ctx, "u1", "s1", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowsImported)

	report, err := svc.Report(ctx, "u1", models.StatsParams{
		SiteID: "s1", Period: models.PeriodCustom, From: "2026-03-01", To: "2026-03-07",
	})
	require.NoError(t, err)

	assert.True(t, report.Imported)
	assert.Equal(t, int64(3+15), report.Summary.Pageviews)
	assert.Equal(t, int64(15), report.Timeseries[0].Pageviews)
	assert.Equal(t, "/", report.Breakdowns[models.DimPath][0].Value)

	filtered, err := svc.Report(ctx, "u1", models.StatsParams{
		SiteID: "s1", Period: models.PeriodCustom, From: "2026-03-01", To: "2026-03-07",
		Filters: map[models.Dimension]string{models.DimPath: "/"},
	})
	require.NoError(t, err)
	assert.False(t, filtered.Imported)
}

func TestStatsService_Report_Errors(t *testing.T) {
	svc, _, _ := seedStats(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    string
		params  models.StatsParams
		wantErr error
	}{
		{"unknown period", "u1", models.StatsParams{SiteID: "s1", Period: "fortnight"}, ErrValidation},
		{"reversed range", "u1", models.StatsParams{SiteID: "s1", Period: models.PeriodCustom, From: "2026-03-07", To: "2026-03-01"}, ErrValidation},
		{"hourly over a year", "u1", models.StatsParams{SiteID: "s1", Period: models.Period12Months, Interval: models.IntervalHour}, ErrValidation},
		{"limit too big", "u1", models.StatsParams{SiteID: "s1", Limit: 100000}, ErrValidation},
		{"stranger", "u2", models.StatsParams{SiteID: "s1"}, ErrNoAccess},
		{"missing site", "u1", models.StatsParams{SiteID: "nope"}, ErrSiteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Report(ctx, tt.user, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatsService_Realtime(t *testing.T) {
	svc, _, concrete := seedStats(t)

	// five minutes after the last event of visitor b
	concrete.now = func() time.Time { return time.Date(2026, 3, 3, 10, 6, 0, 0, time.UTC) }

	rt, err := svc.Realtime(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rt.Visitors)
	assert.Equal(t, 5, rt.Minutes)
}

func TestStatsParamsFromQuery(t *testing.T) {
	params, err := StatsParamsFromQuery(url.Values{
		"site_id":           {"s1"},
		"period":            {"7d"},
		"limit":             {"5"},
		"filter.browser":    {"Firefox"},
		"filter.utm_source": {"news"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatsParams{
		SiteID:  "s1",
		Period:  models.Period7Days,
		Limit:   5,
		Filters: map[models.Dimension]string{models.DimBrowser: "Firefox", models.DimUTMSource: "news"},
	}, params)

	_, err = StatsParamsFromQuery(url.Values{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = StatsParamsFromQuery(url.Values{"site_id": {"s1"}, "limit": {"ten"}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = StatsParamsFromQuery(url.Values{"site_id": {"s1"}, "filter.country": {"DE"}})
	assert.ErrorIs(t, err, ErrValidation)
}
