// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

func testFilter() models.EventFilter {
	return models.EventFilter{SiteID: "site-1", From: 1000, To: 2000}
}

func Test_summaryQuery_SQLContainsParts(t *testing.T) {
	query, args, err := newQueryBuilder(sq.Dollar).summary(testFilter())
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from events")
	require.Contains(t, q, "count(distinct visitor_id)")
	require.Contains(t, q, "count(distinct session_id)")
	require.Contains(t, q, "site_id = $1")
	require.Contains(t, q, "ts >= $2")
	require.Contains(t, q, "ts < $3")

	require.Equal(t, []any{"site-1", int64(1000), int64(2000)}, args)
}

func Test_filterConditions(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.EventFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "site and range only",
			filter: testFilter(),
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "type IN")
				require.Len(t, args, 3)
			},
		},
		{
			name: "event types become IN list",
			filter: models.EventFilter{
				SiteID: "site-1", From: 1, To: 2,
				Types: []models.EventType{models.EventPageview, models.EventCustom},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				// squirrel generates IN ($4,$5) for a slice.
				require.Contains(t, query, "type IN ($4,$5)")
				require.Equal(t, "pageview", args[3])
				require.Equal(t, "event", args[4])
			},
		},
		{
			name: "dimension filters in report order",
			filter: models.EventFilter{
				SiteID: "site-1", From: 1, To: 2,
				Filters: map[models.Dimension]string{
					models.DimBrowser: "Firefox",
					models.DimPath:    "/pricing",
				},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Less(t, strings.Index(query, "path = $4"), strings.Index(query, "browser = $5"))
				require.Equal(t, "/pricing", args[3])
				require.Equal(t, "Firefox", args[4])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryBuilder(sq.Dollar).summary(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_insertEventsQuery(t *testing.T) {
	events := []models.Event{
		{ID: "e1", SiteID: "s", Type: models.EventPageview, Path: "/", Timestamp: 1},
		{ID: "e2", SiteID: "s", Type: models.EventCustom, Name: "signup", Props: map[string]string{"plan": "pro"}, Timestamp: 2},
	}

	query, args, err := newQueryBuilder(sq.Question).insertEvents(events)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "INSERT INTO events (id,site_id,type"))
	require.Len(t, args, 2*len(eventColumns))
	// props of the first event default to an empty object
	require.Equal(t, "{}", args[16])
	require.Equal(t, `{"plan":"pro"}`, args[len(eventColumns)+16])
}

func Test_insertImportedQuery_Upserts(t *testing.T) {
	query, args, err := newQueryBuilder(sq.Dollar).insertImported([]models.ImportedPageviews{
		{SiteID: "s", Day: "2026-01-02", Path: "/", Pageviews: 10, Visitors: 4},
	})
	require.NoError(t, err)

	require.Contains(t, query, "ON CONFLICT (site_id, day, path) DO UPDATE")
	require.Equal(t, []any{"s", "2026-01-02", "/", int64(10), int64(4)}, args)
}

func Test_bouncesQuery_NumbersNestedPlaceholders(t *testing.T) {
	query, args, err := newQueryBuilder(sq.Dollar).bounces(testFilter())
	require.NoError(t, err)

	require.Contains(t, query, "FROM (SELECT session_id FROM events")
	require.Contains(t, query, "HAVING COUNT(*) = 1")
	require.Contains(t, query, "$4")
	require.NotContains(t, query, "?")
	require.Equal(t, "pageview", args[3])
}

func Test_timeseriesQuery(t *testing.T) {
	query, _, err := newQueryBuilder(sq.Dollar).timeseries(testFilter(), 86_400_000, 0)
	require.NoError(t, err)

	require.Contains(t, query, "((ts - 0) / 86400000) * 86400000 + 0 AS bucket")
	require.Contains(t, query, "GROUP BY bucket")
	require.Contains(t, query, "ORDER BY bucket")
}

func Test_breakdownQuery(t *testing.T) {
	t.Run("known dimension", func(t *testing.T) {
		query, args, err := newQueryBuilder(sq.Dollar).breakdown(testFilter(), models.DimReferrer, 10)
		require.NoError(t, err)

		require.Contains(t, query, "SELECT referrer AS value")
		require.Contains(t, query, "referrer <> $4")
		require.Contains(t, query, "GROUP BY referrer")
		require.Contains(t, query, "LIMIT 10")
		require.Equal(t, "", args[3])
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, _, err := newQueryBuilder(sq.Dollar).breakdown(testFilter(), models.Dimension("password; DROP TABLE"), 10)
		require.ErrorIs(t, err, ErrBuildingSQLQuery)
	})
}

func Test_goalConversionsQuery(t *testing.T) {
	tests := []struct {
		name     string
		goal     models.Goal
		contains string
		lastArg  any
		wantErr  bool
	}{
		{
			name:     "exact path",
			goal:     models.Goal{Type: models.GoalPageview, Pattern: "/thanks"},
			contains: "path = $5",
			lastArg:  "/thanks",
		},
		{
			name:     "wildcard path",
			goal:     models.Goal{Type: models.GoalPageview, Pattern: "/blog/*_draft"},
			contains: `path LIKE $5 ESCAPE '\'`,
			lastArg:  `/blog/%\_draft`,
		},
		{
			name:     "custom event",
			goal:     models.Goal{Type: models.GoalEvent, EventName: "signup"},
			contains: "name = $5",
			lastArg:  "signup",
		},
		{
			name:    "unknown type",
			goal:    models.Goal{Type: "funnel"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryBuilder(sq.Dollar).goalConversions(testFilter(), tt.goal)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Contains(t, query, tt.contains)
			require.Equal(t, tt.lastArg, args[len(args)-1])
		})
	}
}

func Test_countEventsQuery_MultipleSites(t *testing.T) {
	query, args, err := newQueryBuilder(sq.Dollar).countEvents([]string{"a", "b", "c"}, 10, 20)
	require.NoError(t, err)

	require.Contains(t, query, "site_id IN ($1,$2,$3)")
	require.Len(t, args, 5)
}

func Test_likePattern(t *testing.T) {
	require.Equal(t, "/blog/%", likePattern("/blog/*"))
	require.Equal(t, `/100\%/a\_b/%`, likePattern("/100%/a_b/*"))
	require.Equal(t, `\\`, likePattern(`\`))
}
