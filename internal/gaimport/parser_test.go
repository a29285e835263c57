package gaimport

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

func TestParser_UniversalAnalytics(t *testing.T) {
	in := `# ----------------------------------------
# All Web Site Data
# Pages
# 20260101-20260102
# ----------------------------------------

Page,Date,Pageviews,Users
/,20260101,"1,204",830
/pricing?utm_source=x,20260101,120,90

/blog/post,2026-01-02,15,12
`
	rows, result, err := NewParser().Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowsRead)
	assert.Zero(t, result.RowsSkipped)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []Row{
		{Day: "2026-01-01", Path: "/", Pageviews: 1204, Visitors: 830},
		{Day: "2026-01-01", Path: "/pricing", Pageviews: 120, Visitors: 90},
		{Day: "2026-01-02", Path: "/blog/post", Pageviews: 15, Visitors: 12},
	}, rows)
}

func TestParser_GA4Headers(t *testing.T) {
	in := "\ufeffdate,pagePath,screenPageViews,totalUsers\n20260301,/docs,7,3\n"

	rows, _, err := NewParser().Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Day: "2026-03-01", Path: "/docs", Pageviews: 7, Visitors: 3}, rows[0])
}

func TestParser_VisitorsOptional(t *testing.T) {
	rows, _, err := NewParser().Parse(strings.NewReader("Landing page,Date,Views\n/a,2026-03-01,4\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Visitors)
}

func TestParser_SkipsBadRows(t *testing.T) {
	in := `Page,Date,Pageviews
/ok,20260101,1
/bad-number,20260101,many
/bad-date,2026/01/01,3
,20260101,4
/negative,20260101,-2
`
	rows, result, err := NewParser().Parse(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 5, result.RowsRead)
	assert.Equal(t, 4, result.RowsSkipped)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "line 3")
	assert.Contains(t, result.Errors[0], "pageviews")
}

func TestParser_ErrorListIsCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("Page,Date,Pageviews\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "/p%d,bad,1\n", i)
	}

	_, result, err := NewParser().Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 25, result.RowsSkipped)
	assert.Len(t, result.Errors, MaxReportedErrors)
}

func TestParser_HeaderErrors(t *testing.T) {
	_, _, err := NewParser().Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, _, err = NewParser().Parse(strings.NewReader("# only comments\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, _, err = NewParser().Parse(strings.NewReader("Date,Pageviews\n20260101,3\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "page")
}

func TestAggregate(t *testing.T) {
	rows := []Row{
		{Day: "2026-01-02", Path: "/", Pageviews: 1, Visitors: 1},
		{Day: "2026-01-01", Path: "/b", Pageviews: 2, Visitors: 2},
		{Day: "2026-01-01", Path: "/a", Pageviews: 3, Visitors: 1},
		{Day: "2026-01-01", Path: "/b", Pageviews: 5, Visitors: 4},
	}

	assert.Equal(t, []models.ImportedPageviews{
		{SiteID: "s", Day: "2026-01-01", Path: "/a", Pageviews: 3, Visitors: 1},
		{SiteID: "s", Day: "2026-01-01", Path: "/b", Pageviews: 7, Visitors: 6},
		{SiteID: "s", Day: "2026-01-02", Path: "/", Pageviews: 1, Visitors: 1},
	}, Aggregate("s", rows))
}
