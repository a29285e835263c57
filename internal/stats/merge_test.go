package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

var imported = []models.ImportedPageviews{
	{Day: "2026-03-02", Path: "/", Pageviews: 10, Visitors: 4},
	{Day: "2026-03-02", Path: "/blog", Pageviews: 30, Visitors: 9},
	{Day: "2026-03-08", Path: "/", Pageviews: 5, Visitors: 1},
}

func TestMergeImportedSummary(t *testing.T) {
	got := MergeImportedSummary(models.Summary{Pageviews: 100, Visitors: 20, Sessions: 25}, imported)
	assert.Equal(t, models.Summary{Pageviews: 145, Visitors: 34, Sessions: 25}, got)
}

func TestMergeImportedTimeseries(t *testing.T) {
	daily := []models.TimeseriesPoint{{Time: date(2026, 3, 2)}, {Time: date(2026, 3, 3)}}
	got := MergeImportedTimeseries(daily, imported, models.IntervalDay)
	assert.Equal(t, int64(40), got[0].Pageviews)
	assert.Equal(t, int64(0), got[1].Pageviews)

	weekly := []models.TimeseriesPoint{{Time: date(2026, 3, 2)}}
	got = MergeImportedTimeseries(weekly, imported, models.IntervalWeek)
	assert.Equal(t, int64(45), got[0].Pageviews, "Monday to Sunday")

	hourly := []models.TimeseriesPoint{{Time: date(2026, 3, 2)}}
	got = MergeImportedTimeseries(hourly, imported, models.IntervalHour)
	assert.Zero(t, got[0].Pageviews)
}

func TestMergeImportedPages(t *testing.T) {
	live := []models.BreakdownItem{
		{Value: "/", Pageviews: 20, Visitors: 5},
		{Value: "/about", Pageviews: 12, Visitors: 3},
	}

	got := MergeImportedPages(live, imported, 2)
	assert.Equal(t, []models.BreakdownItem{
		{Value: "/", Pageviews: 35, Visitors: 10},
		{Value: "/blog", Pageviews: 30, Visitors: 9},
	}, got)

	// the input is left untouched
	assert.Equal(t, int64(20), live[0].Pageviews)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 100.0, Percent(4, 4))
	assert.Zero(t, Percent(3, 0))
}

func TestBuildHeatmap(t *testing.T) {
	cells, total, maxCell := BuildHeatmap([]models.Click{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 0.5, Y: 0.5},
		{X: 0.51, Y: 0.52},
		{X: -0.1, Y: 0.5},
	}, models.HeatmapGridSize)

	assert.Len(t, cells, models.HeatmapGridSize)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(2), maxCell)
	assert.Equal(t, int64(1), cells[0][0])
	assert.Equal(t, int64(1), cells[19][19])
	assert.Equal(t, int64(2), cells[10][10])
}
