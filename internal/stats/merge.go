package stats

import (
	"math"
	"sort"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Imported rows only carry daily totals, so visitors are summed per day and
// over-count visitors returning on several days.

// MergeImportedSummary adds imported totals to a summary.
func MergeImportedSummary(s models.Summary, imported []models.ImportedPageviews) models.Summary {
	for _, row := range imported {
		s.Pageviews += row.Pageviews
		s.Visitors += row.Visitors
	}
	return s
}

// MergeImportedTimeseries adds imported days to the buckets containing them.
// Hourly series are returned unchanged.
func MergeImportedTimeseries(points []models.TimeseriesPoint, imported []models.ImportedPageviews, interval models.Interval) []models.TimeseriesPoint {
	if interval == models.IntervalHour || len(imported) == 0 {
		return points
	}

	index := make(map[int64]int, len(points))
	for i, p := range points {
		index[p.Time.UnixMilli()] = i
	}

	for _, row := range imported {
		d, err := time.Parse(time.DateOnly, row.Day)
		if err != nil {
			continue
		}
		i, ok := index[BucketStart(d, interval).UnixMilli()]
		if !ok {
			continue
		}
		points[i].Pageviews += row.Pageviews
		points[i].Visitors += row.Visitors
	}
	return points
}

// MergeImportedPages adds imported pageviews to the top pages and re-ranks
// them.
func MergeImportedPages(items []models.BreakdownItem, imported []models.ImportedPageviews, limit int) []models.BreakdownItem {
	if len(imported) == 0 {
		return items
	}

	byPath := make(map[string]*models.BreakdownItem, len(items))
	merged := make([]*models.BreakdownItem, 0, len(items))
	for i := range items {
		item := items[i]
		byPath[item.Value] = &item
		merged = append(merged, &item)
	}
	for _, row := range imported {
		item, ok := byPath[row.Path]
		if !ok {
			item = &models.BreakdownItem{Value: row.Path}
			byPath[row.Path] = item
			merged = append(merged, item)
		}
		item.Pageviews += row.Pageviews
		item.Visitors += row.Visitors
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Pageviews != merged[j].Pageviews {
			return merged[i].Pageviews > merged[j].Pageviews
		}
		return merged[i].Value < merged[j].Value
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	out := make([]models.BreakdownItem, len(merged))
	for i, item := range merged {
		out[i] = *item
	}
	return out
}

// Percent returns part/total as a percentage rounded to one decimal, or 0
// for an empty total.
func Percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
