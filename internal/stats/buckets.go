package stats

import (
	"time"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

// 1970-01-01 was a Thursday; ISO weeks start four days later.
const weekOffset = int64(4 * 24 * time.Hour / time.Millisecond)

// BucketSpec returns the fixed bucket width and alignment offset in
// milliseconds for an interval. Months have no fixed width; ok is false for
// them and the caller queries month by month.
func BucketSpec(interval models.Interval) (size, offset int64, ok bool) {
	switch interval {
	case models.IntervalHour:
		return time.Hour.Milliseconds(), 0, true
	case models.IntervalDay:
		return day.Milliseconds(), 0, true
	case models.IntervalWeek:
		return 7 * day.Milliseconds(), weekOffset, true
	default:
		return 0, 0, false
	}
}

// BucketStart returns the start of the bucket containing t.
func BucketStart(t time.Time, interval models.Interval) time.Time {
	t = t.UTC()
	switch interval {
	case models.IntervalHour:
		return t.Truncate(time.Hour)
	case models.IntervalWeek:
		d := startOfDay(t)
		// Monday is 0.
		back := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -back)
	case models.IntervalMonth:
		return startOfMonth(t)
	default:
		return startOfDay(t)
	}
}

// Buckets lists the starts of every bucket overlapping r.
func Buckets(r models.DateRange, interval models.Interval) []time.Time {
	var out []time.Time
	for t := BucketStart(r.From, interval); t.Before(r.To); t = next(t, interval) {
		out = append(out, t)
	}
	return out
}

func next(t time.Time, interval models.Interval) time.Time {
	switch interval {
	case models.IntervalHour:
		return t.Add(time.Hour)
	case models.IntervalWeek:
		return t.AddDate(0, 0, 7)
	case models.IntervalMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// FillGaps returns one point per bucket, taking values from points and
// zeros where no point exists.
func FillGaps(buckets []time.Time, points []models.TimeseriesPoint) []models.TimeseriesPoint {
	byTime := make(map[int64]models.TimeseriesPoint, len(points))
	for _, p := range points {
		byTime[p.Time.UnixMilli()] = p
	}

	out := make([]models.TimeseriesPoint, len(buckets))
	for i, b := range buckets {
		p := byTime[b.UnixMilli()]
		p.Time = b
		out[i] = p
	}
	return out
}
