// Package stats holds the date arithmetic and result shaping behind the
// stats reports: period resolution, bucket layout, gap filling and merging
// of imported Google Analytics data. It does not talk to storage.
package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	// MaxRangeDays bounds custom ranges.
	MaxRangeDays = 366

	// MaxHourlyDays is the longest range that may use hourly buckets.
	MaxHourlyDays = 7

	DefaultLimit = 10
	MaxLimit     = 100

	day = 24 * time.Hour
)

var (
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrRangeTooLong    = fmt.Errorf("date range exceeds %d days", MaxRangeDays)
	ErrInvalidInterval = errors.New("invalid interval")
	ErrIntervalTooFine = fmt.Errorf("hourly interval is limited to ranges of %d days", MaxHourlyDays)
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidLimit    = fmt.Errorf("limit must be between 1 and %d", MaxLimit)
)

// ResolveRange turns a period name into a half-open UTC range relative to
// now. For [models.PeriodCustom] from and to are inclusive "YYYY-MM-DD" days.
// An empty period means the last 30 days.
func ResolveRange(period models.Period, from, to string, now time.Time) (models.DateRange, error) {
	today := startOfDay(now)
	tomorrow := today.Add(day)

	switch period {
	case models.PeriodToday:
		return models.DateRange{From: today, To: tomorrow}, nil
	case models.PeriodYesterday:
		return models.DateRange{From: today.Add(-day), To: today}, nil
	case models.Period7Days:
		return models.DateRange{From: today.AddDate(0, 0, -6), To: tomorrow}, nil
	case models.Period30Days, "":
		return models.DateRange{From: today.AddDate(0, 0, -29), To: tomorrow}, nil
	case models.PeriodMonth:
		first := startOfMonth(today)
		return models.DateRange{From: first, To: first.AddDate(0, 1, 0)}, nil
	case models.Period12Months:
		first := startOfMonth(today)
		return models.DateRange{From: first.AddDate(0, -11, 0), To: first.AddDate(0, 1, 0)}, nil
	case models.PeriodCustom:
		return customRange(from, to)
	default:
		return models.DateRange{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
}

func customRange(from, to string) (models.DateRange, error) {
	start, err := ParseDay(from)
	if err != nil {
		return models.DateRange{}, err
	}
	end, err := ParseDay(to)
	if err != nil {
		return models.DateRange{}, err
	}
	if end.Before(start) {
		return models.DateRange{}, fmt.Errorf("%w: from is after to", ErrInvalidPeriod)
	}

	r := models.DateRange{From: start, To: end.Add(day)}
	if r.Days() > MaxRangeDays {
		return models.DateRange{}, ErrRangeTooLong
	}
	return r, nil
}

// ParseDay parses a "YYYY-MM-DD" day in UTC.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ChooseInterval validates the requested interval for r, or picks the
// default: hourly for ranges of one day and daily otherwise.
func ChooseInterval(r models.DateRange, requested models.Interval) (models.Interval, error) {
	switch requested {
	case "":
		if r.Days() <= 1 {
			return models.IntervalHour, nil
		}
		return models.IntervalDay, nil
	case models.IntervalHour:
		if r.Days() > MaxHourlyDays {
			return "", ErrIntervalTooFine
		}
		return requested, nil
	case models.IntervalDay, models.IntervalWeek, models.IntervalMonth:
		return requested, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, requested)
	}
}

// ParseFilters reads "filter.<dimension>" parameters.
func ParseFilters(values map[string][]string) (map[models.Dimension]string, error) {
	var filters map[models.Dimension]string
	for key, vals := range values {
		name, ok := strings.CutPrefix(key, "filter.")
		if !ok {
			continue
		}
		dim := models.Dimension(name)
		if !dim.Valid() {
			return nil, fmt.Errorf("%w: unknown dimension %q", ErrInvalidFilter, name)
		}
		if len(vals) == 0 {
			continue
		}
		if filters == nil {
			filters = make(map[models.Dimension]string)
		}
		filters[dim] = vals[0]
	}
	return filters, nil
}

// NormalizeLimit applies the default limit and rejects out-of-range values.
func NormalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 0 || limit > MaxLimit {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

// Filter builds an event filter for r.
func Filter(siteID string, r models.DateRange, filters map[models.Dimension]string) models.EventFilter {
	return models.EventFilter{
		SiteID:  siteID,
		From:    r.From.UnixMilli(),
		To:      r.To.UnixMilli(),
		Filters: filters,
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
