package models

import "time"

// Period names a predefined reporting range.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7d"
	Period30Days    Period = "30d"
	PeriodMonth     Period = "month"
	Period12Months  Period = "12mo"
	PeriodCustom    Period = "custom"
)

// Interval is the width of a timeseries bucket.
type Interval string

const (
	IntervalHour  Interval = "hour"
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// Dimension is a column events can be grouped or filtered by.
type Dimension string

const (
	DimPath        Dimension = "path"
	DimReferrer    Dimension = "referrer"
	DimUTMSource   Dimension = "utm_source"
	DimUTMMedium   Dimension = "utm_medium"
	DimUTMCampaign Dimension = "utm_campaign"
	DimDevice      Dimension = "device"
	DimBrowser     Dimension = "browser"
	DimOS          Dimension = "os"
	DimEventName   Dimension = "name"
)

// Dimensions lists every dimension in report order.
var Dimensions = []Dimension{
	DimPath, DimReferrer, DimUTMSource, DimUTMMedium, DimUTMCampaign,
	DimDevice, DimBrowser, DimOS, DimEventName,
}

// Valid reports whether d is a known dimension.
func (d Dimension) Valid() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

// DateRange is a half-open UTC time range [From, To).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Days returns the number of calendar days covered by r.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours() / 24)
}

// StatsParams are the raw parameters of a stats request.
type StatsParams struct {
	SiteID   string
	Period   Period
	From     string
	To       string
	Interval Interval
	Filters  map[Dimension]string
	Limit    int
}

// EventFilter narrows an event query.
type EventFilter struct {
	SiteID  string
	From    int64
	To      int64
	Types   []EventType
	Filters map[Dimension]string
}

// Summary holds aggregate metrics for a range.
type Summary struct {
	Pageviews    int64   `json:"pageviews"`
	Visitors     int64   `json:"visitors"`
	Sessions     int64   `json:"sessions"`
	BounceRate   float64 `json:"bounce_rate"`
	CustomEvents int64   `json:"custom_events"`
}

// TimeseriesPoint is one bucket of a timeseries.
type TimeseriesPoint struct {
	Time      time.Time `json:"time"`
	Pageviews int64     `json:"pageviews"`
	Visitors  int64     `json:"visitors"`
}

// BreakdownItem is one row of a top-N report.
type BreakdownItem struct {
	Value     string `json:"value"`
	Pageviews int64  `json:"pageviews"`
	Visitors  int64  `json:"visitors"`
}

// GoalConversion reports how many visitors completed a goal.
type GoalConversion struct {
	GoalID         string  `json:"goal_id"`
	Name           string  `json:"name"`
	Conversions    int64   `json:"conversions"`
	Visitors       int64   `json:"visitors"`
	ConversionRate float64 `json:"conversion_rate"`
}

// StatsReport is the response of the stats endpoint.
type StatsReport struct {
	SiteID      string                        `json:"site_id"`
	Range       DateRange                     `json:"range"`
	Interval    Interval                      `json:"interval"`
	Summary     Summary                       `json:"summary"`
	Timeseries  []TimeseriesPoint             `json:"timeseries"`
	Breakdowns  map[Dimension][]BreakdownItem `json:"breakdowns"`
	Goals       []GoalConversion              `json:"goals"`
	Annotations []Annotation                  `json:"annotations"`
	Imported    bool                          `json:"includes_imported"`
}

// Realtime is the response of the realtime endpoint.
type Realtime struct {
	SiteID   string `json:"site_id"`
	Visitors int64  `json:"visitors"`
	Minutes  int    `json:"minutes"`
}
