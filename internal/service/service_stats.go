package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/stats"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// RealtimeWindow is how far back the realtime visitor count looks.
const RealtimeWindow = 5 * time.Minute

var (
	reportTypes   = []models.EventType{models.EventPageview, models.EventCustom}
	pageviewTypes = []models.EventType{models.EventPageview}
	customTypes   = []models.EventType{models.EventCustom}
)

type statsService struct {
	events      store.EventRepository
	goals       store.GoalRepository
	annotations store.AnnotationRepository
	access      AccessService

	now func() time.Time

	logger *logger.Logger
}

func NewStatsService(storages *store.Storages, access AccessService, logger *logger.Logger) StatsService {
	return &statsService{
		events:      storages.EventRepository,
		goals:       storages.GoalRepository,
		annotations: storages.AnnotationRepository,
		access:      access,
		now:         time.Now,
		logger:      logger,
	}
}

// StatsParamsFromQuery reads stats parameters from URL query values.
func StatsParamsFromQuery(values url.Values) (models.StatsParams, error) {
	params := models.StatsParams{
		SiteID:   values.Get("site_id"),
		Period:   models.Period(values.Get("period")),
		From:     values.Get("from"),
		To:       values.Get("to"),
		Interval: models.Interval(values.Get("interval")),
	}
	if params.SiteID == "" {
		return models.StatsParams{}, invalid("site_id", "site_id is required")
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.StatsParams{}, invalid("limit", stats.ErrInvalidLimit.Error())
		}
		params.Limit = limit
	}

	filters, err := stats.ParseFilters(values)
	if err != nil {
		return models.StatsParams{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	params.Filters = filters

	return params, nil
}

// Report builds the full stats report of a site. Imported Google Analytics
// rows are merged in only when no filter is applied, because they carry no
// dimensions besides the path.
func (s *statsService) Report(ctx context.Context, userID string, params models.StatsParams) (models.StatsReport, error) {
	site, err := s.access.AuthorizeSite(ctx, userID, params.SiteID, ActionStatsRead)
	if err != nil {
		return models.StatsReport{}, err
	}

	r, err := stats.ResolveRange(params.Period, params.From, params.To, s.now())
	if err != nil {
		return models.StatsReport{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	interval, err := stats.ChooseInterval(r, params.Interval)
	if err != nil {
		return models.StatsReport{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	limit, err := stats.NormalizeLimit(params.Limit)
	if err != nil {
		return models.StatsReport{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	filter := stats.Filter(site.ID, r, params.Filters)
	filter.Types = reportTypes

	report := models.StatsReport{
		SiteID:     site.ID,
		Range:      r,
		Interval:   interval,
		Breakdowns: make(map[models.Dimension][]models.BreakdownItem, len(models.Dimensions)),
	}

	if report.Summary, err = s.summary(ctx, filter); err != nil {
		return models.StatsReport{}, err
	}
	if report.Timeseries, err = s.timeseries(ctx, filter, r, interval); err != nil {
		return models.StatsReport{}, err
	}

	for _, dim := range models.Dimensions {
		f := withTypes(filter, pageviewTypes)
		if dim == models.DimEventName {
			f = withTypes(filter, customTypes)
		}
		items, err := s.events.Breakdown(ctx, f, dim, limit)
		if err != nil {
			return models.StatsReport{}, err
		}
		report.Breakdowns[dim] = items
	}

	if report.Goals, err = s.goalConversions(ctx, filter, report.Summary.Visitors); err != nil {
		return models.StatsReport{}, err
	}
	if report.Annotations, err = s.annotationsInRange(ctx, site.ID, r); err != nil {
		return models.StatsReport{}, err
	}

	if len(params.Filters) == 0 {
		lastDay := r.To.Add(-24 * time.Hour)
		imported, err := s.events.ImportedDaily(ctx, site.ID, r.From.Format(time.DateOnly), lastDay.Format(time.DateOnly))
		if err != nil {
			return models.StatsReport{}, err
		}
		if len(imported) > 0 {
			report.Imported = true
			report.Summary = stats.MergeImportedSummary(report.Summary, imported)
			report.Timeseries = stats.MergeImportedTimeseries(report.Timeseries, imported, interval)
			report.Breakdowns[models.DimPath] = stats.MergeImportedPages(report.Breakdowns[models.DimPath], imported, limit)
		}
	}

	return report, nil
}

func (s *statsService) Realtime(ctx context.Context, userID, siteID string) (models.Realtime, error) {
	site, err := s.access.AuthorizeSite(ctx, userID, siteID, ActionStatsRead)
	if err != nil {
		return models.Realtime{}, err
	}

	since := s.now().Add(-RealtimeWindow).UnixMilli()
	visitors, err := s.events.ActiveVisitors(ctx, site.ID, since)
	if err != nil {
		return models.Realtime{}, err
	}

	return models.Realtime{
		SiteID:   site.ID,
		Visitors: visitors,
		Minutes:  int(RealtimeWindow / time.Minute),
	}, nil
}

func (s *statsService) summary(ctx context.Context, filter models.EventFilter) (models.Summary, error) {
	summary, err := s.events.Summary(ctx, filter)
	if err != nil {
		return models.Summary{}, err
	}
	bounces, err := s.events.Bounces(ctx, filter)
	if err != nil {
		return models.Summary{}, err
	}
	summary.BounceRate = stats.Percent(bounces, summary.Sessions)
	return summary, nil
}

// timeseries returns one point per bucket of r. Monthly buckets have no
// fixed width and are summarised one by one.
func (s *statsService) timeseries(ctx context.Context, filter models.EventFilter, r models.DateRange, interval models.Interval) ([]models.TimeseriesPoint, error) {
	buckets := stats.Buckets(r, interval)

	if size, offset, ok := stats.BucketSpec(interval); ok {
		points, err := s.events.Timeseries(ctx, filter, size, offset)
		if err != nil {
			return nil, err
		}
		return stats.FillGaps(buckets, points), nil
	}

	points := make([]models.TimeseriesPoint, 0, len(buckets))
	for i, start := range buckets {
		end := r.To
		if i+1 < len(buckets) {
			end = buckets[i+1]
		}

		f := filter
		f.From = max(start.UnixMilli(), r.From.UnixMilli())
		f.To = min(end.UnixMilli(), r.To.UnixMilli())
		summary, err := s.events.Summary(ctx, f)
		if err != nil {
			return nil, err
		}
		points = append(points, models.TimeseriesPoint{Time: start, Pageviews: summary.Pageviews, Visitors: summary.Visitors})
	}
	return points, nil
}

func (s *statsService) goalConversions(ctx context.Context, filter models.EventFilter, visitors int64) ([]models.GoalConversion, error) {
	goals, err := s.goals.ListGoals(ctx, filter.SiteID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []models.GoalConversion{}, nil
	}

	conversions, err := s.events.GoalConversions(ctx, filter, goals)
	if err != nil {
		return nil, err
	}
	for i := range conversions {
		conversions[i].ConversionRate = stats.Percent(conversions[i].Visitors, visitors)
	}
	return conversions, nil
}

func (s *statsService) annotationsInRange(ctx context.Context, siteID string, r models.DateRange) ([]models.Annotation, error) {
	all, err := s.annotations.ListAnnotations(ctx, siteID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Annotation, 0, len(all))
	for _, a := range all {
		day, err := stats.ParseDay(a.Date)
		if err != nil {
			continue
		}
		if !day.Before(r.From) && day.Before(r.To) {
			out = append(out, a)
		}
	}
	return out, nil
}

func withTypes(filter models.EventFilter, types []models.EventType) models.EventFilter {
	filter.Types = types
	return filter
}
