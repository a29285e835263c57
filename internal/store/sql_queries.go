package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	eventsTable   = "events"
	importedTable = "imported_pageviews"

	// insertChunkSize keeps a multi-row INSERT well below the bind parameter
	// limits of PostgreSQL (65535) and SQLite (32766).
	insertChunkSize = 500
)

var eventColumns = []string{
	"id", "site_id", "type", "name", "visitor_id", "session_id", "path", "referrer",
	"utm_source", "utm_medium", "utm_campaign", "device", "browser", "os", "x", "y", "props", "ts",
}

const (
	pageviewCount = "COALESCE(SUM(CASE WHEN type = 'pageview' THEN 1 ELSE 0 END), 0)"
	customCount   = "COALESCE(SUM(CASE WHEN type = 'event' THEN 1 ELSE 0 END), 0)"
	visitorCount  = "COUNT(DISTINCT visitor_id)"
	sessionCount  = "COUNT(DISTINCT session_id)"
)

// queryBuilder renders the event queries for one placeholder format.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(placeholder sq.PlaceholderFormat) queryBuilder {
	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// filterConditions turns an event filter into WHERE conditions. Dimension
// filters are applied in report order so the argument order is stable.
func filterConditions(f models.EventFilter) sq.And {
	cond := sq.And{
		sq.Eq{"site_id": f.SiteID},
		sq.GtOrEq{"ts": f.From},
		sq.Lt{"ts": f.To},
	}

	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		cond = append(cond, sq.Eq{"type": types})
	}

	for _, dim := range models.Dimensions {
		if v, ok := f.Filters[dim]; ok {
			cond = append(cond, sq.Eq{string(dim): v})
		}
	}

	return cond
}

func (q queryBuilder) insertEvents(events []models.Event) (string, []any, error) {
	insert := q.sb.Insert(eventsTable).Columns(eventColumns...)
	for _, e := range events {
		props := "{}"
		if len(e.Props) > 0 {
			raw, err := json.Marshal(e.Props)
			if err != nil {
				return "", nil, fmt.Errorf("%w: encode props: %w", ErrBuildingSQLQuery, err)
			}
			props = string(raw)
		}
		insert = insert.Values(
			e.ID, e.SiteID, string(e.Type), e.Name, e.VisitorID, e.SessionID, e.Path, e.Referrer,
			e.UTMSource, e.UTMMedium, e.UTMCampaign, e.Device, e.Browser, e.OS, e.X, e.Y, props, e.Timestamp,
		)
	}
	return insert.ToSql()
}

func (q queryBuilder) insertImported(rows []models.ImportedPageviews) (string, []any, error) {
	insert := q.sb.Insert(importedTable).Columns("site_id", "day", "path", "pageviews", "visitors")
	for _, r := range rows {
		insert = insert.Values(r.SiteID, r.Day, r.Path, r.Pageviews, r.Visitors)
	}
	return insert.
		Suffix("ON CONFLICT (site_id, day, path) DO UPDATE SET pageviews = excluded.pageviews, visitors = excluded.visitors").
		ToSql()
}

func (q queryBuilder) summary(f models.EventFilter) (string, []any, error) {
	return q.sb.Select(pageviewCount, visitorCount, sessionCount, customCount).
		From(eventsTable).
		Where(filterConditions(f)).
		ToSql()
}

func (q queryBuilder) bounces(f models.EventFilter) (string, []any, error) {
	f.Types = []models.EventType{models.EventPageview}
	single := sq.Select("session_id").
		From(eventsTable).
		Where(filterConditions(f)).
		GroupBy("session_id").
		Having("COUNT(*) = 1")

	return q.sb.Select("COUNT(*)").FromSelect(single, "bounced").ToSql()
}

func (q queryBuilder) timeseries(f models.EventFilter, size, offset int64) (string, []any, error) {
	bucket := fmt.Sprintf("((ts - %d) / %d) * %d + %d AS bucket", offset, size, size, offset)
	return q.sb.Select(bucket, pageviewCount, visitorCount).
		From(eventsTable).
		Where(filterConditions(f)).
		GroupBy("bucket").
		OrderBy("bucket").
		ToSql()
}

func (q queryBuilder) breakdown(f models.EventFilter, dim models.Dimension, limit int) (string, []any, error) {
	if !dim.Valid() {
		return "", nil, fmt.Errorf("%w: unknown dimension %q", ErrBuildingSQLQuery, dim)
	}
	col := string(dim)

	return q.sb.Select(col+" AS value", "COUNT(*) AS hits", visitorCount+" AS visitors").
		From(eventsTable).
		Where(filterConditions(f)).
		Where(sq.NotEq{col: ""}).
		GroupBy(col).
		OrderBy("hits DESC", "value").
		Limit(uint64(limit)).
		ToSql()
}

// goalConversions counts the events matching one goal. Pageview patterns use
// "*" as a wildcard; everything else in the pattern matches literally.
func (q queryBuilder) goalConversions(f models.EventFilter, goal models.Goal) (string, []any, error) {
	var match sq.Sqlizer
	switch goal.Type {
	case models.GoalPageview:
		f.Types = []models.EventType{models.EventPageview}
		if strings.Contains(goal.Pattern, "*") {
			match = sq.Expr(`path LIKE ? ESCAPE '\'`, likePattern(goal.Pattern))
		} else {
			match = sq.Eq{"path": goal.Pattern}
		}
	case models.GoalEvent:
		f.Types = []models.EventType{models.EventCustom}
		match = sq.Eq{"name": goal.EventName}
	default:
		return "", nil, fmt.Errorf("%w: unknown goal type %q", ErrBuildingSQLQuery, goal.Type)
	}

	return q.sb.Select("COUNT(*)", visitorCount).
		From(eventsTable).
		Where(filterConditions(f)).
		Where(match).
		ToSql()
}

func (q queryBuilder) activeVisitors(siteID string, since int64) (string, []any, error) {
	return q.sb.Select(visitorCount).
		From(eventsTable).
		Where(sq.Eq{"site_id": siteID}).
		Where(sq.GtOrEq{"ts": since}).
		ToSql()
}

func (q queryBuilder) clicks(f models.EventFilter, path string, limit int) (string, []any, error) {
	f.Types = []models.EventType{models.EventClick}
	return q.sb.Select("x", "y").
		From(eventsTable).
		Where(filterConditions(f)).
		Where(sq.Eq{"path": path}).
		OrderBy("ts DESC").
		Limit(uint64(limit)).
		ToSql()
}

func (q queryBuilder) importedDaily(siteID, fromDay, toDay string) (string, []any, error) {
	return q.sb.Select("day", "path", "pageviews", "visitors").
		From(importedTable).
		Where(sq.Eq{"site_id": siteID}).
		Where(sq.GtOrEq{"day": fromDay}).
		Where(sq.LtOrEq{"day": toDay}).
		OrderBy("day", "path").
		ToSql()
}

func (q queryBuilder) countEvents(siteIDs []string, from, to int64) (string, []any, error) {
	return q.sb.Select("COUNT(*)").
		From(eventsTable).
		Where(sq.Eq{"site_id": siteIDs}).
		Where(sq.GtOrEq{"ts": from}).
		Where(sq.Lt{"ts": to}).
		ToSql()
}

func (q queryBuilder) deleteSite(table, siteID string) (string, []any, error) {
	return q.sb.Delete(table).Where(sq.Eq{"site_id": siteID}).ToSql()
}

// likePattern escapes LIKE metacharacters and turns "*" into "%".
func likePattern(pattern string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `%`)
	return r.Replace(pattern)
}
