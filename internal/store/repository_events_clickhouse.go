package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var clickhouseSchema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id           String,
		site_id      String,
		type         LowCardinality(String),
		name         String,
		visitor_id   String,
		session_id   String,
		path         String,
		referrer     String,
		utm_source   String,
		utm_medium   String,
		utm_campaign String,
		device       LowCardinality(String),
		browser      LowCardinality(String),
		os           LowCardinality(String),
		x            Float64,
		y            Float64,
		props        String,
		ts           Int64
	) ENGINE = MergeTree
	ORDER BY (site_id, ts)`,
	`CREATE TABLE IF NOT EXISTS imported_pageviews (
		site_id   String,
		day       String,
		path      String,
		pageviews Int64,
		visitors  Int64
	) ENGINE = ReplacingMergeTree
	ORDER BY (site_id, day, path)`,
}

// ClickHouse server error codes worth retrying.
var retryableClickhouseCodes = map[int32]struct{}{
	159: {}, // TIMEOUT_EXCEEDED
	202: {}, // TOO_MANY_SIMULTANEOUS_QUERIES
	209: {}, // SOCKET_TIMEOUT
	210: {}, // NETWORK_ERROR
	242: {}, // TABLE_IS_READ_ONLY
	252: {}, // TOO_MANY_PARTS
	319: {}, // UNKNOWN_STATUS_OF_INSERT
}

// clickhouseEventRepository implements [EventRepository] on ClickHouse.
// Inserts go through the native batch protocol; aggregates use count/uniq
// and intDiv bucketing.
type clickhouseEventRepository struct {
	conn   driver.Conn
	logger *logger.Logger
}

// NewConnectClickHouse opens a native ClickHouse connection for dsn, pings it
// and creates the schema.
func NewConnectClickHouse(ctx context.Context, dsn string, log *logger.Logger) (EventRepository, error) {
	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	options.ClientInfo = clickhouse.ClientInfo{
		Products: []struct {
			Name    string
			Version string
		}{{Name: "go-pixel-analytics", Version: "1"}},
	}
	if options.DialTimeout == 0 {
		options.DialTimeout = 5 * time.Second
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		log.Err(err).Str("func", "NewConnectClickHouse").Msg("error opening clickhouse connection")
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}
	if err = conn.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectClickHouse").Msg("error connecting clickhouse (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	for _, ddl := range clickhouseSchema {
		if err = conn.Exec(ctx, ddl); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("create clickhouse schema: %w", err)
		}
	}
	log.Info().Str("func", "NewConnectClickHouse").Msg("connected to clickhouse successfully")

	return &clickhouseEventRepository{conn: conn, logger: log}, nil
}

func (r *clickhouseEventRepository) InsertEvents(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, "INSERT INTO events ("+strings.Join(eventColumns, ", ")+")")
	if err != nil {
		return fmt.Errorf("%w: prepare batch: %w", ErrExecutingStatement, err)
	}

	for _, e := range events {
		props := "{}"
		if len(e.Props) > 0 {
			raw, err := json.Marshal(e.Props)
			if err != nil {
				_ = batch.Abort()
				return fmt.Errorf("%w: encode props: %w", ErrBuildingSQLQuery, err)
			}
			props = string(raw)
		}
		err = batch.Append(
			e.ID, e.SiteID, string(e.Type), e.Name, e.VisitorID, e.SessionID, e.Path, e.Referrer,
			e.UTMSource, e.UTMMedium, e.UTMCampaign, e.Device, e.Browser, e.OS, e.X, e.Y, props, e.Timestamp,
		)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("%w: append event: %w", ErrExecutingStatement, err)
		}
	}

	if err = batch.Send(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clickhouseEventRepository.InsertEvents").Int("events", len(events)).Msg("error sending batch")
		return fmt.Errorf("%w: send batch: %w", ErrExecutingStatement, err)
	}
	return nil
}

// InsertImported relies on ReplacingMergeTree to keep the last row per
// (site, day, path).
func (r *clickhouseEventRepository) InsertImported(ctx context.Context, rows []models.ImportedPageviews) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, "INSERT INTO imported_pageviews (site_id, day, path, pageviews, visitors)")
	if err != nil {
		return fmt.Errorf("%w: prepare batch: %w", ErrExecutingStatement, err)
	}
	for _, row := range rows {
		if err = batch.Append(row.SiteID, row.Day, row.Path, row.Pageviews, row.Visitors); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("%w: append row: %w", ErrExecutingStatement, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("%w: send batch: %w", ErrExecutingStatement, err)
	}
	return nil
}

// chWhere renders the filter as a ClickHouse WHERE clause.
func chWhere(f models.EventFilter) (string, []any) {
	clauses := []string{"site_id = ?", "ts >= ?", "ts < ?"}
	args := []any{f.SiteID, f.From, f.To}

	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		clauses = append(clauses, "has(?, type)")
		args = append(args, types)
	}
	for _, dim := range models.Dimensions {
		if v, ok := f.Filters[dim]; ok {
			clauses = append(clauses, string(dim)+" = ?")
			args = append(args, v)
		}
	}

	return strings.Join(clauses, " AND "), args
}

func (r *clickhouseEventRepository) Summary(ctx context.Context, filter models.EventFilter) (models.Summary, error) {
	where, args := chWhere(filter)
	query := `SELECT countIf(type = 'pageview'), uniq(visitor_id), uniq(session_id), countIf(type = 'event')
		FROM events WHERE ` + where

	var pageviews, visitors, sessions, custom uint64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&pageviews, &visitors, &sessions, &custom); err != nil {
		return models.Summary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Summary{
		Pageviews:    int64(pageviews),
		Visitors:     int64(visitors),
		Sessions:     int64(sessions),
		CustomEvents: int64(custom),
	}, nil
}

func (r *clickhouseEventRepository) Bounces(ctx context.Context, filter models.EventFilter) (int64, error) {
	filter.Types = []models.EventType{models.EventPageview}
	where, args := chWhere(filter)
	query := `SELECT count() FROM (
		SELECT session_id FROM events WHERE ` + where + ` GROUP BY session_id HAVING count() = 1
	)`

	var n uint64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return int64(n), nil
}

func (r *clickhouseEventRepository) Timeseries(ctx context.Context, filter models.EventFilter, size, offset int64) ([]models.TimeseriesPoint, error) {
	where, args := chWhere(filter)
	query := fmt.Sprintf(`SELECT intDiv(ts - %d, %d) * %d + %d AS bucket, countIf(type = 'pageview'), uniq(visitor_id)
		FROM events WHERE %s
		GROUP BY bucket
		ORDER BY bucket`, offset, size, size, offset, where)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var points []models.TimeseriesPoint
	for rows.Next() {
		var bucket int64
		var pageviews, visitors uint64
		if err = rows.Scan(&bucket, &pageviews, &visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		points = append(points, models.TimeseriesPoint{
			Time:      time.UnixMilli(bucket).UTC(),
			Pageviews: int64(pageviews),
			Visitors:  int64(visitors),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return points, nil
}

func (r *clickhouseEventRepository) Breakdown(ctx context.Context, filter models.EventFilter, dim models.Dimension, limit int) ([]models.BreakdownItem, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrBuildingSQLQuery, dim)
	}
	col := string(dim)
	where, args := chWhere(filter)
	query := fmt.Sprintf(`SELECT %s AS value, count() AS hits, uniq(visitor_id) AS visitors
		FROM events WHERE %s AND %s != ''
		GROUP BY value
		ORDER BY hits DESC, value
		LIMIT %d`, col, where, col, limit)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.BreakdownItem, 0, limit)
	for rows.Next() {
		var item models.BreakdownItem
		var hits, visitors uint64
		if err = rows.Scan(&item.Value, &hits, &visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Pageviews = int64(hits)
		item.Visitors = int64(visitors)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return items, nil
}

func (r *clickhouseEventRepository) GoalConversions(ctx context.Context, filter models.EventFilter, goals []models.Goal) ([]models.GoalConversion, error) {
	out := make([]models.GoalConversion, 0, len(goals))
	for _, goal := range goals {
		f := filter
		var match string
		var matchArg any
		switch goal.Type {
		case models.GoalPageview:
			f.Types = []models.EventType{models.EventPageview}
			if strings.Contains(goal.Pattern, "*") {
				match, matchArg = "path LIKE ?", likePattern(goal.Pattern)
			} else {
				match, matchArg = "path = ?", goal.Pattern
			}
		case models.GoalEvent:
			f.Types = []models.EventType{models.EventCustom}
			match, matchArg = "name = ?", goal.EventName
		default:
			return nil, fmt.Errorf("%w: unknown goal type %q", ErrBuildingSQLQuery, goal.Type)
		}

		where, args := chWhere(f)
		query := "SELECT count(), uniq(visitor_id) FROM events WHERE " + where + " AND " + match

		var conversions, visitors uint64
		if err := r.conn.QueryRow(ctx, query, append(args, matchArg)...).Scan(&conversions, &visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, models.GoalConversion{
			GoalID:      goal.ID,
			Name:        goal.Name,
			Conversions: int64(conversions),
			Visitors:    int64(visitors),
		})
	}
	return out, nil
}

func (r *clickhouseEventRepository) ActiveVisitors(ctx context.Context, siteID string, since int64) (int64, error) {
	var n uint64
	err := r.conn.QueryRow(ctx, "SELECT uniq(visitor_id) FROM events WHERE site_id = ? AND ts >= ?", siteID, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return int64(n), nil
}

func (r *clickhouseEventRepository) Clicks(ctx context.Context, filter models.EventFilter, path string, limit int) ([]models.Click, error) {
	filter.Types = []models.EventType{models.EventClick}
	where, args := chWhere(filter)
	query := fmt.Sprintf("SELECT x, y FROM events WHERE %s AND path = ? ORDER BY ts DESC LIMIT %d", where, limit)

	rows, err := r.conn.Query(ctx, query, append(args, path)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var clicks []models.Click
	for rows.Next() {
		var c models.Click
		if err = rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}

func (r *clickhouseEventRepository) ImportedDaily(ctx context.Context, siteID, fromDay, toDay string) ([]models.ImportedPageviews, error) {
	rows, err := r.conn.Query(ctx, `SELECT day, path, pageviews, visitors
		FROM imported_pageviews FINAL
		WHERE site_id = ? AND day >= ? AND day <= ?
		ORDER BY day, path`, siteID, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.ImportedPageviews
	for rows.Next() {
		row := models.ImportedPageviews{SiteID: siteID}
		if err = rows.Scan(&row.Day, &row.Path, &row.Pageviews, &row.Visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *clickhouseEventRepository) CountEvents(ctx context.Context, siteIDs []string, from, to int64) (int64, error) {
	if len(siteIDs) == 0 {
		return 0, nil
	}
	var n uint64
	err := r.conn.QueryRow(ctx, "SELECT count() FROM events WHERE has(?, site_id) AND ts >= ? AND ts < ?", siteIDs, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return int64(n), nil
}

func (r *clickhouseEventRepository) DeleteSite(ctx context.Context, siteID string) error {
	for _, table := range []string{eventsTable, importedTable} {
		if err := r.conn.Exec(ctx, "ALTER TABLE "+table+" DELETE WHERE site_id = ?", siteID); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*clickhouseEventRepository.DeleteSite").Str("table", table).Msg("error deleting site data")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

// Classify treats network failures and a small set of server codes as
// transient.
func (r *clickhouseEventRepository) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var exception *clickhouse.Exception
	if errors.As(err, &exception) {
		if _, ok := retryableClickhouseCodes[exception.Code]; ok {
			return Retryable
		}
		return NonRetryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return Retryable
	}
	return NonRetryable
}

func (r *clickhouseEventRepository) Close() error {
	return r.conn.Close()
}
