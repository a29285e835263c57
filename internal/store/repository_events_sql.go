package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// eventRepository is the database/sql implementation of [EventRepository]
// used for PostgreSQL and SQLite. Queries are rendered by [queryBuilder] with
// the connection's placeholder format.
type eventRepository struct {
	db      *DB
	queries queryBuilder
	logger  *logger.Logger
}

// NewEventRepository constructs an [EventRepository] on an open connection.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating event repository")
	return &eventRepository{
		db:      db,
		queries: newQueryBuilder(db.placeholder),
		logger:  logger,
	}
}

// InsertEvents writes events in chunks inside one transaction, so a batch is
// stored completely or not at all.
func (r *eventRepository) InsertEvents(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.InsertEvents").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(events); start += insertChunkSize {
		end := min(start+insertChunkSize, len(events))

		query, args, err := r.queries.insertEvents(events[start:end])
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*eventRepository.InsertEvents").Int("events", end-start).Msg("error inserting events")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*eventRepository.InsertEvents").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *eventRepository) InsertImported(ctx context.Context, rows []models.ImportedPageviews) error {
	if len(rows) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for start := 0; start < len(rows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(rows))

		query, args, err := r.queries.insertImported(rows[start:end])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*eventRepository.InsertImported").Msg("error inserting imported rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *eventRepository) Summary(ctx context.Context, filter models.EventFilter) (models.Summary, error) {
	query, args, err := r.queries.summary(filter)
	if err != nil {
		return models.Summary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Summary
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&s.Pageviews, &s.Visitors, &s.Sessions, &s.CustomEvents); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.Summary").Msg("error scanning summary")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *eventRepository) Bounces(ctx context.Context, filter models.EventFilter) (int64, error) {
	query, args, err := r.queries.bounces(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scalar(ctx, "Bounces", query, args)
}

func (r *eventRepository) Timeseries(ctx context.Context, filter models.EventFilter, size, offset int64) ([]models.TimeseriesPoint, error) {
	query, args, err := r.queries.timeseries(filter, size, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.Timeseries").Msg("error querying timeseries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var points []models.TimeseriesPoint
	for rows.Next() {
		var bucket int64
		var p models.TimeseriesPoint
		if err = rows.Scan(&bucket, &p.Pageviews, &p.Visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		p.Time = time.UnixMilli(bucket).UTC()
		points = append(points, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return points, nil
}

func (r *eventRepository) Breakdown(ctx context.Context, filter models.EventFilter, dim models.Dimension, limit int) ([]models.BreakdownItem, error) {
	query, args, err := r.queries.breakdown(filter, dim, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.Breakdown").Str("dimension", string(dim)).Msg("error querying breakdown")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.BreakdownItem, 0, limit)
	for rows.Next() {
		var item models.BreakdownItem
		if err = rows.Scan(&item.Value, &item.Pageviews, &item.Visitors); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *eventRepository) GoalConversions(ctx context.Context, filter models.EventFilter, goals []models.Goal) ([]models.GoalConversion, error) {
	out := make([]models.GoalConversion, 0, len(goals))
	for _, goal := range goals {
		query, args, err := r.queries.goalConversions(filter, goal)
		if err != nil {
			return nil, err
		}

		conv := models.GoalConversion{GoalID: goal.ID, Name: goal.Name}
		row := r.db.QueryRowContext(ctx, query, args...)
		if err = row.Scan(&conv.Conversions, &conv.Visitors); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.GoalConversions").Str("goal_id", goal.ID).Msg("error scanning goal")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, conv)
	}
	return out, nil
}

func (r *eventRepository) ActiveVisitors(ctx context.Context, siteID string, since int64) (int64, error) {
	query, args, err := r.queries.activeVisitors(siteID, since)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scalar(ctx, "ActiveVisitors", query, args)
}

func (r *eventRepository) Clicks(ctx context.Context, filter models.EventFilter, path string, limit int) ([]models.Click, error) {
	query, args, err := r.queries.clicks(filter, path, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.Clicks").Msg("error querying clicks")
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
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clicks, nil
}

func (r *eventRepository) ImportedDaily(ctx context.Context, siteID, fromDay, toDay string) ([]models.ImportedPageviews, error) {
	query, args, err := r.queries.importedDaily(siteID, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.ImportedDaily").Msg("error querying imported rows")
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
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (r *eventRepository) CountEvents(ctx context.Context, siteIDs []string, from, to int64) (int64, error) {
	if len(siteIDs) == 0 {
		return 0, nil
	}
	query, args, err := r.queries.countEvents(siteIDs, from, to)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scalar(ctx, "CountEvents", query, args)
}

// DeleteSite removes tracked and imported data of a site.
func (r *eventRepository) DeleteSite(ctx context.Context, siteID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{eventsTable, importedTable} {
		query, args, err := r.queries.deleteSite(table, siteID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*eventRepository.DeleteSite").Str("table", table).Msg("error deleting site data")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *eventRepository) Classify(err error) ErrorClassification {
	return r.db.Classify(err)
}

func (r *eventRepository) Close() error {
	return r.db.Close()
}

// scalar runs a query returning a single integer.
func (r *eventRepository) scalar(ctx context.Context, op, query string, args []any) (int64, error) {
	var n sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*eventRepository."+op).Msg("error scanning value")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n.Int64, nil
}
