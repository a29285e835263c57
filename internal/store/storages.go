package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
)

// Storages groups every repository the services depend on.
type Storages struct {
	Blob BlobStore

	UserRepository       UserRepository
	SiteRepository       SiteRepository
	GoalRepository       GoalRepository
	WebhookRepository    WebhookRepository
	AlertRepository      AlertRepository
	AnnotationRepository AnnotationRepository
	APIKeyRepository     APIKeyRepository
	TeamRepository       TeamRepository
	TokenRepository      TokenRepository
	EventRepository      EventRepository
}

// NewStorages opens the blob store and the event database described by cfg
// and builds the repositories on top of them.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	blob, err := NewBadgerStore(cfg.Blob, log)
	if err != nil {
		return nil, err
	}

	events, err := OpenEventRepository(ctx, cfg.Events.DSN, log)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	return NewStoragesFrom(blob, events, log), nil
}

// NewStoragesFrom builds the repositories on already opened stores.
func NewStoragesFrom(blob BlobStore, events EventRepository, log *logger.Logger) *Storages {
	return &Storages{
		Blob:                 blob,
		UserRepository:       NewUserRepository(blob, log),
		SiteRepository:       NewSiteRepository(blob, log),
		GoalRepository:       NewGoalRepository(blob, log),
		WebhookRepository:    NewWebhookRepository(blob, log),
		AlertRepository:      NewAlertRepository(blob, log),
		AnnotationRepository: NewAnnotationRepository(blob, log),
		APIKeyRepository:     NewAPIKeyRepository(blob, log),
		TeamRepository:       NewTeamRepository(blob, log),
		TokenRepository:      NewTokenRepository(blob, log),
		EventRepository:      events,
	}
}

// Close closes the event database and the blob store.
func (s *Storages) Close() error {
	var errs []error
	if s.EventRepository != nil {
		errs = append(errs, s.EventRepository.Close())
	}
	if s.Blob != nil {
		errs = append(errs, s.Blob.Close())
	}
	return errors.Join(errs...)
}

// OpenEventRepository connects to the event database named by dsn:
//   - "postgres://..." or "postgresql://..." → PostgreSQL through pgx;
//   - "sqlite://<path>" or "file:<path>" → SQLite;
//   - "clickhouse://..." → ClickHouse.
//
// SQL backends are migrated before use.
func OpenEventRepository(ctx context.Context, dsn string, log *logger.Logger) (EventRepository, error) {
	var (
		db  *DB
		err error
	)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "file:"), log)
	case strings.HasPrefix(dsn, "clickhouse://"):
		return NewConnectClickHouse(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "OpenEventRepository").Msg("error migrating event database")
		_ = db.Close()
		return nil, err
	}

	return NewEventRepository(db, log), nil
}

// redactDSN keeps only the scheme of a DSN for error messages.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i] + "://..."
	}
	return "..."
}
