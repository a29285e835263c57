package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service/rbac"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// newTestStorages opens an in-memory blob store and a SQLite event database
// in a temporary directory.
func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)

	events, err := store.OpenEventRepository(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "events.db"), logger.Nop())
	require.NoError(t, err)

	storages := store.NewStoragesFrom(store.NewBadgerStoreFromDB(db, logger.Nop()), events, logger.Nop())
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func newTestAccess(t *testing.T, storages *store.Storages) AccessService {
	t.Helper()

	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)
	return NewAccessService(storages.SiteRepository, storages.TeamRepository, enforcer, logger.Nop())
}

func createUser(t *testing.T, storages *store.Storages, id string, plan models.Plan) models.User {
	t.Helper()

	user := models.User{ID: id, Email: id + "@example.com", Plan: plan, CreatedAt: time.Now().UTC()}
	require.NoError(t, storages.UserRepository.CreateUser(context.Background(), user))
	return user
}

func createSite(t *testing.T, storages *store.Storages, id, ownerID, teamID string) models.Site {
	t.Helper()

	site := models.Site{ID: id, OwnerID: ownerID, TeamID: teamID, Domain: id + ".example.com", Name: id}
	require.NoError(t, storages.SiteRepository.CreateSite(context.Background(), site))
	return site
}

func createTeam(t *testing.T, storages *store.Storages, id, ownerID string, members ...models.TeamMember) models.Team {
	t.Helper()

	team := models.Team{ID: id, Name: id, OwnerID: ownerID, Members: members}
	require.NoError(t, storages.TeamRepository.CreateTeam(context.Background(), team))
	return team
}

// ───── Fakes ─────

type fakeQueue struct {
	mu       sync.Mutex
	events   []models.Event
	enqueueF func(events ...models.Event) error
}

func (q *fakeQueue) Enqueue(events ...models.Event) error {
	if q.enqueueF != nil {
		if err := q.enqueueF(events...); err != nil {
			return err
		}
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, events...)
	return nil
}

type fakeNotifier struct {
	published []models.Notification
	publishF  func(n models.Notification) error
}

func (n *fakeNotifier) PublishNotification(notification models.Notification) error {
	if n.publishF != nil {
		return n.publishF(notification)
	}
	n.published = append(n.published, notification)
	return nil
}

type fakeSender struct {
	sent  []models.Notification
	sendF func(ctx context.Context, hook models.Webhook, n models.Notification) models.DeliveryResult
}

func (s *fakeSender) Send(ctx context.Context, hook models.Webhook, n models.Notification) models.DeliveryResult {
	s.sent = append(s.sent, n)
	if s.sendF != nil {
		return s.sendF(ctx, hook, n)
	}
	return models.DeliveryResult{WebhookID: hook.ID, StatusCode: 200, Delivered: true}
}
