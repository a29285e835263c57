package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/mock"
	"github.com/MKhiriev/go-pixel-analytics/internal/pubsub"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type dispatcherMocks struct {
	webhooks *mock.MockWebhookRepository
	goals    *mock.MockGoalRepository
	sender   *mock.MockWebhookSender
}

var dispatcherNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestDispatcher(t *testing.T, bus Subscriber) (*WebhookDispatcher, dispatcherMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := dispatcherMocks{
		webhooks: mock.NewMockWebhookRepository(ctrl),
		goals:    mock.NewMockGoalRepository(ctrl),
		sender:   mock.NewMockWebhookSender(ctrl),
	}

	d := NewWebhookDispatcher(bus, m.webhooks, m.goals, m.sender, 3, logger.Nop())
	d.now = func() time.Time { return dispatcherNow }
	return d, m
}

func delivered(hookID string) models.DeliveryResult {
	return models.DeliveryResult{WebhookID: hookID, StatusCode: 200, Delivered: true}
}

func TestWebhookDispatcher_HandleEvent_Pageview(t *testing.T) {
	d, m := newTestDispatcher(t, nil)

	hooks := []models.Webhook{
		{ID: "h-pv", SiteID: "site-1", Active: true, Events: []string{models.NotifyPageview}},
		{ID: "h-off", SiteID: "site-1", Active: false, Events: []string{models.NotifyPageview}},
		{ID: "h-ev", SiteID: "site-1", Active: true, Events: []string{models.NotifyEvent}},
	}
	event := models.Event{ID: "e1", SiteID: "site-1", Type: models.EventPageview, Path: "/pricing", Timestamp: dispatcherNow.UnixMilli()}

	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return(hooks, nil)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hook models.Webhook, n models.Notification) models.DeliveryResult {
			assert.Equal(t, "h-pv", hook.ID)
			assert.Equal(t, models.NotifyPageview, n.Type)
			assert.Equal(t, "site-1", n.SiteID)
			assert.Equal(t, dispatcherNow, n.Timestamp)
			assert.Equal(t, event, n.Data)
			return delivered(hook.ID)
		})
	m.webhooks.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hook models.Webhook) error {
			assert.Equal(t, "h-pv", hook.ID)
			require.NotNil(t, hook.LastDeliveryAt)
			assert.Equal(t, dispatcherNow, *hook.LastDeliveryAt)
			assert.Zero(t, hook.Failures)
			return nil
		})

	require.NoError(t, d.HandleEvent(context.Background(), event))
}

func TestWebhookDispatcher_HandleEvent_IgnoresClicks(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)

	err := d.HandleEvent(context.Background(), models.Event{SiteID: "site-1", Type: models.EventClick})

	assert.NoError(t, err)
}

func TestWebhookDispatcher_HandleEvent_GoalCompleted(t *testing.T) {
	d, m := newTestDispatcher(t, nil)

	last := dispatcherNow.Add(-10 * time.Second)
	hook := models.Webhook{ID: "h-goal", SiteID: "site-1", Active: true, Events: []string{models.NotifyGoalCompleted}, LastDeliveryAt: &last}
	goals := []models.Goal{
		{ID: "g-thanks", SiteID: "site-1", Name: "Thanks", Type: models.GoalPageview, Pattern: "/thanks*"},
		{ID: "g-other", SiteID: "site-1", Name: "Pricing", Type: models.GoalPageview, Pattern: "/pricing"},
		{ID: "g-event", SiteID: "site-1", Name: "Signup", Type: models.GoalEvent, EventName: "signup"},
	}
	event := models.Event{ID: "e1", SiteID: "site-1", Type: models.EventPageview, Path: "/thanks/order"}

	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return([]models.Webhook{hook}, nil)
	m.goals.EXPECT().ListGoals(gomock.Any(), "site-1").Return(goals, nil)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Webhook, n models.Notification) models.DeliveryResult {
			assert.Equal(t, models.NotifyGoalCompleted, n.Type)
			assert.Equal(t, GoalCompleted{GoalID: "g-thanks", GoalName: "Thanks", Event: event}, n.Data)
			return delivered("h-goal")
		})
	// healthy hook delivered to seconds ago: nothing to record

	require.NoError(t, d.HandleEvent(context.Background(), event))
}

func TestWebhookDispatcher_HandleEvent_ListError(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return(nil, errors.New("badger closed"))

	err := d.HandleEvent(context.Background(), models.Event{SiteID: "site-1", Type: models.EventCustom, Name: "signup"})

	assert.Error(t, err)
}

func TestWebhookDispatcher_RecordsFailures(t *testing.T) {
	tests := []struct {
		name       string
		failures   int
		wantActive bool
	}{
		{name: "below limit", failures: 0, wantActive: true},
		{name: "reaches limit", failures: 2, wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := newTestDispatcher(t, nil)
			hook := models.Webhook{ID: "h1", SiteID: "site-1", Active: true, Events: []string{models.NotifyAlertTriggered}, Failures: tt.failures}
			n := models.Notification{ID: "n1", Type: models.NotifyAlertTriggered, SiteID: "site-1"}

			m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return([]models.Webhook{hook}, nil)
			m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), n).
				Return(models.DeliveryResult{WebhookID: "h1", StatusCode: 500, Error: "unexpected status 500"})
			m.webhooks.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, got models.Webhook) error {
					assert.Equal(t, tt.failures+1, got.Failures)
					assert.Equal(t, tt.wantActive, got.Active)
					assert.Equal(t, "unexpected status 500", got.LastError)
					return nil
				})

			require.NoError(t, d.HandleNotification(context.Background(), n))
		})
	}
}

func TestWebhookDispatcher_SuccessResetsFailures(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	hook := models.Webhook{ID: "h1", SiteID: "site-1", Active: true, Events: []string{models.NotifyEvent}, Failures: 2, LastError: "timeout"}

	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return([]models.Webhook{hook}, nil)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(delivered("h1"))
	m.webhooks.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Webhook) error {
			assert.Zero(t, got.Failures)
			assert.Empty(t, got.LastError)
			assert.True(t, got.Active)
			return nil
		})

	require.NoError(t, d.HandleEvent(context.Background(), models.Event{SiteID: "site-1", Type: models.EventCustom, Name: "signup"}))
}

func TestWebhookDispatcher_DeactivatedHookSkipsRemainingNotifications(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	hook := models.Webhook{ID: "h1", SiteID: "site-1", Active: true, Failures: 2,
		Events: []string{models.NotifyPageview, models.NotifyGoalCompleted}}

	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return([]models.Webhook{hook}, nil)
	m.goals.EXPECT().ListGoals(gomock.Any(), "site-1").
		Return([]models.Goal{{ID: "g1", Type: models.GoalPageview, Pattern: "/"}}, nil)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DeliveryResult{WebhookID: "h1", Error: "connection refused"}).Times(1)
	m.webhooks.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, d.HandleEvent(context.Background(), models.Event{SiteID: "site-1", Type: models.EventPageview, Path: "/"}))
}

func TestWebhookDispatcher_Serve(t *testing.T) {
	bus := pubsub.NewBus(logger.Nop())
	t.Cleanup(func() { _ = bus.Close() })

	d, m := newTestDispatcher(t, bus)
	hook := models.Webhook{ID: "h1", SiteID: "site-1", Active: true, Events: []string{models.NotifyEvent, models.NotifyAlertTriggered}}

	sent := make(chan string, 64)
	m.webhooks.EXPECT().ListWebhooks(gomock.Any(), "site-1").Return([]models.Webhook{hook}, nil).AnyTimes()
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Webhook, n models.Notification) models.DeliveryResult {
			sent <- n.Type
			return delivered("h1")
		}).AnyTimes()
	m.webhooks.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Serve(ctx) }()

	// subscriptions are made at the start of Serve; retry until one lands
	require.Eventually(t, func() bool {
		require.NoError(t, bus.PublishNotification(models.Notification{ID: "n1", Type: models.NotifyAlertTriggered, SiteID: "site-1"}))
		select {
		case got := <-sent:
			assert.Equal(t, models.NotifyAlertTriggered, got)
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.PublishEvents([]models.Event{{ID: "e1", SiteID: "site-1", Type: models.EventCustom, Name: "signup"}}))
	timeout := time.After(2 * time.Second)
	for got := ""; got != models.NotifyEvent; {
		select {
		case got = <-sent:
		case <-timeout:
			t.Fatal("event was not delivered")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
