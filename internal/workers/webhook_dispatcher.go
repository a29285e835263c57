package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/pubsub"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var errSubscriptionClosed = errors.New("subscription closed")

// GoalCompleted is the payload of a goal.completed notification.
type GoalCompleted struct {
	GoalID   string       `json:"goal_id"`
	GoalName string       `json:"goal_name"`
	Event    models.Event `json:"event"`
}

// WebhookDispatcher forwards stored events and alert notifications to the
// webhooks subscribed to them.
type WebhookDispatcher struct {
	bus      Subscriber
	webhooks store.WebhookRepository
	goals    store.GoalRepository
	sender   service.WebhookSender

	maxFailures int
	now         func() time.Time

	logger *logger.Logger
}

func NewWebhookDispatcher(bus Subscriber, webhooks store.WebhookRepository, goals store.GoalRepository,
	sender service.WebhookSender, maxFailures int, logger *logger.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		bus:         bus,
		webhooks:    webhooks,
		goals:       goals,
		sender:      sender,
		maxFailures: maxFailures,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger.Named("webhook-dispatcher"),
	}
}

func (d *WebhookDispatcher) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := d.bus.Subscribe(ctx, pubsub.TopicEvents)
	if err != nil {
		return fmt.Errorf("subscribe to events: %w", err)
	}
	notifications, err := d.bus.Subscribe(ctx, pubsub.TopicNotifications)
	if err != nil {
		return fmt.Errorf("subscribe to notifications: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pubsub.Consume(ctx, notifications, d.logger, d.HandleNotification)
	}()

	err = pubsub.Consume(ctx, events, d.logger, d.HandleEvent)
	stopped := ctx.Err()
	cancel()
	<-done

	if stopped != nil {
		return stopped
	}
	// a closed subscription ends Serve so the supervisor can resubscribe
	return errors.Join(err, errSubscriptionClosed)
}

func (d *WebhookDispatcher) String() string {
	return "webhook-dispatcher"
}

// HandleEvent delivers e and the goals it completes to the site's webhooks.
func (d *WebhookDispatcher) HandleEvent(ctx context.Context, e models.Event) error {
	var kind string
	switch e.Type {
	case models.EventPageview:
		kind = models.NotifyPageview
	case models.EventCustom:
		kind = models.NotifyEvent
	default:
		// clicks feed heatmaps only
		return nil
	}

	hooks, err := d.activeHooks(ctx, e.SiteID)
	if err != nil || len(hooks) == 0 {
		return err
	}

	ts := time.UnixMilli(e.Timestamp).UTC()
	d.deliver(ctx, hooks, models.Notification{
		ID:        utils.NewID(),
		Type:      kind,
		SiteID:    e.SiteID,
		Timestamp: ts,
		Data:      e,
	})

	if !anySubscribed(hooks, models.NotifyGoalCompleted) {
		return nil
	}
	goals, err := d.goals.ListGoals(ctx, e.SiteID)
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}
	for _, g := range goals {
		if !g.Matches(e) {
			continue
		}
		d.deliver(ctx, hooks, models.Notification{
			ID:        utils.NewID(),
			Type:      models.NotifyGoalCompleted,
			SiteID:    e.SiteID,
			Timestamp: ts,
			Data:      GoalCompleted{GoalID: g.ID, GoalName: g.Name, Event: e},
		})
	}
	return nil
}

// HandleNotification delivers a ready-made notification, e.g. alert.triggered.
func (d *WebhookDispatcher) HandleNotification(ctx context.Context, n models.Notification) error {
	hooks, err := d.activeHooks(ctx, n.SiteID)
	if err != nil {
		return err
	}
	d.deliver(ctx, hooks, n)
	return nil
}

func (d *WebhookDispatcher) activeHooks(ctx context.Context, siteID string) ([]models.Webhook, error) {
	hooks, err := d.webhooks.ListWebhooks(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	active := hooks[:0]
	for _, h := range hooks {
		if h.Active {
			active = append(active, h)
		}
	}
	return active, nil
}

func (d *WebhookDispatcher) deliver(ctx context.Context, hooks []models.Webhook, n models.Notification) {
	for i := range hooks {
		if !hooks[i].Active || !hooks[i].Subscribed(n.Type) {
			continue
		}
		result := d.sender.Send(ctx, hooks[i], n)
		hooks[i] = d.record(ctx, hooks[i], result)
	}
}

// record stores the delivery outcome on the webhook and deactivates it after
// maxFailures consecutive failures. Successful deliveries to a healthy hook
// are written at most once a minute.
func (d *WebhookDispatcher) record(ctx context.Context, hook models.Webhook, result models.DeliveryResult) models.Webhook {
	log := d.logger.With().Str("webhook_id", hook.ID).Int("status", result.StatusCode).Logger()

	if result.Delivered {
		if hook.Failures == 0 && hook.LastError == "" && hook.LastDeliveryAt != nil &&
			d.now().Sub(*hook.LastDeliveryAt) < time.Minute {
			return hook
		}
		now := d.now()
		hook.Failures = 0
		hook.LastError = ""
		hook.LastDeliveryAt = &now
	} else {
		hook.Failures++
		hook.LastError = result.Error
		if d.maxFailures > 0 && hook.Failures >= d.maxFailures {
			hook.Active = false
			log.Warn().Int("failures", hook.Failures).Msg("webhook deactivated after repeated failures")
		} else {
			log.Debug().Str("error", result.Error).Msg("webhook delivery failed")
		}
	}

	if err := d.webhooks.UpdateWebhook(ctx, hook); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Msg("error recording webhook delivery")
	}
	return hook
}

func anySubscribed(hooks []models.Webhook, kind string) bool {
	for _, h := range hooks {
		if h.Subscribed(kind) {
			return true
		}
	}
	return false
}
