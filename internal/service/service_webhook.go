package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const webhookSecretBytes = 32

type webhookService struct {
	webhooks store.WebhookRepository
	users    store.UserRepository
	access   AccessService
	sender   WebhookSender

	validator validators.Validator

	logger *logger.Logger
}

func NewWebhookService(storages *store.Storages, access AccessService, sender WebhookSender, logger *logger.Logger) WebhookService {
	return &webhookService{
		webhooks:  storages.WebhookRepository,
		users:     storages.UserRepository,
		access:    access,
		sender:    sender,
		validator: validators.NewValidator(),
		logger:    logger,
	}
}

func (w *webhookService) CreateWebhook(ctx context.Context, userID string, req models.WebhookRequest) (models.Webhook, error) {
	if err := w.validator.Validate(ctx, req); err != nil {
		return models.Webhook{}, validationError(err)
	}
	if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return models.Webhook{}, invalid("url", "url must be an http or https URL")
	}

	site, err := w.access.AuthorizeSite(ctx, userID, req.SiteID, ActionSiteConfigure)
	if err != nil {
		return models.Webhook{}, err
	}

	existing, err := w.webhooks.ListWebhooks(ctx, site.ID)
	if err != nil {
		return models.Webhook{}, err
	}
	limits, err := ownerLimits(ctx, w.users, site)
	if err != nil {
		return models.Webhook{}, err
	}
	if !models.Allows(limits.WebhooksPerSite, len(existing)) {
		return models.Webhook{}, fmt.Errorf("%w: %d webhooks per site", ErrPlanLimit, limits.WebhooksPerSite)
	}

	hook := models.Webhook{
		ID:        utils.NewID(),
		SiteID:    site.ID,
		URL:       req.URL,
		Events:    dedupe(req.Events),
		Secret:    utils.RandomToken(webhookSecretBytes),
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err = w.webhooks.CreateWebhook(ctx, hook); err != nil {
		return models.Webhook{}, err
	}

	logger.FromContext(ctx).Info().Str("webhook_id", hook.ID).Str("site_id", site.ID).Msg("webhook created")
	return hook, nil
}

func (w *webhookService) ListWebhooks(ctx context.Context, userID, siteID string) ([]models.Webhook, error) {
	if _, err := w.access.AuthorizeSite(ctx, userID, siteID, ActionSiteConfigure); err != nil {
		return nil, err
	}

	hooks, err := w.webhooks.ListWebhooks(ctx, siteID)
	if err != nil {
		return nil, err
	}
	for i := range hooks {
		hooks[i].Secret = ""
	}
	return hooks, nil
}

func (w *webhookService) DeleteWebhook(ctx context.Context, userID, webhookID string) error {
	hook, err := w.authorize(ctx, userID, webhookID)
	if err != nil {
		return err
	}
	if err = w.webhooks.DeleteWebhook(ctx, hook.ID); err != nil {
		return storeError(err, ErrWebhookNotFound, nil)
	}

	// senders keeping per-webhook state (circuit breakers) drop it
	if f, ok := w.sender.(interface{ Forget(webhookID string) }); ok {
		f.Forget(hook.ID)
	}
	return nil
}

func (w *webhookService) TestWebhook(ctx context.Context, userID, webhookID string) (models.DeliveryResult, error) {
	hook, err := w.authorize(ctx, userID, webhookID)
	if err != nil {
		return models.DeliveryResult{}, err
	}

	n := models.Notification{
		ID:        utils.NewID(),
		Type:      models.NotifyTest,
		SiteID:    hook.SiteID,
		Timestamp: time.Now().UTC(),
		Data:      map[string]string{"message": "webhook test"},
	}
	return w.sender.Send(ctx, hook, n), nil
}

func (w *webhookService) authorize(ctx context.Context, userID, webhookID string) (models.Webhook, error) {
	hook, err := w.webhooks.GetWebhook(ctx, webhookID)
	if err != nil {
		return models.Webhook{}, storeError(err, ErrWebhookNotFound, nil)
	}
	if _, err = w.access.AuthorizeSite(ctx, userID, hook.SiteID, ActionSiteConfigure); err != nil {
		return models.Webhook{}, err
	}
	return hook, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
