package store

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type webhookRepository struct {
	webhooks collection[models.Webhook]
}

// NewWebhookRepository constructs a [WebhookRepository] backed by blob.
func NewWebhookRepository(blob BlobStore, logger *logger.Logger) WebhookRepository {
	logger.Debug().Msg("creating webhook repository")
	return &webhookRepository{
		webhooks: collection[models.Webhook]{
			blob:      blob,
			name:      "webhook",
			recordKey: webhookKey,
			indexKey:  siteWebhooksKey,
			parentOf:  func(w models.Webhook) string { return w.SiteID },
		},
	}
}

func (r *webhookRepository) CreateWebhook(ctx context.Context, webhook models.Webhook) error {
	return r.webhooks.create(ctx, webhook.ID, webhook, nil)
}

func (r *webhookRepository) GetWebhook(ctx context.Context, id string) (models.Webhook, error) {
	return r.webhooks.get(ctx, id)
}

func (r *webhookRepository) ListWebhooks(ctx context.Context, siteID string) ([]models.Webhook, error) {
	return r.webhooks.list(ctx, siteID)
}

// UpdateWebhook stores delivery bookkeeping (failures, last delivery, active flag).
func (r *webhookRepository) UpdateWebhook(ctx context.Context, webhook models.Webhook) error {
	return r.webhooks.update(ctx, webhook.ID, webhook)
}

func (r *webhookRepository) DeleteWebhook(ctx context.Context, id string) error {
	return r.webhooks.delete(ctx, id, nil)
}
