package store

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// alertRepository keeps alerts in the per-site index and in "alerts_all",
// which the evaluator walks on every tick.
type alertRepository struct {
	blob   BlobStore
	alerts collection[models.Alert]
}

// NewAlertRepository constructs an [AlertRepository] backed by blob.
func NewAlertRepository(blob BlobStore, logger *logger.Logger) AlertRepository {
	logger.Debug().Msg("creating alert repository")
	return &alertRepository{
		blob: blob,
		alerts: collection[models.Alert]{
			blob:      blob,
			name:      "alert",
			recordKey: alertKey,
			indexKey:  siteAlertsKey,
			parentOf:  func(a models.Alert) string { return a.SiteID },
		},
	}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert models.Alert) error {
	return r.alerts.create(ctx, alert.ID, alert, func(tx Tx) error {
		return tx.IndexAdd(alertsAllKey, alert.ID)
	})
}

func (r *alertRepository) GetAlert(ctx context.Context, id string) (models.Alert, error) {
	return r.alerts.get(ctx, id)
}

func (r *alertRepository) ListAlerts(ctx context.Context, siteID string) ([]models.Alert, error) {
	return r.alerts.list(ctx, siteID)
}

func (r *alertRepository) ListAllAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		alerts, err = listRecords[models.Alert](tx, alertsAllKey, alertKey)
		return err
	})
	return alerts, err
}

func (r *alertRepository) UpdateAlert(ctx context.Context, alert models.Alert) error {
	return r.alerts.update(ctx, alert.ID, alert)
}

func (r *alertRepository) DeleteAlert(ctx context.Context, id string) error {
	return r.alerts.delete(ctx, id, func(tx Tx) error {
		return tx.IndexRemove(alertsAllKey, id)
	})
}
