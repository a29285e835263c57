package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type alertService struct {
	alerts   store.AlertRepository
	users    store.UserRepository
	events   store.EventRepository
	access   AccessService
	notifier Notifier

	validator validators.Validator

	logger *logger.Logger
}

func NewAlertService(storages *store.Storages, access AccessService, notifier Notifier, logger *logger.Logger) AlertService {
	return &alertService{
		alerts:    storages.AlertRepository,
		users:     storages.UserRepository,
		events:    storages.EventRepository,
		access:    access,
		notifier:  notifier,
		validator: validators.NewValidator(),
		logger:    logger,
	}
}

func (a *alertService) CreateAlert(ctx context.Context, userID string, req models.AlertRequest) (models.Alert, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Alert{}, validationError(err)
	}

	site, err := a.access.AuthorizeSite(ctx, userID, req.SiteID, ActionSiteConfigure)
	if err != nil {
		return models.Alert{}, err
	}

	existing, err := a.alerts.ListAlerts(ctx, site.ID)
	if err != nil {
		return models.Alert{}, err
	}
	limits, err := ownerLimits(ctx, a.users, site)
	if err != nil {
		return models.Alert{}, err
	}
	if !models.Allows(limits.AlertsPerSite, len(existing)) {
		return models.Alert{}, fmt.Errorf("%w: %d alerts per site", ErrPlanLimit, limits.AlertsPerSite)
	}

	alert := models.Alert{
		ID:              utils.NewID(),
		SiteID:          site.ID,
		Name:            strings.TrimSpace(req.Name),
		Metric:          req.Metric,
		Condition:       req.Condition,
		Threshold:       req.Threshold,
		WindowMinutes:   req.WindowMinutes,
		CooldownMinutes: req.CooldownMinutes,
		Enabled:         true,
		CreatedAt:       time.Now().UTC(),
	}
	if err = a.alerts.CreateAlert(ctx, alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (a *alertService) ListAlerts(ctx context.Context, userID, siteID string) ([]models.Alert, error) {
	if _, err := a.access.AuthorizeSite(ctx, userID, siteID, ActionStatsRead); err != nil {
		return nil, err
	}
	return a.alerts.ListAlerts(ctx, siteID)
}

func (a *alertService) DeleteAlert(ctx context.Context, userID, alertID string) error {
	alert, err := a.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return storeError(err, ErrAlertNotFound, nil)
	}
	if _, err = a.access.AuthorizeSite(ctx, userID, alert.SiteID, ActionSiteConfigure); err != nil {
		return err
	}
	return storeError(a.alerts.DeleteAlert(ctx, alertID), ErrAlertNotFound, nil)
}

// EvaluateAlerts measures every enabled alert over its window ending at now.
// A failing alert is logged and skipped so one broken site does not block
// the others; the joined errors are returned with the alerts that fired.
func (a *alertService) EvaluateAlerts(ctx context.Context, now time.Time) ([]models.AlertFired, error) {
	log := logger.FromContext(ctx)

	alerts, err := a.alerts.ListAllAlerts(ctx)
	if err != nil {
		return nil, err
	}

	var (
		fired []models.AlertFired
		errs  []error
	)
	for _, alert := range alerts {
		if !alert.Enabled || alert.CoolingDown(now) {
			continue
		}

		value, err := a.measure(ctx, alert, now)
		if err != nil {
			log.Err(err).Str("alert_id", alert.ID).Msg("error measuring alert")
			errs = append(errs, err)
			continue
		}
		if !alert.Triggered(value) {
			continue
		}

		triggeredAt := now.UTC()
		alert.LastTriggeredAt = &triggeredAt
		if err = a.alerts.UpdateAlert(ctx, alert); err != nil {
			// without the cooldown mark the alert would fire every round
			log.Err(err).Str("alert_id", alert.ID).Msg("error recording alert trigger")
			errs = append(errs, err)
			continue
		}

		event := models.AlertFired{
			AlertID:   alert.ID,
			Name:      alert.Name,
			Metric:    alert.Metric,
			Condition: alert.Condition,
			Threshold: alert.Threshold,
			Value:     value,
			Window:    alert.WindowMinutes,
		}
		fired = append(fired, event)
		metrics.AlertsTriggered.Inc()
		log.Info().Str("alert_id", alert.ID).Int64("value", value).Msg("alert triggered")

		if a.notifier == nil {
			continue
		}
		err = a.notifier.PublishNotification(models.Notification{
			ID:        utils.NewID(),
			Type:      models.NotifyAlertTriggered,
			SiteID:    alert.SiteID,
			Timestamp: triggeredAt,
			Data:      event,
		})
		if err != nil {
			log.Err(err).Str("alert_id", alert.ID).Msg("error publishing alert notification")
			errs = append(errs, err)
		}
	}

	return fired, errors.Join(errs...)
}

func (a *alertService) measure(ctx context.Context, alert models.Alert, now time.Time) (int64, error) {
	to := now.UnixMilli() + 1
	from := now.Add(-time.Duration(alert.WindowMinutes) * time.Minute).UnixMilli()

	if alert.Metric == models.AlertEvents {
		return a.events.CountEvents(ctx, []string{alert.SiteID}, from, to)
	}

	summary, err := a.events.Summary(ctx, models.EventFilter{
		SiteID: alert.SiteID,
		From:   from,
		To:     to,
		Types:  []models.EventType{models.EventPageview, models.EventCustom},
	})
	if err != nil {
		return 0, err
	}
	switch alert.Metric {
	case models.AlertPageviews:
		return summary.Pageviews, nil
	case models.AlertVisitors:
		return summary.Visitors, nil
	}
	return 0, fmt.Errorf("unknown alert metric %q", alert.Metric)
}
