package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
)

// AlertEvaluator checks every alert on a fixed interval. Fired alerts are
// published by the alert service.
type AlertEvaluator struct {
	alerts   service.AlertService
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewAlertEvaluator(alerts service.AlertService, interval time.Duration, logger *logger.Logger) *AlertEvaluator {
	return &AlertEvaluator{
		alerts:   alerts,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.Named("alert-evaluator"),
	}
}

func (a *AlertEvaluator) Serve(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.Evaluate(ctx)
		}
	}
}

func (a *AlertEvaluator) String() string {
	return "alert-evaluator"
}

// Evaluate runs one evaluation round. Errors are logged; the round is
// retried on the next tick.
func (a *AlertEvaluator) Evaluate(ctx context.Context) {
	fired, err := a.alerts.EvaluateAlerts(ctx, a.now())
	if err != nil {
		a.logger.Err(err).Msg("error evaluating alerts")
	}
	for _, f := range fired {
		a.logger.Info().
			Str("alert_id", f.AlertID).
			Str("metric", string(f.Metric)).
			Int64("value", f.Value).
			Int64("threshold", f.Threshold).
			Msg("alert triggered")
	}
}
