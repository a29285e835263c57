package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/mock"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func TestAlertEvaluator_Evaluate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		fired []models.AlertFired
		err   error
	}{
		{name: "nothing fired"},
		{name: "fired", fired: []models.AlertFired{{AlertID: "a1", Metric: models.AlertPageviews, Value: 120, Threshold: 100}}},
		{name: "partial failure", fired: []models.AlertFired{{AlertID: "a1"}}, err: errors.New("store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := mock.NewMockAlertService(gomock.NewController(t))
			alerts.EXPECT().EvaluateAlerts(gomock.Any(), now).Return(tt.fired, tt.err)

			a := NewAlertEvaluator(alerts, time.Minute, logger.Nop())
			a.now = func() time.Time { return now }

			assert.NotPanics(t, func() { a.Evaluate(context.Background()) })
		})
	}
}

func TestAlertEvaluator_Serve_RunsOnInterval(t *testing.T) {
	alerts := mock.NewMockAlertService(gomock.NewController(t))

	ticks := make(chan struct{}, 16)
	alerts.EXPECT().EvaluateAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]models.AlertFired, error) {
			ticks <- struct{}{}
			return nil, nil
		}).MinTimes(2)

	a := NewAlertEvaluator(alerts, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	for range 2 {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("alerts were not evaluated")
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
