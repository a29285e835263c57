package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
)

// Evicter drops idle in-memory state and reports how many entries it removed.
type Evicter interface {
	Evict(now time.Time) int
	Len() int
}

// Cleanup periodically evicts idle visitor sessions and rate limiter buckets.
type Cleanup struct {
	sessions Evicter
	limiter  Evicter
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewCleanup(sessions, limiter Evicter, interval time.Duration, logger *logger.Logger) *Cleanup {
	return &Cleanup{
		sessions: sessions,
		limiter:  limiter,
		interval: interval,
		now:      time.Now,
		logger:   logger.Named("cleanup"),
	}
}

func (c *Cleanup) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Sweep()
		}
	}
}

func (c *Cleanup) String() string {
	return "cleanup"
}

// Sweep runs one eviction pass and updates the active sessions gauge.
func (c *Cleanup) Sweep() {
	now := c.now()
	sessions := c.sessions.Evict(now)
	buckets := c.limiter.Evict(now)

	metrics.ActiveSessions.Set(float64(c.sessions.Len()))
	if sessions > 0 || buckets > 0 {
		c.logger.Debug().Int("sessions", sessions).Int("limiters", buckets).Msg("evicted idle entries")
	}
}
