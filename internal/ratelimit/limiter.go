// Package ratelimit keeps a best-effort token bucket per key in memory.
// Buckets are lost on restart, so a restarted server briefly admits a full
// burst again for every key.
package ratelimit

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrLimitExceeded is returned by [Limiter.Check] when the key ran out of tokens.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// DefaultIdleTimeout is how long an unused bucket is kept.
const DefaultIdleTimeout = time.Hour

type entry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter is a map of token buckets keyed by an arbitrary string (a site id
// for ingestion).
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rate     rate.Limit
	burst    int
	idle     time.Duration
}

// New creates a limiter allowing perSecond events per key with the given
// burst. A non-positive rate disables limiting.
func New(perSecond float64, burst int) *Limiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: make(map[string]*entry),
		rate:     limit,
		burst:    burst,
		idle:     DefaultIdleTimeout,
	}
}

// Allow reports whether one more event for key is allowed now.
func (l *Limiter) Allow(key string) bool {
	return l.AllowAt(key, time.Now())
}

// AllowAt is Allow with an explicit clock.
func (l *Limiter) AllowAt(key string, now time.Time) bool {
	l.mu.Lock()
	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = e
	}
	e.lastAccess = now
	limiter := e.limiter
	l.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// Check is Allow returning [ErrLimitExceeded].
func (l *Limiter) Check(key string) error {
	if !l.Allow(key) {
		return ErrLimitExceeded
	}
	return nil
}

// Evict drops buckets not used for the idle timeout and returns how many
// were dropped.
func (l *Limiter) Evict(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := now.Add(-l.idle)
	removed := 0
	for key, e := range l.limiters {
		if e.lastAccess.Before(threshold) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
