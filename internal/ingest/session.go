package ingest

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
)

// DefaultSessionTimeout ends a session after 30 minutes without hits.
const DefaultSessionTimeout = 30 * time.Minute

type session struct {
	id       string
	lastSeen time.Time
}

// SessionTracker assigns session ids to visitors. State lives in memory only
// and is lost on restart, which starts new sessions for active visitors.
type SessionTracker struct {
	timeout time.Duration
	newID   func() string

	mu       sync.Mutex
	sessions map[string]session
}

func NewSessionTracker(timeout time.Duration) *SessionTracker {
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	return &SessionTracker{
		timeout:  timeout,
		newID:    utils.NewID,
		sessions: make(map[string]session),
	}
}

// Touch records a hit of visitorID at the given time and returns its session
// id. isNew is true when the hit starts a session.
func (t *SessionTracker) Touch(visitorID string, at time.Time) (id string, isNew bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[visitorID]
	if ok && at.Sub(s.lastSeen) <= t.timeout {
		if at.After(s.lastSeen) {
			s.lastSeen = at
		}
		t.sessions[visitorID] = s
		return s.id, false
	}

	s = session{id: t.newID(), lastSeen: at}
	t.sessions[visitorID] = s
	return s.id, true
}

// Evict removes sessions idle for longer than the timeout and returns how many
// were removed.
func (t *SessionTracker) Evict(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for visitor, s := range t.sessions {
		if now.Sub(s.lastSeen) > t.timeout {
			delete(t.sessions, visitor)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions.
func (t *SessionTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}
