package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

var (
	// ErrDropped marks hits that are ignored without telling the sender.
	ErrDropped = errors.New("hit dropped")

	// ErrInvalidHit marks hits the sender has to fix.
	ErrInvalidHit = errors.New("invalid hit")

	ErrBot         = fmt.Errorf("%w: bot", ErrDropped)
	ErrPrefetch    = fmt.Errorf("%w: prefetch", ErrDropped)
	ErrDoNotTrack  = fmt.Errorf("%w: do not track", ErrDropped)
	ErrForeignHost = fmt.Errorf("%w: foreign host", ErrDropped)
)

// DropReason returns a short label for a dropped hit, used in metrics.
func DropReason(err error) string {
	switch {
	case errors.Is(err, ErrBot):
		return "bot"
	case errors.Is(err, ErrPrefetch):
		return "prefetch"
	case errors.Is(err, ErrDoNotTrack):
		return "dnt"
	case errors.Is(err, ErrForeignHost):
		return "foreign_host"
	default:
		return "other"
	}
}

const maxEventNameLength = 120

// Options switches optional filters of the [Processor].
type Options struct {
	// RespectDNT drops hits sent with "DNT: 1".
	RespectDNT bool

	// CheckHostname drops hits whose page host is neither the site domain
	// nor one of its subdomains. Path-only URLs always pass.
	CheckHostname bool
}

// Processor turns a validated track request into an event.
type Processor struct {
	hasher    *VisitorHasher
	sessions  *SessionTracker
	sanitizer Sanitizer
	bots      BotDetector
	opts      Options
}

func NewProcessor(hasher *VisitorHasher, sessions *SessionTracker, opts Options) *Processor {
	return &Processor{
		hasher:    hasher,
		sessions:  sessions,
		sanitizer: NewSanitizer(),
		bots:      NewBotDetector(),
		opts:      opts,
	}
}

// Sessions exposes the session tracker for the cleanup worker.
func (p *Processor) Sessions() *SessionTracker {
	return p.sessions
}

// Process builds the event of a hit received at the given time. Errors wrap
// either [ErrDropped] or [ErrInvalidHit].
func (p *Processor) Process(req models.TrackRequest, client models.ClientInfo, site models.Site, at time.Time) (models.Event, error) {
	eventType := req.Type
	if eventType == "" {
		eventType = models.EventPageview
	}

	name := strings.TrimSpace(req.Name)
	switch eventType {
	case models.EventPageview:
		name = ""
	case models.EventCustom:
		if name == "" {
			return models.Event{}, fmt.Errorf("%w: custom events require a name", ErrInvalidHit)
		}
	case models.EventClick:
		if req.X == nil || req.Y == nil {
			return models.Event{}, fmt.Errorf("%w: click events require x and y", ErrInvalidHit)
		}
		if *req.X < 0 || *req.X > 1 || *req.Y < 0 || *req.Y > 1 {
			return models.Event{}, fmt.Errorf("%w: x and y must be within [0, 1]", ErrInvalidHit)
		}
	default:
		return models.Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidHit, eventType)
	}

	if client.Prefetch {
		return models.Event{}, ErrPrefetch
	}
	if reason := p.bots.Check(ClientHints{UserAgent: client.UserAgent}); reason != "" {
		return models.Event{}, fmt.Errorf("%w: %s", ErrBot, reason)
	}
	if p.opts.RespectDNT && client.DNT {
		return models.Event{}, ErrDoNotTrack
	}

	page, err := p.sanitizer.Page(req.URL)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrInvalidHit, err)
	}
	if p.opts.CheckHostname && page.Host != "" && !HostMatches(page.Host, site.Domain) {
		return models.Event{}, fmt.Errorf("%w: %q", ErrForeignHost, page.Host)
	}

	visitorID := p.hasher.ID(site.ID, client.IP, client.UserAgent, at)
	sessionID, _ := p.sessions.Touch(visitorID, at)
	device := ClassifyDevice(client.UserAgent)

	event := models.Event{
		ID:          utils.NewID(),
		SiteID:      site.ID,
		Type:        eventType,
		Name:        truncate(emailPattern.ReplaceAllString(name, redactedEmail), maxEventNameLength),
		VisitorID:   visitorID,
		SessionID:   sessionID,
		Path:        page.Path,
		Referrer:    p.sanitizer.Referrer(req.Referrer, site.Domain),
		UTMSource:   page.UTMSource,
		UTMMedium:   page.UTMMedium,
		UTMCampaign: page.UTMCampaign,
		Device:      device.Type,
		Browser:     device.Browser,
		OS:          device.OS,
		Props:       p.sanitizer.Props(req.Props),
		Timestamp:   at.UTC().UnixMilli(),
	}
	if eventType == models.EventClick {
		event.X, event.Y = *req.X, *req.Y
	}

	return event, nil
}
