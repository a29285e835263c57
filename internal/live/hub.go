package live

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/metrics"
	"github.com/MKhiriev/go-pixel-analytics/internal/pubsub"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// TokenSubprotocol is the WebSocket subprotocol browsers offer, followed by
// their access token, since they cannot set an Authorization header on the
// upgrade request.
const TokenSubprotocol = "bearer"

// registerTimeout bounds how long a new connection waits for the hub.
const registerTimeout = 5 * time.Second

// ErrHubStopped is returned when a client connects while the hub is not running.
var ErrHubStopped = errors.New("live hub is not running")

// Subscriber delivers bus messages of one topic.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Hub keeps track of connected clients and broadcasts stored events to them.
type Hub struct {
	bus Subscriber

	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.Event

	connections atomic.Int64

	upgrader websocket.Upgrader

	logger *logger.Logger
}

// NewHub creates a hub. Browser connections are accepted from
// allowedOrigins only; "*" allows any origin and requests without an Origin
// header are always accepted.
func NewHub(bus Subscriber, allowedOrigins []string, logger *logger.Logger) *Hub {
	h := &Hub{
		bus:        bus,
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.Event, sendBuffer),
		logger:     logger.Named("live-hub"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
		Subprotocols:    []string{TokenSubprotocol},
	}
	return h
}

// Serve runs the hub until ctx is done. All connected clients are closed on
// return.
func (h *Hub) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs, err := h.bus.Subscribe(ctx, pubsub.TopicEvents)
	if err != nil {
		return fmt.Errorf("subscribe to events: %w", err)
	}

	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		_ = pubsub.Consume(ctx, msgs, h.logger, func(ctx context.Context, e models.Event) error {
			select {
			case h.broadcast <- e:
			case <-ctx.Done():
			}
			return nil
		})
		// subscription closed by the bus
		cancel()
	}()

	h.run(ctx)
	<-consumed
	return ctx.Err()
}

func (h *Hub) String() string {
	return "live-hub"
}

func (h *Hub) run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			site, ok := h.clients[c.siteID]
			if !ok {
				site = make(map[*Client]struct{})
				h.clients[c.siteID] = site
			}
			site[c] = struct{}{}
			h.connections.Add(1)
			metrics.LiveConnections.Inc()

		case c := <-h.unregister:
			h.remove(c)

		case e := <-h.broadcast:
			site := h.clients[e.SiteID]
			if len(site) == 0 {
				continue
			}
			msg := Message{Type: MessageEvent, Data: newLiveEvent(e)}
			for c := range site {
				select {
				case c.send <- msg:
				default:
					h.logger.Debug().Str("site_id", c.siteID).Msg("dropping slow live client")
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(c *Client) {
	site, ok := h.clients[c.siteID]
	if !ok {
		return
	}
	if _, ok = site[c]; !ok {
		return
	}
	delete(site, c)
	if len(site) == 0 {
		delete(h.clients, c.siteID)
	}
	close(c.send)
	close(c.done)
	h.connections.Add(-1)
	metrics.LiveConnections.Dec()
}

func (h *Hub) closeAll() {
	for _, site := range h.clients {
		for c := range site {
			h.remove(c)
		}
	}
}

// Connections returns the number of connected clients.
func (h *Hub) Connections() int {
	return int(h.connections.Load())
}

// ServeWS upgrades the request to a WebSocket and streams the events of
// siteID to it. The caller has already authorized the site.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, siteID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		return fmt.Errorf("upgrade: %w", err)
	}

	c := newClient(h, conn, siteID)
	timer := time.NewTimer(registerTimeout)
	defer timer.Stop()

	select {
	case h.register <- c:
	case <-r.Context().Done():
		_ = conn.Close()
		return r.Context().Err()
	case <-timer.C:
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "live stream unavailable"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return ErrHubStopped
	}

	go c.writePump()
	go c.readPump()
	return nil
}

func (h *Hub) unregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-c.done:
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
