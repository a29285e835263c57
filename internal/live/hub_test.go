package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/pubsub"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func startHub(t *testing.T, origins []string) (*Hub, *pubsub.Bus, *httptest.Server) {
	t.Helper()

	bus := pubsub.NewBus(logger.Nop())
	t.Cleanup(func() { _ = bus.Close() })

	hub := NewHub(bus, origins, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("hub did not stop")
		}
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, r.URL.Query().Get("site_id"))
	}))
	t.Cleanup(srv.Close)

	return hub, bus, srv
}

func dial(t *testing.T, srv *httptest.Server, siteID string, header http.Header) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?site_id=" + siteID
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_StreamsEventsOfWatchedSite(t *testing.T) {
	hub, bus, srv := startHub(t, nil)

	siteA := dial(t, srv, "site-a", nil)
	siteB := dial(t, srv, "site-b", nil)
	require.Eventually(t, func() bool { return hub.Connections() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.PublishEvents([]models.Event{
		{ID: "e1", SiteID: "site-a", Type: models.EventPageview, Path: "/pricing", VisitorID: "v1", Timestamp: 1000},
		{ID: "e2", SiteID: "site-b", Type: models.EventCustom, Name: "signup", Path: "/", Timestamp: 2000},
	}))

	require.NoError(t, siteA.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, siteA.ReadJSON(&msg))
	assert.Equal(t, MessageEvent, msg.Type)
	require.NotNil(t, msg.Data)
	assert.Equal(t, "/pricing", msg.Data.Path)
	assert.Equal(t, int64(1000), msg.Data.Time)

	require.NoError(t, siteB.SetReadDeadline(time.Now().Add(2*time.Second)))
	msg = Message{}
	require.NoError(t, siteB.ReadJSON(&msg))
	require.NotNil(t, msg.Data)
	assert.Equal(t, "signup", msg.Data.Name)
}

func TestHub_LiveEventHidesVisitor(t *testing.T) {
	hub, bus, srv := startHub(t, nil)

	conn := dial(t, srv, "site-a", nil)
	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.PublishEvents([]models.Event{
		{ID: "e1", SiteID: "site-a", Type: models.EventPageview, Path: "/", VisitorID: "visitor-hash", SessionID: "session-1"},
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "visitor-hash")
	assert.NotContains(t, string(raw), "session-1")
}

func TestHub_AnswersPing(t *testing.T) {
	hub, _, srv := startHub(t, nil)

	conn := dial(t, srv, "site-a", nil)
	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(Message{Type: MessagePing}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessagePong, msg.Type)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, _, srv := startHub(t, nil)

	conn := dial(t, srv, "site-a", nil)
	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	_, _, srv := startHub(t, []string{"https://app.example.com"})

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?site_id=site-a"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example.org"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://app.example.com"}})
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHub_AcceptsTokenSubprotocol(t *testing.T) {
	_, _, srv := startHub(t, nil)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?site_id=site-a"
	dialer := websocket.Dialer{Subprotocols: []string{TokenSubprotocol, "jwt-value"}}

	conn, _, err := dialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	assert.Equal(t, TokenSubprotocol, conn.Subprotocol())
}

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header", allowed: nil, origin: "", want: true},
		{name: "not listed", allowed: []string{"https://a.example"}, origin: "https://b.example", want: false},
		{name: "listed", allowed: []string{"https://a.example"}, origin: "https://a.example", want: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://b.example", want: true},
		{name: "empty list", allowed: nil, origin: "https://b.example", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(r))
		})
	}
}
