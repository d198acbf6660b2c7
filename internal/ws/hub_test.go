package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func monitorServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialMonitor(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastFanOut(t *testing.T) {
	hub := NewHub()
	srv := monitorServer(t, hub)

	first := dialMonitor(t, srv)
	second := dialMonitor(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(Event{Type: "verification", Data: map[string]interface{}{"correct": true}})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "verification", event.Type)
	}
}

func TestHubRemove(t *testing.T) {
	hub := NewHub()
	srv := monitorServer(t, hub)

	conn := dialMonitor(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var tracked *websocket.Conn
	for c := range hub.clients {
		tracked = c
	}
	hub.mu.RUnlock()

	hub.Remove(tracked)
	assert.Equal(t, 0, hub.Count())

	// Broadcast to an empty hub is a no-op.
	hub.Broadcast(Event{Type: "verification"})
	_ = conn
}
