package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// dialHub spins up a hub plus an upgrade endpoint and dials it.
func dialHub(t *testing.T, bus *events.Bus) (*Hub, *websocket.Conn) {
	t.Helper()
	log := newTestLogger(t)

	hub := NewHub(bus, log)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn, nil, log).Serve()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	return hub, conn
}

func TestHub_BroadcastsBusEvents(t *testing.T) {
	bus := events.NewBus(newTestLogger(t))
	_, conn := dialHub(t, bus)

	bus.Publish(events.ReservationCreated{
		ReservationID: "res-1",
		PropertyID:    "prop-9",
		Total:         499.05,
		OccurredAt:    time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "reservation.created", msg.Type)

	var payload events.ReservationCreated
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "res-1", payload.ReservationID)
	assert.Equal(t, "prop-9", payload.PropertyID)
	assert.InDelta(t, 499.05, payload.Total, 0.0001)
}

func TestHub_ConversationUpdateReachesClient(t *testing.T) {
	bus := events.NewBus(newTestLogger(t))
	_, conn := dialHub(t, bus)

	bus.Publish(events.ConversationsUpdated{
		Conversations:   4,
		Unread:          2,
		LatestMessageID: "m17",
		OccurredAt:      time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string                      `json:"type"`
		Payload events.ConversationsUpdated `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "conversations.updated", msg.Type)
	assert.Equal(t, 2, msg.Payload.Unread)
	assert.Equal(t, "m17", msg.Payload.LatestMessageID)
}

func TestHub_RegisterAfterShutdown(t *testing.T) {
	bus := events.NewBus(newTestLogger(t))
	hub := NewHub(bus, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	client := &Client{send: make(chan []byte, sendBuffer)}
	registered := make(chan struct{})
	go func() {
		hub.Register(client)
		close(registered)
	}()

	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("register blocked after hub shutdown")
	}

	// the send channel is closed so the client's pumps unwind
	_, open := <-client.send
	assert.False(t, open)

	// unregister must not block either
	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_DisconnectDropsClientAndReleasesWatch(t *testing.T) {
	bus := events.NewBus(newTestLogger(t))
	log := newTestLogger(t)

	hub := NewHub(bus, log)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	released := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn, func() { close(released) }, log).Serve()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("poller watch was not released on disconnect")
	}

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}
