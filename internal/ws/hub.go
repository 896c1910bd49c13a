// Package ws pushes booking events to connected browsers over WebSocket.
// The hub subscribes to the in-process event bus and fans every event out to
// all registered clients as a JSON envelope.
package ws

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
)

type subscriber interface {
	Subscribe(kinds ...events.Kind) (<-chan events.Event, func())
}

type Hub struct {
	bus    subscriber
	logger logger.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

func NewHub(bus subscriber, logger logger.Logger) *Hub {
	return &Hub{
		bus:        bus,
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run owns the client set and relays bus events until ctx is cancelled.
// Once Run returns the hub accepts no more clients; late Register calls
// see a closed hub instead of blocking.
func (h *Hub) Run(ctx context.Context) {
	eventCh, cancel := h.bus.Subscribe()
	defer cancel()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client connected",
				logger.Int("total", total),
			)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected",
				logger.Int("total", total),
			)

		case e, ok := <-eventCh:
			if !ok {
				return
			}
			h.fanOut(e)
		}
	}
}

func (h *Hub) fanOut(e events.Event) {
	data, err := NewMessage(e).JSON()
	if err != nil {
		h.logger.Error("failed to encode websocket message",
			logger.String("kind", string(e.Kind())),
			logger.String("error", err.Error()),
		)
		return
	}

	h.mu.Lock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// client too slow, drop it
			close(client.send)
			delete(h.clients, client)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		// hub is gone; close the send channel so the pumps unwind
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount reports connected clients, used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
