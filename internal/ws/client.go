package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client is one browser connection. It is created by the WebSocket handler
// after the upgrade and owns both pump goroutines for its connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	log  logger.Logger

	send chan []byte

	// releases the poller watch held for this connection, nil when the
	// client connected without a bearer token
	release func()
}

func NewClient(hub *Hub, conn *websocket.Conn, release func(), log logger.Logger) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		log:     log,
		send:    make(chan []byte, sendBuffer),
		release: release,
	}
}

// Serve registers the client and starts its pumps. It returns immediately;
// the pumps run until the connection drops.
func (c *Client) Serve() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames so pong handlers fire. Incoming payloads are
// ignored; the stream is push-only.
func (c *Client) readPump() {
	defer func() {
		if c.release != nil {
			c.release()
		}
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Debug("websocket read error",
					logger.String("error", err.Error()),
				)
			}
			return
		}
	}
}
