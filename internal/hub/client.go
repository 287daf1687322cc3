package hub

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is the allowed duration for a single write to complete.
	writeWait = 10 * time.Second

	// pongWait is how long to wait for a pong before assuming the peer
	// is gone. pingPeriod must be shorter so pings go out in time.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound frames; clients only relay small
	// JSON messages.
	maxMessageSize = 4096

	// outboundBufferSize is the per-client send queue. A client whose
	// queue fills up is dropped by the hub.
	outboundBufferSize = 256
)

// Client wraps a single websocket connection. Reads and writes each run on
// their own goroutine; the hub never touches the connection directly.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	outbound chan []byte
}

// Serve registers the connection with the hub and starts its read and
// write pumps. It is called from the websocket upgrade handler and returns
// immediately.
func (h *Hub) Serve(conn *websocket.Conn) {
	client := &Client{
		hub:      h,
		conn:     conn,
		outbound: make(chan []byte, outboundBufferSize),
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump reads inbound frames and hands them to the hub for relay to all
// other clients. It unregisters the client on any read error.
func (c *Client) readPump() {
	defer func() {
		c.unregister()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
			) {
				c.hub.logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		select {
		case c.hub.relay <- relayMessage{sender: c, payload: message}:
		case <-c.hub.done:
			return
		}
	}
}

// writePump drains the outbound queue onto the connection and keeps the
// peer alive with periodic pings. It exits when the hub closes the queue.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.outbound:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped us.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// unregister hands the client back to the hub unless the hub has already
// shut down.
func (c *Client) unregister() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}
