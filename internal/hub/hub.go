// Package hub implements the websocket broadcast hub: a concurrency-safe
// registry of live client connections that fans out serialized events to
// every connected client. Delivery is best-effort with no acknowledgment,
// queueing, or redelivery; a client that cannot keep up is dropped.
package hub

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/events"
)

// relayMessage is an inbound client frame to be forwarded to every client
// except its sender.
type relayMessage struct {
	sender  *Client
	payload []byte
}

// Hub owns the set of live connections. All membership changes and fan-out
// happen on the Run goroutine, so the client set needs no lock.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	relay      chan relayMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *slog.Logger
}

// New creates a Hub. Call Run to start it; the hub is inert until then.
func New(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		relay:      make(chan relayMessage, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger.With(slog.String("component", "hub")),
	}
}

// Ensure Hub implements events.Handler so domain services can feed it
// through the event emitter.
var _ events.Handler = (*Hub)(nil)

// Run processes registrations, disconnects, and fan-out until the context
// is canceled. It is intended to run on its own goroutine for the lifetime
// of the server.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("client connected",
				slog.Int("client_count", len(h.clients)))
		case client := <-h.unregister:
			h.drop(client)
		case message := <-h.broadcast:
			for client := range h.clients {
				h.send(client, message)
			}
		case msg := <-h.relay:
			for client := range h.clients {
				if client != msg.sender {
					h.send(client, msg.payload)
				}
			}
		}
	}
}

// HandleEvent implements events.Handler by serializing the event and
// queueing it for fan-out to every connected client.
func (h *Hub) HandleEvent(ctx context.Context, event *events.Event) error {
	data, err := event.Marshal()
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// send queues a message on the client's buffered channel. A full buffer
// means the client has stalled; it is dropped rather than block the hub.
func (h *Hub) send(client *Client, message []byte) {
	select {
	case client.outbound <- message:
	default:
		h.logger.Warn("dropping stalled client")
		h.drop(client)
	}
}

// drop removes a client from the set and closes its outbound channel,
// which terminates its write pump.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.outbound)
		h.logger.Debug("client disconnected",
			slog.Int("client_count", len(h.clients)))
	}
}

// closeAll tears down every remaining connection when Run exits.
func (h *Hub) closeAll() {
	close(h.done)
	for client := range h.clients {
		delete(h.clients, client)
		close(client.outbound)
	}
}
