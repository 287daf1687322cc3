package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/phrazzld/taskboard-api/internal/hub"
)

// WSHandler upgrades HTTP requests to websocket connections and hands them
// to the broadcast hub. The handshake is unauthenticated; clients receive
// every broadcast regardless of board membership.
type WSHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWSHandler creates a new WSHandler attached to the given hub.
func NewWSHandler(h *hub.Hub, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The frontend is served from a different origin in development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With(slog.String("component", "ws_handler")),
	}
}

// Serve handles GET /ws.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Debug("websocket upgrade failed",
			slog.String("error", err.Error()),
			slog.String("remote_addr", r.RemoteAddr))
		return
	}

	h.hub.Serve(conn)
}
