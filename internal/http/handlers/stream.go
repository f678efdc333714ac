package handlers

import (
	nethttp "net/http"
	"time"

	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The service fronts a single-user dashboard; cross-origin reads of
	// public game data are harmless.
	CheckOrigin: func(*nethttp.Request) bool { return true },
}

// Stream upgrades to a websocket and pushes every published game state
// to the client, starting with the current one.
func (h *Handler) Stream(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Warn("websocket upgrade failed", "error", err)
		}
		return
	}
	defer conn.Close()

	states, cancel := h.tracker.Subscribe()
	defer cancel()

	// Discard reads so client close frames are processed.
	go func() {
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(state); err != nil {
				return
			}
		}
	}
}
