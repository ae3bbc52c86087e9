// Package ws provides the real-time notification transport: a WebSocket
// hub, a registry binding user identities to live sessions, and a
// dispatcher that routes domain events to broadcast or targeted
// delivery.
package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	// sendBufferSize bounds the per-session outbound queue. A session
	// that falls this far behind starts losing messages instead of
	// stalling delivery for everyone else.
	sendBufferSize = 64
)

// Hub manages all WebSocket sessions. Registration, unregistration,
// and broadcasting run in a single goroutine, so the client set needs
// no locking.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	clients  map[*Client]struct{}
	registry *ConnectionRegistry
	logger   *slog.Logger

	upgrader websocket.Upgrader

	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewHub creates a Hub wired to the given registry.
func NewHub(registry *ConnectionRegistry, logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*Client]struct{}),
		registry:   registry,
		logger:     logger.With("component", "ws-hub"),
		shutdown:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Start launches the hub loop. Call Stop to shut it down.
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop closes every session and waits for the hub loop to finish.
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	for client := range h.clients {
		client.conn.Close()
	}
}

func (h *Hub) run() {
	defer h.wg.Done()

	h.logger.Info("hub loop started")
	defer h.logger.Info("hub loop stopped")

	for {
		select {
		case <-h.shutdown:
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Debug("session connected", "sessions", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.registry.UnbindClient(client)
			h.logger.Debug("session disconnected", "sessions", len(h.clients))
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					h.logger.Warn("dropping broadcast for slow session")
				}
			}
		}
	}
}

// Broadcast queues a marshaled envelope for delivery to every
// connected session.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.shutdown:
	}
}

// ServeWS upgrades an HTTP request to a WebSocket session and starts
// its pumps. The session stays anonymous until the client identifies.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		hub:  h,
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// enqueueUnregister hands a closing session back to the hub loop. Once
// the hub has shut down nobody drains the channel, so the send must not
// block the session's read goroutine.
func (h *Hub) enqueueUnregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.shutdown:
	}
}
