// Package livereload pushes reload notifications to open browser tabs
// when watched files change.
package livereload

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Message is the JSON frame sent to browsers
type Message struct {
	Type   string `json:"type"` // "hello" | "reload"
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Hub tracks connected browsers and fans out reload messages
type Hub struct {
	upgrader websocket.Upgrader
	clients  map[string]*client
	logger   *slog.Logger
	mu       sync.RWMutex
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			// Dev-only endpoint; any local origin may connect
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[string]*client),
		logger:  logger.With("component", "livereload"),
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if hello, err := json.Marshal(Message{Type: "hello", ID: c.id}); err == nil {
		c.send <- hello
	}
	h.add(c)
	go h.writer(c)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("client read error", "client", c.id, "error", err)
			}
			break
		}
	}

	h.remove(c)
}

// Broadcast sends a reload message to every client and returns how many
// were notified. Clients that cannot keep up are dropped.
func (h *Hub) Broadcast(reason string) int {
	data, err := json.Marshal(Message{Type: "reload", Reason: reason})
	if err != nil {
		h.logger.Error("encode reload message", "error", err)
		return 0
	}

	var slow []*client
	sent := 0

	h.mu.RLock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
			sent++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow client", "client", c.id)
		h.remove(c)
	}

	h.logger.Info("reload broadcast", "reason", reason, "clients", sent)
	return sent
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.remove(c)
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Debug("client connected", "client", c.id)
}

// remove unregisters c and closes its send channel; repeated calls are no-ops
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.id] != c {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	h.logger.Debug("client disconnected", "client", c.id)
}

// writer owns all writes to the connection
func (h *Hub) writer(c *client) {
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
				h.logger.Debug("client write failed", "client", c.id, "error", err)
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
