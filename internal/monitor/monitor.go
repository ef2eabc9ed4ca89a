// Package monitor broadcasts the translated controller state to
// WebSocket clients, for watching the bridge's output live.
package monitor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/gamebridge/snes2psx/psx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local observation tool, any origin may watch.
	CheckOrigin: func(*http.Request) bool { return true },
}

// frameMessage is the JSON shape pushed to clients on every change.
type frameMessage struct {
	Mask    uint16   `json:"mask"`
	Pressed []string `json:"pressed"`
	Analog  []uint8  `json:"analog"`
}

func encodeFrame(f psx.Frame) []byte {
	msg := frameMessage{
		Mask:    f.Mask,
		Pressed: psx.PressedNames(f.Mask),
		Analog:  append([]uint8(nil), f.Analog[:]...),
	}
	data, _ := json.Marshal(msg)
	return data
}

// Hub fans translated frames out to connected clients.
type Hub struct {
	logger  *slog.Logger
	mu      sync.RWMutex
	clients map[*client]bool
	last    []byte
}

// NewHub returns an empty hub; run it with Run and attach clients
// through Handler.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]bool),
	}
}

// Run consumes frame changes until the context is canceled.
func (h *Hub) Run(ctx context.Context, changes <-chan psx.Frame) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case f, ok := <-changes:
			if !ok {
				h.closeAll()
				return
			}
			h.broadcast(encodeFrame(f))
		}
	}
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Send buffer full, drop the laggard.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	last := h.last
	n := len(h.clients)
	h.mu.Unlock()

	if last != nil {
		c.send <- last
	}
	h.logger.Debug("monitor client connected", "total", n)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("monitor client disconnected", "total", n)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Handler upgrades HTTP requests to WebSocket clients of this hub.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error("monitor upgrade failed", "error", err)
			return
		}
		c := &client{hub: h, conn: conn, send: make(chan []byte, 64)}
		h.add(c)
		go c.writePump()
		go c.readPump()
	}
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards client messages; its job is noticing the close.
func (c *client) readPump() {
	defer func() {
		c.hub.drop(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
