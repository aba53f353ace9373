package ws

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the live connections of this instance only. Connection ids
// registered by other instances are unknown here; emitting to one of
// those returns an error and the event is dropped.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*conn
}

type conn struct {
	ws *websocket.Conn
	mu sync.Mutex // serializes writes, gorilla allows one writer at a time
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*conn)}
}

func (h *Hub) add(connID string, ws *websocket.Conn) {
	h.mu.Lock()
	h.conns[connID] = &conn{ws: ws}
	h.mu.Unlock()
}

func (h *Hub) remove(connID string) {
	h.mu.Lock()
	delete(h.conns, connID)
	h.mu.Unlock()
}

// Emit writes one event to one connection. The payload carries its own
// envelope with the event name and id.
func (h *Hub) Emit(connID string, event string, payload any) error {
	h.mu.RLock()
	c, ok := h.conns[connID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("connection %s is not local", connID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(payload)
}
