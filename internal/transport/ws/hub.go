package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Server-to-client message types
const (
	MsgBotTurn MessageType = "bot_turn"
	MsgError   MessageType = "error"
)

// Client-to-server message types
const (
	MsgAnswer  MessageType = "answer"
	MsgRestart MessageType = "restart"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections, one per user. A second
// connection from the same user replaces the first.
type Hub struct {
	conns map[string]*Connection

	mu sync.RWMutex
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*Connection),
	}
}

// Register adds a connection, closing the user's previous one.
func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.conns[conn.UserID]; ok {
		close(prev.Send)
	}
	h.conns[conn.UserID] = conn
	log.Printf("User %s connected via WebSocket", conn.UserID)
}

// Unregister removes a connection if it is still the active one.
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.conns[conn.UserID]; ok && current == conn {
		delete(h.conns, conn.UserID)
		close(conn.Send)
		log.Printf("User %s disconnected", conn.UserID)
	}
}

// SendToUser delivers a typed message to the user's connection, if
// connected. Slow consumers are dropped rather than blocked on.
func (h *Hub) SendToUser(userID string, msgType MessageType, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal payload for %s: %v", userID, err)
		return
	}
	data, err := json.Marshal(&Message{Type: msgType, Payload: raw})
	if err != nil {
		log.Printf("Failed to marshal message for %s: %v", userID, err)
		return
	}

	// Send channels are closed only under the write lock, so the send
	// must stay under the read lock or a reconnect can close the
	// channel mid-delivery.
	h.mu.RLock()
	conn, ok := h.conns[userID]
	if !ok {
		h.mu.RUnlock()
		return
	}
	select {
	case conn.Send <- data:
		h.mu.RUnlock()
	default:
		h.mu.RUnlock()
		log.Printf("Send buffer full for user %s, dropping connection", userID)
		h.Unregister(conn)
	}
}
