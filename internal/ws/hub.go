package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the frame fanned out to every connected session.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub holds the set of connected WebSocket sessions and fans named
// events out to all of them. Delivery is fire-and-forget: a session
// whose write fails is dropped, and Publish never reports an error to
// the caller.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	h.sessions[id] = conn
	count := len(h.sessions)
	h.mu.Unlock()

	log.Printf("session %s connected (%d active)", id, count)
	return id
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	_, ok := h.sessions[id]
	delete(h.sessions, id)
	count := len(h.sessions)
	h.mu.Unlock()

	if ok {
		log.Printf("session %s disconnected (%d active)", id, count)
	}
}

// Publish sends the event to every connected session. Sessions are
// written under the hub lock because gorilla connections do not allow
// concurrent writers.
func (h *Hub) Publish(event string, payload any) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.sessions {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("failed to send %s to session %s: %v", event, id, err)
			_ = conn.Close()
			delete(h.sessions, id)
		}
	}
}

func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close drops every session. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.sessions {
		_ = conn.Close()
		delete(h.sessions, id)
	}
}
