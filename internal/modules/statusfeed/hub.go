// Package statusfeed pushes rental activity to connected status pages over
// websockets, so live free-unit counts update without polling.
package statusfeed

import (
	"context"
	"sync"

	"github.com/loopin51/KSHSManagement/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is one feed message. Type is "rentals_requested" or
// "rental_status_changed"; Rentals carries the affected records so clients
// can refresh just those items.
type Event struct {
	Type    string          `json:"type"`
	Rentals []domain.Rental `json:"rentals"`
}

type Hub struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{connections: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[conn]; ok {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast sends the event to every subscriber, dropping connections whose
// write fails.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// PublishRentalsRequested implements the rental module's EventPublisher.
func (h *Hub) PublishRentalsRequested(_ context.Context, rentals []domain.Rental) error {
	h.Broadcast(Event{Type: "rentals_requested", Rentals: rentals})
	return nil
}

// PublishRentalStatusChanged implements the admin module's EventPublisher.
func (h *Hub) PublishRentalStatusChanged(_ context.Context, rental domain.Rental) error {
	h.Broadcast(Event{Type: "rental_status_changed", Rentals: []domain.Rental{rental}})
	return nil
}
