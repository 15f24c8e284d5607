package websocket

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types broadcast on the feed.
const (
	EventStudentCreated  = "student.created"
	EventTestCreated     = "test.created"
	EventResultSubmitted = "result.submitted"
	EventStudentDeleted  = "student.deleted"
)

type Event struct {
	ID   uuid.UUID   `json:"id"`
	Type string      `json:"type"`
	At   time.Time   `json:"at"`
	Data interface{} `json:"data"`
}

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub fans events out to every registered connection.
type Hub struct {
	clients   map[Conn]struct{}
	clientsMu sync.RWMutex

	register   chan Conn
	unregister chan Conn
	broadcast  chan Event
	done       chan struct{}
}

func NewHub(buffer int) *Hub {
	return &Hub{
		clients:    make(map[Conn]struct{}),
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan Event, buffer),
		done:       make(chan struct{}),
	}
}

// Register adds c to the broadcast set. Once the hub has stopped, c is
// closed instead.
func (h *Hub) Register(c Conn) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

func (h *Hub) Unregister(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues an event without blocking. When the buffer is full the
// event is dropped.
func (h *Hub) Publish(eventType string, data interface{}) {
	e := Event{ID: uuid.New(), Type: eventType, At: time.Now().UTC(), Data: data}
	select {
	case h.broadcast <- e:
	default:
		log.Printf("⚠️ Feed buffer full, dropping %s event %s", e.Type, e.ID)
	}
}

func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Run serves registrations and broadcasts until ctx is cancelled, then
// closes every remaining connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.clientsMu.Lock()
			for c := range h.clients {
				c.Close()
				delete(h.clients, c)
			}
			h.clientsMu.Unlock()
			return
		case c := <-h.register:
			h.clientsMu.Lock()
			h.clients[c] = struct{}{}
			h.clientsMu.Unlock()
			log.Printf("Feed client registered (%d connected)", h.ClientCount())
		case c := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.Close()
			}
			h.clientsMu.Unlock()
			log.Printf("Feed client unregistered (%d connected)", h.ClientCount())
		case e := <-h.broadcast:
			h.send(e)
		}
	}
}

func (h *Hub) send(e Event) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		if err := c.WriteJSON(e); err != nil {
			log.Printf("Error sending %s event to feed client: %v", e.Type, err)
			c.Close()
			delete(h.clients, c)
		}
	}
}
