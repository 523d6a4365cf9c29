package websocket

import (
	"context"
	"log"

	"github.com/anjiri1684/pesuconnect/models"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	StudentID int64
	Conn      Conn
}

type delivery struct {
	studentID int64
	event     models.Event
}

// Hub fans events out to every open connection of a student. All state is
// owned by the Run goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan delivery
	done       chan struct{}

	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan delivery, 64),
		done:       make(chan struct{}),
		clients:    make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, conns := range h.clients {
				for client := range conns {
					client.Conn.Close()
				}
			}
			return
		case client := <-h.register:
			log.Printf("Client registered: student %d", client.StudentID)
			if h.clients[client.StudentID] == nil {
				h.clients[client.StudentID] = make(map[*Client]struct{})
			}
			h.clients[client.StudentID][client] = struct{}{}
		case client := <-h.unregister:
			h.remove(client)
		case d := <-h.broadcast:
			for client := range h.clients[d.studentID] {
				if err := client.Conn.WriteJSON(d.event); err != nil {
					log.Printf("Error sending event to student %d: %v", d.studentID, err)
					client.Conn.Close()
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	conns, ok := h.clients[client.StudentID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}
	log.Printf("Client unregistered: student %d", client.StudentID)
	delete(conns, client)
	if len(conns) == 0 {
		delete(h.clients, client.StudentID)
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues an event for a student. Events are dropped if the hub has
// stopped or its queue is full.
func (h *Hub) Publish(studentID int64, event models.Event) {
	select {
	case h.broadcast <- delivery{studentID: studentID, event: event}:
	case <-h.done:
	default:
		log.Printf("⚠️ Event queue full, dropping %s for student %d", event.Type, studentID)
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
