package websocket

import (
	"encoding/json"
	"sync"

	"github.com/smreview/smreview-backend/pkg/logger"
)

// Event is the envelope for every message pushed to feed subscribers
type Event struct {
	Type    string      `json:"type"` // feed, notice
	Payload interface{} `json:"payload"`
}

// Client is one connected feed subscriber
type Client struct {
	Hub      *Hub
	Conn     *Conn
	ViewerID string
	Send     chan []byte
}

// Hub fans the review feed out to every connected subscriber. Every
// accepted mutation broadcasts the full rebuilt snapshot; there is no
// per-subscriber filtering.
type Hub struct {
	subscribers map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub creates a feed hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Client]bool),
		register:    make(chan *Client, 64),
		unregister:  make(chan *Client, 64),
		broadcast:   make(chan []byte, 256),
	}
}

// Run processes hub events. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.subscribers[client] = true
			total := len(h.subscribers)
			h.mu.Unlock()
			logger.Info("Feed subscriber connected", map[string]interface{}{
				"viewer_id":   client.ViewerID,
				"subscribers": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.subscribers[client]; ok {
				delete(h.subscribers, client)
				close(client.Send)
			}
			total := len(h.subscribers)
			h.mu.Unlock()
			logger.Info("Feed subscriber disconnected", map[string]interface{}{
				"viewer_id":   client.ViewerID,
				"subscribers": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.subscribers {
				select {
				case client.Send <- message:
				default:
					// Send buffer full, drop the subscriber async
					go h.Unregister(client)
					logger.Warn("Subscriber send buffer full, disconnecting", map[string]interface{}{
						"viewer_id": client.ViewerID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast pushes an event to all subscribers. A full broadcast
// channel drops the event; the next snapshot supersedes it anyway.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal feed event", err, nil)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Broadcast channel full, event dropped", map[string]interface{}{
			"type": event.Type,
		})
	}
}

// BroadcastFeed pushes a full feed snapshot
func (h *Hub) BroadcastFeed(reviews interface{}) {
	h.Broadcast(Event{Type: "feed", Payload: reviews})
}

// Register adds a subscriber
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a subscriber
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
