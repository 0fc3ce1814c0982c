package websocket

import (
	"log"
	"sync"
)

// Hub keeps one interview room per application reference ID and relays
// signaling messages between the peers in a room (candidate and panel).
type Hub struct {
	// rooms map: reference ID -> connected peers
	rooms map[string]map[*Client]bool

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Mutex for thread-safe access to the rooms map
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			peers, ok := h.rooms[client.Room]
			if !ok {
				peers = make(map[*Client]bool)
				h.rooms[client.Room] = peers
			}
			peers[client] = true
			log.Printf("🎥 Peer %s joined interview room %s", client.PeerID, client.Room)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if peers, ok := h.rooms[client.Room]; ok {
				if _, joined := peers[client]; joined {
					delete(peers, client)
					close(client.send)
					log.Printf("📴 Peer %s left interview room %s", client.PeerID, client.Room)
				}
				if len(peers) == 0 {
					delete(h.rooms, client.Room)
				}
			}
			h.mu.Unlock()
		}
	}
}

// relay forwards a message to every other peer in the sender's room.
func (h *Hub) relay(sender *Client, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for peer := range h.rooms[sender.Room] {
		if peer == sender {
			continue
		}
		select {
		case peer.send <- message:
		default:
			// Buffer full or peer dead; drop the message
		}
	}
}

// RoomSize reports how many peers are currently in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
