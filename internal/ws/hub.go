package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans the latest workshop snapshot out to every connected device.
type Hub struct {
	mu        sync.RWMutex
	workshops map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		workshops: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(workshopID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.workshops[workshopID] == nil {
		h.workshops[workshopID] = make(map[*websocket.Conn]bool)
	}
	h.workshops[workshopID][conn] = true
	log.Printf("ws: device connected to workshop %s (total: %d)", workshopID, len(h.workshops[workshopID]))
}

func (h *Hub) RemoveConnection(workshopID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.workshops[workshopID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.workshops, workshopID)
		}
		log.Printf("ws: device disconnected from workshop %s", workshopID)
	}
}

// Broadcast takes the full lock: it writes to connections (gorilla allows
// one concurrent writer per conn) and drops dead ones from the map, and it
// runs from both handler goroutines and the store subscription goroutine.
func (h *Hub) Broadcast(workshopID string, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.workshops[workshopID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
