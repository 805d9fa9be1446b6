package realtime

import (
	"log"
	"sync"

	"api/metrics"

	"github.com/gorilla/websocket"
)

// ScoreUpdate is pushed to clients watching a hackathon whenever a team
// receives a new evaluation.
type ScoreUpdate struct {
	HackathonID string  `json:"hackathon_id"`
	TeamID      string  `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Score       int     `json:"score"`
	MeanScore   float64 `json:"mean_score"`
	JudgeID     string  `json:"judge_id"`
	UpdateType  string  `json:"update_type"` // "evaluation" or "leaderboard"
}

// Hub fans out score updates to WebSocket clients grouped by hackathon
type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*websocket.Conn]bool
	broadcast chan ScoreUpdate
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[string]map[*websocket.Conn]bool),
		broadcast: make(chan ScoreUpdate),
	}
	go h.run()
	return h
}

// RegisterClient adds a WebSocket client to a specific hackathon
func (h *Hub) RegisterClient(hackathonID string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[hackathonID] == nil {
		h.clients[hackathonID] = make(map[*websocket.Conn]bool)
	}
	h.clients[hackathonID][conn] = true
	h.mu.Unlock()
	metrics.WebSocketConnections.WithLabelValues(hackathonID).Inc()
}

// UnregisterClient removes a WebSocket client from a specific hackathon
func (h *Hub) UnregisterClient(hackathonID string, conn *websocket.Conn) {
	h.mu.Lock()
	if clients, exists := h.clients[hackathonID]; exists {
		if clients[conn] {
			delete(clients, conn)
			metrics.WebSocketConnections.WithLabelValues(hackathonID).Dec()
		}
		if len(clients) == 0 {
			delete(h.clients, hackathonID)
		}
	}
	h.mu.Unlock()
}

// BroadcastScoreUpdate queues an update for all clients watching the hackathon
func (h *Hub) BroadcastScoreUpdate(update ScoreUpdate) {
	h.broadcast <- update
}

func (h *Hub) run() {
	for update := range h.broadcast {
		h.mu.Lock()
		if clients, exists := h.clients[update.HackathonID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
					metrics.WebSocketConnections.WithLabelValues(update.HackathonID).Dec()
				}
			}
		}
		h.mu.Unlock()
	}
}
