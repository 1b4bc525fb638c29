// Package telemetry streams per-frame driving state to websocket clients so
// external dashboards can render readouts without touching the game loop.
package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/logger"
)

// Frame is one published snapshot. Field names follow the usual sim
// telemetry shape so generic dashboards can consume it.
type Frame struct {
	Time     float64 `json:"time"`
	Speed    float64 `json:"speed"`
	Distance float64 `json:"distance"`
	PosX     float64 `json:"pos_x"`
	PosY     float64 `json:"pos_y"`
	PosZ     float64 `json:"pos_z"`
	Heading  float64 `json:"heading"`
	Steer    float64 `json:"steer"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
}

// Hub fans frames out to connected websocket clients. Safe for one
// publisher (the frame loop) plus the HTTP handler goroutines.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish broadcasts a frame to every client, dropping clients whose writes
// fail. Cheap when nobody is connected.
func (h *Hub) Publish(f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	payload, err := json.Marshal(f)
	if err != nil {
		logger.L().Error("marshal telemetry frame", "error", err)
		return
	}
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.L().Warn("drop telemetry client", "error", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handler upgrades requests to websocket and keeps the connection registered
// until the client goes away. Inbound messages are read and discarded to
// service control frames.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.L().Warn("websocket upgrade failed", "error", err)
			return
		}
		h.add(conn)
		defer h.remove(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Serve runs a blocking HTTP server exposing the hub at /ws/telemetry.
func Serve(addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws/telemetry", h.Handler())
	logger.L().Info("telemetry listening", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
