package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
)

// frame is one outbound broadcast message. Positions are a flat xyz array.
type frame struct {
	Elapsed   float64   `json:"elapsed"`
	Gesture   string    `json:"gesture"`
	Shape     string    `json:"shape"`
	Count     int       `json:"count"`
	Planet    bool      `json:"planet"`
	Exploding bool      `json:"exploding"`
	Positions []float64 `json:"positions"`
	Timestamp int64     `json:"timestamp"`
}

// FrameHub fans simulation frames out to all connected renderers.
type FrameHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
	pool    *particles.FramePool
}

func NewFrameHub() *FrameHub {
	return &FrameHub{clients: make(map[*websocket.Conn]bool)}
}

// ServeHTTP upgrades a renderer connection and holds it open until the
// client goes away.
func (h *FrameHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("frames upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// drain control messages until the client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ClientCount reports the number of connected renderers.
func (h *FrameHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends the simulator's current state to every subscriber. With
// no subscribers the position copy is skipped entirely.
func (h *FrameHub) Broadcast(sim *particles.Simulator, g gesture.Gesture, t float64) {
	h.mu.RLock()
	idle := len(h.clients) == 0
	h.mu.RUnlock()
	if idle {
		return
	}

	ens := sim.Ensemble()
	if h.pool == nil || h.pool.Size() != 3*ens.Count() {
		h.pool = particles.NewFramePool(ens.Count())
	}
	buf := h.pool.Snapshot(ens)
	defer h.pool.Put(buf)

	msg, err := json.Marshal(frame{
		Elapsed:   t,
		Gesture:   g.String(),
		Shape:     string(ens.Kind()),
		Count:     ens.Count(),
		Planet:    sim.PlanetMode(),
		Exploding: sim.ExplosionActive(),
		Positions: buf,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("frame marshal error: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("frame write error: %v", err)
		}
	}
}
