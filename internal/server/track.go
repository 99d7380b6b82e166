package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local tracker connections
	},
}

// trackMessage is one inbound tracker sample. Absent hands are null.
type trackMessage struct {
	Left  *hand.Point `json:"left"`
	Right *hand.Point `json:"right"`
}

// TrackHandler accepts hand samples over a websocket and publishes each one
// to the latest-wins slot. Late samples simply overwrite earlier ones; the
// tick loop reads whatever is current.
type TrackHandler struct {
	latest *hand.Latest
}

func NewTrackHandler(latest *hand.Latest) *TrackHandler {
	return &TrackHandler{latest: latest}
}

func (h *TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("track upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg trackMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("track read error: %v", err)
			}
			// a disconnected tracker means no hands
			h.latest.Publish(hand.NewSnapshot(nil, nil))
			return
		}
		h.latest.Publish(hand.NewSnapshot(msg.Left, msg.Right))
	}
}
