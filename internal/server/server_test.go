package server

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func newSim(t *testing.T, count int) *particles.Simulator {
	t.Helper()
	ens := particles.NewEnsemble(count, shapes.Sphere, rand.New(rand.NewSource(1)))
	return particles.NewSimulator(ens, particles.DefaultParams())
}

func TestTrackPublishesToLatest(t *testing.T) {
	latest := hand.NewLatest()
	ts := httptest.NewServer(NewTrackHandler(latest))
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts.URL), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	msg := `{"left":{"x":-5,"y":1,"z":0,"open":true},"right":{"x":5,"y":1,"z":0,"open":true}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := latest.Load()
		if snap.BothPresent() {
			if snap.Distance != 10 {
				t.Errorf("distance = %v, want 10", snap.Distance)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("sample never reached the latest slot")
}

func TestTrackDisconnectClearsHands(t *testing.T) {
	latest := hand.NewLatest()
	latest.Publish(hand.NewSnapshot(&hand.Point{X: 1}, nil))

	ts := httptest.NewServer(NewTrackHandler(latest))
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts.URL), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !latest.Load().AnyPresent() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("hands not cleared after tracker disconnect")
}

func TestFrameHubBroadcast(t *testing.T) {
	hub := NewFrameHub()
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts.URL), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && hub.ClientCount() == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatal("client never registered")
	}

	sim := newSim(t, 32)
	hub.Broadcast(sim, gesture.Idle, 0.5)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if f.Count != 32 {
		t.Errorf("count = %d, want 32", f.Count)
	}
	if len(f.Positions) != 96 {
		t.Errorf("got %d position values, want 96", len(f.Positions))
	}
	if f.Gesture != "idle" {
		t.Errorf("gesture = %q, want idle", f.Gesture)
	}
	if f.Shape != "sphere" {
		t.Errorf("shape = %q, want sphere", f.Shape)
	}
}

func TestBroadcastSkipsWithNoClients(t *testing.T) {
	hub := NewFrameHub()
	// must not panic or allocate a pool
	hub.Broadcast(newSim(t, 8), gesture.Idle, 0)
	if hub.pool != nil {
		t.Error("pool allocated with no subscribers")
	}
}
