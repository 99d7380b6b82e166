package session

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/metrics"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

func newTestSession(t *testing.T, script Script) *Session {
	t.Helper()
	ens := particles.NewEnsemble(200, shapes.Sphere, rand.New(rand.NewSource(11)))
	sim := particles.NewSimulator(ens, particles.DefaultParams())
	return New(sim, gesture.NewClassifier(gesture.DefaultConfig()), script)
}

func TestRunRecordsSeries(t *testing.T) {
	s := newTestSession(t, ScriptFunc(noHands))
	s.AddMetric(metrics.NewRestDistance())
	s.AddMetric(metrics.NewGestureSwitches())

	result, err := s.Run(context.Background(), Config{Dt: 1.0 / 60, Duration: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Ticks != 60 {
		t.Errorf("expected 60 ticks, got %d", result.Ticks)
	}
	if len(result.Times) != 60 || len(result.Gestures) != 60 ||
		len(result.RestDistance) != 60 || len(result.MeanSpeed) != 60 {
		t.Error("all series should have one entry per tick")
	}
	if _, ok := result.Metrics["rest_distance"]; !ok {
		t.Error("rest_distance metric missing from result")
	}
	if result.Metrics["gesture_switches"] != 0 {
		t.Error("no-hands script should never switch gestures")
	}
}

func TestRunInvalidConfig(t *testing.T) {
	s := newTestSession(t, ScriptFunc(noHands))
	if _, err := s.Run(context.Background(), Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := s.Run(context.Background(), Config{Dt: 0.01, Duration: -1}); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	s := newTestSession(t, ScriptFunc(noHands))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx, Config{Dt: 1.0 / 60, Duration: 10})
	if err == nil {
		t.Error("expected context error")
	}
	if result == nil || result.Ticks != 0 {
		t.Error("canceled run should return the partial result")
	}
}

func TestOrbitScriptCommitsCircle(t *testing.T) {
	s := newTestSession(t, ScriptFunc(orbit))
	result, err := s.Run(context.Background(), Config{Dt: 1.0 / 60, Duration: 0.5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	last := result.Gestures[len(result.Gestures)-1]
	if last != gesture.Circle {
		t.Errorf("orbit script should settle into circle, got %v", last)
	}
	if !s.Simulator().PlanetMode() {
		t.Error("sustained circle should latch planet mode")
	}
}

func TestClapScriptTriggersCollapse(t *testing.T) {
	s := newTestSession(t, ScriptFunc(clap))
	result, err := s.Run(context.Background(), Config{Dt: 1.0 / 60, Duration: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	sawCollapse := false
	for _, g := range result.Gestures {
		if g == gesture.Collapse {
			sawCollapse = true
			break
		}
	}
	if !sawCollapse {
		t.Error("clap script should commit collapse")
	}
	if s.Simulator().ExplosionStart() < 0 {
		t.Error("collapse should have started the explosion timer")
	}
}

func TestSmoothResetsOnHandLoss(t *testing.T) {
	// A hand that jumps between appearances must not be averaged across the
	// gap.
	script := ScriptFunc(func(t float64) (*hand.Point, *hand.Point) {
		if t < 0.1 {
			return &hand.Point{X: 100, Open: true}, nil
		}
		if t < 0.2 {
			return nil, nil
		}
		return &hand.Point{X: -100, Open: true}, nil
	})

	s := newTestSession(t, script)
	snapAt := func(t float64) *hand.Snapshot {
		left, right := script.Sample(t)
		return s.smooth(left, right)
	}

	snapAt(0)
	snapAt(0.15)
	snap := snapAt(0.25)
	if snap.Left == nil || snap.Left.X != -100 {
		t.Errorf("stale pre-gap history bled into reappearance: %+v", snap.Left)
	}
}

func TestGetScript(t *testing.T) {
	for _, name := range ListScripts() {
		if _, err := GetScript(name); err != nil {
			t.Errorf("listed script %s should resolve: %v", name, err)
		}
	}
	if _, err := GetScript("nope"); err == nil {
		t.Error("expected error for unknown script")
	}
}
