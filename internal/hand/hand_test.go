package hand

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSnapshotDerivedScalars(t *testing.T) {
	left := &Point{X: 0, Y: 0, Z: 0, Open: true}
	right := &Point{X: 6, Y: 8, Z: 0, Open: true}

	s := NewSnapshot(left, right)

	if s.Distance != 10 {
		t.Errorf("expected distance 10, got %f", s.Distance)
	}
	if s.CenterX != 3 || s.CenterY != 4 || s.CenterZ != 0 {
		t.Errorf("unexpected center (%f, %f, %f)", s.CenterX, s.CenterY, s.CenterZ)
	}
	want := math.Atan2(8, 6)
	if math.Abs(s.Rotation-want) > 1e-12 {
		t.Errorf("expected rotation %f, got %f", want, s.Rotation)
	}
}

func TestSnapshotSingleHand(t *testing.T) {
	s := NewSnapshot(&Point{X: 1, Y: 2, Z: 3}, nil)
	if s.Distance != 0 {
		t.Errorf("expected zero distance with one hand, got %f", s.Distance)
	}
	if s.CenterX != 1 || s.CenterY != 2 || s.CenterZ != 3 {
		t.Errorf("center should track the present hand")
	}
	if s.BothPresent() {
		t.Error("BothPresent should be false")
	}
	if !s.AnyPresent() {
		t.Error("AnyPresent should be true")
	}
}

func TestSnapshotNoHands(t *testing.T) {
	s := NewSnapshot(nil, nil)
	if s.Distance != 0 || s.CenterX != 0 || s.Rotation != 0 {
		t.Error("empty snapshot should have zero scalars")
	}
	if s.AnyPresent() {
		t.Error("AnyPresent should be false")
	}
}

func TestSmootherEmptyYieldsZero(t *testing.T) {
	s := NewSmoother(5)
	if got := s.Value(); got != (mgl64.Vec3{}) {
		t.Errorf("empty history should yield the zero point, got %v", got)
	}
	// First push passes through unchanged.
	got := s.Push(mgl64.Vec3{2, 4, 6})
	if got != (mgl64.Vec3{2, 4, 6}) {
		t.Errorf("single sample should pass through, got %v", got)
	}
}

func TestSmootherWeighting(t *testing.T) {
	s := NewSmoother(3)
	s.Push(mgl64.Vec3{0, 0, 0})
	s.Push(mgl64.Vec3{0, 0, 0})
	got := s.Push(mgl64.Vec3{6, 0, 0})

	// Weights 1,2,3 over samples 0,0,6: (3*6)/6 = 3.
	if math.Abs(got.X()-3) > 1e-12 {
		t.Errorf("expected weighted mean 3, got %f", got.X())
	}
}

func TestSmootherWindowBound(t *testing.T) {
	s := NewSmoother(3)
	for i := 0; i < 10; i++ {
		s.Push(mgl64.Vec3{float64(i), 0, 0})
	}
	if s.Len() != 3 {
		t.Errorf("expected window of 3, got %d", s.Len())
	}
	// Buffer holds 7,8,9 weighted 1,2,3: (7+16+27)/6.
	got := s.Push(mgl64.Vec3{9, 0, 0})
	want := (8.0 + 2*9 + 3*9) / 6
	if math.Abs(got.X()-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got.X())
	}
}

func TestSmootherReset(t *testing.T) {
	s := NewSmoother(5)
	s.Push(mgl64.Vec3{100, 100, 100})
	s.Reset()
	got := s.Push(mgl64.Vec3{1, 1, 1})
	if got != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("stale history bled through reset: %v", got)
	}
}

func TestLatestHandoff(t *testing.T) {
	var l Latest

	if s := l.Load(); s.AnyPresent() {
		t.Error("expected empty snapshot before first publish")
	}

	first := NewSnapshot(&Point{X: 1}, nil)
	second := NewSnapshot(&Point{X: 2}, nil)
	l.Publish(first)
	l.Publish(second)

	if got := l.Load(); got != second {
		t.Error("expected last-write-wins")
	}
	// Stale reads repeat the same snapshot.
	if got := l.Load(); got != second {
		t.Error("expected stable rereads")
	}
}
