package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
)

// Transform is the camera-facing whole-ensemble scale and yaw driven by the
// control gesture family. It is separate from per-particle physics: the
// renderer applies it to the whole buffer, and the simulator applies its
// inverse when mapping hand positions into the ensemble's local frame.
type Transform struct {
	Scale     float64
	RotationY float64

	targetScale float64
	targetRot   float64
}

const (
	// Hand distance maps to scale around this neutral separation, with a
	// dead-zone so resting hands do not drift the zoom.
	scaleNeutralDistance = 12.0
	scaleDeadZone        = 1.0
	scaleMin             = 0.5
	scaleMax             = 2.0

	rotationGain = 0.04 // rad per unit of horizontal midpoint offset
	rotationMax  = 0.6

	// Exponential approach rate toward the targets, per second.
	transformRate = 4.0
)

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{Scale: 1, targetScale: 1}
}

// Update retargets and smooths the transform. Only control-family frames
// with both hands present move the targets; the smoothing toward them runs
// every tick so releases glide instead of snapping.
func (t *Transform) Update(snap *hand.Snapshot, active bool, dt float64) {
	if active && snap.BothPresent() {
		if math.Abs(snap.Distance-scaleNeutralDistance) > scaleDeadZone {
			t.targetScale = clamp(snap.Distance/scaleNeutralDistance, scaleMin, scaleMax)
		}
		t.targetRot = clamp(snap.CenterX*rotationGain, -rotationMax, rotationMax)
	}

	k := 1 - math.Exp(-transformRate*dt)
	t.Scale += (t.targetScale - t.Scale) * k
	t.RotationY += (t.targetRot - t.RotationY) * k
}

// Apply maps a point from the ensemble's local frame to world space.
func (t *Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.QuatRotate(t.RotationY, mgl64.Vec3{0, 1, 0}).Rotate(p).Mul(t.Scale)
}

// ApplyInverse maps a world-space point (a hand position) into the
// ensemble's local frame.
func (t *Transform) ApplyInverse(p mgl64.Vec3) mgl64.Vec3 {
	scale := t.Scale
	if scale < 1e-6 {
		scale = 1e-6
	}
	return mgl64.QuatRotate(-t.RotationY, mgl64.Vec3{0, 1, 0}).Rotate(p.Mul(1 / scale))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
