// Package hand models the per-tick tracking snapshot consumed by the
// gesture classifier and the particle simulator.
package hand

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is one tracked hand. Coordinates are in the tracker's normalized
// space; Open and Pinched are the per-frame pose flags.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Open    bool    `json:"open"`
	Pinched bool    `json:"pinched"`
}

// Vec returns the point's position as a vector.
func (p *Point) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Snapshot is the read-only hand state published once per tracking frame.
// A nil Left/Right means that hand is not currently detected. The derived
// scalars are zero unless both hands are present.
type Snapshot struct {
	Left     *Point  `json:"left"`
	Right    *Point  `json:"right"`
	Distance float64 `json:"distance"`
	CenterX  float64 `json:"centerX"`
	CenterY  float64 `json:"centerY"`
	CenterZ  float64 `json:"centerZ"`
	Rotation float64 `json:"rotation"`
}

// NewSnapshot builds a snapshot and computes the derived scalars: Euclidean
// separation, midpoint and inter-hand angle when both hands are present,
// midpoint alone when only one is.
func NewSnapshot(left, right *Point) *Snapshot {
	s := &Snapshot{Left: left, Right: right}
	switch {
	case left != nil && right != nil:
		dx := right.X - left.X
		dy := right.Y - left.Y
		dz := right.Z - left.Z
		s.Distance = math.Sqrt(dx*dx + dy*dy + dz*dz)
		s.CenterX = (left.X + right.X) / 2
		s.CenterY = (left.Y + right.Y) / 2
		s.CenterZ = (left.Z + right.Z) / 2
		s.Rotation = math.Atan2(dy, dx)
	case left != nil:
		s.CenterX, s.CenterY, s.CenterZ = left.X, left.Y, left.Z
	case right != nil:
		s.CenterX, s.CenterY, s.CenterZ = right.X, right.Y, right.Z
	}
	return s
}

// BothPresent reports whether both hands are tracked this frame.
func (s *Snapshot) BothPresent() bool {
	return s != nil && s.Left != nil && s.Right != nil
}

// AnyPresent reports whether at least one hand is tracked this frame.
func (s *Snapshot) AnyPresent() bool {
	return s != nil && (s.Left != nil || s.Right != nil)
}

// Center returns the hand midpoint as a vector.
func (s *Snapshot) Center() mgl64.Vec3 {
	return mgl64.Vec3{s.CenterX, s.CenterY, s.CenterZ}
}
