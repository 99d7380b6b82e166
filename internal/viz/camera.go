package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera projects world points onto the braille dot grid: orbit rotation
// about Y then X, a fixed-distance perspective divide, and a zoom factor.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64
	Distance   float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1, Distance: 50}
}

func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch = mgl64.Clamp(c.Pitch+dpitch, -math.Pi/2, math.Pi/2)
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.125, c.Zoom/1.2) }

func (c *Camera) rotate(p mgl64.Vec3) mgl64.Vec3 {
	p = mgl64.QuatRotate(c.Yaw, mgl64.Vec3{0, 1, 0}).Rotate(p)
	return mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0}).Rotate(p)
}

// Project maps a world point to dot coordinates on a w x h dot grid.
// Returns false when the point lies behind the near plane or off screen.
func (c *Camera) Project(p mgl64.Vec3, w, h int) (int, int, bool) {
	r := c.rotate(p).Mul(c.Zoom)
	if r.Z() >= c.Distance-0.1 {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - r.Z())
	minDim := math.Min(float64(w), float64(h)*2) // braille dots are taller than wide
	scale := persp * minDim / 40
	x := int(r.X()*scale) + w/2
	y := int(-r.Y()*scale*0.5) + h/2
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}
