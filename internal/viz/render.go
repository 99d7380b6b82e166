package viz

import "github.com/go-gl/mathgl/mgl64"

// RenderPositions projects a flat xyz position array onto a fresh canvas.
// Useful for one-shot frames outside the live view.
func RenderPositions(pos []float64, cam *Camera, width, height int) *Canvas {
	if cam == nil {
		cam = NewCamera()
	}
	canvas := NewCanvas(width, height)
	dw, dh := width*2, height*4
	for i := 0; i+2 < len(pos); i += 3 {
		p := mgl64.Vec3{pos[i], pos[i+1], pos[i+2]}
		if x, y, ok := cam.Project(p, dw, dh); ok {
			canvas.Set(x, y)
		}
	}
	return canvas
}
