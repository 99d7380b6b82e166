package analysis

import (
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/viz"
)

// Portrait is a 2D phase trajectory, typically mean rest distance against
// mean speed over a recorded run.
type Portrait struct {
	XLabel, YLabel string
	X, Y           []float64
}

func NewPortrait(xLabel, yLabel string, x, y []float64) *Portrait {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	return &Portrait{XLabel: xLabel, YLabel: yLabel, X: x[:n], Y: y[:n]}
}

// Render draws the trajectory onto a braille canvas, autoscaled to the data
// bounds with a small margin.
func (p *Portrait) Render(width, height int) string {
	if len(p.X) == 0 {
		return ""
	}

	minX, maxX := p.X[0], p.X[0]
	minY, maxY := p.Y[0], p.Y[0]
	for i := range p.X {
		if p.X[i] < minX {
			minX = p.X[i]
		}
		if p.X[i] > maxX {
			maxX = p.X[i]
		}
		if p.Y[i] < minY {
			minY = p.Y[i]
		}
		if p.Y[i] > maxY {
			maxY = p.Y[i]
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	canvas := viz.NewCanvas(width, height)
	dw, dh := width*2-1, height*4-1

	px, py := -1, -1
	for i := range p.X {
		x := int((p.X[i] - minX) / spanX * float64(dw))
		y := dh - int((p.Y[i]-minY)/spanY*float64(dh))
		if px >= 0 {
			canvas.DrawLine(px, py, x, y)
		} else {
			canvas.Set(x, y)
		}
		px, py = x, y
	}
	return canvas.String()
}
