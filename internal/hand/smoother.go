package hand

import "github.com/go-gl/mathgl/mgl64"

// DefaultSmootherWindow is the number of raw samples kept per hand.
const DefaultSmootherWindow = 5

// Smoother damps tracking jitter for one hand with a linearly time-weighted
// moving average: the i-th oldest sample (1-indexed) contributes weight i,
// so the newest sample dominates while older ones still pull against noise.
type Smoother struct {
	window int
	buf    []mgl64.Vec3
}

// NewSmoother returns a smoother holding the last window samples. A window
// below 1 uses the default.
func NewSmoother(window int) *Smoother {
	if window < 1 {
		window = DefaultSmootherWindow
	}
	return &Smoother{window: window, buf: make([]mgl64.Vec3, 0, window)}
}

// Push records a raw sample and returns the smoothed position.
func (s *Smoother) Push(raw mgl64.Vec3) mgl64.Vec3 {
	if len(s.buf) == s.window {
		copy(s.buf, s.buf[1:])
		s.buf[len(s.buf)-1] = raw
	} else {
		s.buf = append(s.buf, raw)
	}
	return s.Value()
}

// Value returns the smoothed position over the current history, or the zero
// point when no samples have been pushed.
func (s *Smoother) Value() mgl64.Vec3 {
	if len(s.buf) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	total := 0.0
	for i, p := range s.buf {
		w := float64(i + 1)
		sum = sum.Add(p.Mul(w))
		total += w
	}
	return sum.Mul(1 / total)
}

// Reset clears the sample history. Called when the hand disappears from
// tracking so stale history never bleeds into a reappeared hand.
func (s *Smoother) Reset() {
	s.buf = s.buf[:0]
}

// Len reports the number of buffered samples.
func (s *Smoother) Len() int { return len(s.buf) }
