// Package gesture turns noisy per-frame hand tracking into stable discrete
// gestures with smoothing, hysteresis and debounce.
package gesture

// Gesture is the discrete hand state driving the active force regime.
type Gesture int

const (
	// Idle holds the rest shape; hands may still exert a local field.
	Idle Gesture = iota
	// Expand pushes particles away from the hand midpoint.
	Expand
	// Compress pulls particles toward the hand midpoint.
	Compress
	// Circle aggregates particles into the rotating planet sphere.
	Circle
	// Collapse triggers the shockwave explosion.
	Collapse
	// Control drives the ensemble camera transform instead of the particle
	// field. Only one of the two families is active in a given mode.
	Control
)

var names = map[Gesture]string{
	Idle:     "idle",
	Expand:   "expand",
	Compress: "compress",
	Circle:   "circle",
	Collapse: "collapse",
	Control:  "control",
}

func (g Gesture) String() string {
	if n, ok := names[g]; ok {
		return n
	}
	return "unknown"
}
