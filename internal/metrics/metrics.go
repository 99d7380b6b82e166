// Package metrics collects per-tick observations over a simulation run.
package metrics

import (
	"math"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
)

// Metric observes every tick and reduces to one value at the end of a run.
type Metric interface {
	Name() string
	Observe(ens *particles.Ensemble, g gesture.Gesture, t float64)
	Value() float64
	Reset()
}

// MeanRestDistance is the ensemble's average distance to the rest template.
func MeanRestDistance(ens *particles.Ensemble) float64 {
	pos, rest := ens.Positions(), ens.RestPositions()
	if ens.Count() == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(pos); i += 3 {
		dx := pos[i] - rest[i]
		dy := pos[i+1] - rest[i+1]
		dz := pos[i+2] - rest[i+2]
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum / float64(ens.Count())
}

// MeanSpeed is the ensemble's average velocity magnitude.
func MeanSpeed(ens *particles.Ensemble) float64 {
	vel := ens.Velocities()
	if ens.Count() == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(vel); i += 3 {
		sum += math.Sqrt(vel[i]*vel[i] + vel[i+1]*vel[i+1] + vel[i+2]*vel[i+2])
	}
	return sum / float64(ens.Count())
}

// RestDistance averages the per-tick mean rest distance over the run.
type RestDistance struct {
	total   float64
	samples int
}

func NewRestDistance() *RestDistance { return &RestDistance{} }

func (m *RestDistance) Name() string { return "rest_distance" }

func (m *RestDistance) Observe(ens *particles.Ensemble, g gesture.Gesture, t float64) {
	m.total += MeanRestDistance(ens)
	m.samples++
}

func (m *RestDistance) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *RestDistance) Reset() {
	m.total = 0
	m.samples = 0
}

// Speed averages the per-tick mean speed and tracks the peak.
type Speed struct {
	total   float64
	peak    float64
	samples int
}

func NewSpeed() *Speed { return &Speed{} }

func (m *Speed) Name() string { return "mean_speed" }

func (m *Speed) Observe(ens *particles.Ensemble, g gesture.Gesture, t float64) {
	s := MeanSpeed(ens)
	m.total += s
	m.peak = math.Max(m.peak, s)
	m.samples++
}

func (m *Speed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

// Peak returns the highest per-tick mean speed seen.
func (m *Speed) Peak() float64 { return m.peak }

func (m *Speed) Reset() {
	m.total = 0
	m.peak = 0
	m.samples = 0
}

// GestureSwitches counts committed gesture transitions over the run.
type GestureSwitches struct {
	last     gesture.Gesture
	started  bool
	switches int
}

func NewGestureSwitches() *GestureSwitches { return &GestureSwitches{} }

func (m *GestureSwitches) Name() string { return "gesture_switches" }

func (m *GestureSwitches) Observe(ens *particles.Ensemble, g gesture.Gesture, t float64) {
	if m.started && g != m.last {
		m.switches++
	}
	m.last = g
	m.started = true
}

func (m *GestureSwitches) Value() float64 { return float64(m.switches) }

func (m *GestureSwitches) Reset() {
	m.last = gesture.Idle
	m.started = false
	m.switches = 0
}
