package particles

import (
	"math/rand"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

// velocityJitter seeds fresh ensembles with a little initial motion.
const velocityJitter = 0.05

// Ensemble is the fixed-size particle collection. The three arrays always
// have identical length 3*count; Resize and Reshape replace all three
// atomically.
type Ensemble struct {
	count int
	kind  shapes.Kind
	pos   []float64
	vel   []float64
	rest  []float64
	rng   *rand.Rand
}

// NewEnsemble generates count particles at rest in the given shape with
// jittered initial velocities.
func NewEnsemble(count int, kind shapes.Kind, rng *rand.Rand) *Ensemble {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	e := &Ensemble{kind: kind, rng: rng}
	e.regenerate(count, kind)
	return e
}

func (e *Ensemble) regenerate(count int, kind shapes.Kind) {
	rest := shapes.Generate(count, kind, e.rng)
	pos := make([]float64, len(rest))
	copy(pos, rest)
	vel := make([]float64, len(rest))
	for i := range vel {
		vel[i] = (e.rng.Float64() - 0.5) * 2 * velocityJitter
	}

	// Swap all three together so no observer sees a partial resize.
	e.count = count
	e.kind = kind
	e.pos = pos
	e.vel = vel
	e.rest = rest
}

// Resize regenerates the ensemble with a new particle count.
func (e *Ensemble) Resize(count int) {
	e.regenerate(count, e.kind)
}

// Reshape regenerates the ensemble with a new rest-shape template.
func (e *Ensemble) Reshape(kind shapes.Kind) {
	e.regenerate(e.count, kind)
}

// Count returns the number of particles.
func (e *Ensemble) Count() int { return e.count }

// Kind returns the active shape template.
func (e *Ensemble) Kind() shapes.Kind { return e.kind }

// Positions exposes the live position array. The renderer must treat it as
// read-only for the frame.
func (e *Ensemble) Positions() []float64 { return e.pos }

// Velocities exposes the live velocity array.
func (e *Ensemble) Velocities() []float64 { return e.vel }

// RestPositions exposes the rest-shape template array.
func (e *Ensemble) RestPositions() []float64 { return e.rest }
