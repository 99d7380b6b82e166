package e2e

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/metrics"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

const dt = 1.0 / 60

func newSim(count int) *particles.Simulator {
	ens := particles.NewEnsemble(count, shapes.Sphere, rand.New(rand.NewSource(7)))
	return particles.NewSimulator(ens, particles.DefaultParams())
}

// drive feeds the same hand pose through classifier and simulator for n
// ticks, returning the last committed gesture.
func drive(sim *particles.Simulator, cl *gesture.Classifier, left, right *hand.Point, n int, t *float64) gesture.Gesture {
	var g gesture.Gesture
	for i := 0; i < n; i++ {
		snap := hand.NewSnapshot(left, right)
		g = cl.Classify(snap.Left, snap.Right, snap.Distance, *t)
		sim.Step(snap, g, dt)
		*t += dt
	}
	return g
}

var _ = Describe("shape return", func() {
	It("pulls a displaced ensemble back toward its rest shape", func() {
		sim := newSim(1000)
		pos := sim.Ensemble().Positions()
		for i := range pos {
			pos[i] += 2
		}
		initial := metrics.MeanRestDistance(sim.Ensemble())
		Expect(initial).To(BeNumerically(">", 1))

		for i := 0; i < 60; i++ {
			sim.Step(hand.NewSnapshot(nil, nil), gesture.Idle, dt)
		}

		final := metrics.MeanRestDistance(sim.Ensemble())
		Expect(final).To(BeNumerically("<", initial))
	})
})

var _ = Describe("gesture to physics coupling", func() {
	var (
		sim *particles.Simulator
		cl  *gesture.Classifier
		t   float64
	)

	BeforeEach(func() {
		sim = newSim(500)
		cl = gesture.NewClassifier(gesture.DefaultConfig())
		t = 0
	})

	It("latches planet mode after the aggregation gesture confirms", func() {
		left := &hand.Point{X: -5, Y: 1, Open: true}
		right := &hand.Point{X: 5, Y: 1, Open: true}

		g := drive(sim, cl, left, right, 10, &t)
		Expect(g).To(Equal(gesture.Circle))
		Expect(sim.PlanetMode()).To(BeTrue())

		// planet mode survives losing the pose
		drive(sim, cl, nil, nil, 10, &t)
		Expect(sim.PlanetMode()).To(BeTrue())

		// a pinch ends it immediately
		pinchL := &hand.Point{X: -5, Y: 1, Pinched: true}
		pinchR := &hand.Point{X: 5, Y: 1, Pinched: true}
		g = drive(sim, cl, pinchL, pinchR, 1, &t)
		Expect(g).To(Equal(gesture.Compress))
		Expect(sim.PlanetMode()).To(BeFalse())
	})

	It("keeps every particle under the speed limit during a compress hold", func() {
		left := &hand.Point{X: -1, Pinched: true}
		right := &hand.Point{X: 1, Pinched: true}

		drive(sim, cl, left, right, 120, &t)

		limit := sim.Params().MaxSpeed + 1e-9
		vel := sim.Ensemble().Velocities()
		for i := 0; i < len(vel); i += 3 {
			speed := math.Sqrt(vel[i]*vel[i] + vel[i+1]*vel[i+1] + vel[i+2]*vel[i+2])
			Expect(speed).To(BeNumerically("<=", limit))
		}
	})

	It("fires the shockwave once per cooldown window", func() {
		left := &hand.Point{X: -1, Open: true}
		right := &hand.Point{X: 1, Open: true}

		g := drive(sim, cl, left, right, 1, &t)
		Expect(g).To(Equal(gesture.Collapse))
		firstStart := sim.ExplosionStart()
		Expect(firstStart).To(BeNumerically(">=", 0))

		// within the cooldown the same pose may not retrigger
		drive(sim, cl, left, right, 30, &t)
		Expect(sim.ExplosionStart()).To(Equal(firstStart))
	})

	It("expands once per pinch release edge", func() {
		pinchL := &hand.Point{X: -5, Pinched: true}
		pinchR := &hand.Point{X: 5, Pinched: true}
		openL := &hand.Point{X: -5, Open: true}
		openR := &hand.Point{X: 5, Open: true}

		g := drive(sim, cl, pinchL, pinchR, 6, &t)
		Expect(g).To(Equal(gesture.Compress))

		g = drive(sim, cl, openL, openR, 1, &t)
		Expect(g).To(Equal(gesture.Expand))
	})
})
