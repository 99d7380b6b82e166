// Package session couples the smoother, classifier and simulator into one
// tick loop over a scripted or live input source, recording per-tick series
// and run metrics.
package session

import (
	"context"
	"fmt"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/metrics"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
)

// Config sets the tick rate and run length.
type Config struct {
	Dt       float64
	Duration float64
}

// Result is the recorded run: per-tick series plus final metric values.
type Result struct {
	Times        []float64
	Gestures     []gesture.Gesture
	RestDistance []float64
	MeanSpeed    []float64
	Metrics      map[string]float64
	Ticks        int
}

// Session owns one simulation run end to end.
type Session struct {
	sim        *particles.Simulator
	classifier *gesture.Classifier
	script     Script
	leftSm     *hand.Smoother
	rightSm    *hand.Smoother
	observers  []metrics.Metric
}

// New wires a session over the given simulator, classifier and input
// script.
func New(sim *particles.Simulator, classifier *gesture.Classifier, script Script) *Session {
	return &Session{
		sim:        sim,
		classifier: classifier,
		script:     script,
		leftSm:     hand.NewSmoother(hand.DefaultSmootherWindow),
		rightSm:    hand.NewSmoother(hand.DefaultSmootherWindow),
	}
}

// SetScript swaps the input source mid-run. The smoothers are reset so the
// new track starts from a clean filter.
func (s *Session) SetScript(script Script) {
	s.script = script
	s.leftSm.Reset()
	s.rightSm.Reset()
}

// AddMetric registers a per-tick observer.
func (s *Session) AddMetric(m metrics.Metric) {
	s.observers = append(s.observers, m)
}

// Simulator exposes the underlying simulator.
func (s *Session) Simulator() *particles.Simulator { return s.sim }

// Tick advances the session one frame at time t: samples the script,
// smooths, classifies and steps the physics. Returns the snapshot and the
// committed gesture for callers that render them.
func (s *Session) Tick(t, dt float64) (*hand.Snapshot, gesture.Gesture) {
	left, right := s.script.Sample(t)
	snap := s.smooth(left, right)
	g := s.classifier.Classify(snap.Left, snap.Right, snap.Distance, t)
	s.sim.Step(snap, g, dt)
	return snap, g
}

// smooth runs each present hand through its filter, resetting the filter
// when a hand disappears so stale history never bleeds into a reappearance.
func (s *Session) smooth(left, right *hand.Point) *hand.Snapshot {
	var sl, sr *hand.Point
	if left != nil {
		v := s.leftSm.Push(left.Vec())
		sl = &hand.Point{X: v.X(), Y: v.Y(), Z: v.Z(), Open: left.Open, Pinched: left.Pinched}
	} else {
		s.leftSm.Reset()
	}
	if right != nil {
		v := s.rightSm.Push(right.Vec())
		sr = &hand.Point{X: v.X(), Y: v.Y(), Z: v.Z(), Open: right.Open, Pinched: right.Pinched}
	} else {
		s.rightSm.Reset()
	}
	return hand.NewSnapshot(sl, sr)
}

// Run executes the whole scripted session, honoring ctx cancellation
// between ticks.
func (s *Session) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:        make([]float64, 0, steps),
		Gestures:     make([]gesture.Gesture, 0, steps),
		RestDistance: make([]float64, 0, steps),
		MeanSpeed:    make([]float64, 0, steps),
		Metrics:      make(map[string]float64),
	}

	for _, m := range s.observers {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		_, g := s.Tick(t, cfg.Dt)

		ens := s.sim.Ensemble()
		for _, m := range s.observers {
			m.Observe(ens, g, t)
		}

		result.Times = append(result.Times, t)
		result.Gestures = append(result.Gestures, g)
		result.RestDistance = append(result.RestDistance, metrics.MeanRestDistance(ens))
		result.MeanSpeed = append(result.MeanSpeed, metrics.MeanSpeed(ens))
		result.Ticks++

		t += cfg.Dt
	}

	for _, m := range s.observers {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
