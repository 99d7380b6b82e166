package session

import (
	"fmt"
	"math"
	"sort"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
)

// Script drives a session with a synthetic hand-tracking track, standing in
// for the live tracker in headless runs, benchmarks and the demo view.
type Script interface {
	// Sample returns the raw hand points at time t; nil means a hand is not
	// detected.
	Sample(t float64) (left, right *hand.Point)
}

// ScriptFunc adapts a function to the Script interface.
type ScriptFunc func(t float64) (left, right *hand.Point)

func (f ScriptFunc) Sample(t float64) (*hand.Point, *hand.Point) { return f(t) }

// Live adapts the latest-wins tracker slot to the Script interface, so the
// server's tick loop runs through the same session machinery as headless
// runs.
func Live(latest *hand.Latest) Script {
	return ScriptFunc(func(t float64) (*hand.Point, *hand.Point) {
		snap := latest.Load()
		return snap.Left, snap.Right
	})
}

// noHands leaves the field untouched for the whole run.
func noHands(t float64) (*hand.Point, *hand.Point) {
	return nil, nil
}

// orbit holds two open hands ten units apart with a slow sway, qualifying
// the aggregation gesture.
func orbit(t float64) (*hand.Point, *hand.Point) {
	sway := math.Sin(t*0.5) * 1.5
	return &hand.Point{X: -5 + sway, Y: 2, Open: true},
		&hand.Point{X: 5 + sway, Y: 2, Open: true}
}

// pinchPulse pinches for half a second out of every two, producing compress
// holds and expand release edges.
func pinchPulse(t float64) (*hand.Point, *hand.Point) {
	pinched := math.Mod(t, 2) < 0.5
	return &hand.Point{X: -4, Open: !pinched, Pinched: pinched},
		&hand.Point{X: 4, Open: !pinched, Pinched: pinched}
}

// clap closes the hands from twenty units to touching over two seconds and
// holds, firing the collapse shockwave.
func clap(t float64) (*hand.Point, *hand.Point) {
	half := math.Max(1, 10-4.5*math.Min(t, 2))
	return &hand.Point{X: -half}, &hand.Point{X: half}
}

// sweep moves one open hand through the ensemble, showcasing the idle-mode
// repulsion field.
func sweep(t float64) (*hand.Point, *hand.Point) {
	return &hand.Point{X: -12 + math.Mod(t*6, 24), Open: true}, nil
}

var scripts = map[string]Script{
	"none":        ScriptFunc(noHands),
	"orbit":       ScriptFunc(orbit),
	"pinch-pulse": ScriptFunc(pinchPulse),
	"clap":        ScriptFunc(clap),
	"sweep":       ScriptFunc(sweep),
}

// GetScript resolves a script by name.
func GetScript(name string) (Script, error) {
	s, ok := scripts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownScript, name, ListScripts())
	}
	return s, nil
}

// ListScripts returns the script names in a stable order.
func ListScripts() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
