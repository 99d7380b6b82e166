package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
)

// Params holds the force constants. Magnitudes are tuned per frame at the
// 60 fps reference rate; Step rescales them by the clamped elapsed time.
type Params struct {
	Friction          float64 `yaml:"friction"`
	SpringK           float64 `yaml:"spring_k"`
	MaxSpeed          float64 `yaml:"max_speed"`
	MaxDt             float64 `yaml:"max_dt"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	AttractStrength   float64 `yaml:"attract_strength"`
	RepelStrength     float64 `yaml:"repel_strength"`
	CompressStrength  float64 `yaml:"compress_strength"`
	ExpandStrength    float64 `yaml:"expand_strength"`
	ScatterStrength   float64 `yaml:"scatter_strength"`

	PlanetRadius     float64 `yaml:"planet_radius"`
	PlanetGravity    float64 `yaml:"planet_gravity"`
	PlanetCenterLerp float64 `yaml:"planet_center_lerp"`
	FillStrength     float64 `yaml:"fill_strength"`
	PushBack         float64 `yaml:"push_back"`
	OuterPull        float64 `yaml:"outer_pull"`
	SwirlStrength    float64 `yaml:"swirl_strength"`
	DepthStrength    float64 `yaml:"depth_strength"`
	NoiseStrength    float64 `yaml:"noise_strength"`

	ExplosionDuration float64 `yaml:"explosion_duration"`
	WaveSpeed         float64 `yaml:"wave_speed"`
	WaveBand          float64 `yaml:"wave_band"`
	WaveImpulse       float64 `yaml:"wave_impulse"`
	Turbulence        float64 `yaml:"turbulence"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Friction:          0.96,
		SpringK:           0.02,
		MaxSpeed:          2.5,
		MaxDt:             1.0 / 30,
		InteractionRadius: 10,
		AttractStrength:   0.6,
		RepelStrength:     0.25,
		CompressStrength:  0.9,
		ExpandStrength:    1.2,
		ScatterStrength:   0.15,

		PlanetRadius:     6,
		PlanetGravity:    0.12,
		PlanetCenterLerp: 0.06,
		FillStrength:     0.02,
		PushBack:         0.3,
		OuterPull:        0.05,
		SwirlStrength:    0.05,
		DepthStrength:    0.02,
		NoiseStrength:    0.02,

		ExplosionDuration: 1.5,
		WaveSpeed:         28,
		WaveBand:          3,
		WaveImpulse:       1.8,
		Turbulence:        0.4,
	}
}

const (
	epsilon       = 1e-4
	referenceFPS  = 60.0
	noExplosion   = -1e9 // sentinel: no active explosion
	minChunkSize  = 512
	minCenterDist = 0.8
)

// Simulator advances the ensemble one tick at a time. It owns the persistent
// simulation mode state (planet mode, planet center, explosion timer,
// elapsed-time accumulator) and the global control-family transform.
//
// Not safe for concurrent use; one logical tick runs per render frame.
type Simulator struct {
	ens    *Ensemble
	params Params

	transform *Transform

	planetMode     bool
	planetCenter   mgl64.Vec3
	explosionStart float64
	explosionFrom  mgl64.Vec3
	elapsed        float64
	tick           uint64
	prevGesture    gesture.Gesture
}

// NewSimulator wraps an ensemble with the given force tuning.
func NewSimulator(ens *Ensemble, params Params) *Simulator {
	return &Simulator{
		ens:            ens,
		params:         params,
		transform:      NewTransform(),
		explosionStart: noExplosion,
	}
}

// Ensemble returns the simulated ensemble.
func (s *Simulator) Ensemble() *Ensemble { return s.ens }

// Params returns the current force tuning.
func (s *Simulator) Params() Params { return s.params }

// SetParams swaps the force tuning; takes effect next tick, no regeneration.
func (s *Simulator) SetParams(p Params) { s.params = p }

// Transform returns the camera-facing ensemble transform.
func (s *Simulator) Transform() *Transform { return s.transform }

// PlanetMode reports whether the aggregation regime is latched.
func (s *Simulator) PlanetMode() bool { return s.planetMode }

// PlanetCenter returns the tracked aggregation center.
func (s *Simulator) PlanetCenter() mgl64.Vec3 { return s.planetCenter }

// ExplosionActive reports whether the shockwave overlay is inside its window.
func (s *Simulator) ExplosionActive() bool {
	return s.explosionStart != noExplosion &&
		s.elapsed-s.explosionStart < s.params.ExplosionDuration
}

// ExplosionStart returns the trigger time of the last explosion, or the
// far-past sentinel.
func (s *Simulator) ExplosionStart() float64 { return s.explosionStart }

// Elapsed returns the accumulated simulation time.
func (s *Simulator) Elapsed() float64 { return s.elapsed }

// Step advances every particle by one tick under the committed gesture and
// the latest smoothed hand snapshot. dt is clamped before any force
// computation so frame-rate stalls cannot destabilize the integration.
func (s *Simulator) Step(snap *hand.Snapshot, g gesture.Gesture, dt float64) {
	if dt <= 0 {
		return
	}
	if dt > s.params.MaxDt {
		dt = s.params.MaxDt
	}
	s.elapsed += dt
	s.tick++

	if snap == nil {
		snap = &hand.Snapshot{}
	}

	s.applyTransitions(snap, g)
	s.transform.Update(snap, g == gesture.Control, dt)

	// Per-tick read-only inputs for the particle loop.
	frameScale := dt * referenceFPS
	damp := math.Pow(s.params.Friction, frameScale)

	center := s.transform.ApplyInverse(snap.Center())
	var left, right mgl64.Vec3
	leftPresent, rightPresent := snap.Left != nil, snap.Right != nil
	leftPinched, rightPinched := false, false
	if leftPresent {
		left = s.transform.ApplyInverse(snap.Left.Vec())
		leftPinched = snap.Left.Pinched
	}
	if rightPresent {
		right = s.transform.ApplyInverse(snap.Right.Vec())
		rightPinched = snap.Right.Pinched
	}
	anyPinched := leftPinched || rightPinched

	exploding := s.ExplosionActive()
	waveRadius := 0.0
	if exploding {
		waveRadius = (s.elapsed - s.explosionStart) * s.params.WaveSpeed
	}

	pos, vel, rest := s.ens.pos, s.ens.vel, s.ens.rest
	n := s.ens.count
	p := s.params

	parallelFor(n, minChunkSize, func(start, end int) {
		for i := start; i < end; i++ {
			j := 3 * i
			px, py, pz := pos[j], pos[j+1], pos[j+2]
			vx, vy, vz := vel[j]*damp, vel[j+1]*damp, vel[j+2]*damp

			switch {
			case g == gesture.Circle && s.planetMode:
				vx, vy, vz = s.planetForces(i, px, py, pz, vx, vy, vz, frameScale)

			case g == gesture.Compress && anyPinched:
				dx, dy, dz := center.X()-px, center.Y()-py, center.Z()-pz
				d := math.Sqrt(dx*dx+dy*dy+dz*dz) + epsilon
				m := p.CompressStrength / d * frameScale
				vx += dx * m
				vy += dy * m
				vz += dz * m

			case g == gesture.Expand:
				dx, dy, dz := px-center.X(), py-center.Y(), pz-center.Z()
				d := math.Sqrt(dx*dx+dy*dy+dz*dz) + epsilon
				m := p.ExpandStrength / d * frameScale
				nx, ny, nz := noise3(i, s.tick)
				sc := p.ScatterStrength * frameScale
				vx += dx*m + nx*sc
				vy += dy*m + ny*sc
				vz += dz*m + nz*sc

			default:
				// Idle family: relax toward the rest shape unless the
				// planet latch or an active blast owns the particles.
				if !s.planetMode && !exploding {
					k := p.SpringK * frameScale
					vx += (rest[j] - px) * k
					vy += (rest[j+1] - py) * k
					vz += (rest[j+2] - pz) * k
				}
				if g == gesture.Idle {
					if leftPresent {
						vx, vy, vz = s.handField(px, py, pz, vx, vy, vz, left, leftPinched, frameScale)
					}
					if rightPresent {
						vx, vy, vz = s.handField(px, py, pz, vx, vy, vz, right, rightPinched, frameScale)
					}
				}
			}

			if exploding {
				dx, dy, dz := px-s.explosionFrom.X(), py-s.explosionFrom.Y(), pz-s.explosionFrom.Z()
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				band := math.Abs(d - waveRadius)
				if band < p.WaveBand {
					str := (1 - band/p.WaveBand) * frameScale
					m := p.WaveImpulse * str / (d + epsilon)
					nx, ny, nz := noise3(i, s.tick)
					tb := p.Turbulence * str
					vx += dx*m + nx*tb
					vy += dy*m + ny*tb
					vz += dz*m + nz*tb
				}
			}

			// Clamp speed so stacked forces can never blow up a particle.
			speed := math.Sqrt(vx*vx + vy*vy + vz*vz)
			if speed > p.MaxSpeed {
				f := p.MaxSpeed / speed
				vx, vy, vz = vx*f, vy*f, vz*f
			}

			pos[j] = px + vx*frameScale
			pos[j+1] = py + vy*frameScale
			pos[j+2] = pz + vz*frameScale
			vel[j], vel[j+1], vel[j+2] = vx, vy, vz
		}
	})

	s.prevGesture = g
}

// applyTransitions updates the latched mode state on gesture edges.
func (s *Simulator) applyTransitions(snap *hand.Snapshot, g gesture.Gesture) {
	switch {
	case g == gesture.Circle:
		if !s.planetMode {
			s.planetMode = true
			if snap.BothPresent() {
				s.planetCenter = s.transform.ApplyInverse(snap.Center())
			}
		} else if snap.BothPresent() {
			// Track the live midpoint smoothly instead of snapping.
			target := s.transform.ApplyInverse(snap.Center())
			s.planetCenter = s.planetCenter.Add(
				target.Sub(s.planetCenter).Mul(s.params.PlanetCenterLerp))
		}

	case g == gesture.Expand || g == gesture.Compress:
		s.planetMode = false

	case g == gesture.Collapse && s.prevGesture != gesture.Collapse:
		s.planetMode = false
		s.explosionStart = s.elapsed
		if snap.AnyPresent() {
			s.explosionFrom = s.transform.ApplyInverse(snap.Center())
		} else {
			s.explosionFrom = mgl64.Vec3{}
		}
	}
}

// handField applies the idle-mode local field of one hand: attraction when
// pinched, mild repulsion when open, falling off linearly to zero at the
// interaction radius and inversely weighted by distance near the hand.
func (s *Simulator) handField(px, py, pz, vx, vy, vz float64, h mgl64.Vec3, pinched bool, frameScale float64) (float64, float64, float64) {
	dx, dy, dz := h.X()-px, h.Y()-py, h.Z()-pz
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d >= s.params.InteractionRadius {
		return vx, vy, vz
	}
	falloff := 1 - d/s.params.InteractionRadius
	var m float64
	if pinched {
		m = s.params.AttractStrength * falloff / (d + epsilon) * frameScale
	} else {
		m = -s.params.RepelStrength * falloff / (d + epsilon) * frameScale
	}
	return vx + dx*m, vy + dy*m, vz + dz*m
}

// planetForces is the aggregation regime: inverse-distance pull toward the
// tracked center, volume-fill dispersion over a per-particle target shell,
// near-center push-back, out-of-radius recapture, a slow swirl, a depth
// spread keyed on index and elapsed time, and small bounded noise.
func (s *Simulator) planetForces(i int, px, py, pz, vx, vy, vz, frameScale float64) (float64, float64, float64) {
	p := s.params
	c := s.planetCenter
	dx, dy, dz := c.X()-px, c.Y()-py, c.Z()-pz
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	inv := 1 / (d + epsilon)
	ux, uy, uz := dx*inv, dy*inv, dz*inv

	// Inverse-distance gravity toward the center.
	g := p.PlanetGravity * inv * frameScale
	vx += dx * g
	vy += dy * g
	vz += dz * g

	// Volume fill: every particle owns a deterministic shell radius so the
	// aggregate fills the sphere instead of collapsing to a point.
	ph := phase(i)
	targetR := p.PlanetRadius * math.Cbrt(ph)
	shell := (d - targetR) * p.FillStrength * frameScale
	vx += ux * shell
	vy += uy * shell
	vz += uz * shell

	if d < minCenterDist {
		pb := p.PushBack * frameScale
		vx -= ux * pb
		vy -= uy * pb
		vz -= uz * pb
	}
	if d > p.PlanetRadius {
		op := (d - p.PlanetRadius) * p.OuterPull * frameScale
		vx += ux * op
		vy += uy * op
		vz += uz * op
	}

	// Tangential swirl about the vertical axis for the visual rotation.
	sw := p.SwirlStrength * frameScale
	vx += -uz * sw
	vz += ux * sw

	// Depth spread: per-particle target z wandering with elapsed time keeps
	// the aggregate from flattening into a plane.
	targetZ := c.Z() + math.Sin(ph*2*math.Pi+s.elapsed*0.4)*p.PlanetRadius*0.6
	vz += (targetZ - pz) * p.DepthStrength * frameScale

	nx, ny, nz := noise3(i, s.tick)
	ns := p.NoiseStrength * frameScale
	return vx + nx*ns, vy + ny*ns, vz + nz*ns
}

// phase is a deterministic per-particle pseudo-random value in [0, 1).
func phase(i int) float64 {
	v := math.Sin(float64(i)*12.9898) * 43758.5453
	return v - math.Floor(v)
}

// noise3 is bounded deterministic jitter in [-1, 1] per axis, varying per
// particle and per tick. Keeping it hash-based avoids sharing a rand source
// across the worker chunks.
func noise3(i int, tick uint64) (float64, float64, float64) {
	base := float64(i)*7.13 + float64(tick%100000)*0.173
	x := math.Sin(base*12.9898) * 43758.5453
	y := math.Sin(base*78.233) * 12578.1459
	z := math.Sin(base*39.425) * 26453.8365
	return 2*(x-math.Floor(x)) - 1, 2*(y-math.Floor(y)) - 1, 2*(z-math.Floor(z)) - 1
}
