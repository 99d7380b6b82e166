// Package shapes generates rest-position templates for the particle ensemble.
//
// Each generator returns a flat []float64 of length 3*count (x, y, z per
// particle). Generators are pure up to the injected random source and never
// retain it.
package shapes

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind selects a rest-shape template.
type Kind string

const (
	Sphere Kind = "sphere"
	Cube   Kind = "cube"
	Heart  Kind = "heart"
	Flower Kind = "flower"
	Saturn Kind = "saturn"
	Galaxy Kind = "galaxy"
	Buddha Kind = "buddha"
)

// Kinds lists every supported shape in a stable order.
func Kinds() []Kind {
	return []Kind{Sphere, Cube, Heart, Flower, Saturn, Galaxy, Buddha}
}

const (
	// SphereRadius bounds the sphere template and the buddha fallback.
	SphereRadius = 8.0

	goldenAngle = 137.5 * math.Pi / 180

	buddhaAttempts = 20
)

// Generate produces rest positions for count particles arranged as kind.
// Unrecognized kinds fall back to the sphere template. A nil rng uses a
// freshly seeded source.
func Generate(count int, kind Kind, rng *rand.Rand) []float64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	out := make([]float64, 3*count)
	for i := 0; i < count; i++ {
		var p mgl64.Vec3
		switch kind {
		case Cube:
			p = cubePoint(rng)
		case Heart:
			p = heartPoint(rng)
		case Flower:
			p = flowerPoint(i, rng)
		case Saturn:
			p = saturnPoint(rng)
		case Galaxy:
			p = galaxyPoint(i, count, rng)
		case Buddha:
			p = buddhaPoint(rng)
		default:
			p = spherePoint(SphereRadius, rng)
		}
		out[3*i] = p.X()
		out[3*i+1] = p.Y()
		out[3*i+2] = p.Z()
	}
	return out
}

// spherePoint samples uniformly by volume inside a sphere of radius r.
// The inverse-cosine polar draw keeps density uniform over the sphere and
// the cube-root radial draw keeps it uniform through the volume.
func spherePoint(r float64, rng *rand.Rand) mgl64.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	rad := r * math.Cbrt(rng.Float64())
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		rad * sinPhi * math.Cos(theta),
		rad * sinPhi * math.Sin(theta),
		rad * math.Cos(phi),
	}
}

func cubePoint(rng *rand.Rand) mgl64.Vec3 {
	return mgl64.Vec3{
		rng.Float64()*20 - 10,
		rng.Float64()*20 - 10,
		rng.Float64()*20 - 10,
	}
}

// heartPoint places a particle on the classic closed heart curve, thickened
// by a small sphere-volume jitter plus an independent depth jitter.
func heartPoint(rng *rand.Rand) mgl64.Vec3 {
	t := rng.Float64() * 2 * math.Pi
	s := math.Sin(t)
	x := 16 * s * s * s
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)

	jitter := spherePoint(0.6, rng)
	return mgl64.Vec3{
		x*0.5 + jitter.X(),
		y*0.5 + jitter.Y(),
		jitter.Z() + (rng.Float64()-0.5)*1.5,
	}
}

// flowerPoint lays out a phyllotaxis spiral: golden-angle rotation per index
// with a square-root radial spread.
func flowerPoint(i int, rng *rand.Rand) mgl64.Vec3 {
	angle := float64(i) * goldenAngle
	radius := 0.5 * math.Sqrt(float64(i))
	depth := (rng.Float64() - 0.5) * radius * 0.3
	return mgl64.Vec3{
		radius * math.Cos(angle) * 0.4,
		radius * math.Sin(angle) * 0.4,
		depth * 0.4,
	}
}

var saturnTilt = mgl64.QuatRotate(30*math.Pi/180, mgl64.Vec3{1, 0, 1}.Normalize())

// saturnPoint places 60% of particles on a tilted thin ring and the rest
// inside the planet body.
func saturnPoint(rng *rand.Rand) mgl64.Vec3 {
	if rng.Float64() < 0.6 {
		ringR := 6 + rng.Float64()*6
		a := rng.Float64() * 2 * math.Pi
		p := mgl64.Vec3{
			ringR * math.Cos(a),
			(rng.Float64() - 0.5) * 0.5,
			ringR * math.Sin(a),
		}
		return saturnTilt.Rotate(p)
	}
	return spherePoint(4, rng)
}

// galaxyPoint builds a 3-armed spiral with a central vertical bulge that
// thins out toward the rim.
func galaxyPoint(i, count int, rng *rand.Rand) mgl64.Vec3 {
	spin := float64(i) / float64(count) * 3 * 2 * math.Pi
	dist := rng.Float64() * 15
	return mgl64.Vec3{
		math.Cos(spin+dist) * dist,
		(rng.Float64() - 0.5) * 4 / (dist + 1),
		math.Sin(spin+dist) * dist,
	}
}

// Buddha silhouette primitives: two stacked spheres for head and body plus a
// box region for the crossed legs, all inside the sampling bounds.
func insideBuddha(p mgl64.Vec3) bool {
	head := p.Sub(mgl64.Vec3{0, 4, 0})
	if head.Len() < 1.5 {
		return true
	}
	body := p.Sub(mgl64.Vec3{0, 0.5, 0})
	if body.Len() < 2.8 {
		return true
	}
	return math.Abs(p.X()) < 2.2 &&
		p.Y() > -6 && p.Y() < -1 &&
		math.Abs(p.Z()) < 1.6
}

// buddhaPoint rejection-samples the silhouette inside a +-5 x +-6 x +-3
// bounding box, falling back to a sphere sample when the attempt cap runs
// out.
func buddhaPoint(rng *rand.Rand) mgl64.Vec3 {
	for attempt := 0; attempt < buddhaAttempts; attempt++ {
		p := mgl64.Vec3{
			(rng.Float64() - 0.5) * 10,
			(rng.Float64() - 0.5) * 12,
			(rng.Float64() - 0.5) * 6,
		}
		if insideBuddha(p) {
			return p
		}
	}
	return spherePoint(SphereRadius, rng)
}
