package shapes

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, kind := range Kinds() {
		out := Generate(500, kind, rng)
		if len(out) != 1500 {
			t.Errorf("%s: expected 1500 values, got %d", kind, len(out))
		}
	}
}

func TestGenerateFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, kind := range Kinds() {
		out := Generate(1000, kind, rng)
		for i, v := range out {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s: non-finite value %f at index %d", kind, v, i)
			}
		}
	}
}

func TestSphereBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	out := Generate(2000, Sphere, rng)
	for i := 0; i < len(out); i += 3 {
		r := math.Sqrt(out[i]*out[i] + out[i+1]*out[i+1] + out[i+2]*out[i+2])
		if r > SphereRadius+1e-9 {
			t.Fatalf("point %d outside sphere: r=%f", i/3, r)
		}
	}
}

func TestSphereVolumetricDensity(t *testing.T) {
	// Uniform volume density puts half the points inside r = R * cbrt(0.5).
	rng := rand.New(rand.NewSource(4))
	const n = 20000
	out := Generate(n, Sphere, rng)

	half := SphereRadius * math.Cbrt(0.5)
	inside := 0
	for i := 0; i < len(out); i += 3 {
		r := math.Sqrt(out[i]*out[i] + out[i+1]*out[i+1] + out[i+2]*out[i+2])
		if r < half {
			inside++
		}
	}

	frac := float64(inside) / n
	if frac < 0.47 || frac > 0.53 {
		t.Errorf("expected ~0.5 of points inside median radius, got %.3f", frac)
	}
}

func TestCubeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	out := Generate(1000, Cube, rng)
	for i, v := range out {
		if v < -10 || v > 10 {
			t.Fatalf("cube coordinate out of range at %d: %f", i, v)
		}
	}
}

func TestGalaxyBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	out := Generate(1000, Galaxy, rng)
	for i := 0; i < len(out); i += 3 {
		planar := math.Hypot(out[i], out[i+2])
		if planar > 15+1e-9 {
			t.Fatalf("galaxy point beyond rim: %f", planar)
		}
	}
}

func TestBuddhaBounds(t *testing.T) {
	// Accepted samples stay inside the sampling box; rejected ones fall back
	// to the sphere template.
	rng := rand.New(rand.NewSource(7))
	out := Generate(1000, Buddha, rng)
	for i := 0; i < len(out); i += 3 {
		inBox := math.Abs(out[i]) <= 5 && math.Abs(out[i+1]) <= 6 && math.Abs(out[i+2]) <= 3
		r := math.Sqrt(out[i]*out[i] + out[i+1]*out[i+1] + out[i+2]*out[i+2])
		if !inBox && r > SphereRadius+1e-9 {
			t.Fatalf("buddha point in neither box nor fallback sphere: (%f,%f,%f)",
				out[i], out[i+1], out[i+2])
		}
	}
}

func TestUnknownKindFallsBackToSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	out := Generate(500, Kind("pyramid"), rng)
	for i := 0; i < len(out); i += 3 {
		r := math.Sqrt(out[i]*out[i] + out[i+1]*out[i+1] + out[i+2]*out[i+2])
		if r > SphereRadius+1e-9 {
			t.Fatalf("fallback point outside sphere: r=%f", r)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(100, Flower, rand.New(rand.NewSource(42)))
	b := Generate(100, Flower, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %f vs %f", i, a[i], b[i])
		}
	}
}
