package analysis

import (
	"math"
	"testing"
)

func TestDominantFrequencyRecoversSine(t *testing.T) {
	const (
		dt   = 1.0 / 60
		freq = 2.0
	)
	data := make([]float64, 256)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*freq*float64(i)*dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.3 {
		t.Errorf("dominant frequency = %v, want about %v", got, freq)
	}
}

func TestPadPow2(t *testing.T) {
	out := PadPow2(make([]float64, 100))
	if len(out) != 128 {
		t.Errorf("padded length = %d, want 128", len(out))
	}
	if PadPow2(nil) != nil {
		t.Error("empty input should stay empty")
	}
}

func TestPadPow2RemovesMean(t *testing.T) {
	out := PadPow2([]float64{2, 2, 2, 2})
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0 after mean removal", i, v)
		}
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency(nil, 0.01); got != 0 {
		t.Errorf("empty series frequency = %v, want 0", got)
	}
	if got := DominantFrequency([]float64{1, 1, 1, 1}, 0.01); got != 0 {
		t.Errorf("flat series frequency = %v, want 0", got)
	}
}

func TestPortraitRenderBounds(t *testing.T) {
	p := NewPortrait("x", "y", []float64{0, 1, 2, 1, 0}, []float64{0, 1, 0, -1, 0})
	out := p.Render(10, 5)
	if out == "" {
		t.Fatal("empty render")
	}
}
