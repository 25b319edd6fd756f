package perlin

import (
	"math"
	"testing"

	"github.com/monolithium/monolithium/rng"
)

func newFractal(seed uint64, octaves int) *Fractal {
	r := rng.FromSeed(seed)
	f := NewFractal(octaves)
	f.Init(&r)
	return f
}

func TestRepeats(t *testing.T) {
	if got := newFractal(1, 10).Repeats(); got != 131072 {
		t.Fatalf("10-octave Repeats() = %d, want 131072", got)
	}
	if got := newFractal(1, 16).Repeats(); got != 8388608 {
		t.Fatalf("16-octave Repeats() = %d, want 8388608", got)
	}
}

func TestFractalRange(t *testing.T) {
	f := newFractal(42, 10)
	for x := int64(-2000); x <= 2000; x += 137 {
		for z := int64(-2000); z <= 2000; z += 211 {
			v := f.Sample(float64(x), float64(z))
			if math.Abs(v) > f.Maxval()-1+1e-6 {
				t.Fatalf("Sample(%d,%d) = %v, want |v| <= %v", x, z, v, f.Maxval()-1)
			}
		}
	}
}

func TestPeriodicity(t *testing.T) {
	f := newFractal(617, 10)
	repeats := float64(f.Repeats())
	for x := int64(-500); x <= 500; x += 123 {
		for z := int64(-500); z <= 500; z += 89 {
			a := f.Sample(float64(x), float64(z))
			b := f.Sample(float64(x)+repeats, float64(z))
			if math.Abs(a-b) > 1e-6 {
				t.Fatalf("periodicity broke at x=%d z=%d: %v vs %v", x, z, a, b)
			}
		}
	}
}

// fullHillSum recomputes the unabridged hill sum the slow way, for
// equivalence testing against the early-exit IsHillMonolith.
func fullHillSum(f *Fractal, x, z int64) float64 {
	X := float64(x / 4)
	Z := float64(z / 4)
	var sum float64
	for i := len(f.noise) - 1; i >= 0; i-- {
		s := f.OctaveScale(i)
		sum += f.noise[i].Sample(X/s, 0, Z/s) * s
	}
	return sum
}

func fullDepthSum(f *Fractal, x, z int64) float64 {
	X := float64(x/4) * 100.0
	Z := float64(z/4) * 100.0
	var sum float64
	for i := len(f.noise) - 1; i >= 0; i-- {
		s := f.OctaveScale(i)
		sum += f.noise[i].Sample(X/s, 0, Z/s) * s
	}
	return sum
}

func TestEarlyExitEquivalenceHill(t *testing.T) {
	f := newFractal(617, 10)
	for x := int64(-4096); x <= 4096; x += 97 {
		for z := int64(-4096); z <= 4096; z += 131 {
			want := fullHillSum(f, x, z) < hillThreshold
			got := f.IsHillMonolith(x, z)
			if got != want {
				t.Fatalf("IsHillMonolith(%d,%d) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestEarlyExitEquivalenceDepth(t *testing.T) {
	f := newFractal(617, 16)
	for x := int64(-200); x <= 200; x += 37 {
		for z := int64(-200); z <= 200; z += 53 {
			want := math.Abs(fullDepthSum(f, x, z)) > depthThreshold
			got := f.IsDepthMonolith(x, z)
			if got != want {
				t.Fatalf("IsDepthMonolith(%d,%d) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestFingerprintDeterministicAndDistinguishing(t *testing.T) {
	a := newFractal(617, 10)
	b := newFractal(617, 10)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("Fingerprint is not deterministic for the same seed")
	}

	c := newFractal(618, 10)
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("Fingerprint did not distinguish two different seeds")
	}
}
