package perlin

import (
	"math"
	"testing"

	"github.com/monolithium/monolithium/rng"
)

func TestInitProducesPermutation(t *testing.T) {
	r := rng.FromSeed(617)
	var n Noise
	n.Init(&r)

	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := n.perm[i]
		if seen[v] {
			t.Fatalf("value %d appears more than once in permutation", v)
		}
		seen[v] = true
	}
	for i := 0; i < 256; i++ {
		if !seen[i] {
			t.Fatalf("value %d missing from permutation", i)
		}
	}
	// mirror half must match the first half exactly
	for i := 0; i < 256; i++ {
		if n.perm[i] != n.perm[i+256] {
			t.Fatalf("mirror mismatch at %d: %d != %d", i, n.perm[i], n.perm[i+256])
		}
	}
}

func TestSampleRange(t *testing.T) {
	r := rng.FromSeed(42)
	var n Noise
	n.Init(&r)

	for x := -50; x <= 50; x += 7 {
		for z := -50; z <= 50; z += 11 {
			v := n.Sample(float64(x)*0.13, 0, float64(z)*0.17)
			if math.Abs(v) > 1.0+1e-9 {
				t.Fatalf("Sample(%d,0,%d) = %v, want |v| <= 1", x, z, v)
			}
		}
	}
}

func TestDiscardAdvancesLikeInit(t *testing.T) {
	SetDiscardMode(Strict)
	defer SetDiscardMode(Fast)

	r1 := rng.FromSeed(999)
	var n Noise
	n.Init(&r1)

	r2 := rng.FromSeed(999)
	Discard(&r2, 1)

	if r1.State() != r2.State() {
		t.Fatalf("Discard(strict) left state %d, want %d matching Init", r2.State(), r1.State())
	}
}
