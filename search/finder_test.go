package search

import (
	"testing"

	"github.com/monolithium/monolithium/world"
)

func newTestWorld(seed uint64) *world.World {
	w := world.New()
	w.Init(seed)
	return w
}

func TestGetMonolithTerminatesAndHasArea(t *testing.T) {
	w := newTestWorld(617)
	found := false
	for x := int64(-12800); x <= 12800 && !found; x += 256 {
		for z := int64(-12800); z <= 12800 && !found; z += 256 {
			if mono, ok := GetMonolith(w, x, z, 256); ok {
				if mono.Area == 0 {
					t.Fatalf("GetMonolith returned a monolith with zero area at (%d,%d)", x, z)
				}
				if mono.Seed != 617 {
					t.Fatalf("Seed mismatch: got %d want 617", mono.Seed)
				}
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no monolith found in seed 617's ±12800 region at step 256")
	}
}

func TestIsMonolithDeterministic(t *testing.T) {
	w1 := newTestWorld(617)
	w2 := newTestWorld(617)
	for x := int64(-512); x <= 512; x += 64 {
		for z := int64(-512); z <= 512; z += 64 {
			if w1.IsMonolith(x, z) != w2.IsMonolith(x, z) {
				t.Fatalf("IsMonolith not deterministic at (%d,%d)", x, z)
			}
		}
	}
}

func TestNearestMultiple(t *testing.T) {
	// nearestMultiple truncates toward zero like its Rust original, so it
	// is not a true round-to-nearest for negative numerators.
	cases := []struct {
		num, mul int64
		want     int32
	}{
		{0, 4, 0},
		{1, 4, 0},
		{3, 4, 4},
		{-1, 4, 0},
		{-3, 4, 0},
	}
	for _, c := range cases {
		if got := nearestMultiple(c.num, c.mul); got != c.want {
			t.Errorf("nearestMultiple(%d,%d) = %d, want %d", c.num, c.mul, got, c.want)
		}
	}
}
