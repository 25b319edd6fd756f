package world

import "testing"

func TestInitIsDeterministic(t *testing.T) {
	w1 := New()
	w1.Init(617)
	w2 := New()
	w2.Init(617)

	if w1.Fingerprint() != w2.Fingerprint() {
		t.Fatal("two Worlds initialized from the same seed have different fingerprints")
	}
	for x := int64(-500); x <= 500; x += 50 {
		for z := int64(-500); z <= 500; z += 50 {
			if w1.IsMonolith(x, z) != w2.IsMonolith(x, z) {
				t.Fatalf("IsMonolith disagreed at (%d,%d) across two same-seed Worlds", x, z)
			}
		}
	}
}

func TestFingerprintDistinguishesSeeds(t *testing.T) {
	w1 := New()
	w1.Init(1)
	w2 := New()
	w2.Init(2)

	if w1.Fingerprint() == w2.Fingerprint() {
		t.Fatal("Fingerprint did not distinguish two different seeds")
	}
}

func TestInitReusesAllocation(t *testing.T) {
	w := New()
	w.Init(1)
	hill := w.Hill
	depth := w.Depth
	w.Init(2)
	if w.Hill != hill || w.Depth != depth {
		t.Fatal("Init allocated new fractals instead of reusing the World's existing ones")
	}
}

func TestGoodPerlinFractsIsDeterministic(t *testing.T) {
	opts := GoodPerlinFractsOptions{Threshold: 5.4}
	a := GoodPerlinFracts(617, opts)
	b := GoodPerlinFracts(617, opts)
	if a != b {
		t.Fatal("GoodPerlinFracts is not deterministic for a fixed seed")
	}
}

func TestGoodPerlinFractsHighThresholdAcceptsEverything(t *testing.T) {
	opts := GoodPerlinFractsOptions{IncludeDepth: true, Threshold: 1e18}
	for seed := uint64(0); seed < 20; seed++ {
		if !GoodPerlinFracts(seed, opts) {
			t.Fatalf("seed %d rejected despite an effectively infinite threshold", seed)
		}
	}
}

func TestGoodPerlinFractsLowThresholdRejectsEverything(t *testing.T) {
	opts := GoodPerlinFractsOptions{IncludeDepth: true, Threshold: -1}
	for seed := uint64(0); seed < 20; seed++ {
		if GoodPerlinFracts(seed, opts) {
			t.Fatalf("seed %d accepted despite a negative threshold", seed)
		}
	}
}
