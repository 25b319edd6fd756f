package search

import (
	"math/rand"
)

// TotalSeeds is the size of the full 48-bit seed space.
const TotalSeeds uint64 = 1 << 48

// Factory enumerates the seeds a Driver run should visit. Get is called
// with indices 0..Total()-1 in no particular order; implementations must
// not assume sequential access.
type Factory interface {
	// Total reports how many seeds this factory produces.
	Total() uint64
	// Get returns the nth seed, 0 <= n < Total().
	Get(n uint64) uint64
}

// SeedOne always returns a single fixed seed.
type SeedOne struct {
	Value uint64
}

func (s SeedOne) Total() uint64       { return 1 }
func (s SeedOne) Get(n uint64) uint64 { return s.Value }

// Linear enumerates a contiguous run of seeds starting at Start.
type Linear struct {
	Start uint64
	Count uint64
}

func (l Linear) Total() uint64       { return l.Count }
func (l Linear) Get(n uint64) uint64 { return l.Start + n }

// Random draws Count uniformly random seeds from the full 48-bit space.
// Duplicates are possible and accepted; the birthday-paradox collision
// rate at 2^48 is negligible for any practical Count.
type Random struct {
	Count uint64
}

func (r Random) Total() uint64 { return r.Count }

func (r Random) Get(n uint64) uint64 {
	return uint64(rand.Int63n(int64(TotalSeeds>>16)))<<16 | uint64(rand.Int31n(1<<16))
}

// Ratio enumerates a deterministic fraction of the full seed space: the
// nth seed is floor(n/ratio). Unlike Random, repeated runs of a Ratio factory
// visit exactly the same seeds in exactly the same order.
type Ratio struct {
	Fraction float64
}

func (r Ratio) Total() uint64 {
	return uint64(r.Fraction * float64(TotalSeeds))
}

func (r Ratio) Get(n uint64) uint64 {
	return uint64(float64(n) / r.Fraction)
}
