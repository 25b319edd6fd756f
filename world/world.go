// Package world builds the per-seed noise fields monoliths are found in,
// and the bounded-region search options used to probe them.
package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/monolithium/monolithium/perlin"
	"github.com/monolithium/monolithium/rng"
)

const (
	hillOctaves  = 10
	depthOctaves = 16

	// preludeDiscards is how many Perlin instances the host terrain
	// generator this system mimics constructs and discards before the
	// hill and depth fractals get their own octaves, preserving
	// compatibility with its noise-draw ordering.
	preludeDiscards = 48
)

// FARLANDS is the coordinate boundary beyond which the terrain generator
// this system models degenerates numerically.
const FARLANDS int64 = 12_550_824

// WorldSize is the total span of in-bounds coordinates on one axis.
const WorldSize int64 = 2*FARLANDS + 1

// World holds one seed's hill and depth fractals. The zero value is not
// ready for use; call Init before sampling.
type World struct {
	Seed  uint64
	Hill  *perlin.Fractal
	Depth *perlin.Fractal
}

// New allocates an empty World; call Init to seed it.
func New() *World {
	return &World{
		Hill:  perlin.NewFractal(hillOctaves),
		Depth: perlin.NewFractal(depthOctaves),
	}
}

// Init reseeds the world's two fractals from seed, reusing the World's
// existing allocations. Workers are expected to call Init once per seed
// on a single long-lived World rather than constructing a new one.
func (w *World) Init(seed uint64) {
	w.Seed = seed
	r := rng.FromSeed(seed)
	perlin.Discard(&r, preludeDiscards)
	w.Hill.Init(&r)
	w.Depth.Init(&r)
}

// IsMonolith reports whether (x, z) is simultaneously hill- and
// depth-monolith terrain.
func (w *World) IsMonolith(x, z int64) bool {
	return w.Hill.IsHillMonolith(x, z) && w.Depth.IsDepthMonolith(x, z)
}

// Fingerprint returns an xxhash digest of the seed and both fractals'
// permutation tables — a short, non-cryptographic tag used only by the
// bench subcommand to distinguish worlds in benchmark output, never for
// correctness.
func (w *World) Fingerprint() uint64 {
	h := xxhash.New()
	var seedBuf [8]byte
	binary.LittleEndian.PutUint64(seedBuf[:], w.Seed)
	h.Write(seedBuf[:])

	var fpBuf [16]byte
	binary.LittleEndian.PutUint64(fpBuf[0:8], w.Hill.Fingerprint())
	binary.LittleEndian.PutUint64(fpBuf[8:16], w.Depth.Fingerprint())
	h.Write(fpBuf[:])

	return h.Sum64()
}

// GoodPerlinFractsOptions configures GoodPerlinFracts's quality heuristic.
type GoodPerlinFractsOptions struct {
	// IncludeDepth also scores the depth fractal, not just hill.
	IncludeDepth bool
	// ScaleByOctave weights each octave's contribution by its 2^i scale.
	ScaleByOctave bool
	// Threshold is the maximum accumulated score before the seed is
	// rejected. Use 5.4 for hill-only unscaled, 380 for hill-only scaled,
	// 16 for hill+depth unscaled, 28000 for hill+depth scaled.
	Threshold float64
}

// GoodPerlinFracts is a soft pre-filter: it mirrors the first LCG draws of
// Init without constructing any permutation tables, accumulating a
// "roughness" score from how far each octave's coordinate offsets land
// from 0.5, and rejects the seed (returns false) once the running score
// exceeds opts.Threshold. False negatives — rejecting a seed that would
// in fact contain a monolith — are an accepted tradeoff for the speedup.
func GoodPerlinFracts(seed uint64, opts GoodPerlinFractsOptions) bool {
	r := rng.FromSeed(seed)
	perlin.Discard(&r, preludeDiscards)

	var sum float64
	accumulate := func(octaves int) bool {
		for i := 0; i < octaves; i++ {
			for j := 0; j < 3; j++ {
				fract := r.NextF64()
				d := math.Abs(0.5 - fract)
				if opts.ScaleByOctave {
					d *= float64(int64(1) << uint(i))
				}
				sum += d
			}
			r.StepN(256)
			if sum > opts.Threshold {
				return false
			}
		}
		return true
	}

	if !accumulate(hillOctaves) {
		return false
	}
	if !opts.IncludeDepth {
		return true
	}
	return accumulate(depthOctaves)
}
