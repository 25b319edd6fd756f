// Package search implements region discovery (BFS flood fill) over a
// world.World, the seed enumeration strategies that drive a sweep across
// many seeds, and the worker pool that runs them in parallel.
package search

import (
	"github.com/monolithium/monolithium/dedup"
	"github.com/monolithium/monolithium/world"
)

// SmallAreaThreshold is the (maxX-minX) cutoff below which FindMonoliths
// runs single-threaded with early-limit termination; at or above it, the
// sweep parallelizes across the X axis and limits are not honored.
const SmallAreaThreshold = 100_000

// probeDiskRadius and probeDiskStep define the disk of extra seed points
// GetMonolith enqueues around its starting coordinate, so a probe that
// lands near the edge of a disconnected lobe still discovers the rest of
// the region.
const (
	probeDiskRadius = 256
	probeDiskStep   = 32
)

// longRangeGrid is the grid spacing at which GetMonolith's BFS loop
// additionally probes the long-range ring (used to bridge holes between
// dense kernels within a monolith).
const longRangeGrid = 32

var longRangeOffsets = buildLongRangeOffsets()

func buildLongRangeOffsets() [][2]int32 {
	var offsets [][2]int32
	for _, n := range []int32{64, 256} {
		offsets = append(offsets,
			[2]int32{n, 0}, [2]int32{-n, 0}, [2]int32{0, n}, [2]int32{0, -n},
			[2]int32{n, n}, [2]int32{n, -n}, [2]int32{-n, n}, [2]int32{-n, -n},
		)
	}
	return offsets
}

// nearestMultiple rounds num to the nearest multiple of mul. The division
// truncates toward zero, so negative numerators round toward zero (-3 with
// mul 4 gives 0, not -4).
func nearestMultiple(num int64, mul int64) int32 {
	return int32((num + mul/2) / mul * mul)
}

// GetMonolith rounds (x, z) to a multiple of step, probes that point and,
// if it lies on monolith terrain, flood fills the surrounding region via a
// sparse BFS with long-range probes, returning the discovered Monolith. It
// reports false if the rounded point is not monolith terrain.
func GetMonolith(w *world.World, x, z int64, step int) (world.Monolith, bool) {
	qx := nearestMultiple(x, int64(step))
	qz := nearestMultiple(z, int64(step))

	if !w.IsMonolith(int64(qx), int64(qz)) {
		return world.Monolith{}, false
	}

	const sentinel = 32
	mono := world.Monolith{
		Seed: w.Seed,
		MinX: qx + sentinel, MinZ: qz + sentinel,
		MaxX: qx - sentinel, MaxZ: qz - sentinel,
	}

	visited := dedup.NewCoordSet(256)
	type point struct{ x, z int32 }
	queue := make([]point, 0, 64)

	enqueue := func(x, z int32) {
		if visited.Insert(x, z) {
			queue = append(queue, point{x, z})
		}
	}
	enqueue(qx, qz)

	// seed a disk of additional probes in case the starting point sits
	// near the edge of a disconnected lobe
	for dx := int32(-probeDiskRadius); dx <= probeDiskRadius; dx += probeDiskStep {
		for dz := int32(-probeDiskRadius); dz <= probeDiskRadius; dz += probeDiskStep {
			if dx*dx+dz*dz >= probeDiskRadius*probeDiskRadius {
				continue
			}
			px, pz := qx+dx, qz+dz
			if w.IsMonolith(int64(px), int64(pz)) {
				enqueue(px, pz)
			}
		}
	}

	s := int32(step)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if !w.IsMonolith(int64(p.x), int64(p.z)) {
			continue
		}

		mono.Area += uint64(step) * uint64(step)

		neighbors := [][2]int32{{s, 0}, {-s, 0}, {0, s}, {0, -s}}
		if p.x%longRangeGrid == 0 && p.z%longRangeGrid == 0 {
			if p.x < mono.MinX {
				mono.MinX = p.x
			}
			if p.x > mono.MaxX {
				mono.MaxX = p.x
			}
			if p.z < mono.MinZ {
				mono.MinZ = p.z
			}
			if p.z > mono.MaxZ {
				mono.MaxZ = p.z
			}
			neighbors = append(neighbors, longRangeOffsets...)
		}

		for _, d := range neighbors {
			nx, nz := p.x+d[0], p.z+d[1]
			if !visited.Contains(nx, nz) && w.IsMonolith(int64(nx), int64(nz)) {
				enqueue(nx, nz)
			}
		}
	}

	return mono, true
}
