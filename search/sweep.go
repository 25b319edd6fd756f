package search

import (
	"sync"

	"github.com/monolithium/monolithium/dedup"
	"github.com/monolithium/monolithium/world"
)

// FindMonoliths sweeps the region described by opts, returning every
// distinct monolith found (deduplicated by seed + bounding-box center).
// Small regions (below SmallAreaThreshold in X extent) run single
// threaded and honor opts.Limit; larger regions parallelize across the
// outer X loop and opts.Limit is ignored, since an early stop would make
// the parallelism pointless.
func FindMonoliths(w *world.World, opts world.FindOptions) []world.Monolith {
	step := opts.Step
	if step <= 0 {
		step = 1
	}

	width := opts.MaxX - opts.MinX
	if width < 0 {
		width = -width
	}

	if width < SmallAreaThreshold && !opts.Threaded {
		return findMonolithsSequential(w, opts, step)
	}
	return findMonolithsParallel(w, opts, step)
}

func findMonolithsSequential(w *world.World, opts world.FindOptions, step int) []world.Monolith {
	seen := make(map[uint64]world.Monolith)
	for x := opts.MinX; x <= opts.MaxX; x += int64(step) {
		for z := opts.MinZ; z <= opts.MaxZ; z += int64(step) {
			mono, ok := GetMonolith(w, x, z, step)
			if !ok {
				continue
			}
			key := dedup.MonolithKey(mono.Seed, mono.CenterX(), mono.CenterZ())
			seen[key] = mono
			if opts.Limit != 0 && uint64(len(seen)) >= opts.Limit {
				return flatten(seen)
			}
		}
	}
	return flatten(seen)
}

func findMonolithsParallel(w *world.World, opts world.FindOptions, step int) []world.Monolith {
	var xs []int64
	for x := opts.MinX; x <= opts.MaxX; x += int64(step) {
		xs = append(xs, x)
	}

	var mu sync.Mutex
	seen := make(map[uint64]world.Monolith)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workerCount())
	for _, x := range xs {
		x := x
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			var local []world.Monolith
			for z := opts.MinZ; z <= opts.MaxZ; z += int64(step) {
				if mono, ok := GetMonolith(w, x, z, step); ok {
					local = append(local, mono)
				}
			}
			if len(local) == 0 {
				return
			}
			mu.Lock()
			for _, mono := range local {
				key := dedup.MonolithKey(mono.Seed, mono.CenterX(), mono.CenterZ())
				seen[key] = mono
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return flatten(seen)
}

func flatten(seen map[uint64]world.Monolith) []world.Monolith {
	out := make([]world.Monolith, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	return out
}

// FindMonolith is the single-result fast path: it scans the probe grid in
// row-major order and returns the first monolith found, without building
// a dedup set at all.
func FindMonolith(w *world.World, opts world.FindOptions) (world.Monolith, bool) {
	step := opts.Step
	if step <= 0 {
		step = 1
	}
	for x := opts.MinX; x <= opts.MaxX; x += int64(step) {
		for z := opts.MinZ; z <= opts.MaxZ; z += int64(step) {
			if mono, ok := GetMonolith(w, x, z, step); ok {
				return mono, true
			}
		}
	}
	return world.Monolith{}, false
}
