package search

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/monolithium/monolithium/dedup"
	"github.com/monolithium/monolithium/world"
)

func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// DriverOptions configures a Driver run.
type DriverOptions struct {
	// ChunkSize is how many consecutive seed indices each dispatched task
	// covers. Default 1 if zero.
	ChunkSize uint64
	// Prefilter, if non-nil, is applied to each seed before World.Init;
	// seeds it rejects are skipped without building a World.
	Prefilter func(seed uint64) bool
	// Find bounds and configures the per-seed monolith search.
	Find world.FindOptions
	// FirstOnly searches each seed with FindMonolith, returning the first
	// monolith in row-major probe order. Otherwise each seed is searched
	// with FindMonoliths with Find.Limit replaced by 1, which stops a
	// sequential sweep at its first monolith; the parallel sweep ignores
	// the limit and returns every monolith it finds.
	FirstOnly bool
	// Progress, if non-nil, is called once per seed visited (including
	// seeds the Prefilter rejects). Safe to call from multiple workers
	// concurrently.
	Progress func()
}

// Driver partitions a Factory's seed space into chunks and searches each
// chunk on its own worker, reusing a single world.World per worker across
// every seed it handles. Run blocks until every seed has been visited or
// ctx is canceled, then returns the deduplicated, sorted result.
type Driver struct {
	Factory Factory
	Opts    DriverOptions
}

// NewDriver builds a Driver over factory with the given options.
func NewDriver(factory Factory, opts DriverOptions) *Driver {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = 1
	}
	return &Driver{Factory: factory, Opts: opts}
}

// Run dispatches the full seed space across a worker pool and returns every
// distinct monolith found, sorted by world.Monolith's area/seed/coords
// ordering. If ctx is canceled, Run stops early and returns ctx.Err()
// alongside whatever monoliths were already collected, rather than
// discarding them.
func (d *Driver) Run(ctx context.Context) ([]world.Monolith, error) {
	total := d.Factory.Total()
	chunk := d.Opts.ChunkSize

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount())

	var mu sync.Mutex
	seen := make(map[uint64]world.Monolith)

	for start := uint64(0); start < total; start += chunk {
		start := start
		end := start + chunk
		if end > total {
			end = total
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w := world.New()
			var local []world.Monolith

			for n := start; n < end; n++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				seed := d.Factory.Get(n)
				if d.Opts.Progress != nil {
					d.Opts.Progress()
				}
				if d.Opts.Prefilter != nil && !d.Opts.Prefilter(seed) {
					continue
				}
				w.Init(seed)

				if d.Opts.FirstOnly {
					if mono, ok := FindMonolith(w, d.Opts.Find); ok {
						local = append(local, mono)
					}
					continue
				}

				opts := d.Opts.Find
				opts.Limit = 1
				local = append(local, FindMonoliths(w, opts)...)
			}

			if len(local) == 0 {
				return nil
			}
			mu.Lock()
			for _, mono := range local {
				key := dedup.MonolithKey(mono.Seed, mono.CenterX(), mono.CenterZ())
				seen[key] = mono
			}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	out := flatten(seen)
	world.SortMonoliths(out)
	return out, err
}
