package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/monolithium/monolithium/report"
	"github.com/monolithium/monolithium/search"
	"github.com/monolithium/monolithium/world"
)

// spawnCommand searches many seeds near spawn. The seed-factory variant is
// chosen with --factory; seed/linear/random/ratio each read their own
// extra flags rather than being modeled as nested subcommands, matching
// this command set's flat single-level flag style.
var spawnCommand = cli.Command{
	Name:  "spawn",
	Usage: "search many seeds near spawn",
	Flags: []cli.Flag{
		cli.Int64Flag{Name: "r", Value: 100, Usage: "radius around spawn, in blocks"},
		cli.Uint64Flag{Name: "c", Value: 1, Usage: "chunks (seeds) per dispatched job"},
		cli.Uint64Flag{Name: "l", Value: 999999, Usage: "stop after this many monoliths (small regions only)"},
		cli.Uint64Flag{Name: "a", Value: 0, Usage: "minimum monolith area to report"},
		cli.IntFlag{Name: "s", Value: 200, Usage: "probe step, in blocks"},
		cli.StringFlag{Name: "factory", Value: "linear", Usage: "seed,linear,random,ratio"},
		cli.Uint64Flag{Name: "seed", Usage: "seed value, for -factory seed"},
		cli.Uint64Flag{Name: "start", Usage: "start seed, for -factory linear"},
		cli.Uint64Flag{Name: "total", Value: 1_000_000, Usage: "seed count, for -factory linear/random"},
		cli.Float64Flag{Name: "ratio", Value: 0.001, Usage: "fraction of the 48-bit seed space, for -factory ratio"},
		cli.BoolFlag{Name: "prefilter", Usage: "skip seeds GoodPerlinFracts rejects before building a World"},
		cli.StringFlag{Name: "cfg", Value: "", Usage: "config from json file, overriding the command line"},
		cli.StringFlag{Name: "manifest", Value: "", Usage: "also write results to this NDJSON file"},
		cli.BoolFlag{Name: "compress", Usage: "snappy-compress the manifest file"},
		cli.BoolFlag{Name: "quiet", Usage: "suppress the progress bar"},
	},
	Action: runSpawn,
}

func runSpawn(c *cli.Context) error {
	radius := c.Int64("r")
	chunkSize := c.Uint64("c")
	limit := c.Uint64("l")
	minArea := c.Uint64("a")
	step := c.Int("s")
	factoryName := c.String("factory")
	seedVal := c.Uint64("seed")
	start := c.Uint64("start")
	total := c.Uint64("total")
	ratio := c.Float64("ratio")
	prefilter := c.Bool("prefilter")
	manifest := c.String("manifest")
	compress := c.Bool("compress")
	quiet := c.Bool("quiet")

	if cfgPath := c.String("cfg"); cfgPath != "" {
		var cfg Config
		checkConfig(parseJSONConfig(&cfg, cfgPath))
		if cfg.Radius != nil {
			radius = *cfg.Radius
		}
		if cfg.ChunkSize != nil {
			chunkSize = *cfg.ChunkSize
		}
		if cfg.Limit != nil {
			limit = *cfg.Limit
		}
		if cfg.MinArea != nil {
			minArea = *cfg.MinArea
		}
		if cfg.Step != nil {
			step = *cfg.Step
		}
		if cfg.Ratio != nil {
			ratio = *cfg.Ratio
		}
		if cfg.Manifest != nil {
			manifest = *cfg.Manifest
		}
		if cfg.Compress != nil {
			compress = *cfg.Compress
		}
	}

	if radius < 0 {
		checkConfig(errInvalidRadius)
	}
	if step <= 0 {
		checkConfig(errInvalidStep)
	}

	var factory search.Factory
	switch factoryName {
	case "seed":
		factory = search.SeedOne{Value: seedVal}
	case "linear":
		factory = search.Linear{Start: start, Count: total}
	case "random":
		factory = search.Random{Count: total}
	case "ratio":
		if ratio <= 0 || ratio > 1 {
			checkConfig(errInvalidRatio)
		}
		factory = search.Ratio{Fraction: ratio}
	default:
		checkConfig(errInvalidFactory)
	}

	opts := world.FindOptions{}.Spawn(radius)
	opts.Step = step
	opts.Limit = limit

	if limit != 0 && 2*radius >= search.SmallAreaThreshold {
		color.Red("WARNING: radius %d makes this a large-area sweep; -l limit is ignored for large areas.", radius)
	}

	driverOpts := search.DriverOptions{
		ChunkSize: chunkSize,
		Find:      opts,
		FirstOnly: false,
	}
	if prefilter {
		driverOpts.Prefilter = func(seed uint64) bool {
			return world.GoodPerlinFracts(seed, world.GoodPerlinFractsOptions{
				IncludeDepth: true, Threshold: 16,
			})
		}
	}

	ctx, cancel := withSignalCancel(context.Background())
	defer cancel()

	if !quiet {
		bar := progressbar.Default(int64(factory.Total()), "searching seeds")
		defer bar.Finish()
		driverOpts.Progress = func() { bar.Add(1) }
	}

	d := search.NewDriver(factory, driverOpts)
	results, runErr := d.Run(ctx)
	if runErr != nil && ctx.Err() == nil {
		checkResource(runErr)
	}

	filtered := results[:0]
	for _, m := range results {
		if m.Area >= minArea {
			filtered = append(filtered, m)
		}
	}

	r, err := report.NewReporter(os.Stdout, manifest, compress)
	checkResource(err)
	defer r.Close()

	checkResource(r.EmitAll(filtered))
	checkResource(r.Summary())

	// interrupted: partial results are already reported above, but the
	// process must still exit non-zero.
	checkResource(runErr)
	return nil
}
