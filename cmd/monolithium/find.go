package main

import (
	"context"
	"os"

	"github.com/urfave/cli"

	"github.com/monolithium/monolithium/report"
	"github.com/monolithium/monolithium/search"
	"github.com/monolithium/monolithium/world"
)

var findCommand = cli.Command{
	Name:  "find",
	Usage: "search one seed across a broad region",
	Flags: []cli.Flag{
		cli.Uint64Flag{Name: "s", Value: 0, Usage: "seed"},
		cli.IntFlag{Name: "x", Value: 128, Usage: "probe step, in blocks"},
		cli.Uint64Flag{Name: "a", Value: 0, Usage: "minimum monolith area to report"},
		cli.StringFlag{Name: "c", Value: "", Usage: "config from json file, overriding the command line"},
		cli.StringFlag{Name: "manifest", Value: "", Usage: "also write results to this NDJSON file"},
		cli.BoolFlag{Name: "compress", Usage: "snappy-compress the manifest file"},
	},
	Action: runFind,
}

func runFind(c *cli.Context) error {
	seed := c.Uint64("s")
	step := c.Int("x")
	minArea := c.Uint64("a")
	manifest := c.String("manifest")
	compress := c.Bool("compress")

	if cfgPath := c.String("c"); cfgPath != "" {
		var cfg Config
		checkConfig(parseJSONConfig(&cfg, cfgPath))
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		if cfg.Step != nil {
			step = *cfg.Step
		}
		if cfg.MinArea != nil {
			minArea = *cfg.MinArea
		}
		if cfg.Manifest != nil {
			manifest = *cfg.Manifest
		}
		if cfg.Compress != nil {
			compress = *cfg.Compress
		}
	}

	if step <= 0 {
		checkConfig(errInvalidStep)
	}

	ctx, cancel := withSignalCancel(context.Background())
	defer cancel()

	opts := world.FindOptions{}.Wraps()
	opts.Step = step
	opts.Threaded = true

	d := search.NewDriver(search.SeedOne{Value: seed}, search.DriverOptions{Find: opts})
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
