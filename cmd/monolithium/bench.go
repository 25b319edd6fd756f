package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/monolithium/monolithium/world"
)

// benchCommand measures IsMonolith throughput over a fixed grid, reviving
// the original implementation's ad-hoc benchmark() routine as a proper
// subcommand rather than a commented-out function.
var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "measure IsMonolith throughput for one seed",
	Flags: []cli.Flag{
		cli.Uint64Flag{Name: "s", Value: 617, Usage: "seed"},
		cli.Int64Flag{Name: "r", Value: 1000, Usage: "half-width of the square probed, in blocks"},
	},
	Action: runBench,
}

func runBench(c *cli.Context) error {
	seed := c.Uint64("s")
	radius := c.Int64("r")

	w := world.New()
	w.Init(seed)

	start := time.Now()
	var probes int64
	for x := -radius; x < radius; x++ {
		for z := -radius; z < radius; z++ {
			w.IsMonolith(x, z)
			probes++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("world %016x: is_monolith: %d probes in %s (%.0f probes/sec)\n",
		w.Fingerprint(), probes, elapsed, float64(probes)/elapsed.Seconds())
	return nil
}
