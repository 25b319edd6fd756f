package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/urfave/cli"

	"github.com/monolithium/monolithium/world"
)

var perlinCommand = cli.Command{
	Name:  "perlin",
	Usage: "emit a PNG of the hill-noise field",
	Flags: []cli.Flag{
		cli.Uint64Flag{Name: "s", Value: 0, Usage: "seed"},
		cli.IntFlag{Name: "w", Value: 512, Usage: "image size, in pixels"},
		cli.StringFlag{Name: "o", Value: "perlin.png", Usage: "output PNG path"},
	},
	Action: runPerlin,
}

func runPerlin(c *cli.Context) error {
	seed := c.Uint64("s")
	size := c.Int("w")
	out := c.String("o")

	if size <= 0 {
		checkConfig(errInvalidWidth)
	}

	w := world.New()
	w.Init(seed)

	maxval := w.Hill.TotalMaxval()
	img := image.NewGray(image.Rect(0, 0, size, size))

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x := float64(px) - float64(size)/2
			z := float64(py) - float64(size)/2
			sample := w.Hill.Sample(x, z)

			v := (sample + maxval) / (2 * maxval)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.Set(px, py, color.Gray{Y: uint8(v * 255)})
		}
	}

	f, err := os.Create(out)
	checkResource(err)
	defer f.Close()

	checkResource(png.Encode(f, img))
	return nil
}
