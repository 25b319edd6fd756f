package main

import (
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli"
)

func TestRunPerlinWritesValidPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	set := flag.NewFlagSet("perlin", 0)
	set.Uint64("s", 617, "")
	set.Int("w", 32, "")
	set.String("o", out, "")
	set.Parse([]string{"-s", "617", "-w", "32", "-o", out})

	ctx := cli.NewContext(cli.NewApp(), set, nil)
	if err := runPerlin(ctx); err != nil {
		t.Fatalf("runPerlin: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("unexpected image size: %v", b)
	}
}
