package perlin

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/monolithium/monolithium/rng"
)

// hillThreshold and depthThreshold are the hard-coded monolith crossing
// points: a world is "hill monolith" terrain where the 10-octave hill
// fractal dips below hillThreshold, and "depth monolith" terrain where the
// 16-octave depth fractal's magnitude exceeds depthThreshold.
const (
	hillThreshold  = -512.0
	depthThreshold = 8000.0
)

// Fractal is a sum of N Perlin octaves, each scaled by 2^i in both input
// and output. N is carried as a field rather than a type parameter: the
// teacher codebase this module is grounded on never reaches for generics,
// and a runtime octave count keeps Fractal usable for both the 10-octave
// "hill" and 16-octave "depth" fields without duplicating the type.
type Fractal struct {
	noise []Noise
}

// NewFractal allocates a Fractal with the given number of octaves.
func NewFractal(octaves int) *Fractal {
	return &Fractal{noise: make([]Noise, octaves)}
}

// Octaves returns the number of octaves this fractal was built with.
func (f *Fractal) Octaves() int { return len(f.noise) }

// Init seeds every octave from rng, in order, octave 0 first.
func (f *Fractal) Init(r *rng.LCG) {
	for i := range f.noise {
		f.noise[i].Init(r)
	}
}

// OctaveScale returns 2^i, the scale factor applied to octave i's input
// and output.
func (f *Fractal) OctaveScale(i int) float64 {
	return float64(int64(1) << uint(i))
}

// Repeats returns the coordinate period of the fractal: 256 * 2^(N-1).
func (f *Fractal) Repeats() int64 {
	return 256 * (int64(1) << uint(len(f.noise)-1))
}

// Maxval returns 2^N, the fractal's maximum possible magnitude bound.
func (f *Fractal) Maxval() float64 {
	return float64(int64(1) << uint(len(f.noise)))
}

// TotalMaxval sums the per-octave maxima (each octave's own output is
// bounded by roughly its scale), an overshoot bound used by heuristics
// that want a safety margin larger than Maxval alone.
func (f *Fractal) TotalMaxval() float64 {
	sum := 0.0
	for i := 0; i <= len(f.noise); i++ {
		sum += f.OctaveScale(i)
	}
	return sum
}

// Fingerprint returns an xxhash digest of every octave's permutation table,
// a cheap way to distinguish two Fractals without comparing floats.
func (f *Fractal) Fingerprint() uint64 {
	h := xxhash.New()
	for i := range f.noise {
		perm := f.noise[i].PermBytes()
		h.Write(perm[:])
	}
	return h.Sum64()
}

// Sample sums every octave's contribution at (x, z), with y implicitly 0.
func (f *Fractal) Sample(x, z float64) float64 {
	var sum float64
	for i := range f.noise {
		s := f.OctaveScale(i)
		sum += f.noise[i].Sample(x/s, 0, z/s) * s
	}
	return sum
}

// IsHillMonolith reports whether (x, z) is hill-monolith terrain, using
// the early-exit bound: once the partial sum (minus the tail's maximum
// possible positive contribution) cannot still cross hillThreshold, the
// remaining octaves are skipped.
func (f *Fractal) IsHillMonolith(x, z int64) bool {
	X := float64(x / 4)
	Z := float64(z / 4)

	var sum float64
	for i := len(f.noise) - 1; i >= 0; i-- {
		s := f.OctaveScale(i)
		sum += f.noise[i].Sample(X/s, 0, Z/s) * s
		if sum-0.5*s > hillThreshold {
			return false
		}
	}
	return sum < hillThreshold
}

// IsDepthMonolith reports whether (x, z) is depth-monolith terrain, using
// the analogous early-exit bound for the |sum| > depthThreshold test.
func (f *Fractal) IsDepthMonolith(x, z int64) bool {
	X := float64(x/4) * 100.0
	Z := float64(z/4) * 100.0

	var sum float64
	for i := len(f.noise) - 1; i >= 0; i-- {
		s := f.OctaveScale(i)
		sum += f.noise[i].Sample(X/s, 0, Z/s) * s
		if math.Abs(sum)+0.5*s < depthThreshold {
			return false
		}
	}
	return math.Abs(sum) > depthThreshold
}
