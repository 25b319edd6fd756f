package world

// MonolithsRepeat is the coordinate period of the larger (depth) fractal:
// 256 * 2^(depthOctaves-1).
const MonolithsRepeat int64 = 256 * (int64(1) << uint(depthOctaves-1))

// FindOptions bounds and configures a monolith sweep.
type FindOptions struct {
	MinX, MaxX, MinZ, MaxZ int64
	// Step is the probe spacing on the search grid, in blocks.
	Step int
	// Limit, if non-zero, stops a small-area single-threaded sweep once
	// this many monoliths have been found. Ignored by the parallel path.
	Limit uint64
	// Threaded requests the parallel sweep regardless of area size.
	Threaded bool
}

// Around bounds the sweep to the square reaching radius blocks from
// (x, z) along each axis.
func (o FindOptions) Around(x, z, radius int64) FindOptions {
	o.MinX, o.MaxX = x-radius, x+radius
	o.MinZ, o.MaxZ = z-radius, z+radius
	return o
}

// Spawn bounds the sweep to a square of the given radius around the
// origin.
func (o FindOptions) Spawn(radius int64) FindOptions {
	return o.Around(0, 0, radius)
}

// Inbounds bounds the sweep to every coordinate before the Far Lands.
func (o FindOptions) Inbounds() FindOptions {
	o.MinX, o.MaxX = -FARLANDS, FARLANDS
	o.MinZ, o.MaxZ = -FARLANDS, FARLANDS
	return o
}

// Wraps bounds the sweep to one full noise period of the depth fractal.
func (o FindOptions) Wraps() FindOptions {
	o.MinX, o.MaxX = 0, MonolithsRepeat
	o.MinZ, o.MaxZ = 0, MonolithsRepeat
	return o
}
