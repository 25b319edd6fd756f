// Package dedup provides fast, fixed-hash sets for the BFS visited set and
// the final monolith dedup set. Coordinate pairs and monolith identities
// are packed into a byte key and hashed once with xxhash rather than
// relying on Go's built-in composite-key map hashing, which is tuned for
// general-purpose keys rather than this package's short, fixed-layout
// ones.
package dedup

import "github.com/cespare/xxhash/v2"

// CoordKey packs a BFS probe point into a single hashable uint64.
func CoordKey(x, z int32) uint64 {
	var buf [8]byte
	putInt32(buf[0:4], x)
	putInt32(buf[4:8], z)
	return xxhash.Sum64(buf[:])
}

// MonolithKey packs a monolith's dedup identity — (seed, centerX,
// centerZ) — into a single hashable uint64, per spec's equality rule.
func MonolithKey(seed uint64, centerX, centerZ int32) uint64 {
	var buf [16]byte
	putUint64(buf[0:8], seed)
	putInt32(buf[8:12], centerX)
	putInt32(buf[12:16], centerZ)
	return xxhash.Sum64(buf[:])
}

func putInt32(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// CoordSet is a fast, unordered set of (x, z) coordinate pairs.
type CoordSet struct {
	seen map[uint64]struct{}
}

// NewCoordSet returns an empty CoordSet sized for cap entries.
func NewCoordSet(cap int) *CoordSet {
	return &CoordSet{seen: make(map[uint64]struct{}, cap)}
}

// Contains reports whether (x, z) was already inserted.
func (s *CoordSet) Contains(x, z int32) bool {
	_, ok := s.seen[CoordKey(x, z)]
	return ok
}

// Insert adds (x, z), reporting whether it was newly inserted (false if it
// was already present).
func (s *CoordSet) Insert(x, z int32) bool {
	k := CoordKey(x, z)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

// Len returns the number of distinct coordinates inserted so far.
func (s *CoordSet) Len() int { return len(s.seen) }
