package allocator

import "encoding/binary"

// PoolStats is a read-only snapshot of one pool's configuration and
// observability counters, for diagnostic printing and metrics export.
// It carries no mutable allocator state.
type PoolStats struct {
	Index        int
	BlockSize    uint64
	Start        uint64
	End          uint64
	Max          uint64
	Allocated    uint64
	FreeListLen  uint64
	Hits         uint64
	FallbackHits uint64
	Releases     uint64
}

// Stats returns a snapshot of every configured pool, in descriptor
// order. It is safe to call on an uninitialized allocator; it then
// returns an empty slice.
func (a *Allocator) Stats() []PoolStats {
	out := make([]PoolStats, a.count)
	for i := 0; i < a.count; i++ {
		p := &a.pools[i]
		out[i] = PoolStats{
			Index:        i,
			BlockSize:    p.blockSize,
			Start:        p.start,
			End:          p.end,
			Max:          p.max,
			Allocated:    p.allocated,
			FreeListLen:  a.freeListLen(p),
			Hits:         p.hits,
			FallbackHits: p.fallbackHits,
			Releases:     p.releases,
		}
	}
	return out
}

// freeListLen walks a single pool's free list. It is O(free list
// length), used only for diagnostics — never on the allocate/release
// hot path.
func (a *Allocator) freeListLen(p *pool) uint64 {
	var n uint64
	for addr := p.freeHead; addr != nullAddr; {
		n++
		addr = a.nextFree(addr)
	}
	return n
}

func (a *Allocator) nextFree(addr uint64) uint64 {
	return binary.LittleEndian.Uint64(a.heap[addr : addr+8])
}

// Misses returns the number of Allocate calls since the last Init for
// which no pool qualified.
func (a *Allocator) Misses() uint64 {
	return a.misses
}

// RejectedReleases returns the number of Release calls since the last
// Init that were no-ops (foreign pointer or NullPtr).
func (a *Allocator) RejectedReleases() uint64 {
	return a.rejectedReleases
}
