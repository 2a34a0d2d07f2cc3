package allocator

import "encoding/binary"

// Allocate returns the offset of a block of at least n contiguous bytes
// taken from exactly one pool, and true. It returns (0, false) if the
// allocator has not been initialized, if n is zero, or if no pool can
// serve the request.
//
// Selection is best fit with fallback: among pools whose block_size >= n
// and which still have capacity (either below their high-water mark or
// with a non-empty free list), the pool with the smallest block_size
// wins; ties go to the lower descriptor index. A request that would fit
// a smaller, exhausted pool is transparently served by the next larger
// pool with capacity.
//
// Dispatch within the winning pool is O(1): pop the free-list head if
// non-empty, else bump the high-water mark. The free list is therefore
// LIFO. Returned bytes are never zeroed.
func (a *Allocator) Allocate(n uint64) (uint64, bool) {
	if !a.initialized || n == 0 {
		a.logDebug("Allocate: rejected n=%d initialized=%v", n, a.initialized)
		a.observeMiss()
		return 0, false
	}

	winner := -1
	theoreticalBest := uint64(0)
	haveTheoreticalBest := false

	for i := 0; i < a.count; i++ {
		p := &a.pools[i]
		if p.blockSize < n {
			continue
		}
		if !haveTheoreticalBest || p.blockSize < theoreticalBest {
			theoreticalBest = p.blockSize
			haveTheoreticalBest = true
		}
		if p.allocated >= p.max && p.freeHead == nullAddr {
			continue // full, not a candidate
		}
		if winner == -1 || p.blockSize < a.pools[winner].blockSize {
			winner = i
		}
	}

	if winner == -1 {
		a.logDebug("Allocate: no pool qualifies for n=%d", n)
		a.observeMiss()
		return 0, false
	}

	p := &a.pools[winner]
	fallback := p.blockSize > theoreticalBest

	var addr uint64
	if p.freeHead != nullAddr {
		addr = p.freeHead
		p.freeHead = binary.LittleEndian.Uint64(a.heap[addr : addr+8])
	} else {
		addr = p.start + p.allocated*p.blockSize
		p.allocated++
	}

	p.hits++
	if fallback {
		p.fallbackHits++
	}
	a.logDebug("Allocate: served n=%d from pool %d (block_size=%d) at addr=%d fallback=%v", n, winner, p.blockSize, addr, fallback)
	if a.recorder != nil {
		a.recorder.ObserveAllocate(p.blockSize, fallback)
	}

	return addr, true
}

func (a *Allocator) observeMiss() {
	a.misses++
	if a.recorder != nil {
		a.recorder.ObserveAllocateMiss()
	}
}
