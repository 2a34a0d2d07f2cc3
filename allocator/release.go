package allocator

import "encoding/binary"

// NullPtr is the sentinel address meaning "no pointer" for Release, in
// place of a true nil since addresses here are uint64 offsets rather
// than process pointers.
const NullPtr = nullAddr

// Release returns the block at address p to its owning pool's free
// list. p == NullPtr is a no-op, as is any p that does not lie, at a
// block boundary, inside some pool's range (foreign or misaligned
// addresses). A no-op never corrupts any pool and is never reported as
// an error. Ownership is decided by range and alignment only: whether
// the block is currently live is not checked, so a double release is
// not detected.
func (a *Allocator) Release(p uint64) {
	if !a.initialized || p == NullPtr {
		a.logDebug("Release: rejected addr=%d initialized=%v", p, a.initialized)
		a.observeRejected()
		return
	}

	for i := 0; i < a.count; i++ {
		pl := &a.pools[i]
		if p < pl.start || p >= pl.end {
			continue
		}
		if (p-pl.start)%pl.blockSize != 0 {
			continue
		}

		binary.LittleEndian.PutUint64(a.heap[p:p+8], pl.freeHead)
		pl.freeHead = p
		pl.releases++
		a.logDebug("Release: returned addr=%d to pool %d (block_size=%d)", p, i, pl.blockSize)
		if a.recorder != nil {
			a.recorder.ObserveRelease(pl.blockSize)
		}
		return
	}

	a.logDebug("Release: addr=%d owned by no pool, ignored", p)
	a.observeRejected()
}

func (a *Allocator) observeRejected() {
	a.rejectedReleases++
	if a.recorder != nil {
		a.recorder.ObserveReleaseRejected()
	}
}
