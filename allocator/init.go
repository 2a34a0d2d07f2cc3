package allocator

// Init configures the pools from an ordered list of block sizes,
// discarding any prior configuration. It validates, in order:
//
//  1. count is in [1, MaxPools].
//  2. every sizes[i] is strictly positive and at least wide enough to
//     hold one free-list link (linkWidth bytes).
//  3. every sizes[i] fits within its equal share of the backing region
//     (HeapSize / count).
//
// Init reports false on any validation failure, and leaves the
// allocator unusable (Allocate fails, Release no-ops) until a
// subsequent successful call.
func (a *Allocator) Init(sizes []uint64, count int) bool {
	a.initialized = false

	if count < 1 || count > MaxPools {
		a.logError("Init: count %d out of range [1, %d]", count, MaxPools)
		return false
	}
	if len(sizes) < count {
		a.logError("Init: only %d sizes supplied for count %d", len(sizes), count)
		return false
	}

	for i := 0; i < count; i++ {
		if sizes[i] == 0 {
			a.logError("Init: sizes[%d] must be strictly positive", i)
			return false
		}
		if sizes[i] < linkWidth {
			a.logError("Init: sizes[%d]=%d is narrower than the free-list link (%d bytes)", i, sizes[i], linkWidth)
			return false
		}
	}

	partition := uint64(HeapSize) / uint64(count)
	for i := 0; i < count; i++ {
		if sizes[i] > partition {
			a.logError("Init: sizes[%d]=%d exceeds partition size %d", i, sizes[i], partition)
			return false
		}
	}

	// All validation passed; commit the partitioning.
	for i := 0; i < count; i++ {
		blockSize := sizes[i]
		max := partition / blockSize
		start := uint64(i) * partition
		a.pools[i] = pool{
			blockSize: blockSize,
			start:     start,
			end:       start + max*blockSize,
			max:       max,
			allocated: 0,
			freeHead:  nullAddr,
		}
		a.logInfo("Init: pool %d block_size=%d start=%d end=%d max=%d", i, blockSize, start, a.pools[i].end, max)
	}
	for i := count; i < MaxPools; i++ {
		a.pools[i] = pool{}
	}

	a.count = count
	a.misses = 0
	a.rejectedReleases = 0
	a.initialized = true
	return true
}

func (a *Allocator) logInfo(format string, v ...interface{}) {
	if a.log != nil {
		a.log.Info(format, v...)
	}
}

func (a *Allocator) logError(format string, v ...interface{}) {
	if a.log != nil {
		a.log.Error(format, v...)
	}
}

func (a *Allocator) logDebug(format string, v ...interface{}) {
	if a.log != nil {
		a.log.Debug(format, v...)
	}
}
