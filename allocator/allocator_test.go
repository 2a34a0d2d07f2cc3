package allocator

import "testing"

// TestInitValidation exercises Init's config-rejection paths.
func TestInitValidation(t *testing.T) {
	t.Run("count too low", func(t *testing.T) {
		var a Allocator
		if a.Init([]uint64{32, 64}, 0) {
			t.Fatal("expected Init to fail for count=0")
		}
	})

	t.Run("count too high", func(t *testing.T) {
		var a Allocator
		if a.Init([]uint64{32, 64, 256, 1024, 2048, 4096}, 6) {
			t.Fatal("expected Init to fail for count > MaxPools")
		}
	})

	t.Run("size exceeds partition", func(t *testing.T) {
		var a Allocator
		// partition = 65536/5 = 13107; 14000 > 13107
		if a.Init([]uint64{32, 64, 256, 1024, 14000}, 5) {
			t.Fatal("expected Init to fail when a size exceeds its partition")
		}
	})

	t.Run("valid config succeeds", func(t *testing.T) {
		var a Allocator
		if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
			t.Fatal("expected Init to succeed")
		}
	})

	t.Run("size zero rejected", func(t *testing.T) {
		var a Allocator
		if a.Init([]uint64{0, 64}, 2) {
			t.Fatal("expected Init to fail for a zero block size")
		}
	})

	t.Run("size narrower than link rejected", func(t *testing.T) {
		var a Allocator
		if a.Init([]uint64{4, 64}, 2) {
			t.Fatal("expected Init to fail for a block size narrower than the free-list link")
		}
	})
}

// TestAllocateBoundaries exercises requested sizes at and around the
// edges of what the configured pools can serve.
func TestAllocateBoundaries(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}

	t.Run("zero-size request fails", func(t *testing.T) {
		if _, ok := a.Allocate(0); ok {
			t.Fatal("expected Allocate(0) to fail")
		}
	})

	t.Run("largest block size succeeds while capacity remains", func(t *testing.T) {
		if _, ok := a.Allocate(1024); !ok {
			t.Fatal("expected Allocate(1024) to succeed")
		}
	})

	t.Run("request larger than the largest pool fails", func(t *testing.T) {
		if _, ok := a.Allocate(1025); ok {
			t.Fatal("expected Allocate(1025) to fail: no pool is that large")
		}
	})
}

// TestFallbackOverflow: requests that fit the 256-byte pool overflow
// into the 1024-byte pool once the smaller pool is exhausted.
func TestFallbackOverflow(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	// partition = 65536/4 = 16384; 256-byte pool max = 16384/256 = 64.
	var last uint64
	var ok bool
	for i := 0; i < 65; i++ {
		last, ok = a.Allocate(240)
		if !ok {
			t.Fatalf("allocation %d unexpectedly failed", i)
		}
	}
	stats := a.Stats()
	pool1024 := stats[3]
	if last < pool1024.Start || last >= pool1024.End {
		t.Fatalf("expected the 65th allocation to land in the 1024-byte pool [%d,%d), got %d", pool1024.Start, pool1024.End, last)
	}
}

// TestReleaseNull: releasing NullPtr is a no-op.
func TestReleaseNull(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	before := a.Stats()
	a.Release(NullPtr)
	after := a.Stats()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pool %d state changed after releasing NullPtr: %+v -> %+v", i, before[i], after[i])
		}
	}
}

// TestLIFOReuse: the most recently freed block is the next one handed
// out.
func TestLIFOReuse(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	p1, _ := a.Allocate(56)
	p2, _ := a.Allocate(56)
	a.Release(p1)
	p3, _ := a.Allocate(56)
	if p3 != p1 {
		t.Fatalf("expected LIFO reuse: p3 (%d) should equal p1 (%d); p2 was %d", p3, p1, p2)
	}
}

// TestRefillAfterSingleFree: freeing one 64-byte block does not create
// capacity in the unrelated 1024-byte pool.
func TestRefillAfterSingleFree(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}

	var q uint64
	for i := 0; i < 12; i++ {
		q, _ = a.Allocate(63)
	}
	a.Release(q)

	successes := 0
	for i := 0; i < 18; i++ {
		if _, ok := a.Allocate(1023); ok {
			successes++
		}
	}
	if successes != 16 {
		t.Fatalf("expected exactly 16 successful 1024-byte allocations (pool max), got %d", successes)
	}
}

// TestForeignPointer: releasing an address outside the backing region
// is a no-op.
func TestForeignPointer(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	before := a.Stats()
	a.Release(HeapSize + 100)
	after := a.Stats()
	for i := range before {
		if before[i].FreeListLen != after[i].FreeListLen {
			t.Fatalf("pool %d free list changed after a foreign-pointer release", i)
		}
	}
}

// TestPoolOrderNotSortedBySize confirms descriptor order follows
// caller order, not size order.
func TestPoolOrderNotSortedBySize(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{1024, 32}, 2) {
		t.Fatal("init failed")
	}
	stats := a.Stats()
	if stats[0].BlockSize != 1024 || stats[1].BlockSize != 32 {
		t.Fatalf("expected pools in caller-supplied order [1024, 32], got [%d, %d]", stats[0].BlockSize, stats[1].BlockSize)
	}
}

// TestUninitializedIsSafe: operations before a successful Init must
// not crash and must report failure / no-op.
func TestUninitializedIsSafe(t *testing.T) {
	var a Allocator
	if _, ok := a.Allocate(32); ok {
		t.Fatal("expected Allocate to fail before Init")
	}
	a.Release(0) // must not panic
}

// TestAllocateAlignment: every returned address is aligned to its
// owning pool's block size and within that pool's range.
func TestAllocateAlignment(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	stats := a.Stats()
	for i := 0; i < 50; i++ {
		addr, ok := a.Allocate(50)
		if !ok {
			t.Fatalf("allocation %d failed", i)
		}
		var owner *PoolStats
		for j := range stats {
			if addr >= stats[j].Start && addr < stats[j].End {
				owner = &stats[j]
				break
			}
		}
		if owner == nil {
			t.Fatalf("address %d returned by Allocate owned by no pool", addr)
		}
		if (addr-owner.Start)%owner.BlockSize != 0 {
			t.Fatalf("address %d is not aligned to pool block size %d", addr, owner.BlockSize)
		}
	}
}

// TestDistinctLiveBlocksDisjoint: concurrently live blocks never
// overlap.
func TestDistinctLiveBlocksDisjoint(t *testing.T) {
	var a Allocator
	if !a.Init([]uint64{32, 64, 256, 1024}, 4) {
		t.Fatal("init failed")
	}
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		addr, ok := a.Allocate(32)
		if !ok {
			break
		}
		if seen[addr] {
			t.Fatalf("address %d handed out twice while still live", addr)
		}
		seen[addr] = true
	}
}

// TestSingletonForm exercises the package-level singleton alongside the
// value-type form.
func TestSingletonForm(t *testing.T) {
	if !Init([]uint64{16, 64}, 2) {
		t.Fatal("expected singleton Init to fail only on bad input")
	}
	addr, ok := Allocate(16)
	if !ok {
		t.Fatal("expected singleton Allocate to succeed")
	}
	Release(addr)
	stats := Stats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 pools from singleton Stats, got %d", len(stats))
	}
}
