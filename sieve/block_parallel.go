package sieve

import (
	"sync"
	"sync/atomic"
)

// sieveParallel finishes the sieve across cfg.Workers goroutines. It
// runs the same warmup pass sieveSerial does (warmup's own block is
// never large enough to be worth parallelizing), then statically
// partitions every block beyond it across the workers: worker t
// handles blocks at blockCounter+(t+k*Workers)*BlockSize for
// k = 0, 1, 2, .... Each worker writes only to the byte ranges its
// own blocks cover, so no lock or channel is needed to keep the
// writes disjoint; a WaitGroup is enough to know when every worker
// has finished, and an atomic counter tracks progress without
// affecting correctness.
func (ctx *Context) sieveParallel(startIdx int) {
	lastIdx, blockCounter, _ := ctx.warmup(startIdx)
	blockSize := ctx.cfg.BlockSize
	workers := ctx.cfg.Workers

	totalBlocks := int64(ctx.slots/blockSize) - int64(blockCounter/blockSize) + 1
	blockCounter += blockSize

	numWorkers := workers
	explicitTail := false
	if totalBlocks <= int64(workers) {
		numWorkers = int(totalBlocks)
		explicitTail = true
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var done int64
	var wg sync.WaitGroup
	for t := 0; t < numWorkers; t++ {
		firstStop := blockCounter + uint64(t)*blockSize
		if explicitTail && t == numWorkers-1 {
			firstStop = ctx.slots
		}

		wg.Add(1)
		go func(firstStop uint64) {
			defer wg.Done()
			ctx.parallelWorker(startIdx, lastIdx, firstStop, blockSize, workers, &done)
		}(firstStop)
	}
	wg.Wait()

	ctx.lastPrimeIndex = lastIdx
}

// parallelWorker sieves every block this worker owns: firstStop, then
// firstStop+stride, firstStop+2*stride, and so on through the end of
// the table, where stride = blockSize*workers. If the table's length
// isn't a clean multiple of the stride, whichever worker's last block
// falls short of the table's end also covers the final partial block.
func (ctx *Context) parallelWorker(loIdx, hiIdx int, firstStop, blockSize uint64, workers int, done *int64) {
	stride := blockSize * uint64(workers)
	var j uint64
	for j = firstStop; j <= ctx.slots; j += stride {
		for idx := loIdx; idx <= hiIdx; idx++ {
			ctx.removeCompositesParallel(idx, j, blockSize)
		}
		atomic.AddInt64(done, 1)
		ctx.reportProgress(int(blockSize))
	}

	lastBlock := j - stride
	if ctx.slots > lastBlock && ctx.slots-lastBlock <= blockSize {
		last := ctx.slots - 1
		for idx := loIdx; idx <= hiIdx; idx++ {
			ctx.removeCompositesParallel(idx, last, blockSize)
		}
		atomic.AddInt64(done, 1)
		ctx.reportProgress(int(ctx.slots - lastBlock))
	}
}

// removeCompositesParallel clears prime idx's multiples across the
// block (stopSlot-blockSize, stopSlot]. Unlike the serial sweep, it
// never consults or updates resume state: each worker recomputes
// where its block's first lap-aligned slot falls (prevStop) from
// scratch, since blocks are visited out of order across goroutines
// and no shared cursor would be safe to read without synchronization.
func (ctx *Context) removeCompositesParallel(idx int, stopSlot, blockSize uint64) {
	if stopSlot >= ctx.slots {
		stopSlot = ctx.slots - 1
	}

	p := ctx.primes[idx]
	c := &ctx.cycles[idx]
	g := &ctx.groups[idx]
	t := ctx.table

	start := int64(stopSlot) - int64(blockSize)
	pp := int64(p)
	prevStop := start + (pp - start%pp) - pp

	if p < blockSize {
		i := prevStop

		if prevStop+int64(c.j3) > start {
			t.clear(uint64(prevStop)+c.j3, g.m3)
			if prevStop+int64(c.j2) > start {
				t.clear(uint64(prevStop)+c.j2, g.m2)
				if prevStop+int64(c.j1) > start {
					t.clear(uint64(prevStop)+c.j1, g.m1)
					if prevStop+int64(c.j0) > start {
						t.clear(uint64(prevStop)+c.j0, g.m0)
					}
				}
			}
		}

		stop := int64(stopSlot) - pp
		for i = prevStop + pp; i <= stop; i += pp {
			t.clear(uint64(i)+c.j0, g.m0)
			t.clear(uint64(i)+c.j1, g.m1)
			t.clear(uint64(i)+c.j2, g.m2)
			t.clear(uint64(i)+c.j3, g.m3)
		}

		if uint64(i)+c.j0 <= stopSlot {
			t.clear(uint64(i)+c.j0, g.m0)
			if uint64(i)+c.j1 <= stopSlot {
				t.clear(uint64(i)+c.j1, g.m1)
				if uint64(i)+c.j2 <= stopSlot {
					t.clear(uint64(i)+c.j2, g.m2)
					if uint64(i)+c.j3 <= stopSlot {
						t.clear(uint64(i)+c.j3, g.m3)
					}
				}
			}
		}
		return
	}

	// p spans more than one block: at most one multiple of each
	// residue can fall inside (start, stopSlot], either late in the lap
	// at prevStop or early in the lap that follows it.
	if prevStop+int64(c.j0) > start && uint64(prevStop)+c.j0 <= stopSlot {
		t.clear(uint64(prevStop)+c.j0, g.m0)
	}
	if prevStop+int64(c.j1) > start && uint64(prevStop)+c.j1 <= stopSlot {
		t.clear(uint64(prevStop)+c.j1, g.m1)
	}
	if prevStop+int64(c.j2) > start && uint64(prevStop)+c.j2 <= stopSlot {
		t.clear(uint64(prevStop)+c.j2, g.m2)
	}
	if prevStop+int64(c.j3) > start && uint64(prevStop)+c.j3 <= stopSlot {
		t.clear(uint64(prevStop)+c.j3, g.m3)
	}

	next := uint64(prevStop + pp)
	if next+c.j0 <= stopSlot {
		t.clear(next+c.j0, g.m0)
		if next+c.j1 <= stopSlot {
			t.clear(next+c.j1, g.m1)
			if next+c.j2 <= stopSlot {
				t.clear(next+c.j2, g.m2)
				if next+c.j3 <= stopSlot {
					t.clear(next+c.j3, g.m3)
				}
			}
		}
	}
}
