package sieve

// warmup grows the primes list up to the point where every prime
// needed to finish the sieve is known, sieving block 1 (or a partial
// first block, for tiny tables) as it goes since that's the only way
// to expose primes beyond the wheel's own reach. The warmup region
// grows one block at a time whenever a prime lies beyond it or the
// next extraction would read past it. It returns the index
// of the last prime it used, the slot-count cursor for the next
// block boundary (not yet advanced past the final warmup block), and
// the size of that final warmup block.
func (ctx *Context) warmup(startIdx int) (lastIdx int, blockCounter uint64, minSize uint64) {
	blockSize := ctx.cfg.BlockSize
	minSize = blockSize
	if blockSize > ctx.slots {
		minSize = ctx.slots
	}
	blockCounter = blockSize

	curr := startIdx
	for curr < len(ctx.primes) && ctx.primes[curr] <= ctx.extractLimit {
		if ctx.primes[curr] > blockCounter {
			curr = startIdx
			blockCounter += blockSize
			minSize = blockCounter
		}
		ctx.removeCompositesSerial(curr, minSize)
		curr++
		if len(ctx.primes)-curr == 0 {
			// The extractor walks up to p*p's slot; grow the warmup
			// region first so it never decodes slots not yet sieved.
			if p := ctx.primes[curr-1]; p*p/10 > minSize && minSize < ctx.slots-1 {
				curr = startIdx
				blockCounter += blockSize
				minSize = blockCounter
				continue
			}
			ctx.extractPrimes(curr - 1)
		}
	}

	return curr - 1, blockCounter, minSize
}

// sieveSerial finishes the sieve on the current goroutine: it runs
// warmup, then sweeps forward one block at a time with every prime
// from startIdx through the last prime warmup discovered, finally
// carrying every prime from where it stopped through the table's last
// slot, which covers the partial block after the last full one.
func (ctx *Context) sieveSerial(startIdx int) {
	lastIdx, blockCounter, _ := ctx.warmup(startIdx)
	blockSize := ctx.cfg.BlockSize
	blockCounter += blockSize

	for blockNum := blockCounter / blockSize; blockNum*blockSize < ctx.slots; blockNum++ {
		thisBlock := blockNum * blockSize
		for i := startIdx; i <= lastIdx; i++ {
			ctx.removeCompositesSerial(i, thisBlock)
		}
		ctx.reportProgress(int(blockSize))
	}

	last := ctx.slots - 1
	for i := startIdx; i <= lastIdx; i++ {
		ctx.removeCompositesSerial(i, last)
	}

	ctx.lastPrimeIndex = lastIdx
}

// removeCompositesSerial clears prime idx's multiples from its
// resumption point through stopSlot (inclusive), then advances the
// resumption point and phase so the next call for this prime picks up
// exactly where this one left off. stopSlot must be a valid table
// index; callers never pass ctx.slots itself.
func (ctx *Context) removeCompositesSerial(idx int, stopSlot uint64) {
	if stopSlot >= ctx.slots {
		stopSlot = ctx.slots - 1
	}

	p := ctx.primes[idx]
	c := &ctx.cycles[idx]
	g := &ctx.groups[idx]
	r := &ctx.resume[idx]
	t := ctx.table

	start := int64(r.last)
	stop := int64(stopSlot) - int64(p)
	i := start

	if start <= stop {
		switch r.phase {
		case 0:
			t.clear(uint64(start)+c.j0, g.m0)
			t.clear(uint64(start)+c.j1, g.m1)
			t.clear(uint64(start)+c.j2, g.m2)
			t.clear(uint64(start)+c.j3, g.m3)
		case 1:
			t.clear(uint64(start)+c.j1, g.m1)
			t.clear(uint64(start)+c.j2, g.m2)
			t.clear(uint64(start)+c.j3, g.m3)
		case 2:
			t.clear(uint64(start)+c.j2, g.m2)
			t.clear(uint64(start)+c.j3, g.m3)
		case 3:
			t.clear(uint64(start)+c.j3, g.m3)
		default:
			panic("sieve: resume phase out of range")
		}

		start += int64(p)
		for i = start; i <= stop; i += int64(p) {
			t.clear(uint64(i)+c.j0, g.m0)
			t.clear(uint64(i)+c.j1, g.m1)
			t.clear(uint64(i)+c.j2, g.m2)
			t.clear(uint64(i)+c.j3, g.m3)
		}

		r.last = uint64(i)
		r.phase = 0
	}

	if uint64(i)+c.j0 <= stopSlot {
		t.clear(uint64(i)+c.j0, g.m0)
		r.phase = 1
		if uint64(i)+c.j1 <= stopSlot {
			t.clear(uint64(i)+c.j1, g.m1)
			r.phase = 2
			if uint64(i)+c.j2 <= stopSlot {
				t.clear(uint64(i)+c.j2, g.m2)
				r.phase = 3
				if uint64(i)+c.j3 <= stopSlot {
					t.clear(uint64(i)+c.j3, g.m3)
					r.phase = 0
				}
			}
		}
	}
}

// reportProgress invokes cfg.Progress if one was configured.
func (ctx *Context) reportProgress(delta int) {
	if ctx.cfg.Progress != nil {
		ctx.cfg.Progress(delta)
	}
}
