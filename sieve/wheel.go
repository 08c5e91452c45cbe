package sieve

// rollWheel folds primes[startIdx:] into the table's repeating
// pattern, one prime per wheel depth, doubling the table's seeded
// prefix out to each successive wheel size up to depth. It returns
// the index of the last prime it used, which is where block sieving
// should resume.
//
// Depth 1 uses primes[startIdx] (the table already carries 3's
// pattern from bootstrap); each deeper level folds in the next prime
// in sequence and retiles the larger prefix across the gap to the
// following wheel size, finishing by tiling out to the full table.
func (ctx *Context) rollWheel(depth int, startIdx int) int {
	currIdx := startIdx
	nextWheel := wheelSlotSizes[1]

	for i := 1; i < depth; i++ {
		currWheel := wheelSlotSizes[i]
		nextWheel = wheelSlotSizes[i+1]
		ctx.wheelRemove(ctx.primes[currIdx], currWheel)
		ctx.tile(currWheel, nextWheel)
		currIdx++
	}

	ctx.wheelRemove(ctx.primes[currIdx], nextWheel)
	ctx.tile(nextWheel, ctx.slots)
	return currIdx
}

// wheelRemove clears p's multiples ending in 1, 3, 7, 9 across the
// single lap [0, size), including p's own residue at i=0: size is
// always a multiple of p here, so tiling the result forward replicates
// that bit into further, genuine multiples of p (e.g. p=11 rolled
// across 231 slots leaves slot 232 representing 2321 = 11*211), and
// leaving it set would mark those composites as candidates forever.
// It never touches resume state: wheel rolling always starts a prime
// fresh at lap 0.
func (ctx *Context) wheelRemove(p uint64, size uint64) {
	c := newCycle(p)
	g := newGroup(p)
	t := ctx.table

	stop := int64(size) - int64(p)
	i := int64(0)

	if 0 <= stop {
		t.clear(c.j0, g.m0)
		t.clear(c.j1, g.m1)
		t.clear(c.j2, g.m2)
		t.clear(c.j3, g.m3)

		for i = int64(p); i <= stop; i += int64(p) {
			t.clear(uint64(i)+c.j0, g.m0)
			t.clear(uint64(i)+c.j1, g.m1)
			t.clear(uint64(i)+c.j2, g.m2)
			t.clear(uint64(i)+c.j3, g.m3)
		}
	}

	if uint64(i)+c.j0 <= size-1 {
		t.clear(uint64(i)+c.j0, g.m0)
		if uint64(i)+c.j1 <= size-1 {
			t.clear(uint64(i)+c.j1, g.m1)
			if uint64(i)+c.j2 <= size-1 {
				t.clear(uint64(i)+c.j2, g.m2)
				if uint64(i)+c.j3 <= size-1 {
					t.clear(uint64(i)+c.j3, g.m3)
				}
			}
		}
	}
}
