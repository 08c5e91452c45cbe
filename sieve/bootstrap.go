package sieve

// bootstrap seeds the residue table with the 2-3-5-7 literal primes
// and 3's removal pattern. It is the only code that writes table
// bytes directly rather than through clear/tile.
func (ctx *Context) bootstrap() {
	ctx.primes = append(ctx.primes, 2, 3, 5, 7)
	ctx.cycles = append(ctx.cycles, cycle{}, cycle{}, cycle{}, cycle{})
	ctx.groups = append(ctx.groups, group{}, group{}, group{}, group{})
	ctx.resume = append(ctx.resume, resumeState{}, resumeState{}, resumeState{}, resumeState{})

	t := ctx.table
	// Three decades (values 0-9, 10-19, 20-29) with 3's multiples
	// cleared: 3/9 removed from slot 0, nothing from slot 1 (15 has no
	// bit), 21/27 removed from slot 2.
	t[0] = 5
	t[1] = 15
	t[2] = 10

	ctx.tile(3, 21)

	// 3 and 7 are already in the literal prime list, so slot 0 keeps
	// only bit 0 (value 1, never a prime): tiling copies it to
	// 210k+1, and slot 0 itself is never decoded (the cursor starts
	// at 1). The slot collapses to the literal value 1.
	t[0] = 1

	// If the table is 22 or 23 slots (N just over 210), finish the
	// 3-slot pattern for the one or two leftover slots. Anything
	// beyond slot 23 is retiled from scratch once the wheel rolls, so
	// there is no reason to tile further here.
	tail := ctx.slots
	if tail > 23 {
		tail = 23
	}
	ctx.tile(21, tail)
}

// tile extends the residue pattern already present in table[0:from)
// out to table[0:to) by copying byte-for-byte from the start. Because
// the copy destination and source advance together, bytes written
// earlier in the same call become valid sources for later ones,
// which makes this a correct period-`from` repeat without an
// explicit modulus.
func (ctx *Context) tile(from, to uint64) {
	t := ctx.table
	src := uint64(0)
	for dst := from; dst < to; dst++ {
		t[dst] = t[src]
		src++
	}
}
