package sieve

// newCycle computes the four lap-relative slot offsets at which p's
// multiples p*1, p*3, p*7, p*9 fall within one lap of length p
// slots (10p in value terms).
func newCycle(p uint64) cycle {
	return cycle{
		j0: p / 10,
		j1: (3 * p) / 10,
		j2: (7 * p) / 10,
		j3: (9 * p) / 10,
	}
}

// newGroup returns the AND-masks for p's four residues, ordered to
// line up with newCycle's j0..j3. Which mask goes where depends only
// on p's own trailing digit, since multiplying by 1, 3, 7, 9 cycles
// the trailing digit through the same four-element group.
func newGroup(p uint64) group {
	switch p % 10 {
	case 1:
		return group{m0: residueMasks[0], m1: residueMasks[1], m2: residueMasks[2], m3: residueMasks[3]}
	case 3:
		return group{m0: residueMasks[1], m1: residueMasks[3], m2: residueMasks[0], m3: residueMasks[2]}
	case 7:
		return group{m0: residueMasks[2], m1: residueMasks[0], m2: residueMasks[3], m3: residueMasks[1]}
	case 9:
		return group{m0: residueMasks[3], m1: residueMasks[2], m2: residueMasks[1], m3: residueMasks[0]}
	default:
		panic("sieve: newGroup called with a non-residue prime")
	}
}

// appendPrime records a newly discovered prime along with its cycle,
// group, and fresh resumption state, and returns its index.
func (ctx *Context) appendPrime(p uint64) int {
	ctx.primes = append(ctx.primes, p)
	ctx.cycles = append(ctx.cycles, newCycle(p))
	ctx.groups = append(ctx.groups, newGroup(p))
	// (0, phase 1) means "skip the first lap's own-residue clear": a
	// prime's first lap at slot 0 always lands on the prime itself,
	// never on a composite, so phase 0 must never run there.
	ctx.resume = append(ctx.resume, resumeState{last: 0, phase: 1})
	return len(ctx.primes) - 1
}
