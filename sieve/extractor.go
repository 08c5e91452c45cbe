package sieve

// squareOff clears the slot holding p*p, the smallest multiple of p
// with no smaller prime factor. Nothing else has struck it yet, so
// without this it would be mistaken for a newly discovered prime the
// next time the table is walked.
func (ctx *Context) squareOff(p uint64) uint64 {
	sq := p * p
	slot := sq / 10
	ctx.table.clear(slot, residueMask(sq%10))
	return slot
}

// extractPrimes squares off primes[refIdx] and, unless the run
// already has enough primes to cover the sieve's own bound, walks the
// table forward from the cursor through the resulting slot, appending
// every candidate it finds along the way.
func (ctx *Context) extractPrimes(refIdx int) {
	upTo := ctx.squareOff(ctx.primes[refIdx])
	if len(ctx.primes) > 0 && ctx.primes[len(ctx.primes)-1] >= ctx.extractLimit {
		return
	}
	ctx.extractUpTo(upTo)
}

// extractUpTo decodes table slots from the cursor through upTo
// (inclusive), in order, turning each set bit into a discovered
// prime. A slot is always decoded in full before the stopping
// condition is checked, so a slot never contributes a partial set of
// primes across two calls.
func (ctx *Context) extractUpTo(upTo uint64) {
	t := ctx.table
	for ctx.cursor <= upTo {
		i := ctx.cursor
		b := t[i]
		if b != 0 {
			base := i * 10
			for bit := 0; bit < 4; bit++ {
				if b&(1<<uint(bit)) != 0 {
					ctx.appendPrime(base + residues[bit])
				}
			}
		}
		ctx.cursor++
		if len(ctx.primes) > 0 && ctx.primes[len(ctx.primes)-1] >= ctx.extractLimit {
			return
		}
	}
}
