package sieve

// Primes returns every prime in [2, N], in ascending order. For large
// N, prefer Emit to avoid materializing the full list.
func (ctx *Context) Primes() []uint64 {
	var out []uint64
	_ = ctx.Emit(func(p uint64) error {
		out = append(out, p)
		return nil
	})
	return out
}

// Emit calls w once per prime in [2, N], in ascending order, stopping
// immediately if w returns an error (which Emit then returns).
//
// The already-extracted prefix (primes found during bootstrap, wheel
// rolling, and warmup) is walked directly; anything beyond it is
// decoded from the residue table. Every slot but the last is emitted
// in full with no bound check, since block sieving guarantees
// everything through slot-1 of the final slot is under N by
// construction. The final slot is checked residue by residue, in
// ascending order, stopping at the first value over N since every
// later residue in that slot is larger still.
func (ctx *Context) Emit(w func(uint64) error) error {
	n := ctx.cfg.N

	if len(ctx.primes) > 0 && n <= ctx.primes[len(ctx.primes)-1] {
		for _, p := range ctx.primes {
			if p > n {
				break
			}
			if err := w(p); err != nil {
				return err
			}
		}
		return nil
	}

	for _, p := range ctx.primes {
		if err := w(p); err != nil {
			return err
		}
	}

	stop := ctx.slots
	if n/10 < ctx.slots {
		stop = n/10 + 1
	}

	t := ctx.table
	for i := ctx.cursor; i < stop-1; i++ {
		b := t[i]
		if b == 0 {
			continue
		}
		base := i * 10
		for bit := 0; bit < 4; bit++ {
			if b&(1<<uint(bit)) == 0 {
				continue
			}
			if err := w(base + residues[bit]); err != nil {
				return err
			}
		}
	}

	last := stop - 1
	b := t[last]
	base := last * 10
	for bit := 0; bit < 4; bit++ {
		if b&(1<<uint(bit)) == 0 {
			continue
		}
		v := base + residues[bit]
		if v > n {
			break
		}
		if err := w(v); err != nil {
			return err
		}
	}
	return nil
}
