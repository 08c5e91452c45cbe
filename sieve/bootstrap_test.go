package sieve

import "testing"

func TestBootstrapPattern(t *testing.T) {
	ctx := &Context{slots: 21, table: make(Table, 21)}
	ctx.bootstrap()

	want := []byte{1, 15, 10, 5, 15, 10, 5, 15, 10, 5, 15, 10, 5, 15, 10, 5, 15, 10, 5, 15, 10}
	for i, w := range want {
		if ctx.table[i] != w {
			t.Fatalf("table[%d] = %d, want %d", i, ctx.table[i], w)
		}
	}

	if len(ctx.primes) != 4 || ctx.primes[0] != 2 || ctx.primes[1] != 3 || ctx.primes[2] != 5 || ctx.primes[3] != 7 {
		t.Fatalf("bootstrap primes = %v, want [2 3 5 7]", ctx.primes)
	}
}

func TestBootstrapTailForSmallTable(t *testing.T) {
	// 23 slots exercises the two-byte tail fill beyond the base 21.
	ctx := &Context{slots: 23, table: make(Table, 23)}
	ctx.bootstrap()

	if ctx.table[21] != ctx.table[0] {
		t.Fatalf("table[21] = %d, want it to mirror table[0] (%d)", ctx.table[21], ctx.table[0])
	}
	if ctx.table[22] != 15 {
		t.Fatalf("table[22] = %d, want 15", ctx.table[22])
	}
}

func TestTileIsPeriodic(t *testing.T) {
	ctx := &Context{slots: 9, table: make(Table, 9)}
	ctx.table[0], ctx.table[1], ctx.table[2] = 5, 15, 10
	ctx.tile(3, 9)
	want := []byte{5, 15, 10, 5, 15, 10, 5, 15, 10}
	for i, w := range want {
		if ctx.table[i] != w {
			t.Fatalf("table[%d] = %d, want %d", i, ctx.table[i], w)
		}
	}
}
