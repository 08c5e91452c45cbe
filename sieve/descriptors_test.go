package sieve

import "testing"

func TestNewCycle(t *testing.T) {
	c := newCycle(11)
	want := cycle{j0: 1, j1: 3, j2: 7, j3: 9}
	if c != want {
		t.Fatalf("newCycle(11) = %+v, want %+v", c, want)
	}
}

func TestNewGroupOrdering(t *testing.T) {
	// For a prime ending in each of 1, 3, 7, 9, the group's four
	// masks must decode (in cycle order) to clearing that same four
	// residues, just permuted to match multiplication by 1, 3, 7, 9.
	for _, p := range []uint64{11, 13, 17, 19} {
		g := newGroup(p)
		masks := []byte{g.m0, g.m1, g.m2, g.m3}
		seen := map[byte]bool{}
		for _, m := range masks {
			seen[m] = true
		}
		if len(seen) != 4 {
			t.Fatalf("newGroup(%d) did not produce four distinct masks: %+v", p, g)
		}
		for _, m := range residueMasks {
			if !seen[m] {
				t.Fatalf("newGroup(%d) is missing mask %08b", p, m)
			}
		}
	}
}

func TestNewGroupPanicsOnNonResiduePrime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a prime not ending in 1, 3, 7, or 9")
		}
	}()
	newGroup(2)
}

func TestAppendPrime(t *testing.T) {
	ctx := &Context{}
	idx := ctx.appendPrime(11)
	if idx != 0 {
		t.Fatalf("appendPrime returned index %d, want 0", idx)
	}
	if ctx.primes[0] != 11 {
		t.Fatalf("primes[0] = %d, want 11", ctx.primes[0])
	}
	if ctx.resume[0] != (resumeState{last: 0, phase: 1}) {
		t.Fatalf("resume[0] = %+v, want {0 1}", ctx.resume[0])
	}
}
