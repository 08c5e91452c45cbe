package sieve

import (
	"errors"
	"testing"
)

func TestEmitStopsOnCallbackError(t *testing.T) {
	ctx, err := Run(Config{N: 100, WheelDepth: 1, BlockSize: DefaultBlockSize, Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sentinel := errors.New("stop here")
	var seen []uint64
	err = ctx.Emit(func(p uint64) error {
		seen = append(seen, p)
		if len(seen) == 3 {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("Emit returned %v, want the sentinel error", err)
	}
	if len(seen) != 3 {
		t.Fatalf("Emit called w %d times, want exactly 3", len(seen))
	}
}

func TestEmitOrderIsAscending(t *testing.T) {
	ctx, err := Run(Config{N: 100000, WheelDepth: 3, BlockSize: 512, Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var prev uint64
	err = ctx.Emit(func(p uint64) error {
		if p <= prev {
			t.Fatalf("primes out of order: %d then %d", prev, p)
		}
		prev = p
		return nil
	})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
}
