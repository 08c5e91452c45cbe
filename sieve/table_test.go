package sieve

import "testing"

func TestResidueMask(t *testing.T) {
	cases := []struct {
		digit uint64
		want  byte
	}{
		{1, 0b00001110},
		{3, 0b00001101},
		{7, 0b00001011},
		{9, 0b00000111},
	}
	for _, c := range cases {
		if got := residueMask(c.digit); got != c.want {
			t.Errorf("residueMask(%d) = %08b, want %08b", c.digit, got, c.want)
		}
	}
}

func TestResidueMaskPanicsOnBadDigit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-residue digit")
		}
	}()
	residueMask(5)
}

func TestTableClear(t *testing.T) {
	tab := Table{0b00001111}
	tab.clear(0, residueMask(3))
	if tab[0] != 0b00001101 {
		t.Fatalf("clear(3) left %08b, want %08b", tab[0], 0b00001101)
	}
}

func TestNewTableAllocationFailure(t *testing.T) {
	// A slot count this large can never be satisfied; newTable should
	// turn the allocation panic into an error rather than crashing.
	_, err := newTable(1 << 62)
	if err == nil {
		t.Fatal("expected an error for an unsatisfiable allocation")
	}
}
