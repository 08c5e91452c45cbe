package sieve

import "fmt"

// Table is the residue sieve: one byte per decade, with bits 0-3
// standing for trailing digits 1, 3, 7, 9 respectively. A set bit
// means "still a candidate prime"; clearing a bit marks that number
// composite. Numbers ending in 0, 2, 4, 5, 6, 8 are never represented
// since only 2 and 5 divide them and both are handled as literals.
type Table []byte

// residues[i] is the trailing digit that bit i of a table byte
// represents; residueMasks[i] is the AND-mask that clears it.
var (
	residues     = [4]uint64{1, 3, 7, 9}
	residueMasks = [4]byte{
		0b00001110, // clears bit0 (residue 1)
		0b00001101, // clears bit1 (residue 3)
		0b00001011, // clears bit2 (residue 7)
		0b00000111, // clears bit3 (residue 9)
	}
)

// newTable allocates a slot-count-sized residue table. A bad_alloc in
// the reference tool becomes a plain Go panic from make(); we instead
// recover it into ErrAlloc so callers never see a runtime panic for
// an oversized request.
func newTable(slots uint64) (t Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make(Table, slots), nil
}

// clear applies mask to the slot representing the given value, i.e.
// marks that residue composite.
func (t Table) clear(slot uint64, mask byte) {
	t[slot] &= mask
}

// residueMask returns the AND-mask that clears the given trailing
// digit (must be one of 1, 3, 7, 9).
func residueMask(lastDigit uint64) byte {
	switch lastDigit {
	case 1:
		return residueMasks[0]
	case 3:
		return residueMasks[1]
	case 7:
		return residueMasks[2]
	case 9:
		return residueMasks[3]
	default:
		panic("sieve: residueMask called with a non-residue digit")
	}
}
