package sieve

import (
	"errors"
	"fmt"
	"math"
)

// MaxBound is the largest N a Context will accept. The original tool
// fixed this at 10^10; nothing about the algorithm requires a bound
// that low on 64-bit hardware, so it is raised to 2^40, a value for
// which slot and wheel arithmetic stay comfortably inside uint64.
const MaxBound uint64 = 1 << 40

// DefaultBlockSize mirrors the block size the reference implementation
// compiled in: big enough to amortize the per-block bookkeeping, small
// enough to stay cache-resident.
const DefaultBlockSize uint64 = 32000

// wheelSlotSizes[d] is the number of decade-slots covered by wheel
// depth d. Index 0 is unused; depths run 1..7.
var wheelSlotSizes = [8]uint64{
	0,
	21,        // 3 * 7
	231,       // * 11
	3003,      // * 13
	51051,     // * 17
	969969,    // * 19
	22309287,  // * 23
	646969323, // * 29
}

// MaxWheelDepth is the deepest wheel this package knows how to roll.
const MaxWheelDepth = 7

var (
	// ErrBadBound is returned when N is zero or exceeds MaxBound.
	ErrBadBound = errors.New("sieve: N out of range")
	// ErrBadWheel is returned when WheelDepth is outside [1, MaxWheelDepth],
	// or the resulting wheel needs more slots than the table holds.
	ErrBadWheel = errors.New("sieve: invalid wheel depth for this bound")
	// ErrAlloc is returned when the residue table cannot be allocated.
	ErrAlloc = errors.New("sieve: unable to allocate residue table")
	// ErrBadConfig is returned for any other malformed Config field.
	ErrBadConfig = errors.New("sieve: invalid configuration")
)

// Config describes one sieving run.
type Config struct {
	// N is the inclusive upper bound: primes are reported for the
	// range [2, N].
	N uint64

	// WheelDepth selects how many small primes are folded into the
	// initial wheel pattern before block sieving starts, from 1
	// (wheel of 21) to 7 (wheel of 646969323). Deeper wheels trade
	// setup cost for fewer residues that need clearing per prime.
	WheelDepth int

	// BlockSize is the number of decade-slots processed as a unit.
	// A BlockSize above the table size forces the serial path.
	BlockSize uint64

	// Workers is the number of goroutines used for the segmented
	// sweep once the wheel and small-prime bootstrap are done. 1
	// selects the serial path regardless of BlockSize; values below 1
	// are rejected by Validate.
	Workers int

	// Progress, if set, is called after each block (serial or
	// parallel) with the number of newly processed slots.
	Progress func(delta int)
}

// Validate checks every field of c without allocating the residue
// table. It is always run before a Context is built.
func (c Config) Validate() error {
	if c.N == 0 || c.N > MaxBound {
		return ErrBadBound
	}
	if c.WheelDepth < 1 || c.WheelDepth > MaxWheelDepth {
		return ErrBadWheel
	}
	if wheelSlotSizes[c.WheelDepth] > slotCount(c.N) {
		return ErrBadWheel
	}
	if c.BlockSize == 0 {
		return ErrBadConfig
	}
	if c.Workers < 1 {
		return ErrBadConfig
	}
	return nil
}

// slotCount returns the number of decade-slots the table needs for N.
// Anything under 210 is padded up to 21 slots: the bootstrap pattern
// always writes a full wheel-of-21, and short-circuiting it would
// only complicate the one caller that matters (tiny N).
func slotCount(n uint64) uint64 {
	m := n / 10
	if n%10 != 0 {
		m++
	}
	if m < 21 {
		m = 21
	}
	return m
}

// cycle holds the four slot-offsets at which a prime's multiples
// p*1, p*3, p*7, p*9 land, relative to the start of a lap.
type cycle struct {
	j0, j1, j2, j3 uint64
}

// group holds the AND-masks that clear each of those four residues,
// ordered to match cycle's j0..j3 for this prime's own trailing digit.
type group struct {
	m0, m1, m2, m3 byte
}

// resumeState is the cross-block continuation point for one prime in
// the serial sieve: the slot the prime's lap had reached, and which
// of the four residues within that lap still needs clearing.
type resumeState struct {
	last  uint64
	phase int
}

// Context owns everything a single sieving run needs: the residue
// table, the primes discovered so far together with their cached
// descriptors, and the cursors used to resume work incrementally.
// It replaces the handful of global arrays and scalars the reference
// tool kept at file scope.
type Context struct {
	cfg Config

	table Table
	slots uint64

	primes []uint64
	cycles []cycle
	groups []group
	resume []resumeState

	cursor       uint64 // next unscanned slot for the prime extractor
	extractLimit uint64 // floor(sqrt(10*slots)); extraction stops once a found prime reaches this

	lastPrimeIndex int // index of the last prime used to sieve (set once block sieving finishes)
}

// New allocates and configures a Context for cfg without sieving
// anything yet. Use Run to build a fully sieved Context in one call.
func New(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slots := slotCount(cfg.N)

	table, err := newTable(slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlloc, err)
	}

	ctx := &Context{
		cfg:          cfg,
		table:        table,
		slots:        slots,
		cursor:       1, // slot 0 represents values 0-9 and is never walked: see bootstrap
		extractLimit: isqrt(slots * 10),
	}
	return ctx, nil
}

// N reports the configured upper bound.
func (ctx *Context) N() uint64 { return ctx.cfg.N }

// isqrt returns floor(sqrt(n)) using float64 as a seed and a couple of
// integer correction steps, avoiding the rounding pitfalls of a bare
// math.Sqrt conversion for large n.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := uint64(math.Sqrt(float64(n)))
	for x > 0 && x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}
