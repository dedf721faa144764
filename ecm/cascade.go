// Package ecm implements Lenstra's elliptic-curve factorization method:
// a stage-1/stage-2 driver that runs a compiled bytecode schedule
// against a sequence of randomly generated curves, grounded on
// original_source/src/Factorization/Ecm/ecm.h and
// cascadeMultiplication.h.
package ecm

import "github.com/ptrawinski/gofactor/tables"

// CascadeMethod groups the prime powers up to a smoothness bound into
// the scalars a stage-1 schedule multiplies the base point by, grounded
// on common.h's EcmMulCascadeMethod.
type CascadeMethod int

const (
	// Separate multiplies by every prime power separately:
	// B1=11 => nP = P*2*2*2*3*3*5*7*11.
	Separate CascadeMethod = iota
	// Powers multiplies by the largest power of each prime not
	// exceeding b1: B1=11 => nP = P*8*9*5*7*11.
	Powers
	// MaxUntilOverflow batches primes into scalars as large as a
	// uint64 can hold: B1=11 => nP = P*27720, the same product as
	// Separate and Powers.
	MaxUntilOverflow
	// MaxUntil256Overflow batches primes into scalars as large as a
	// 256-bit accumulator can hold. The original source only ever
	// exercises this through its direct (non-bytecode) multiplication
	// path — createBytecode's MaxUntil256Overflow branch is commented
	// out in its entirety — and only composes with DoubleAndAdd, every
	// other multiplication method's big-scalar overload being an
	// unconditional assertion failure. This package preserves both
	// restrictions: callers reach this strategy only through Run's
	// doubleAndAddBig path, gated behind Context.ExperimentalCascade,
	// never through Compile.
	MaxUntil256Overflow
)

// CascadeScalars returns the scalars a stage-1 schedule must multiply
// the base point by to realise smoothness bound b1 under method,
// grounded on cascadeMultiplication.h's ecmStage1Mul/createBytecode
// (whose two implementations iterate prime powers identically whether
// they're driving direct multiplication or bytecode emission).
// usePracPreamble mirrors "prac requires multiplicands > 2": a PRAC
// schedule handles the factor of 2 via Compile's leading DB-chain
// preamble, so the first two entries of the prime table (2 and 3) are
// skipped here exactly as the source's "i = 2" does, leaving 2's full
// contribution to the preamble and silently dropping 3's odd part above
// 2^0 — an asymmetry this package reproduces rather than fixes.
//
// Panics if method is MaxUntil256Overflow; use CascadeScalarsBig.
func CascadeScalars(b1 uint64, method CascadeMethod, usePracPreamble bool) []uint64 {
	primes := tables.PrimesUpTo(b1)
	start := 0
	if usePracPreamble {
		start = 2
	}
	if start > len(primes) {
		start = len(primes)
	}
	primes = primes[start:]

	switch method {
	case Separate:
		return separateScalars(primes, b1)
	case Powers:
		return powersScalars(primes, b1)
	case MaxUntilOverflow:
		return maxUntilOverflowScalars(primes, b1)
	default:
		panic("ecm: CascadeScalars does not support MaxUntil256Overflow; use CascadeScalarsBig")
	}
}

func separateScalars(primes []uint32, b1 uint64) []uint64 {
	var out []uint64
	for _, pr := range primes {
		p := uint64(pr)
		if p > b1 {
			break
		}
		for q := p; q <= b1; q *= p {
			out = append(out, p)
		}
	}
	return out
}

func powersScalars(primes []uint32, b1 uint64) []uint64 {
	var out []uint64
	for _, pr := range primes {
		p := uint64(pr)
		if p > b1 {
			break
		}
		var q uint64
		x := p
		for {
			q = x
			x *= p
			if x > b1 {
				break
			}
		}
		out = append(out, q)
	}
	return out
}

func maxUntilOverflowScalars(primes []uint32, b1 uint64) []uint64 {
	var out []uint64
	x, y := uint64(1), uint64(1)
	for _, pr := range primes {
		prime := uint64(pr)
		if prime > b1 {
			break
		}
		p := prime
		for {
			y *= prime
			if x > y || y > (1<<63) {
				out = append(out, x)
				y = prime
			}
			x = y
			p *= prime
			if p > b1 {
				break
			}
		}
	}
	out = append(out, x)
	return out
}
