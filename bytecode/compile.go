package bytecode

import (
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/scalarmul"
)

// MulMethod selects which scalar-multiplication strategy Compile emits
// bytecode for, mirroring the strategies scalarmul implements directly
// against a curve.Point.
type MulMethod int

const (
	DoubleAndAdd MulMethod = iota
	Naf
	WNaf3
	WNaf4
	DynamicNaf
	Prac
)

// mostSignificantBit returns a bitmask with only the highest set bit of n
// set (0 if n is 0), grounded on the same bit-manipulation helper
// scalarmul's doubleadd.go carries, duplicated here because the two
// packages emit two different things (opcodes vs. point operations) from
// the same scan.
func mostSignificantBit(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	msb := uint64(1)
	for msb<<1 != 0 && msb<<1 <= n {
		msb <<= 1
	}
	return msb
}

// doubleAndAddToBytecode emits a NAF block that evaluates n via plain
// binary double-and-add, grounded on
// original_source/.../multiplicationMethods/doubleAndAddMul.h's
// doubleAndAddMul(bytecode::Writer&, uint64_t) — the one bytecode
// emitter the retrieved original source actually contains.
func doubleAndAddToBytecode(w *Writer, n uint64) {
	w.NafStartDefault()
	for i := mostSignificantBit(n) >> 1; i > 0; i >>= 1 {
		w.NafDbl()
		if n&i != 0 {
			w.NafAdd(0)
		}
	}
	w.NafEnd()
}

// nafToBytecode emits a NAF block that evaluates n via width-2
// non-adjacent form. The retrieved original source has no
// bytecode-emitting nafMul counterpart to wnafMul.h's point-mutating
// nafMul, so this is authored by replaying that function's digit walk
// against Writer's opcode primitives instead of curve operations,
// checked against the VM's runNafBlock (vm.go) for a single shared
// register (table size 0, i.e. p itself doubles and the single cached
// copy never needs a table entry beyond reg[0]).
func nafToBytecode(w *Writer, n uint64) {
	digits := scalarmul.Wnaf(int64(n), 2)
	w.NafStartDefault()
	for i := len(digits) - 2; i >= 0; i-- {
		w.NafDbl()
		switch digits[i] {
		case 1:
			w.NafAdd(0)
		case -1:
			w.NafSub(0)
		}
	}
	w.NafEnd()
}

// wnafToBytecode emits a NAF block that evaluates n via width-w NAF,
// width restricted to {3,4} so the odd-multiple table fits the block's
// 4-bit table-size nibble (a width-6 table can need 16 entries, which
// doesn't fit). Authored the same way as nafToBytecode: no
// bytecode-emitting wnafMul exists in the retrieved original source, so
// this replays wnafMul.h's table-building and digit walk against
// Writer's primitives, matching what runNafBlock (vm.go) expects to
// replay.
func wnafToBytecode(w *Writer, n uint64, width int) {
	if width != 3 && width != 4 {
		panic("bytecode: wnafToBytecode requires width 3 or 4")
	}

	digits := scalarmul.Wnaf(int64(n), int64(width))
	tableSize := (scalarmul.AbsoluteMaxNaf(digits) + 1) / 2

	// runNafBlock starts p at table[initialIndex] without a doubling, so
	// every digit below the top one needs its own doubling.
	initialIndex := byte((digits[len(digits)-1] - 1) / 2)
	start := len(digits) - 2

	w.NafStart(byte(tableSize), initialIndex)
	for i := start; i >= 0; i-- {
		w.NafDbl()
		d := digits[i]
		switch {
		case d > 0:
			w.NafAdd(byte((d - 1) / 2))
		case d < 0:
			w.NafSub(byte((-d - 1) / 2))
		}
	}
	w.NafEnd()
}

// dynamicNafToBytecode picks the lowest-cost width in {2,3,4} for form
// (mirroring dynamicnaf.go's cost model) and emits that strategy's
// bytecode. Unlike scalarmul.DynamicNAF, the search is bounded to
// w<=4 rather than w<=6, for the same table-size reason wnafToBytecode
// documents.
func dynamicNafToBytecode(w *Writer, n uint64, form curve.Form) {
	var costFn func([]int8) int
	switch form {
	case curve.TwistedEdwards:
		costFn = func(naf []int8) int { return scalarmul.NafCost(naf, 8, 8, 8, 8) }
	case curve.ShortWeierstrass:
		costFn = func(naf []int8) int { return scalarmul.NafCost(naf, 12, 14, 12, 14) }
	default:
		panic("bytecode: dynamic NAF is only defined for SW and TE curves")
	}

	best := 2
	bestCost := costFn(scalarmul.Wnaf(int64(n), 2))
	for _, width := range []int64{3, 4} {
		cost := costFn(scalarmul.Wnaf(int64(n), width))
		if cost < bestCost {
			bestCost = cost
			best = int(width)
		}
	}

	if best == 2 {
		nafToBytecode(w, n)
	} else {
		wnafToBytecode(w, n, best)
	}
}

// pracToBytecode emits a PRAC block that evaluates n via Montgomery's
// Lucas addition chain, replaying scalarmul.PRAC's d/e recurrence and
// emitting one PracRule call per rule application instead of performing
// the curve operations themselves. As with the NAF emitters, the
// retrieved original source has no bytecode-emitting pracMul
// counterpart to pracMul.h's point-mutating prac(), so the rule
// selection here is derived directly from PRAC's own arithmetic
// (scalarmul/prac.go) — the only way to guarantee the emitted bytecode,
// replayed by the VM's runPracBlock, reaches the same point.
//
// n must be >= 3: unlike a NAF block (which degenerates to a harmless
// no-op for n<2), the PRAC block's VM interpreter unconditionally
// performs an initial doubling and a final differential addition around
// whatever rules it contains, so an empty rule list does not evaluate
// to the identity or to p unchanged, and for n=2 the d/e recurrence
// below never terminates. Callers (Compile's cascade scalars, prime
// powers of 5 and above once the PRAC preamble is in use) never need
// n<3 here.
func pracToBytecode(w *Writer, n uint64, limbs int) {
	if n < 3 {
		panic("bytecode: pracToBytecode requires n >= 3")
	}
	w.PracStart()

	const nv = 10
	tries := nv
	if limbs < tries {
		tries = limbs
	}
	if tries < 1 {
		tries = 1
	}

	best := 0
	if tries > 1 {
		cmin := scalarmul.MontgomeryAddCost * float64(n)
		for i := 0; i < tries; i++ {
			cost := scalarmul.LucasCost(n, scalarmul.PracRatios[i])
			if cost < cmin {
				cmin = cost
				best = i
			}
		}
	}

	d := n
	r := uint64(float64(d)*scalarmul.PracRatios[best] + 0.5)
	d = n - r
	e := 2*r - n

	for d != e {
		swapBefore := false
		if d < e {
			d, e = e, d
			swapBefore = true
		}

		switch {
		case d-e <= e/4 && (d+e)%3 == 0: // rule 1
			d = (2*d - e) / 3
			e = (e - d) / 2
			w.PracRule(1, swapBefore)

		case d-e <= e/4 && (d-e)%6 == 0: // rule 2
			d = (d - e) / 2
			w.PracRule(2, swapBefore)

		case (d+3)/4 <= e: // rule 3
			d -= e
			w.PracRule(3, swapBefore)

		case (d+e)%2 == 0: // rule 4
			d = (d - e) / 2
			w.PracRule(4, swapBefore)

		case d%2 == 0: // rule 5
			d /= 2
			w.PracRule(5, swapBefore)

		case d%3 == 0: // rule 6
			d = d/3 - e
			w.PracRule(6, swapBefore)

		case (d+e)%3 == 0: // rule 7
			d = (d - 2*e) / 3
			w.PracRule(7, swapBefore)

		case (d-e)%3 == 0: // rule 8
			d = (d - e) / 3
			w.PracRule(8, swapBefore)

		default: // rule 9: necessarily e is even here
			e /= 2
			w.PracRule(9, swapBefore)
		}
	}

	w.PracEnd()
}

// Compile builds a schedule for smoothness bound b1 that, for the given
// curve form and modulus size (modLimbs, used the same way PRAC sizes
// its ratio search), evaluates each of scalars in turn via method,
// chaining them into one block stream so a single VM.Execute call
// advances a point through every factor of the stage-1 exponent,
// grounded on cascadeMultiplication.h's createBytecode. PRAC schedules
// additionally carry a leading DB-chain block that brings the point to
// 2^floor(log2(b1)) * p (the largest power of two not exceeding b1)
// before the first PRAC block runs, mirroring
// createBytecode's Prac preamble.
func Compile(b1 uint64, scalars []uint64, method MulMethod, form curve.Form, modLimbs int) Schedule {
	var w Writer
	w.Start(b1)

	if method == Prac {
		w.DbChainStartDefault()
		for r := uint64(2); r <= b1; r *= 2 {
			w.DbChainDbl()
		}
		w.DbChainEnd()
	}

	for _, m := range scalars {
		switch method {
		case DoubleAndAdd:
			doubleAndAddToBytecode(&w, m)
		case Naf:
			nafToBytecode(&w, m)
		case WNaf3:
			wnafToBytecode(&w, m, 3)
		case WNaf4:
			wnafToBytecode(&w, m, 4)
		case DynamicNaf:
			dynamicNafToBytecode(&w, m, form)
		case Prac:
			pracToBytecode(&w, m, modLimbs)
		default:
			panic("bytecode: unknown MulMethod")
		}
	}

	return w.End()
}
