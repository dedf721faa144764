package bigint

import "math/bits"

// Add evaluates r = a + b over n = len(r) limbs and returns the carry out.
// a and b are read up to n limbs each (shorter operands are treated as
// zero-extended). r may alias a or b.
//
// Grounded on ring/vec_ops.go's AddVec: explicit length, explicit carry
// out-param, no hidden allocation.
func Add(r, a, b []uint64) (carry uint64) {
	n := len(r)
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		r[i], carry = bits.Add64(av, bv, carry)
	}
	return carry
}

// AddWord evaluates r = a + w over n = len(r) limbs, w a single limb, and
// returns the carry out.
func AddWord(r, a []uint64, w uint64) (carry uint64) {
	n := len(r)
	carry = w
	for i := 0; i < n; i++ {
		var av uint64
		if i < len(a) {
			av = a[i]
		}
		r[i], carry = bits.Add64(av, carry, 0)
	}
	return carry
}

// Sub evaluates the absolute difference of a and b over n = len(r) limbs.
// It returns neg = true when a < b, in which case r holds b - a rather than
// the two's-complement wraparound of a - b, per spec's "negative-result
// flag" contract.
func Sub(r, a, b []uint64) (neg bool) {
	n := len(r)
	var borrow uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		r[i], borrow = bits.Sub64(av, bv, borrow)
	}
	if borrow != 0 {
		negateInPlace(r)
		return true
	}
	return false
}

// rawSubVV evaluates r = a - b mod 2^(64n) over n = len(r) limbs and
// returns the borrow out, without the absolute-value normalization Sub
// applies. Used internally by the division kernel's add-back step, where
// the two's-complement wraparound itself (not its absolute value) is the
// quantity being reconstructed.
func rawSubVV(r, a, b []uint64) uint64 {
	n := len(r)
	var borrow uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		r[i], borrow = bits.Sub64(av, bv, borrow)
	}
	return borrow
}

// negateInPlace replaces r with its two's-complement negation, i.e.
// 2^(64*len(r)) - r (r must be non-zero for this to be meaningful as a
// positive value; the caller only calls this when r held a-b wrapped mod
// 2^(64n) with a < b, so the result is exactly b-a).
func negateInPlace(r []uint64) {
	carry := uint64(1)
	for i := range r {
		r[i], carry = bits.Add64(^r[i], 0, carry)
	}
}

// SubWord evaluates r = a - w over n = len(r) limbs, w a single limb.
// Returns the borrow out (0 or 1); unlike Sub this does not absolute-value
// the result, since callers (e.g. montgomery reduction) only ever call it
// when a >= w is guaranteed by context.
func SubWord(r, a []uint64, w uint64) (borrow uint64) {
	n := len(r)
	for i := 0; i < n; i++ {
		var av uint64
		if i < len(a) {
			av = a[i]
		}
		sub := w
		if i > 0 {
			sub = 0
		}
		r[i], borrow = bits.Sub64(av, sub, borrow)
	}
	return borrow
}
