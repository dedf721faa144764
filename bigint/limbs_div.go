package bigint

import "math/bits"

// DivMod evaluates q, r such that a = q*b + r, 0 <= r < b, using Knuth's
// Algorithm D (TAOCP vol. 2, 4.3.1): normalize the divisor so its top limb's
// high bit is set, estimate each quotient limb from a 128/64 divide on the
// two most-significant remainder limbs, then correct with at most one
// subtract-and-add-back step.
//
// Grounded on the schoolbook division in Go's math/big nat.go (retrieved at
// other_examples/b1e7c18b), generalized to operate directly on little-endian
// []uint64 limb buffers rather than a normalized nat type.
//
// len(q) must be >= len(a)-len(b)+1, len(r) must be >= len(b). q and r must
// not alias a or b.
func DivMod(q, r, a, b []uint64) {
	nb := RealSize(b)
	assert(nb > 0, "bigint.DivMod: division by zero")

	na := RealSize(a)
	if Cmp(a, b) < 0 {
		for i := range q {
			q[i] = 0
		}
		copy(r, a)
		for i := na; i < len(r); i++ {
			r[i] = 0
		}
		return
	}

	if nb == 1 {
		divModSingle(q, r, a[:na], b[0])
		return
	}

	divModKnuth(q, r, a[:na], b[:nb])
}

// divModSingle divides by a single limb via repeated divWW.
func divModSingle(q, r, a []uint64, d uint64) {
	n := len(a)
	var rem uint64
	for i := range q {
		q[i] = 0
	}
	for i := n - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, a[i], d)
	}
	r[0] = rem
	for i := 1; i < len(r); i++ {
		r[i] = 0
	}
}

// divModKnuth implements Algorithm D for nb >= 2.
func divModKnuth(q, r, a, b []uint64) {
	na, nb := len(a), len(b)
	m := na - nb

	shift := uint(bits.LeadingZeros64(b[nb-1]))

	v := make([]uint64, nb)
	Shl(v, b, shift)

	u := make([]uint64, na+1)
	u[na] = Shl(u[:na], a, shift)

	for i := range q {
		q[i] = 0
	}

	vn1 := v[nb-1]
	vn2 := v[nb-2]

	qhatv := make([]uint64, nb+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		ujn := u[j+nb]
		if ujn == vn1 {
			qhat = ^uint64(0)
		} else {
			qhat, rhat = bits.Div64(ujn, u[j+nb-1], vn1)

			for {
				hi, lo := bits.Mul64(qhat, vn2)
				if hi < rhat || (hi == rhat && lo <= u[j+nb-2]) {
					break
				}
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
			}
		}

		// qhatv = qhat * v
		var carry uint64
		for i := 0; i < nb; i++ {
			hi, lo := bits.Mul64(qhat, v[i])
			var c uint64
			qhatv[i], c = bits.Add64(lo, carry, 0)
			carry = hi + c
		}
		qhatv[nb] = carry

		borrow := rawSubVV(u[j:j+nb+1], u[j:j+nb+1], qhatv)
		if borrow != 0 {
			// qhat was one too large: add back v once and decrement.
			c := Add(u[j:j+nb], u[j:j+nb], v)
			u[j+nb] += c
			qhat--
		}
		q[j] = qhat
	}

	for i := m + 1; i < len(q); i++ {
		q[i] = 0
	}

	Shr(r[:nb], u[:nb], shift)
	for i := nb; i < len(r); i++ {
		r[i] = 0
	}
}
