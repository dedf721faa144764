package bigint

// signedInt is a minimal sign-magnitude integer used only inside ModInv's
// extended-Euclidean recurrence, where intermediate Bezout coefficients
// go negative — plain limb buffers are unsigned, so the recurrence needs
// a small amount of sign bookkeeping on top of them. Grounded on the
// same word-level shape as ModInv64's int64 Bezout tracking, generalized
// from one limb to many.
type signedInt struct {
	mag []uint64
	neg bool
}

func newSigned(w int) signedInt { return signedInt{mag: make([]uint64, w)} }

func fromUint64(w int, x uint64) signedInt {
	s := newSigned(w)
	s.mag[0] = x
	return s
}

func (s signedInt) isZero() bool { return IsZero(s.mag) }

func sSub(x, y signedInt) signedInt {
	w := len(x.mag)
	r := newSigned(w)
	if x.neg == y.neg {
		// same sign: |x|-|y| with the larger magnitude's sign.
		if Cmp(x.mag, y.mag) >= 0 {
			Sub(r.mag, x.mag, y.mag)
			r.neg = x.neg
		} else {
			Sub(r.mag, y.mag, x.mag)
			r.neg = !x.neg
		}
	} else {
		// opposite signs: |x|+|y| with x's sign.
		Add(r.mag, x.mag, y.mag)
		r.neg = x.neg
	}
	if r.isZero() {
		r.neg = false
	}
	return r
}

func sMul(x, y signedInt) signedInt {
	w := len(x.mag)
	full := make([]uint64, 2*w)
	Mul(full, x.mag, y.mag)
	r := newSigned(w)
	copy(r.mag, full[:w])
	r.neg = x.neg != y.neg
	if r.isZero() {
		r.neg = false
	}
	return r
}

// sDivMod computes the truncating quotient of |x|/|y| (y > 0, unsigned)
// and returns it with x's sign combined with y's, alongside the signed
// remainder (same sign as x, truncating toward zero — matching the
// convention div/mod by a positive modulus needs in the recurrence
// below).
func sDivMod(x signedInt, yMag []uint64) (q, r signedInt) {
	w := len(x.mag)
	qq := make([]uint64, w+1)
	rr := make([]uint64, len(yMag))
	DivMod(qq, rr, x.mag, yMag)
	q = newSigned(w)
	copy(q.mag, qq[:w])
	q.neg = x.neg
	if q.isZero() {
		q.neg = false
	}
	r = newSigned(w)
	copy(r.mag, rr[:min(w, len(rr))])
	r.neg = x.neg
	if r.isZero() {
		r.neg = false
	}
	return
}

// ModInv computes r = a^-1 mod m via the extended Euclidean algorithm,
// generalizing ModInv64's word-level recurrence to an arbitrary-width
// modulus. Returns ok=false if gcd(a, m) != 1 (a is not a unit mod m) —
// per spec 7, this is an arithmetic exceptional value, not an error.
func ModInv(r, a, m []uint64) (ok bool) {
	w := RealSize(m) + 2

	oldR := newSigned(w)
	copy(oldR.mag, a[:RealSize(a)])
	newR := newSigned(w)
	copy(newR.mag, m[:RealSize(m)])

	oldS := fromUint64(w, 1)
	newS := newSigned(w)

	for !newR.isZero() {
		q, rem := sDivMod(oldR, newR.mag[:RealSize(newR.mag)])
		oldR, newR = newR, rem
		oldS, newS = newS, sSub(oldS, sMul(q, newS))
	}

	if RealSize(oldR.mag) != 1 || oldR.mag[0] != 1 {
		return false
	}

	result := oldS.mag
	if oldS.neg {
		// result is negative: the residue is m - (|result| mod m).
		tmp := make([]uint64, len(m))
		DivModRem(tmp, result, m)
		if IsZero(tmp) {
			for i := range r {
				r[i] = 0
			}
			return true
		}
		Sub(r[:len(m)], m, tmp[:len(m)])
	} else {
		DivModRem(r, result, m)
	}
	for i := RealSize(m); i < len(r); i++ {
		r[i] = 0
	}
	return true
}

// DivModRem reduces x modulo m, writing only the remainder (discarding
// the quotient) into r. r must have at least len(m) capacity.
func DivModRem(r, x, m []uint64) {
	q := make([]uint64, RealSize(x)+1)
	rem := make([]uint64, len(m))
	DivMod(q, rem, x, m)
	copy(r, rem)
}
