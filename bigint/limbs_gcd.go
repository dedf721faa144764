package bigint

// GCD evaluates r = gcd(a, b) using the classical Euclidean algorithm over
// limb buffers: repeated DivMod until the remainder is zero. a and b are
// consumed (copied internally); r must be at least as wide as the larger
// operand.
func GCD(r, a, b []uint64) {
	n := max(len(a), len(b)) + 1
	x := make([]uint64, n)
	y := make([]uint64, n)
	copy(x, a)
	copy(y, b)

	for RealSize(y) != 0 {
		q := make([]uint64, n)
		rem := make([]uint64, n)
		DivMod(q, rem, x, y)
		x, y = y, rem
	}
	for i := range r {
		r[i] = 0
	}
	copy(r, x)
}

// GCD64 evaluates gcd(a, b) for two 64-bit words using the binary GCD
// algorithm (Stein's algorithm): repeatedly strip common factors of two,
// then reduce by subtraction of the smaller from the larger. Used by the
// single-limb fast paths in trial division and Pollard rho.
func GCD64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := trailingZeros64(a | b)
	a >>= trailingZeros64(a)
	for b != 0 {
		b >>= trailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// ModInv64 evaluates inv such that a*inv == 1 (mod m) for single-limb a, m,
// via the extended Euclidean algorithm. This is a word-granularity helper
// (never on the hot path of a single modular multiplication; montgomery.go
// derives its word-level inverse by Newton iteration instead), so it is
// implemented directly over int64 Bezout
// coefficients rather than the limb kernels above: the coefficients are
// bounded in absolute value by m, which fits int64 for every modulus this
// package constructs a MontgomeryCtx/BarrettCtx over (at most 8 limbs, but
// the extended-Euclid recursion itself is only ever run at word width).
// Returns ok=false if gcd(a,m) != 1.
func ModInv64(a, m uint64) (inv uint64, ok bool) {
	if m == 1 {
		return 0, true
	}
	a %= m

	oldR, r := int64(a), int64(m)
	oldS, s := int64(1), int64(0)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	if oldS < 0 {
		oldS += int64(m)
	}
	return uint64(oldS), true
}
