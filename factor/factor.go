// Package factor implements the top-level integer factorization
// orchestrator: trial division, Pollard rho-Brent, Pollard p-1, ECM
// escalation, and Miller-Rabin primality testing, grounded on
// original_source/src/Factorization and
// original_source/src/PrimalityTesting.
package factor

import "github.com/ptrawinski/gofactor/bigint"

// Options configures the top-level Factor orchestrator. All ECM/Pollard
// tuning is internal (spec 6.4) — writeDebug is the only knob exposed.
type Options struct {
	WriteDebug bool
}

func plainOne(b int) []uint64 {
	one := make([]uint64, b)
	one[0] = 1
	return one
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Factor decomposes n into its prime factors (with multiplicity),
// grounded on the top-level factorization loop described in spec 4.8:
// probable-prime test first; on composite, Pollard rho-Brent with a
// fixed iteration budget; on failure, escalate through
// tables.EscalationTable running p-1 then ECM at each tier, dividing
// out any factor found and recursing on both the factor and cofactor.
func Factor(n *bigint.Number, opts Options) []*bigint.Number {
	var out []*bigint.Number
	factorInto(n, opts, &out)
	return out
}

func factorInto(n *bigint.Number, opts Options, out *[]*bigint.Number) {
	if bigint.RealSize(n.Slice()) == 0 {
		return
	}
	one := plainOne(len(n.Slice()))
	if bigint.Cmp(n.Slice(), one) == 0 {
		return
	}

	// Every Montgomery context the rest of this package relies on
	// requires an odd modulus, so powers of two are peeled off first by
	// plain bit-shifting rather than routed through any odd-modulus
	// machinery.
	limbs := append([]uint64(nil), n.Slice()...)
	sawTwo := false
	for bigint.RealSize(limbs) > 0 && limbs[0]&1 == 0 {
		*out = append(*out, bigint.NewNumberUint64(2))
		bigint.Shr(limbs, limbs, 1)
		sawTwo = true
	}
	if bigint.Cmp(limbs, one) == 0 {
		return
	}
	if sawTwo {
		n = bigint.NewNumberFromLimbs(limbs)
	}

	modCtx := n.MontgomeryCtx()

	if IsProbablyPrime(n.Slice(), modCtx, 24) {
		*out = append(*out, n)
		return
	}

	factor := findOneFactor(n, modCtx, opts)

	width := modCtx.B
	cofactor := divideExactOrPanic(n.Slice(), factor, width)

	factorInto(bigint.NewNumberFromLimbs(factor), opts, out)
	factorInto(bigint.NewNumberFromLimbs(cofactor), opts, out)
}

// divideExactOrPanic computes a/b, panicking if b does not divide a
// exactly — every call site here divides by a gcd-derived factor of a,
// so an inexact division means a prior stage returned a bogus factor.
func divideExactOrPanic(a, b []uint64, width int) []uint64 {
	q := make([]uint64, width+1)
	r := make([]uint64, width)
	bigint.DivMod(q, r, a, b)
	if bigint.RealSize(r) != 0 {
		panic("factor: inexact division while splitting a composite")
	}
	return q[:width]
}
