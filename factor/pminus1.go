package factor

import (
	"math/bits"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/tables"
)

// squareAndMultiply evaluates a = a^n mod (whatever modulus modCtx
// carries), left-to-right starting one bit below the top (the top bit
// is implicit, since a already holds the base to its first power),
// grounded on Pminus1.h's SquareAndMultiply.
func squareAndMultiply(modCtx *bigint.MontgomeryCtx, a []uint64, n uint64) {
	base := append([]uint64(nil), a...)
	tmp := make([]uint64, modCtx.B)
	for i := bits.Len64(n) - 2; i >= 0; i-- {
		modCtx.MontSqr(a, a)
		if n&(1<<uint(i)) != 0 {
			modCtx.MontMul(tmp, a, base)
			copy(a, tmp)
		}
	}
}

// PMinus1 runs Pollard's p-1 algorithm: stage 1 raises 2 to the power
// of every prime-power ≤ B1 and checks gcd(x-1, n); stage 2 extends to
// primes in (B1, B2] via the same difference-table walk ECM's stage 2
// uses, but multiplying residues instead of adding curve points.
// Grounded on Pminus1.h's pMinus1. Returns 1 on failure.
func PMinus1(modCtx *bigint.MontgomeryCtx, b1, b2 uint64) []uint64 {
	b := modCtx.B
	one := plainOne(b)
	oneConst := modCtx.GetConstant(1)

	x := modCtx.GetConstant(2)
	primes := tables.PrimesUpTo(b1)
	for _, pr := range primes {
		p := uint64(pr)
		var q uint64
		for {
			q = p
			p *= uint64(pr)
			if p > b1 {
				break
			}
		}
		squareAndMultiply(modCtx, x, q)
	}

	xm1 := make([]uint64, b)
	bigint.Sub(xm1, x, oneConst)
	if bigint.IsZero(xm1) {
		return one
	}
	a := make([]uint64, b)
	bigint.GCD(a, xm1, modCtx.Mod)
	if bigint.Cmp(a, one) != 0 || b1 >= b2 {
		return a
	}

	return pMinus1StageTwo(modCtx, x, b1, b2)
}

func pMinus1StageTwo(modCtx *bigint.MontgomeryCtx, x []uint64, b1, b2 uint64) []uint64 {
	b := modCtx.B
	one := plainOne(b)
	oneConst := modCtx.GetConstant(1)

	primesUpToB1 := tables.PrimesUpTo(b1)
	startIdx := len(primesUpToB1)
	primesUpToB2 := tables.PrimesUpTo(b2)
	if startIdx >= len(primesUpToB2) {
		return one
	}

	firstPrime := uint64(primesUpToB2[startIdx])
	prevPrime := firstPrime
	var diffs []int
	for _, pr := range primesUpToB2[startIdx+1:] {
		p := uint64(pr)
		diffs = append(diffs, int(p-prevPrime))
		prevPrime = p
	}
	if len(diffs) == 0 {
		return one
	}

	maxDiff := 0
	for _, d := range diffs {
		if d > maxDiff {
			maxDiff = d
		}
	}

	diffTable := make([][]uint64, maxDiff/2)
	diffTable[0] = append([]uint64(nil), x...)
	modCtx.MontSqr(diffTable[0], diffTable[0])
	if len(diffTable) > 1 {
		diffTable[1] = append([]uint64(nil), diffTable[0]...)
		modCtx.MontSqr(diffTable[1], diffTable[1])
	}
	for j := 2; j < len(diffTable); j++ {
		diffTable[j] = append([]uint64(nil), diffTable[j-1]...)
		modCtx.MontMul(diffTable[j], diffTable[j], diffTable[0])
	}

	squareAndMultiply(modCtx, x, firstPrime)
	runningMult := append([]uint64(nil), x...)

	const gcdInterval = 100
	gcdCount := 0
	xm1 := make([]uint64, b)
	a := make([]uint64, b)
	for _, diff := range diffs {
		modCtx.MontMul(x, x, diffTable[diff/2-1])
		modCtx.MontMul(runningMult, runningMult, x)
		gcdCount++
		if gcdCount == gcdInterval {
			bigint.Sub(xm1, runningMult, oneConst)
			if !bigint.IsZero(xm1) {
				bigint.GCD(a, xm1, modCtx.Mod)
				if bigint.Cmp(a, one) != 0 {
					return a
				}
			}
			gcdCount = 0
		}
	}

	bigint.Sub(xm1, runningMult, oneConst)
	if bigint.IsZero(xm1) {
		return one
	}
	bigint.GCD(a, xm1, modCtx.Mod)
	return a
}
