package ecm

import (
	"fmt"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/bytecode"
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/tables"
)

// runStageTwo extends stage 1's work from b1 to b2 via the standard
// baby-step difference-table walk, grounded on ecm.h's ecm_ stage-2
// block: a table of (2k+2)*point for k=0..maxDiff/2-1 lets every prime
// gap between b1 and b2 be covered by one more addition, and every
// step's resulting Z is folded into one running product that is
// gcd-checked just once.
//
// Only defined for non-Prac multiplication methods. The original
// source's own Prac stage-2 branch is an unconditional assertion
// failure (never implemented — its diffAdd call is commented out), so
// this returns an error for Prac rather than inventing new, unverified
// arithmetic to fill the gap.
func runStageTwo(ctx *Context, modCtx *bigint.MontgomeryCtx, c *curve.Curve, point *curve.Point) ([]uint64, error) {
	if ctx.MulMethod == bytecode.Prac {
		return nil, fmt.Errorf("ecm: stage 2 is not implemented for the Prac multiplication method")
	}

	primesUpToB1 := tables.PrimesUpTo(ctx.B1)
	startIdx := len(primesUpToB1)
	primesUpToB2 := tables.PrimesUpTo(ctx.B2)
	if startIdx >= len(primesUpToB2) {
		return plainOne(modCtx.B), nil
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
		return plainOne(modCtx.B), nil
	}

	maxDiff := 0
	for _, d := range diffs {
		if d > maxDiff {
			maxDiff = d
		}
	}

	diffTable := make([]*curve.Point, maxDiff/2)
	diffTable[0] = point.Copy()
	c.Dbl(diffTable[0], diffTable[0])
	if len(diffTable) > 1 {
		diffTable[1] = diffTable[0].Copy()
		c.Dbl(diffTable[1], diffTable[1])
	}
	for j := 2; j < len(diffTable); j++ {
		diffTable[j] = diffTable[j-1].Copy()
		c.Add(diffTable[j], diffTable[j], diffTable[0])
	}

	applyMulMethod(ctx, c, point, firstPrime)

	runningMult := append([]uint64(nil), point.Z...)
	for _, diff := range diffs {
		c.Add(point, point, diffTable[diff/2-1])
		modCtx.MontMul(runningMult, runningMult, point.Z)
	}

	if bigint.IsZero(runningMult) {
		return plainOne(modCtx.B), nil
	}
	factor := make([]uint64, modCtx.B)
	bigint.GCD(factor, runningMult, modCtx.Mod)
	return factor, nil
}
