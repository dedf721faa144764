package scalarmul

import "github.com/ptrawinski/gofactor/curve"

// bestWNaf scores w in {2,3,4,5,6} with costFn and returns the lowest-
// cost width, ties breaking toward the smaller w (stable sort over an
// already width-ascending list, per spec 4.5 and wnafMul.h's
// getBestWNaf).
func bestWNaf(n uint64, costFn func([]int8) int) int {
	best := 2
	bestCost := costFn(wnaf(int64(n), 2))
	for _, w := range []int64{3, 4, 5, 6} {
		cost := costFn(wnaf(int64(n), w))
		if cost < bestCost {
			bestCost = cost
			best = int(w)
		}
	}
	return best
}

// DynamicNAF picks the lowest-cost width-w NAF for p's curve form (TE:
// uniform cost 8 per operation; SW: 12 per doubling, 14 per addition,
// per spec 4.5) and evaluates it, grounded on wnafMul.h's dnafMul.
func DynamicNAF(c *curve.Curve, p *curve.Point, n uint64) {
	if n == 0 {
		identityInto(c, p)
		return
	}
	if n == 1 {
		return
	}

	var w int
	switch c.Form {
	case curve.TwistedEdwards:
		w = bestWNaf(n, func(naf []int8) int { return nafCost(naf, 8, 8, 8, 8) })
	case curve.ShortWeierstrass:
		w = bestWNaf(n, func(naf []int8) int { return nafCost(naf, 12, 14, 12, 14) })
	default:
		panic("scalarmul: dynamic NAF is only defined for SW and TE curves")
	}

	if w == 2 {
		NAF(c, p, n)
	} else {
		WNAF(c, p, n, w)
	}
}
