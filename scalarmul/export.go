package scalarmul

// This file re-exports a handful of internal helpers the bytecode
// package's compiler needs to reproduce the exact same digit sequences
// and cost estimates these strategies use at execution time, so the two
// packages share one source of truth for "what digits does scalar n
// expand to" rather than each maintaining its own copy.

// Wnaf computes n's width-w non-adjacent form.
func Wnaf(n, w int64) []int8 { return wnaf(n, w) }

// AbsoluteMaxNaf returns the largest absolute digit value in a NAF digit
// sequence.
func AbsoluteMaxNaf(naf []int8) int { return absoluteMaxNaf(naf) }

// NafCost scores a NAF digit sequence given per-curve-form operation
// costs.
func NafCost(naf []int8, dblCost, addCost, intermediateDblCost, intermediateAddCost int) int {
	return nafCost(naf, dblCost, addCost, intermediateDblCost, intermediateAddCost)
}

// BestWNaf scores w in {2,3,4,5,6} with costFn and returns the lowest-cost
// width.
func BestWNaf(n uint64, costFn func([]int8) int) int { return bestWNaf(n, costFn) }

// LucasCost estimates PRAC's multiplication cost for scalar n under ratio
// v.
func LucasCost(n uint64, v float64) float64 { return lucasCost(n, v) }

// PracRatios are the ten precomputed continued-fraction v seeds PRAC
// chooses among.
var PracRatios = pracRatios

// MontgomeryAddCost and MontgomeryDblCost are the abstract multiplication
// costs PRAC's cost model assigns to a diffAdd/dbl.
const (
	MontgomeryAddCost = montgomeryAddCost
	MontgomeryDblCost = montgomeryDblCost
)
