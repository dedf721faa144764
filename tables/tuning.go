package tables

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// EscalationTier is one rung of the top-level factorizer's hard-coded
// (B1, curve-count) ladder (spec.md 4.8).
type EscalationTier struct {
	B1         uint64
	CurveCount int
}

// EscalationTable is the nine-tier ladder spanning roughly 40 to 200-digit
// factor capability, values following GMP-ECM's published t-level table.
var EscalationTable = []EscalationTier{
	{B1: 2_000, CurveCount: 25},
	{B1: 11_000, CurveCount: 90},
	{B1: 50_000, CurveCount: 300},
	{B1: 250_000, CurveCount: 700},
	{B1: 1_000_000, CurveCount: 1_800},
	{B1: 3_000_000, CurveCount: 5_100},
	{B1: 11_000_000, CurveCount: 10_600},
	{B1: 43_000_000, CurveCount: 19_300},
	{B1: 110_000_000, CurveCount: 49_000},
}

// ExtrapolateB1 estimates the B1 bound appropriate for a factor of the
// given decimal digit count, for tiers beyond EscalationTable's nine
// entries. It refines the classical Dickman-rho heuristic (optimal B1
// grows roughly as exp(sqrt(ln(p)*ln(ln(p))/2)) for a factor p) using
// bigfloat.Log for the extra precision wide digit counts need once the
// hard-coded table runs out, rather than float64's ~15 significant
// digits.
func ExtrapolateB1(factorDigits int) uint64 {
	if factorDigits <= 0 {
		return EscalationTable[0].B1
	}
	// ln(p) ~= factorDigits * ln(10)
	lnP := new(big.Float).SetPrec(128).Mul(
		big.NewFloat(float64(factorDigits)),
		bigfloatLn10(),
	)
	lnLnP := bigfloat.Log(lnP)

	inner := new(big.Float).SetPrec(128).Mul(lnP, lnLnP)
	inner.Quo(inner, big.NewFloat(2))

	root := bigfloat.Sqrt(inner)
	f, _ := root.Float64()
	b1 := math.Exp(f)
	if b1 < float64(EscalationTable[len(EscalationTable)-1].B1) {
		b1 = float64(EscalationTable[len(EscalationTable)-1].B1)
	}
	return uint64(b1)
}

func bigfloatLn10() *big.Float {
	return bigfloat.Log(big.NewFloat(10))
}

// ExtrapolateCurveCount scales the curve count for a tier beyond the
// hard-coded table, keeping the same B1/curveCount growth ratio the last
// two table entries exhibit.
func ExtrapolateCurveCount(b1 uint64) int {
	last := EscalationTable[len(EscalationTable)-1]
	prev := EscalationTable[len(EscalationTable)-2]
	ratio := float64(last.CurveCount-prev.CurveCount) / float64(last.B1-prev.B1)
	extra := ratio * float64(b1-last.B1)
	return last.CurveCount + int(extra)
}
