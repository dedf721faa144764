package factor

import (
	"log"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/bytecode"
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/ecm"
	"github.com/ptrawinski/gofactor/tables"
)

// pollardRhoIterationBudget bounds the first, cheapest splitting attempt
// before escalating to p-1/ECM, grounded on spec 4.8's "fixed iteration
// budget" (the source leaves this caller-supplied; this package fixes
// one reasonable value rather than exposing it, per spec 6.4's "all ECM
// tuning is internal").
const pollardRhoIterationBudget = 1_000_000

// stage2Ratio is how far past B1 each p-1/ECM attempt's Stage 2 runs.
// Neither Pminus1.h nor ecm.h hard-codes a ratio (B2 is a caller-
// supplied parameter in both); 100x is this package's own choice, a
// common GMP-ECM default, recorded here rather than silently invented
// inside the driver.
const stage2Ratio = 100

// findOneFactor locates one non-trivial factor of n (known composite),
// grounded on spec 4.8's escalation loop: Pollard rho-Brent first, then
// p-1 and ECM at each of tables.EscalationTable's nine tiers.
func findOneFactor(n *bigint.Number, modCtx *bigint.MontgomeryCtx, opts Options) []uint64 {
	width := modCtx.B
	one := plainOne(width)
	nLimbs := n.Slice()

	if bigint.RealSize(nLimbs) == 1 {
		trialBound := uint64(1) << 48
		if d := TrialDivide(nLimbs[0], trialBound); d != nLimbs[0] {
			return []uint64{d}
		}
	} else {
		trialBound := uint64(1) << 14
		for _, p := range tables.PrimesUpTo(trialBound) {
			rem := make([]uint64, 1)
			q := make([]uint64, width+1)
			bigint.DivMod(q, rem, nLimbs, []uint64{uint64(p)})
			if rem[0] == 0 {
				return []uint64{uint64(p)}
			}
		}
	}

	if g := PollardRhoBrent(modCtx, pollardRhoIterationBudget); bigint.Cmp(g, one) != 0 {
		return g
	}

	for _, tier := range tables.EscalationTable {
		b2 := tier.B1 * stage2Ratio
		if opts.WriteDebug {
			log.Printf("factor: escalating to B1=%d curves=%d", tier.B1, tier.CurveCount)
		}

		if g := PMinus1(modCtx, tier.B1, b2); bigint.Cmp(g, one) != 0 {
			return g
		}

		ecmCtx := &ecm.Context{
			MulMethod:        bytecode.DynamicNaf,
			MulCascadeMethod: ecm.Separate,
			Form:             curve.TwistedEdwards,
			B1:               tier.B1,
			B2:               b2,
			CurveCount:       uint64(tier.CurveCount),
			InitialCurveSeed: 2,
		}
		if g, err := ecm.Run(ecmCtx, modCtx); err == nil && bigint.Cmp(g, one) != 0 {
			return g
		}
	}

	digits := len(n.String())
	for extra := 0; extra < 20; extra++ {
		b1 := tables.ExtrapolateB1(digits + extra*5)
		curveCount := tables.ExtrapolateCurveCount(b1)
		b2 := b1 * stage2Ratio

		if g := PMinus1(modCtx, b1, b2); bigint.Cmp(g, one) != 0 {
			return g
		}
		ecmCtx := &ecm.Context{
			MulMethod:        bytecode.DynamicNaf,
			MulCascadeMethod: ecm.Separate,
			Form:             curve.TwistedEdwards,
			B1:               b1,
			B2:               b2,
			CurveCount:       uint64(curveCount),
			InitialCurveSeed: 2,
		}
		if g, err := ecm.Run(ecmCtx, modCtx); err == nil && bigint.Cmp(g, one) != 0 {
			return g
		}
	}

	panic("factor: escalation exhausted without finding a factor")
}
