package ecm

import (
	"fmt"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/bytecode"
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/tables"
)

// Run attempts to find a nontrivial factor of modCtx.Mod via Lenstra's
// elliptic-curve method, grounded on ecm.h's top-level ecm_: generate a
// curve, run stage 1 (and stage 2, if B2 > B1) against it, and on
// failure move on to the next curve, up to ctx.CurveCount attempts.
// Returns a factor of 1 if no curve in the batch succeeds.
func Run(ctx *Context, modCtx *bigint.MontgomeryCtx) ([]uint64, error) {
	one := plainOne(modCtx.B)

	var sched bytecode.Schedule
	var bigScalars []*bigint.Arb

	if ctx.MulCascadeMethod == MaxUntil256Overflow {
		if !ctx.ExperimentalCascade {
			return nil, fmt.Errorf("ecm: MulCascadeMethod MaxUntil256Overflow requires ExperimentalCascade")
		}
		if ctx.MulMethod != bytecode.DoubleAndAdd {
			return nil, fmt.Errorf("ecm: MulCascadeMethod MaxUntil256Overflow only supports the DoubleAndAdd multiplication method")
		}
		bigScalars = CascadeScalarsBig(ctx.B1, tables.PrimesUpTo(ctx.B1))
	} else {
		scalars := CascadeScalars(ctx.B1, ctx.MulCascadeMethod, ctx.usePracPreamble())
		sched = bytecode.Compile(ctx.B1, scalars, ctx.MulMethod, ctx.Form, modCtx.B)
	}

	seed := ctx.InitialCurveSeed
	if seed == 0 {
		seed = defaultSeed(ctx.Form)
	}

	var vm *bytecode.VM

	for j := uint64(0); j < ctx.CurveCount; j++ {
		var c *curve.Curve
		var p *curve.Point
		for {
			var err error
			c, p, err = generateCurve(ctx.Form, modCtx, seed)
			seed++
			if err == nil {
				break
			}
		}
		ctx.CurveDoneCount++

		if vm == nil {
			vm = bytecode.NewVM(c)
		} else {
			vm.SetCurve(c)
		}

		if bigScalars != nil {
			for _, s := range bigScalars {
				doubleAndAddBig(c, p, s)
			}
		} else {
			vm.Execute(sched.Blocks, p)
		}

		factor := factorFromZ(modCtx, p.Z)
		if bigint.Cmp(factor, one) != 0 {
			return factor, nil
		}

		if ctx.B2 > ctx.B1 {
			factor, err := runStageTwo(ctx, modCtx, c, p)
			if err != nil {
				return nil, err
			}
			if bigint.Cmp(factor, one) != 0 && bigint.Cmp(factor, modCtx.Mod) != 0 {
				return factor, nil
			}
		}
	}

	return plainOne(modCtx.B), nil
}

// defaultSeed picks a first curve-generation seed when the caller leaves
// Context.InitialCurveSeed at its zero value; both curve generators
// reject seed 0 (a degenerate sigma/seed), so these are the smallest
// seeds each form's generator accepts.
func defaultSeed(form curve.Form) uint64 {
	if form == curve.TwistedEdwards {
		return 2
	}
	return 6
}

func generateCurve(form curve.Form, modCtx *bigint.MontgomeryCtx, seed uint64) (*curve.Curve, *curve.Point, error) {
	switch form {
	case curve.MontgomeryXZ:
		return curve.GenerateMontgomery(modCtx, seed)
	case curve.TwistedEdwards:
		return curve.GenerateEdwards(modCtx, seed)
	default:
		return nil, nil, fmt.Errorf("ecm: curve form %v does not support random curve generation", form)
	}
}
