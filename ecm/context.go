package ecm

import (
	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/bytecode"
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/scalarmul"
)

// Context configures one ECM attempt, grounded on common.h's EcmContext.
type Context struct {
	MulMethod        bytecode.MulMethod
	MulCascadeMethod CascadeMethod
	Form             curve.Form // MontgomeryXZ or TwistedEdwards

	B1         uint64
	B2         uint64
	CurveCount uint64

	// InitialCurveSeed selects the first curve's generation seed; 0
	// means "let the caller's loop pick one" (the source's MaxU64
	// sentinel becomes Go's zero value here since seed 0 is never a
	// curve the loop below would choose on its own).
	InitialCurveSeed uint64

	// ExperimentalCascade must be set to use MulCascadeMethod ==
	// MaxUntil256Overflow; every other method ignores it. Gates a
	// cascade strategy the original source itself never finished
	// wiring into bytecode emission (see CascadeScalarsBig's doc).
	ExperimentalCascade bool

	// Stats, mirroring EcmContext's out_* fields.
	DblCount       uint64
	AddCount       uint64
	CurveDoneCount uint64
}

// plainOne returns the literal value 1 in plain (non-Montgomery) form.
// GCD results and the factors this package compares them against are
// always plain values — unlike MontgomeryCtx.GetConstant, which
// converts to Montgomery form for use as an arithmetic operand.
func plainOne(b int) []uint64 {
	one := make([]uint64, b)
	one[0] = 1
	return one
}

// usePracPreamble reports whether c's multiplication method requires the
// leading doubling-only preamble CascadeScalars' usePracPreamble
// parameter and bytecode.Compile's Prac branch both special-case.
func (c *Context) usePracPreamble() bool { return c.MulMethod == bytecode.Prac }

// applyMulMethod evaluates p = n*p directly (no bytecode) using c's
// configured strategy, grounded on cascadeMultiplication.h's
// cascadeMulDoMultiplication single-scalar overload.
func applyMulMethod(ctx *Context, c *curve.Curve, p *curve.Point, n uint64) {
	switch ctx.MulMethod {
	case bytecode.DoubleAndAdd:
		scalarmul.DoubleAndAdd(c, p, n)
	case bytecode.Naf:
		scalarmul.NAF(c, p, n)
	case bytecode.WNaf3:
		scalarmul.WNAF(c, p, n, 3)
	case bytecode.WNaf4:
		scalarmul.WNAF(c, p, n, 4)
	case bytecode.DynamicNaf:
		scalarmul.DynamicNAF(c, p, n)
	case bytecode.Prac:
		scalarmul.PRAC(c, p, n)
	default:
		panic("ecm: unknown MulMethod")
	}
}

// factorFromZ extracts a candidate factor as gcd(p.Z, mod), grounded on
// ecm_'s "if (point.z != zero) gcd(factor, point.z, curve.mod)". p.Z is
// left in Montgomery form deliberately: since gcd(aR mod n, n) ==
// gcd(a, n) whenever gcd(R, n) == 1 (always true here, R being a power
// of two and n odd), converting out of Montgomery form first would only
// waste a reduction.
//
// A zero Z means the point reached the curve's identity without ever
// revealing a divisor; the source leaves factor at its initialized
// value of 1 in that case rather than computing a gcd, so this returns
// 1 too — not 0, which a caller would otherwise mistake for a found
// factor.
func factorFromZ(ctx *bigint.MontgomeryCtx, z []uint64) []uint64 {
	if bigint.IsZero(z) {
		return plainOne(ctx.B)
	}
	factor := make([]uint64, ctx.B)
	bigint.GCD(factor, z, ctx.Mod)
	return factor
}
