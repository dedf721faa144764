package curve

import (
	"fmt"

	"github.com/ptrawinski/gofactor/bigint"
)

// GenerateMontgomery builds a Montgomery-XZ curve and a starting point
// from a sigma seed, following the Brent-Suyama parametrization spec 4.4
// names: u = sigma^2-5, v = 4*sigma, a = ((v-u)^3*(3u+v))/(4*u^3*v),
// a24 = (a+2)/4, P = (u^3 : v^3). Returns an error if sigma yields a
// degenerate curve (4*u^3*v is not invertible mod n), which Stage 1
// treats by skipping to the next seed rather than failing the whole
// attempt.
func GenerateMontgomery(ctx *bigint.MontgomeryCtx, sigma uint64) (*Curve, *Point, error) {
	b := ctx.B
	sig := make([]uint64, b)
	ctx.ToMontgomery(sig, []uint64{sigma})

	sigSq := make([]uint64, b)
	ctx.MontSqr(sigSq, sig)

	five := ctx.GetConstant(5)
	u := make([]uint64, b)
	bigint.ModSub(ctx, u, sigSq, five)

	four := ctx.GetConstant(4)
	v := make([]uint64, b)
	ctx.MontMul(v, four, sig)

	uSq := make([]uint64, b)
	ctx.MontSqr(uSq, u)
	uCu := make([]uint64, b)
	ctx.MontMul(uCu, uSq, u)

	vMinusU := make([]uint64, b)
	bigint.ModSub(ctx, vMinusU, v, u)
	vMinusUCu := make([]uint64, b)
	ctx.MontSqr(vMinusUCu, vMinusU)
	ctx.MontMul(vMinusUCu, vMinusUCu, vMinusU)

	three := ctx.GetConstant(3)
	threeU := make([]uint64, b)
	ctx.MontMul(threeU, three, u)
	threeUPlusV := make([]uint64, b)
	bigint.ModAdd(ctx, threeUPlusV, threeU, v)

	numerator := make([]uint64, b)
	ctx.MontMul(numerator, vMinusUCu, threeUPlusV)

	denom := make([]uint64, b)
	ctx.MontMul(denom, four, uCu)
	ctx.MontMul(denom, denom, v)

	denomPlain := make([]uint64, b)
	ctx.FromMontgomery(denomPlain, denom)
	denomInv := make([]uint64, b)
	if !bigint.ModInv(denomInv, denomPlain, ctx.Mod) {
		return nil, nil, fmt.Errorf("curve: degenerate Montgomery curve for sigma=%d (no inverse)", sigma)
	}
	denomInvMont := make([]uint64, b)
	ctx.ToMontgomery(denomInvMont, denomInv)

	a := make([]uint64, b)
	ctx.MontMul(a, numerator, denomInvMont)

	two := ctx.GetConstant(2)
	aPlus2 := make([]uint64, b)
	bigint.ModAdd(ctx, aPlus2, a, two)

	invFour := make([]uint64, b)
	fourPlain := make([]uint64, b)
	ctx.FromMontgomery(fourPlain, four)
	if !bigint.ModInv(invFour, fourPlain, ctx.Mod) {
		return nil, nil, fmt.Errorf("curve: modulus not coprime to 4")
	}
	invFourMont := make([]uint64, b)
	ctx.ToMontgomery(invFourMont, invFour)

	a24 := make([]uint64, b)
	ctx.MontMul(a24, aPlus2, invFourMont)

	c := NewMontgomeryXZ(ctx, a24)

	p := c.NewPoint()
	ctx.MontSqr(p.X, u)
	ctx.MontMul(p.X, p.X, u) // u^3
	ctx.MontSqr(p.Z, v)
	ctx.MontMul(p.Z, p.Z, v) // v^3

	return c, p, nil
}

// GenerateEdwards builds a twisted-Edwards curve and a starting point
// from a seed, by scaling the auxiliary short-Weierstrass curve's base
// point and mapping the result through the cached birational map
// (spec 4.4).
func GenerateEdwards(ctx *bigint.MontgomeryCtx, seed uint64) (*Curve, *Point, error) {
	consts := edwardsConstantsFor(ctx)

	auxANeg := make([]uint64, ctx.B)
	bigint.ModNeg(ctx, auxANeg, consts.values[0]) // -9747
	aux := NewShortWeierstrass(ctx, auxANeg)

	g := aux.NewPoint()
	copy(g.X, consts.values[1]) // 15
	copy(g.Y, consts.values[2]) // 378
	copy(g.Z, consts.values[3]) // 1

	scaled := aux.NewPoint()
	scalarMulNaive(aux, scaled, g, seed)

	// Map the scaled auxiliary-curve point to an extended twisted-Edwards
	// point on the fixed d=1 curve via the birational map (spec 4.4).
	px, py, pz, pt := edwardsPointFromAux(ctx, scaled.X, scaled.Y, scaled.Z, consts)

	d := ctx.GetConstant(1)
	c := NewTwistedEdwards(ctx, d)

	p := c.NewPoint()
	copy(p.X, px)
	copy(p.Y, py)
	copy(p.Z, pz)
	copy(p.T, pt)

	return c, p, nil
}

// scalarMulNaive computes r = k*p on a short-Weierstrass curve via plain
// double-and-add, used only for the one-time curve-generation scalar
// multiply (not the ECM hot loop, which goes through the scalarmul
// package's strategies instead).
func scalarMulNaive(c *Curve, r, p *Point, k uint64) {
	// The projective addition formula does not accept the identity as an
	// operand, so acc starts at the first set bit's multiple instead.
	var acc *Point
	base := p.Copy()
	for k > 0 {
		if k&1 == 1 {
			if acc == nil {
				acc = base.Copy()
			} else {
				tmp := c.NewPoint()
				c.Add(tmp, acc, base)
				acc = tmp
			}
		}
		dbl := c.NewPoint()
		c.Dbl(dbl, base)
		base = dbl
		k >>= 1
	}
	if acc == nil {
		acc = c.Identity()
	}
	r.Set(acc)
}
