package curve

import "github.com/ptrawinski/gofactor/bigint"

// NewMontgomeryXZ builds a Montgomery curve (by^2 = x^3 + a*x^2 + x) over
// ctx, tracked in XZ-only coordinates. a24 = (a+2)/4 must already be in
// Montgomery form. spec 4.4: add/sub are not defined on this form;
// scalar multiplication must use a differential ladder (DiffAdd/MontDbl)
// driven by PRAC or another Lucas chain.
func NewMontgomeryXZ(ctx *bigint.MontgomeryCtx, a24 []uint64) *Curve {
	c := newCurve(MontgomeryXZ, ctx)
	c.A24 = append([]uint64(nil), a24...)
	return c
}

// DiffAdd evaluates r = p+q given diff = p-q, using the x-only
// differential addition formula (4M+2S+6D per spec 4.4). Only X and Z
// are read or written; Y and T are untouched.
func (c *Curve) DiffAdd(r, p, q, diff *Point) {
	c.requireForm("diffAdd", MontgomeryXZ)

	xpMinusZp := c.scratchAt(0)
	xpPlusZp := c.scratchAt(1)
	xqMinusZq := c.scratchAt(2)
	xqPlusZq := c.scratchAt(3)
	u := c.scratchAt(4)
	v := c.scratchAt(5)
	upv := c.scratchAt(6)
	umv := c.scratchAt(7)

	c.sub(xpMinusZp, p.X, p.Z)
	c.add(xpPlusZp, p.X, p.Z)
	c.sub(xqMinusZq, q.X, q.Z)
	c.add(xqPlusZq, q.X, q.Z)

	c.mul(u, xpMinusZp, xqPlusZq)
	c.mul(v, xpPlusZp, xqMinusZq)

	c.add(upv, u, v)
	c.sub(umv, u, v)

	upv2 := make([]uint64, c.Ctx.B)
	umv2 := make([]uint64, c.Ctx.B)
	c.sqr(upv2, upv)
	c.sqr(umv2, umv)

	// Read diff fully before writing r: PRAC passes r == diff.
	c.mul(upv2, diff.Z, upv2)
	c.mul(umv2, diff.X, umv2)
	copy(r.X, upv2)
	copy(r.Z, umv2)
}

// MontDbl evaluates r = 2p using the x-only doubling formula
// (2M+2S+1cM+4D per spec 4.4, cM = multiply by a24).
func (c *Curve) MontDbl(r, p *Point) {
	c.requireForm("dbl", MontgomeryXZ)

	sum := c.scratchAt(0)
	diff := c.scratchAt(1)
	sumSq := c.scratchAt(2)
	diffSq := c.scratchAt(3)
	fourXZ := c.scratchAt(4)
	t := c.scratchAt(5)

	c.add(sum, p.X, p.Z)
	c.sub(diff, p.X, p.Z)
	c.sqr(sumSq, sum)
	c.sqr(diffSq, diff)

	c.mul(r.X, sumSq, diffSq)

	c.sub(fourXZ, sumSq, diffSq) // == 4*X*Z
	c.mul(t, c.A24, fourXZ)
	c.add(t, t, diffSq)
	c.mul(r.Z, fourXZ, t)
}
