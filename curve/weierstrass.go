package curve

import "github.com/ptrawinski/gofactor/bigint"

// NewShortWeierstrass builds a projective short-Weierstrass curve
// (y^2*z = x^3 + a*x*z^2 + b*z^3) over ctx with parameter a (already
// reduced to Montgomery form by the caller). b is implicit: every curve
// operation below works from a point already known to lie on the curve,
// the same "b never appears in the formulas" shortcut standard
// projective addition/doubling formulas use.
func NewShortWeierstrass(ctx *bigint.MontgomeryCtx, a []uint64) *Curve {
	c := newCurve(ShortWeierstrass, ctx)
	c.A = append([]uint64(nil), a...)
	return c
}

// Identity returns the point at infinity (0 : 1 : 0) in Montgomery form.
func (c *Curve) Identity() *Point {
	c.requireForm("identity", ShortWeierstrass)
	p := c.NewPoint()
	one := make([]uint64, c.Ctx.B)
	c.Ctx.ToMontgomery(one, []uint64{1})
	copy(p.Y, one)
	return p
}

// addWeierstrass evaluates r = p+q using the general projective addition
// formula (12M+2S+7D per spec 4.4).
func (c *Curve) addWeierstrass(r, p, q *Point) {
	y1z2 := c.scratchAt(0)
	x1z2 := c.scratchAt(1)
	z1z2 := c.scratchAt(2)
	u := c.scratchAt(3)
	v := c.scratchAt(4)
	vv := c.scratchAt(5)
	vvv := c.scratchAt(6)
	rr := c.scratchAt(7)

	c.mul(y1z2, p.Y, q.Z)
	c.mul(x1z2, p.X, q.Z)
	c.mul(z1z2, p.Z, q.Z)

	t0 := make([]uint64, c.Ctx.B)
	c.mul(t0, q.Y, p.Z)
	c.sub(u, t0, y1z2)

	c.mul(t0, q.X, p.Z)
	c.sub(v, t0, x1z2)

	uu := make([]uint64, c.Ctx.B)
	c.sqr(uu, u)
	c.sqr(vv, v)
	c.mul(vvv, v, vv)
	c.mul(rr, vv, x1z2)

	a := make([]uint64, c.Ctx.B)
	c.mul(a, uu, z1z2)
	c.sub(a, a, vvv)
	twoR := make([]uint64, c.Ctx.B)
	c.dbl(twoR, rr)
	c.sub(a, a, twoR)

	x3 := make([]uint64, c.Ctx.B)
	c.mul(x3, v, a)

	rMinusA := make([]uint64, c.Ctx.B)
	c.sub(rMinusA, rr, a)
	y3 := make([]uint64, c.Ctx.B)
	c.mul(y3, u, rMinusA)
	t1 := make([]uint64, c.Ctx.B)
	c.mul(t1, vvv, y1z2)
	c.sub(y3, y3, t1)

	z3 := make([]uint64, c.Ctx.B)
	c.mul(z3, vvv, z1z2)

	copy(r.X, x3)
	copy(r.Y, y3)
	copy(r.Z, z3)
}

// subWeierstrass evaluates r = p-q by negating q's y-coordinate and
// calling addWeierstrass, per spec 4.4's "sub negates Qy and calls add".
func (c *Curve) subWeierstrass(r, p, q *Point) {
	negQ := c.NewPoint()
	copy(negQ.X, q.X)
	copy(negQ.Z, q.Z)
	c.neg(negQ.Y, q.Y)
	c.addWeierstrass(r, p, negQ)
}

// dblWeierstrass evaluates r = 2p (6M+6S+12D per spec 4.4).
func (c *Curve) dblWeierstrass(r, p *Point) {
	xx := c.scratchAt(0)
	zz := c.scratchAt(1)
	w := c.scratchAt(2)
	s := c.scratchAt(3)
	ss := c.scratchAt(4)
	sss := c.scratchAt(5)
	rr := c.scratchAt(6)
	b := c.scratchAt(7)

	c.sqr(xx, p.X)
	c.sqr(zz, p.Z)

	c.mul(w, c.A, zz)
	threeXX := make([]uint64, c.Ctx.B)
	c.dbl(threeXX, xx)
	c.add(threeXX, threeXX, xx)
	c.add(w, w, threeXX)

	t0 := make([]uint64, c.Ctx.B)
	c.mul(t0, p.Y, p.Z)
	c.dbl(s, t0)
	c.sqr(ss, s)
	c.mul(sss, s, ss)

	rVal := make([]uint64, c.Ctx.B)
	c.mul(rVal, p.Y, s)
	copy(rr, rVal)
	c.sqr(rVal, rr)

	xPlusR := make([]uint64, c.Ctx.B)
	c.add(xPlusR, p.X, rr)
	c.sqr(b, xPlusR)
	c.sub(b, b, xx)
	c.sub(b, b, rVal)

	h := make([]uint64, c.Ctx.B)
	c.sqr(h, w)
	twoB := make([]uint64, c.Ctx.B)
	c.dbl(twoB, b)
	c.sub(h, h, twoB)

	x3 := make([]uint64, c.Ctx.B)
	c.mul(x3, h, s)

	bMinusH := make([]uint64, c.Ctx.B)
	c.sub(bMinusH, b, h)
	y3 := make([]uint64, c.Ctx.B)
	c.mul(y3, w, bMinusH)
	twoRR := make([]uint64, c.Ctx.B)
	c.dbl(twoRR, rVal)
	c.sub(y3, y3, twoRR)

	copy(r.X, x3)
	copy(r.Y, y3)
	copy(r.Z, sss)
}
