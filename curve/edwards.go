package curve

import (
	"fmt"
	"sync"

	"github.com/ptrawinski/gofactor/bigint"
)

// NewTwistedEdwards builds an extended twisted-Edwards curve
// (-x^2+y^2 = 1+d*x^2*y^2) over ctx with curve constant d already in
// Montgomery form.
func NewTwistedEdwards(ctx *bigint.MontgomeryCtx, d []uint64) *Curve {
	c := newCurve(TwistedEdwards, ctx)
	c.D = append([]uint64(nil), d...)
	return c
}

// EdwardsIdentity returns the extended-coordinates identity
// (0 : 1 : 1 : 0).
func (c *Curve) EdwardsIdentity() *Point {
	c.requireForm("identity", TwistedEdwards)
	p := c.NewPoint()
	one := make([]uint64, c.Ctx.B)
	c.Ctx.ToMontgomery(one, []uint64{1})
	copy(p.Y, one)
	copy(p.Z, one)
	return p
}

// addEdwards evaluates r = p+q in extended twisted-Edwards coordinates
// with curve parameter a=-1 (add-2008-hwcd-3 shape, here 10M: the d*T1*T2
// product takes two multiplications).
func (c *Curve) addEdwards(r, p, q *Point) {
	a := c.scratchAt(0)
	b := c.scratchAt(1)
	cc := c.scratchAt(2)
	d := c.scratchAt(3)
	e := c.scratchAt(4)
	f := c.scratchAt(5)
	g := c.scratchAt(6)
	h := c.scratchAt(7)

	c.mul(a, p.X, q.X)
	c.mul(b, p.Y, q.Y)

	t0 := make([]uint64, c.Ctx.B)
	c.mul(t0, p.T, c.D)
	c.mul(cc, t0, q.T)

	c.mul(d, p.Z, q.Z)

	sumX := make([]uint64, c.Ctx.B)
	sumY := make([]uint64, c.Ctx.B)
	c.add(sumX, p.X, p.Y)
	c.add(sumY, q.X, q.Y)
	c.mul(e, sumX, sumY)
	c.sub(e, e, a)
	c.sub(e, e, b)

	c.sub(f, d, cc)
	c.add(g, d, cc)
	c.add(h, b, a) // a=-1: H = B - a*A = B + A

	c.mul(r.X, e, f)
	c.mul(r.Y, g, h)
	c.mul(r.T, e, h)
	c.mul(r.Z, f, g)
}

// subEdwards evaluates r = p-q by negating q's X and T coordinates and
// calling addEdwards (the unified-addition analogue of negating Y for
// short Weierstrass): -Q = (-Qx, Qy, Qz, -Qt).
func (c *Curve) subEdwards(r, p, q *Point) {
	negQ := c.NewPoint()
	c.neg(negQ.X, q.X)
	copy(negQ.Y, q.Y)
	copy(negQ.Z, q.Z)
	c.neg(negQ.T, q.T)
	c.addEdwards(r, p, negQ)
}

// dblEdwards evaluates r = 2p in extended twisted-Edwards coordinates
// (a=-1, dbl-2008-hwcd shape, 4M+4S+6D per spec 4.4).
func (c *Curve) dblEdwards(r, p *Point) {
	a := c.scratchAt(0)
	b := c.scratchAt(1)
	cc := c.scratchAt(2)
	dd := c.scratchAt(3)
	e := c.scratchAt(4)
	g := c.scratchAt(5)
	f := c.scratchAt(6)
	h := c.scratchAt(7)

	c.sqr(a, p.X)
	c.sqr(b, p.Y)
	zz := make([]uint64, c.Ctx.B)
	c.sqr(zz, p.Z)
	c.dbl(cc, zz)
	c.neg(dd, a) // a=-1

	sum := make([]uint64, c.Ctx.B)
	c.add(sum, p.X, p.Y)
	c.sqr(e, sum)
	c.sub(e, e, a)
	c.sub(e, e, b)

	c.add(g, dd, b)
	c.sub(f, g, cc)
	c.sub(h, dd, b)

	c.mul(r.X, e, f)
	c.mul(r.Y, g, h)
	c.mul(r.T, e, h)
	c.mul(r.Z, f, g)
}

// tplEdwards evaluates r = 3p by composing dblEdwards and addEdwards.
// Mathematically equivalent to the fused 11M+3S+10D formula spec 4.4
// names; see DESIGN.md's Open Question resolution on why the fused
// formula wasn't transcribed directly.
func (c *Curve) tplEdwards(r, p *Point) {
	twoP := c.NewPoint()
	c.dblEdwards(twoP, p)
	c.addEdwards(r, twoP, p)
}

// edwardsConstants holds the rational constants the Weierstrass-to-
// Edwards birational map needs for a given modulus, spec 4.4's
// "per-modulus cache... keyed by modulus value."
type edwardsConstants struct {
	values [8][]uint64
}

var (
	edwardsCacheMu sync.Mutex
	edwardsCache   = map[string]*edwardsConstants{}
)

// modulusKey renders a modulus's limb buffer into a stable map key for
// edwardsCache. Correctness only requires injectivity on real moduli, not
// compactness, so the limbs' default formatting is sufficient.
func modulusKey(mod []uint64) string {
	return fmt.Sprintf("%x", mod)
}

// edwardsConstantsFor returns the cached (or freshly derived) rational
// constants for ctx's modulus, guarded by a mutex per spec 5's "first
// access installs, never evicts" lifecycle, grounded on the teacher's
// Ring caching its NTT table once per modulus in NewRingWithCustomNTT.
func edwardsConstantsFor(ctx *bigint.MontgomeryCtx) *edwardsConstants {
	key := modulusKey(ctx.Mod)
	edwardsCacheMu.Lock()
	defer edwardsCacheMu.Unlock()
	if v, ok := edwardsCache[key]; ok {
		return v
	}
	v := deriveEdwardsConstants(ctx)
	edwardsCache[key] = v
	return v
}

// deriveEdwardsConstants converts the eight literal rational constants the
// Weierstrass-to-Edwards birational map runs on into Montgomery form for
// ctx's modulus, per spec 4.4. These eight values — the auxiliary curve's
// coefficient magnitude 9747, its generator (15,378,1), and the map's
// constants 144, 2985984=144^3, 96, 5 — are fixed literals independent of
// the modulus — only their Montgomery representation changes per modulus,
// which is why they're cached keyed by modulus rather than recomputed
// from scratch on every curve generation. Grounded on
// twistedEdwards.h's twistedEdwardsGenerateCurvePoint precomputed
// constants table.
func deriveEdwardsConstants(ctx *bigint.MontgomeryCtx) *edwardsConstants {
	ec := &edwardsConstants{}
	literals := [8]uint64{9747, 15, 378, 1, 144, 2985984, 96, 5}
	for i, lit := range literals {
		ec.values[i] = ctx.GetConstant(lit)
	}
	return ec
}

// edwardsPointFromAux maps a point (tx:ty:tz) on the auxiliary
// short-Weierstrass curve (a=-9747) to an extended twisted-Edwards point
// (px:py:pz:pt) on the d=1 curve, using consts's eight cached rational
// constants. Grounded on twistedEdwards.h's twistedEdwardsGenerateCurvePoint,
// transcribed straight-line (the original reuses a handful of scratch
// registers across unrelated sub-expressions; this keeps each
// sub-expression in its own named value instead).
func edwardsPointFromAux(ctx *bigint.MontgomeryCtx, tx, ty, tz []uint64, consts *edwardsConstants) (px, py, pz, pt []uint64) {
	b := ctx.B
	c144 := consts.values[4]
	c2985984 := consts.values[5]
	c96 := consts.values[6]
	c5 := consts.values[7]

	sum := make([]uint64, b)
	bigint.ModAdd(ctx, sum, tx, tz)
	bigint.ModAdd(ctx, sum, sum, tz)
	bigint.ModAdd(ctx, sum, sum, tz) // tx + 3*tz
	bigU := make([]uint64, b)
	ctx.MontMul(bigU, sum, c144)

	v := ty
	w := make([]uint64, b)
	ctx.MontMul(w, c2985984, tz)

	u0 := make([]uint64, b)
	ctx.MontMul(u0, c96, bigU)
	u1 := make([]uint64, b)
	bigint.ModSub(ctx, u1, w, u0)
	u1Sq := make([]uint64, b)
	ctx.MontSqr(u1Sq, u1)
	u0Sq := make([]uint64, b)
	ctx.MontSqr(u0Sq, u0)
	fiveU0Sq := make([]uint64, b)
	ctx.MontMul(fiveU0Sq, c5, u0Sq)
	u8 := make([]uint64, b)
	bigint.ModSub(ctx, u8, u1Sq, fiveU0Sq)

	fourU1 := make([]uint64, b)
	bigint.ModDbl(ctx, fourU1, u1)
	bigint.ModDbl(ctx, fourU1, fourU1)

	txFactorA := make([]uint64, b)
	bigint.ModSub(ctx, txFactorA, u1, u0)
	fiveU0 := make([]uint64, b)
	ctx.MontMul(fiveU0, c5, u0)
	txFactorB := make([]uint64, b)
	bigint.ModAdd(ctx, txFactorB, fiveU0, u1)
	txNew := make([]uint64, b)
	ctx.MontMul(txNew, txFactorA, txFactorB)
	txFactorC := make([]uint64, b)
	bigint.ModAdd(ctx, txFactorC, fiveU0Sq, u1Sq)
	ctx.MontMul(txNew, txNew, txFactorC)

	tySq := make([]uint64, b)
	ctx.MontSqr(tySq, u8)
	tyNew := make([]uint64, b)
	ctx.MontMul(tyNew, u8, tySq)

	u6 := make([]uint64, b)
	ctx.MontMul(u6, fourU1, u0)
	ttNew := make([]uint64, b)
	ctx.MontSqr(ttNew, u6)
	ctx.MontMul(ttNew, ttNew, u6)

	u6b := make([]uint64, b)
	ctx.MontSqr(u6b, bigU)
	ctx.MontMul(u6b, u6b, txNew)

	u0Cube := make([]uint64, b)
	ctx.MontMul(u0Cube, u0Sq, u0)
	scalarTerm := make([]uint64, b)
	ctx.MontMul(scalarTerm, u1, u0Cube)
	ctx.MontMul(scalarTerm, scalarTerm, v)
	ctx.MontMul(scalarTerm, scalarTerm, w)
	bigint.ModDbl(ctx, scalarTerm, scalarTerm)

	pzTmp := make([]uint64, b)
	bigint.ModAdd(ctx, pzTmp, tyNew, ttNew)
	pz = make([]uint64, b)
	ctx.MontMul(pz, pzTmp, u6b)
	px = make([]uint64, b)
	ctx.MontMul(px, pzTmp, scalarTerm)

	pyTmp := make([]uint64, b)
	bigint.ModSub(ctx, pyTmp, tyNew, ttNew)
	py = make([]uint64, b)
	ctx.MontMul(py, pyTmp, u6b)
	pt = make([]uint64, b)
	ctx.MontMul(pt, pyTmp, scalarTerm)

	return px, py, pz, pt
}
