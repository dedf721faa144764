package curve

import (
	"fmt"

	"github.com/ptrawinski/gofactor/bigint"
)

// Form tags which of the three coexisting curve shapes a Curve holds
// (spec 3's EllipticCurve enum {SW, TE, M}).
type Form int

const (
	ShortWeierstrass Form = iota
	TwistedEdwards
	MontgomeryXZ
)

func (f Form) String() string {
	switch f {
	case ShortWeierstrass:
		return "SW"
	case TwistedEdwards:
		return "TE"
	case MontgomeryXZ:
		return "M"
	default:
		return "unknown"
	}
}

// Curve holds a modulus context plus the form-specific parameters spec 3
// names: a for short Weierstrass, the twisted-Edwards curve constant d
// (GenerateEdwards sets d = 1), and a24/sigma for Montgomery-XZ. A
// scratch array of eight field elements backs most intermediate values;
// the add/dbl formulas still allocate a few temporaries per call.
type Curve struct {
	Form Form
	Ctx  *bigint.MontgomeryCtx

	A     []uint64 // SW: curve parameter a, Montgomery form
	D     []uint64 // TE: curve parameter d, Montgomery form
	A24   []uint64 // M: (a+2)/4, Montgomery form
	Sigma []uint64 // M: generation seed, Montgomery form

	scratch [8][]uint64
}

// newCurve allocates a Curve over ctx with scratch preallocated.
func newCurve(form Form, ctx *bigint.MontgomeryCtx) *Curve {
	c := &Curve{Form: form, Ctx: ctx}
	for i := range c.scratch {
		c.scratch[i] = make([]uint64, ctx.B)
	}
	return c
}

// scratchAt returns the i-th scratch field element (0..7), zeroing it
// first so callers never observe stale limbs from a previous call.
func (c *Curve) scratchAt(i int) []uint64 {
	s := c.scratch[i]
	for j := range s {
		s[j] = 0
	}
	return s
}

// NewPoint allocates a point sized for this curve's modulus width.
func (c *Curve) NewPoint() *Point { return NewPoint(c.Ctx.B) }

// requireForm panics (a programmer-contract violation, spec 7) if the
// receiver is not one of the given forms — e.g. calling Add on a
// Montgomery-XZ curve, which spec 4.4 says has no defined add/sub.
func (c *Curve) requireForm(op string, forms ...Form) {
	for _, f := range forms {
		if c.Form == f {
			return
		}
	}
	panic(fmt.Sprintf("curve: %s is not defined on form %s", op, c.Form))
}

func (c *Curve) mul(r, a, b []uint64) { c.Ctx.MontMul(r, a, b) }
func (c *Curve) sqr(r, a []uint64)    { c.Ctx.MontSqr(r, a) }
func (c *Curve) add(r, a, b []uint64) { bigint.ModAdd(c.Ctx, r, a, b) }
func (c *Curve) sub(r, a, b []uint64) { bigint.ModSub(c.Ctx, r, a, b) }
func (c *Curve) neg(r, a []uint64)    { bigint.ModNeg(c.Ctx, r, a) }
func (c *Curve) dbl(r, a []uint64)    { bigint.ModDbl(c.Ctx, r, a) }
