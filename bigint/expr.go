package bigint

import "fmt"

// Term is one a*b product term of a chained modular expression.
type Term struct {
	X, Y []uint64
}

// Expr is the builder spec 9 prescribes in place of the source's
// compile-time expression templates: a tiny sequence of primitive
// Montgomery multiply-accumulate operations assembled at call time instead
// of a template-expanded tree. Evaluation rewrites "R <- a*b + c*d"-style
// expressions into MontMul/Add calls against a fixed modulus.
type Expr struct {
	ctx *MontgomeryCtx
}

// NewExpr builds an expression evaluator against ctx's modulus. All
// operands passed to Eval are assumed to already be in Montgomery form.
func NewExpr(ctx *MontgomeryCtx) *Expr {
	return &Expr{ctx: ctx}
}

// Eval evaluates r = sum(terms[i].X * terms[i].Y) mod n, in Montgomery
// form. The result may only alias the leftmost operand, terms[0].X,
// enforced by a runtime "different-operand" check (spec 9's replacement
// for the expression template's compile-time aliasing rule) rather than by
// construction.
func (e *Expr) Eval(r []uint64, terms ...Term) {
	if len(terms) == 0 {
		for i := range r {
			r[i] = 0
		}
		return
	}

	for i, t := range terms {
		leftmost := i == 0 && shareBacking(r, t.X)
		if !leftmost && (shareBacking(r, t.X) || shareBacking(r, t.Y)) {
			panic(fmt.Errorf("bigint.Expr: result may only alias the leftmost operand"))
		}
	}

	b := e.ctx.B
	acc := make([]uint64, b)
	tmp := make([]uint64, b)

	e.ctx.MontMul(acc, terms[0].X, terms[0].Y)
	for _, t := range terms[1:] {
		e.ctx.MontMul(tmp, t.X, t.Y)
		ModAdd(e.ctx, acc, acc, tmp)
	}
	copy(r, acc)
}

// shareBacking reports whether a and b are drawn from the same backing
// array (the "different-operand" predicate spec 9 calls for).
func shareBacking(a, b []uint64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}
