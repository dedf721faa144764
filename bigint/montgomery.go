package bigint

import "fmt"

// MontgomeryCtx holds the precomputed Montgomery-reduction data for a fixed
// odd modulus: the modulus itself, its width in 64-bit limbs b (so the
// Montgomery radius is R = 2^(64b)), and the constant K = -mod^-1 mod R
// such that R*R^-1 - K*mod = 1.
//
// Grounded on ring/utils.go's GetMRedConstant/MForm/IMForm/ModExpMontgomery,
// generalized from a single 64-bit limb modulus to a b-limb modulus.
type MontgomeryCtx struct {
	Mod []uint64 // b limbs, odd
	B   int      // limb width of Mod
	K   []uint64 // b limbs: -Mod^-1 mod 2^(64b)

	s []uint64 // scratch, 2b+1 limbs
	t []uint64 // scratch, 2b+1 limbs
}

// NewMontgomeryCtx builds the Montgomery context for mod. mod must be odd.
func NewMontgomeryCtx(mod []uint64) (*MontgomeryCtx, error) {
	b := RealSize(mod)
	if b == 0 || mod[0]&1 == 0 {
		return nil, fmt.Errorf("bigint: montgomery modulus must be odd and non-zero")
	}

	ctx := &MontgomeryCtx{
		Mod: append([]uint64(nil), mod[:b]...),
		B:   b,
		s:   make([]uint64, 2*b+1),
		t:   make([]uint64, 2*b+1),
	}
	ctx.K = negModInverseOfOddPow2(ctx.Mod, b)
	return ctx, nil
}

// negModInverseOfOddPow2 computes -mod^-1 mod 2^(64*b) via Newton-Hensel
// lifting: starting from x = mod[0] (correct to 3 bits), each iteration
// doubles the number of correct bits via x <- x*(2 - mod*x).
func negModInverseOfOddPow2(mod []uint64, b int) []uint64 {
	// For odd mod[0], its inverse mod 2^64 satisfies x*mod[0] == 1 (mod
	// 2^64) and can be found by the standard doubling trick starting from
	// x = mod[0] itself (correct mod 2^3, since mod[0] is odd): each
	// iteration of x <- x*(2 - mod[0]*x) doubles the number of correct
	// low bits. Arithmetic here is plain uint64, so it is implicitly
	// mod 2^64.
	x := mod[0]
	for i := 0; i < 5; i++ { // 3 -> 6 -> 12 -> 24 -> 48 -> 96 correct low bits
		x = x * (2 - mod[0]*x)
	}
	// x now satisfies mod[0]*x == 1 (mod 2^64).

	inv := make([]uint64, b)
	inv[0] = x
	if b > 1 {
		// Lift word-level inverse to full b-limb precision via Newton's
		// iteration on 2*b-limb products, doubling working width each
		// round: e = 2 - mod*inv (mod 2^(64*w)), inv = inv*e (mod 2^(64*w)).
		w := 1
		for w < b {
			w2 := w * 2
			if w2 > b {
				w2 = b
			}
			modW := make([]uint64, w2)
			copy(modW, mod[:min(w2, len(mod))])
			invW := make([]uint64, w2)
			copy(invW, inv[:w])

			prod := make([]uint64, 2*w2)
			Mul(prod, modW, invW)

			two := make([]uint64, w2)
			two[0] = 2
			e := make([]uint64, w2)
			rawSubVV(e, two, prod[:w2])

			res := make([]uint64, 2*w2)
			Mul(res, invW, e)
			copy(inv[:w2], res[:w2])
			w = w2
		}
	}

	// Negate mod 2^(64b): K = 2^(64b) - inv (inv is never zero, since it's
	// a unit). Two's-complement negation is invert-bits-then-add-one.
	neg := make([]uint64, b)
	for i := range neg {
		neg[i] = ^inv[i]
	}
	AddWord(neg, neg, 1)
	return neg
}

// ToMontgomery evaluates r = a*R mod n by shifting a left by 64*B bits and
// reducing with schoolbook division (this runs only at conversion time, not
// in the per-curve hot loop, so a full division is acceptable per spec).
func (ctx *MontgomeryCtx) ToMontgomery(r, a []uint64) {
	na := RealSize(a)
	padded := make([]uint64, na+ctx.B+1)
	copy(padded, a[:na])
	shifted := make([]uint64, len(padded))
	Shl(shifted, padded, uint(64*ctx.B))

	q := make([]uint64, len(shifted))
	rem := make([]uint64, ctx.B)
	DivMod(q, rem, shifted, ctx.Mod)
	copy(r, rem)
	for i := RealSize(rem); i < len(r); i++ {
		r[i] = 0
	}
}

// FromMontgomery evaluates r = a*R^-1 mod n, i.e. the Montgomery reduction
// of a zero-extended to 2B limbs.
func (ctx *MontgomeryCtx) FromMontgomery(r, a []uint64) {
	t := ctx.t[:2*ctx.B]
	for i := range t {
		t[i] = 0
	}
	copy(t, a[:min(len(a), ctx.B)])
	ctx.redc(r, t)
}

// MontMul evaluates r = a*b*R^-1 mod n for a, b already in Montgomery form,
// leaving the product in Montgomery form.
//
// Implements the inner loop from spec 4.1:
//
//	t <- a*b            (2B limbs)
//	u <- low_B(t*K)
//	t <- t + u*mod       (carrying beyond 2B)
//	r <- high_B(t)
//	if r >= mod: r -= mod
func (ctx *MontgomeryCtx) MontMul(r, a, b []uint64) {
	t := ctx.t[:2*ctx.B]
	Mul(t, a[:ctx.B], b[:ctx.B])
	ctx.redc(r, t)
}

// MontSqr evaluates r = a*a*R^-1 mod n for a already in Montgomery form.
func (ctx *MontgomeryCtx) MontSqr(r, a []uint64) {
	t := ctx.t[:2*ctx.B]
	Sqr(t, a[:ctx.B])
	ctx.redc(r, t)
}

// redc performs the REDC reduction of a 2B-limb value t, leaving the B-limb
// result in r.
func (ctx *MontgomeryCtx) redc(r []uint64, t []uint64) {
	b := ctx.B
	u := ctx.s[:b]

	low := make([]uint64, 2*b)
	Mul(low, t[:b], ctx.K) // t*K; only the low b limbs matter
	copy(u, low[:b])

	uProd := make([]uint64, 2*b)
	Mul(uProd, u, ctx.Mod) // u*mod, exactly 2b limbs (u, mod < R)

	carry := Add(t, t, uProd[:len(t)])
	// By construction u*mod + t is divisible by R = 2^(64b); its quotient
	// (t+u*mod)>>64b is the high b limbs of t plus the carry out of the
	// addition, and is guaranteed < 2*mod (the standard Montgomery REDC
	// bound), so at most one subtraction of mod is needed.
	hi := make([]uint64, b+1)
	copy(hi, t[b:2*b])
	hi[b] = carry

	modExt := make([]uint64, b+1)
	copy(modExt, ctx.Mod)

	if Cmp(hi, modExt) >= 0 {
		rawSubVV(hi, hi, modExt)
	}
	assert(hi[b] == 0, "bigint: montgomery redc result exceeded bound after one correction")
	copy(r, hi[:b])
	for i := b; i < len(r); i++ {
		r[i] = 0
	}
}

// GetConstant reduces the u64 literal modulo n and, for a Montgomery
// context, converts it to Montgomery form.
func (ctx *MontgomeryCtx) GetConstant(u64 uint64) []uint64 {
	lit := make([]uint64, ctx.B)
	lit[0] = u64
	q := make([]uint64, ctx.B+1)
	rem := make([]uint64, ctx.B)
	DivMod(q, rem, lit, ctx.Mod)
	out := make([]uint64, ctx.B)
	ctx.ToMontgomery(out, rem)
	return out
}
