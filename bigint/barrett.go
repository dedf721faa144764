package bigint

// BarrettCtx holds the modulus n, the precomputed reciprocal
// R = floor(2^k / n) and k = 2*ceil(log2 n), satisfying R*n <= 2^k <
// (R+1)*n, per spec 3.
//
// Grounded on ring/utils.go's GetBRedConstant/BRed, generalized from a
// single 64-bit limb modulus to a multi-limb modulus.
type BarrettCtx struct {
	Mod []uint64 // b limbs
	B   int      // limb width of Mod
	K   int      // 2*ceil(log2 Mod)
	R   []uint64 // floor(2^K / Mod)

	scratch []uint64
}

// NewBarrettCtx builds the Barrett context for mod.
func NewBarrettCtx(mod []uint64) *BarrettCtx {
	b := RealSize(mod)
	topBits := bitLen64(mod[b-1])
	modBits := 64*(b-1) + topBits
	k := 2 * modBits

	// R = floor(2^k / mod): compute via a shift-then-divide over a buffer
	// wide enough to hold 2^k.
	kLimbs := k/64 + 1
	num := make([]uint64, kLimbs)
	num[k/64] = 1 << uint(k%64)

	q := make([]uint64, kLimbs)
	rem := make([]uint64, b)
	DivMod(q, rem, num, mod[:b])

	return &BarrettCtx{
		Mod:     append([]uint64(nil), mod[:b]...),
		B:       b,
		K:       k,
		R:       q,
		scratch: make([]uint64, 4*b+4),
	}
}

// Reduce evaluates r = a mod n for a up to 2*B limbs (the product of two
// reduced operands), via:
//
//	q <- (a*R) >> k
//	r <- a - low_{B+1}(q*mod)
//	while r >= mod: r -= mod
//
// The quotient estimate q never exceeds the true quotient, so r starts
// non-negative and the correction loop subtracts mod until r < mod.
func (ctx *BarrettCtx) Reduce(r, a []uint64) {
	b := ctx.B
	na := len(a)

	prod := make([]uint64, na+len(ctx.R))
	Mul(prod, a, ctx.R)

	qShifted := make([]uint64, len(prod))
	Shr(qShifted, prod, uint(ctx.K))

	qm := make([]uint64, len(qShifted)+b)
	Mul(qm, qShifted, ctx.Mod)

	n := b + 1
	rr := make([]uint64, n)
	rawSubVV(rr, a, qm[:n])
	// The subtraction wraps modulo 2^(64*(B+1)): the low B+1 limbs of a
	// can be smaller than those of q*mod even though a >= q*mod, and the
	// wrapped difference is then exactly a - q*mod.
	modExt := make([]uint64, n)
	copy(modExt, ctx.Mod)
	for Cmp(rr, modExt) >= 0 {
		Sub(rr, rr, modExt)
	}

	copy(r, rr[:b])
	for i := b; i < len(r); i++ {
		r[i] = 0
	}
}
