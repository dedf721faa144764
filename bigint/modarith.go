package bigint

// ModAdd evaluates r = a+b mod n, correcting with at most one subtraction.
// Works identically whether a, b are plain residues or Montgomery-form
// residues, since addition commutes with the Montgomery map. Grounded on
// ring/vec_ops.go's AddVec-then-conditional-subtract shape.
func ModAdd(ctx *MontgomeryCtx, r, a, b []uint64) {
	bw := ctx.B
	sum := make([]uint64, bw+1)
	carry := Add(sum[:bw], a[:bw], b[:bw])
	sum[bw] = carry

	modExt := make([]uint64, bw+1)
	copy(modExt, ctx.Mod)

	if Cmp(sum, modExt) >= 0 {
		rawSubVV(sum, sum, modExt)
	}
	assert(sum[bw] == 0, "bigint: modadd result exceeded bound after one correction")
	copy(r, sum[:bw])
	for i := bw; i < len(r); i++ {
		r[i] = 0
	}
}

// ModSub evaluates r = a-b mod n, adding the modulus back once if the
// subtraction borrowed.
func ModSub(ctx *MontgomeryCtx, r, a, b []uint64) {
	bw := ctx.B
	neg := Sub(r[:bw], a[:bw], b[:bw])
	if neg {
		// Sub already negated r[:bw] into the absolute value of (b-a); the
		// correct residue is mod - (b-a).
		rawSubVV(r[:bw], ctx.Mod, r[:bw])
	}
	for i := bw; i < len(r); i++ {
		r[i] = 0
	}
}

// ModNeg evaluates r = -a mod n (0 stays 0).
func ModNeg(ctx *MontgomeryCtx, r, a []uint64) {
	zero := make([]uint64, ctx.B)
	ModSub(ctx, r, zero, a)
}

// ModDbl evaluates r = 2*a mod n.
func ModDbl(ctx *MontgomeryCtx, r, a []uint64) {
	ModAdd(ctx, r, a, a)
}

// ModPow evaluates r = base^exp mod n (base and result in Montgomery
// form), via left-to-right square-and-multiply, mirroring
// ring.ModExpMontgomery generalized to a multi-limb exponent.
func ModPow(ctx *MontgomeryCtx, r, base, exp []uint64) {
	one := make([]uint64, ctx.B)
	ctx.ToMontgomery(one, []uint64{1})
	acc := append([]uint64(nil), one...)

	bitLen := RealSize(exp) * 64
	sq := make([]uint64, ctx.B)
	tmp := make([]uint64, ctx.B)
	for i := bitLen - 1; i >= 0; i-- {
		ctx.MontSqr(sq, acc)
		copy(acc, sq)
		if bitAt(exp, i) {
			ctx.MontMul(tmp, acc, base)
			copy(acc, tmp)
		}
	}
	copy(r, acc)
}

func bitAt(a []uint64, i int) bool {
	limb := i / 64
	if limb >= len(a) {
		return false
	}
	return (a[limb]>>(uint(i)%64))&1 == 1
}
