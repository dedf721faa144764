package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModAddSubAgainstBig(t *testing.T) {
	mod := uint64(1000003)
	ctx, modBig := modCtxFixture(t, mod)

	for _, pair := range [][2]uint64{{5, 7}, {0, 0}, {mod - 1, 1}, {mod - 1, mod - 1}, {500000, 999999}} {
		a, b := pair[0], pair[1]
		r := make([]uint64, ctx.B)
		ModAdd(ctx, r, []uint64{a}, []uint64{b})
		want := new(big.Int).Mod(new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b))), modBig)
		require.Equal(t, want.Uint64(), r[0], "add %d+%d", a, b)

		ModSub(ctx, r, []uint64{a}, []uint64{b})
		wantSub := new(big.Int).Mod(new(big.Int).Sub(big.NewInt(int64(a)), big.NewInt(int64(b))), modBig)
		require.Equal(t, wantSub.Uint64(), r[0], "sub %d-%d", a, b)
	}
}

func TestModNegDbl(t *testing.T) {
	mod := uint64(97)
	ctx, modBig := modCtxFixture(t, mod)

	r := make([]uint64, ctx.B)
	ModNeg(ctx, r, []uint64{40})
	require.Equal(t, uint64(57), r[0])

	ModDbl(ctx, r, []uint64{40})
	want := new(big.Int).Mod(big.NewInt(80), modBig)
	require.Equal(t, want.Uint64(), r[0])
}

func TestModPowAgainstBig(t *testing.T) {
	mod := uint64(1000003)
	ctx, modBig := modCtxFixture(t, mod)

	base, exp := uint64(12345), uint64(6789)
	baseM := make([]uint64, ctx.B)
	ctx.ToMontgomery(baseM, []uint64{base})

	rM := make([]uint64, ctx.B)
	ModPow(ctx, rM, baseM, []uint64{exp})

	r := make([]uint64, ctx.B)
	ctx.FromMontgomery(r, rM)

	want := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), modBig)
	require.Equal(t, want.Uint64(), r[0])
}
