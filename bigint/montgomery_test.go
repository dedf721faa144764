package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func modCtxFixture(t *testing.T, mod uint64) (*MontgomeryCtx, *big.Int) {
	t.Helper()
	ctx, err := NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)
	return ctx, new(big.Int).SetUint64(mod)
}

func TestMontgomeryRoundTrip(t *testing.T) {
	for _, mod := range []uint64{1000003, 0xFFFFFFFB, 3} {
		ctx, modBig := modCtxFixture(t, mod)
		for _, x := range []uint64{0, 1, 5, mod - 1, mod / 2} {
			r := make([]uint64, ctx.B)
			mform := make([]uint64, ctx.B)
			ctx.ToMontgomery(mform, []uint64{x})
			ctx.FromMontgomery(r, mform)
			require.Equal(t, x%mod, r[0], "mod=%d x=%d", mod, x)
		}
		_ = modBig
	}
}

func TestMontMulAgreesWithSchoolbookMod(t *testing.T) {
	mod := uint64(1000003)
	ctx, modBig := modCtxFixture(t, mod)

	for _, pair := range [][2]uint64{{123456, 654321}, {1, 1}, {mod - 1, mod - 1}, {0, 999999}} {
		a, b := pair[0], pair[1]

		am := make([]uint64, ctx.B)
		bm := make([]uint64, ctx.B)
		ctx.ToMontgomery(am, []uint64{a})
		ctx.ToMontgomery(bm, []uint64{b})

		prodMont := make([]uint64, ctx.B)
		ctx.MontMul(prodMont, am, bm)

		got := make([]uint64, ctx.B)
		ctx.FromMontgomery(got, prodMont)

		want := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)), modBig)
		require.Equal(t, want.Uint64(), got[0])
	}
}

func TestBarrettReduceAgreesWithSchoolbookMod(t *testing.T) {
	mod := []uint64{1000003}
	ctx := NewBarrettCtx(mod)

	a := []uint64{0xFFFFFFFFFFFFFFFF, 0xFF}
	r := make([]uint64, 1)
	ctx.Reduce(r, a)

	q := make([]uint64, len(a))
	rem := make([]uint64, 1)
	DivMod(q, rem, a, mod)
	require.Equal(t, rem[0], r[0])
}
