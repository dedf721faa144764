package bigint

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/ptrawinski/gofactor/utils/bignum"
	"github.com/stretchr/testify/require"
)

// toBig reconstructs the little-endian limb buffer as a math/big oracle
// value, the same role bignum.NewInt plays as a *big.Int convenience
// wrapper in the teacher's tests.
func toBig(limbs []uint64) *big.Int {
	x := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(limbs[i]))
	}
	return x
}

func randLimbs(t *testing.T, n int) []uint64 {
	t.Helper()
	limbs := make([]uint64, n)
	buf := make([]byte, 8)
	for i := range limbs {
		_, err := rand.Read(buf)
		require.NoError(t, err)
		for j := 0; j < 8; j++ {
			limbs[i] |= uint64(buf[j]) << (8 * j)
		}
	}
	return limbs
}

func TestAddSubRoundTrip(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		a := randLimbs(t, 4)
		b := randLimbs(t, 4)

		sum := make([]uint64, 5)
		Add(sum, a, b)
		require.Equal(t, new(big.Int).Add(toBig(a), toBig(b)), toBig(sum))

		back := make([]uint64, 5)
		neg := Sub(back, sum, b)
		require.False(t, neg)
		require.Equal(t, toBig(a), toBig(back[:4]))
	}
}

func TestSubNegativeFlag(t *testing.T) {
	a := []uint64{1, 0}
	b := []uint64{5, 0}
	r := make([]uint64, 2)
	neg := Sub(r, a, b)
	require.True(t, neg)
	require.Equal(t, bignum.NewInt(4), toBig(r))
}

func TestMulAgainstBig(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		a := randLimbs(t, 3)
		b := randLimbs(t, 2)
		r := make([]uint64, 5)
		Mul(r, a, b)
		require.Equal(t, new(big.Int).Mul(toBig(a), toBig(b)), toBig(r))
	}
}

func TestSqrAgainstMul(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		a := randLimbs(t, 3)
		sqr := make([]uint64, 6)
		Sqr(sqr, a)

		mul := make([]uint64, 6)
		Mul(mul, a, a)
		require.Equal(t, toBig(mul), toBig(sqr))
	}
}

func TestDivModAgainstBig(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		a := randLimbs(t, 4)
		b := randLimbs(t, 2)
		if IsZero(b) {
			continue
		}
		q := make([]uint64, 5)
		r := make([]uint64, 2)
		DivMod(q, r, a, b)

		wantQ, wantR := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
		require.Equal(t, wantQ, toBig(q), "trial %d quotient", trial)
		require.Equal(t, wantR, toBig(r), "trial %d remainder", trial)
	}
}

func TestShlShr(t *testing.T) {
	a := randLimbs(t, 3)
	for _, shift := range []uint{0, 1, 17, 64, 65, 127, 191} {
		shifted := make([]uint64, 4)
		overflow := Shl(shifted, append(append([]uint64(nil), a...), 0), shift)
		_ = overflow

		want := new(big.Int).Lsh(toBig(a), shift)
		want.And(want, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
		require.Equal(t, want, toBig(shifted))

		back := make([]uint64, 4)
		Shr(back, shifted, shift)
		require.Equal(t, new(big.Int).Rsh(want, shift), toBig(back))
	}
}

func TestGCD(t *testing.T) {
	a := []uint64{36, 0}
	b := []uint64{24, 0}
	r := make([]uint64, 2)
	GCD(r, a, b)
	require.Equal(t, uint64(12), r[0])
}

func TestGCD64(t *testing.T) {
	require.Equal(t, uint64(6), GCD64(54, 24))
	require.Equal(t, uint64(1), GCD64(17, 13))
	require.Equal(t, uint64(5), GCD64(0, 5))
}

func TestModInv64(t *testing.T) {
	inv, ok := ModInv64(3, 11)
	require.True(t, ok)
	require.Equal(t, uint64(4), inv) // 3*4 = 12 = 1 mod 11

	_, ok = ModInv64(2, 4)
	require.False(t, ok)
}
