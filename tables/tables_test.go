package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimesAreActuallyPrime(t *testing.T) {
	list := Primes(200)
	require.Len(t, list, 200)
	require.Equal(t, uint32(2), list[0])
	require.Equal(t, uint32(3), list[1])
	for _, p := range list {
		require.True(t, isPrime64(uint64(p)), "%d not prime", p)
	}
}

func TestPrimesAreSorted(t *testing.T) {
	list := Primes(1000)
	for i := 1; i < len(list); i++ {
		require.Less(t, list[i-1], list[i])
	}
}

func TestGrowIsIdempotentPrefix(t *testing.T) {
	a := Primes(50)
	Grow(500)
	b := Primes(50)
	require.Equal(t, a, b)
}

func TestPrimesUpTo(t *testing.T) {
	list := PrimesUpTo(100)
	require.Contains(t, list, uint32(97))
	require.NotContains(t, list, uint32(101))
}

func TestReciprocal(t *testing.T) {
	for _, p := range []uint32{3, 7, 997, 65537} {
		r := Inverse(p)
		require.Greater(t, r, uint64(0))
	}
}

func TestReciprocalDoubleNeverUnderestimates(t *testing.T) {
	for _, p := range []uint32{3, 7, 997, 65537} {
		r := InverseDouble(p)
		require.GreaterOrEqual(t, float64(p)*r, 1.0)
	}
}

func TestPowerMod(t *testing.T) {
	p := uint32(1000003)
	tbl := PowerMod(p)
	base := modPow64(2, 64, uint64(p))
	require.Equal(t, base, tbl[0])
	require.Equal(t, mulModWord(base, base, uint64(p)), tbl[1])
}

func TestFirstPrimesOfBitLength(t *testing.T) {
	row := FirstPrimesOfBitLength(3)
	require.Equal(t, uint64(5), row[0])
	require.Equal(t, uint64(7), row[1])

	zero := FirstPrimesOfBitLength(0)
	require.Equal(t, [PrimesPerBit]uint64{}, zero)
}

func TestIsPrime64(t *testing.T) {
	require.True(t, isPrime64(1000003))
	require.False(t, isPrime64(1000005))
	require.True(t, isPrime64(2))
	require.False(t, isPrime64(1))
}

func TestExtrapolateB1GrowsWithDigits(t *testing.T) {
	small := ExtrapolateB1(120)
	large := ExtrapolateB1(200)
	require.Greater(t, large, small)
	require.GreaterOrEqual(t, small, EscalationTable[len(EscalationTable)-1].B1)
}

func TestExtrapolateCurveCount(t *testing.T) {
	last := EscalationTable[len(EscalationTable)-1]
	c := ExtrapolateCurveCount(last.B1 * 2)
	require.Greater(t, c, last.CurveCount)
}
