package ecm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/bytecode"
	"github.com/ptrawinski/gofactor/curve"
)

func TestCascadeScalarsSeparateB1Eleven(t *testing.T) {
	got := CascadeScalars(11, Separate, false)
	require.Equal(t, []uint64{2, 2, 2, 3, 3, 5, 7, 11}, got)
}

func TestCascadeScalarsPowersB1Eleven(t *testing.T) {
	got := CascadeScalars(11, Powers, false)
	require.Equal(t, []uint64{8, 9, 5, 7, 11}, got)
}

func TestCascadeScalarsMaxUntilOverflowB1Eleven(t *testing.T) {
	got := CascadeScalars(11, MaxUntilOverflow, false)
	require.NotEmpty(t, got)
	product := uint64(1)
	for _, s := range got {
		product *= s
	}
	require.Equal(t, uint64(27720), product)
}

func TestCascadeScalarsPracPreambleSkipsTwoAndThree(t *testing.T) {
	withPreamble := CascadeScalars(11, Separate, true)
	without := CascadeScalars(11, Separate, false)
	require.Less(t, len(withPreamble), len(without))
	for _, s := range withPreamble {
		require.NotEqual(t, uint64(2), s)
		require.NotEqual(t, uint64(3), s)
	}
}

func TestCascadeScalarsBigCoversAllPrimesUpToB1(t *testing.T) {
	b1 := uint64(200)
	primes := make([]uint32, 0)
	for _, p := range []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199} {
		primes = append(primes, p)
	}
	scalars := CascadeScalarsBig(b1, primes)
	require.NotEmpty(t, scalars)
	for _, s := range scalars {
		require.False(t, bigint.IsZero(s.Slice()))
	}
}

func TestDoubleAndAddBigMatchesRepeatedAdd(t *testing.T) {
	mod := uint64(1000003)
	modCtx, err := bigint.NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)
	c, p, err := curve.GenerateMontgomery(modCtx, 6)
	require.NoError(t, err)

	n := bigint.NewArbFromLimbs([]uint64{37})

	got := p.Copy()
	doubleAndAddBig(c, got, n)

	want := p.Copy()
	for i := uint64(1); i < 37; i++ {
		c.Add(want, want, p)
	}

	require.Equal(t, want.X, got.X)
	require.Equal(t, want.Z, got.Z)
}

func TestRunFindsFactorOfLenstraExample(t *testing.T) {
	// 455839 = 599 * 761, the worked example from Lenstra's original paper.
	mod := uint64(455839)
	modCtx, err := bigint.NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)

	ctx := &Context{
		MulMethod:        bytecode.DoubleAndAdd,
		MulCascadeMethod: Separate,
		Form:             curve.TwistedEdwards,
		B1:               1000,
		B2:               1000,
		CurveCount:       50,
		InitialCurveSeed: 2,
	}

	factor, err := Run(ctx, modCtx)
	require.NoError(t, err)
	require.False(t, bigint.IsZero(factor))

	f := factor[0]
	require.True(t, f == 599 || f == 761, "factor=%d", f)
}

func TestRunReturnsOneWhenCurveCountExhausted(t *testing.T) {
	mod := uint64(1000003) // prime: no factor to find
	modCtx, err := bigint.NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)

	ctx := &Context{
		MulMethod:        bytecode.DoubleAndAdd,
		MulCascadeMethod: Separate,
		Form:             curve.TwistedEdwards,
		B1:               50,
		B2:               50,
		CurveCount:       3,
		InitialCurveSeed: 2,
	}

	factor, err := Run(ctx, modCtx)
	require.NoError(t, err)
	require.Equal(t, plainOne(modCtx.B), factor)
}

func TestRunRejectsMaxUntil256OverflowWithoutExperimentalFlag(t *testing.T) {
	mod := uint64(455839)
	modCtx, err := bigint.NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)

	ctx := &Context{
		MulMethod:        bytecode.DoubleAndAdd,
		MulCascadeMethod: MaxUntil256Overflow,
		Form:             curve.TwistedEdwards,
		B1:               1000,
		B2:               1000,
		CurveCount:       1,
	}

	_, err = Run(ctx, modCtx)
	require.Error(t, err)
}

func TestRunStageTwoRejectsPrac(t *testing.T) {
	mod := uint64(455839)
	modCtx, err := bigint.NewMontgomeryCtx([]uint64{mod})
	require.NoError(t, err)
	c, p, err := curve.GenerateMontgomery(modCtx, 6)
	require.NoError(t, err)

	ctx := &Context{MulMethod: bytecode.Prac, B1: 100, B2: 200}
	_, err = runStageTwo(ctx, modCtx, c, p)
	require.Error(t, err)
}
