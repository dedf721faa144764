package curve

import (
	"math/big"
	"testing"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/stretchr/testify/require"
)

// affine converts a projective short-Weierstrass point back to affine
// coordinates via a math/big oracle inverse, for comparison against
// hand-verified textbook values.
func affine(t *testing.T, ctx *bigint.MontgomeryCtx, p *Point) (x, y uint64) {
	t.Helper()
	xPlain := make([]uint64, ctx.B)
	yPlain := make([]uint64, ctx.B)
	zPlain := make([]uint64, ctx.B)
	ctx.FromMontgomery(xPlain, p.X)
	ctx.FromMontgomery(yPlain, p.Y)
	ctx.FromMontgomery(zPlain, p.Z)

	mod := new(big.Int).SetUint64(ctx.Mod[0])
	zInv := new(big.Int).ModInverse(new(big.Int).SetUint64(zPlain[0]), mod)
	require.NotNil(t, zInv, "z not invertible")

	xAff := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).SetUint64(xPlain[0]), zInv), mod)
	yAff := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).SetUint64(yPlain[0]), zInv), mod)
	return xAff.Uint64(), yAff.Uint64()
}

// TestShortWeierstrassDbl checks 2*(3,6) = (80,10) on y^2 = x^3+2x+3
// mod 97, the textbook curve from Stallings' Cryptography and Network
// Security, verified independently against the curve equation for both
// points before being pinned here.
func TestShortWeierstrassDbl(t *testing.T) {
	ctx, err := bigint.NewMontgomeryCtx([]uint64{97})
	require.NoError(t, err)

	a := ctx.GetConstant(2)
	c := NewShortWeierstrass(ctx, a)

	p := c.NewPoint()
	ctx.ToMontgomery(p.X, []uint64{3})
	ctx.ToMontgomery(p.Y, []uint64{6})
	ctx.ToMontgomery(p.Z, []uint64{1})

	r := c.NewPoint()
	c.Dbl(r, p)

	x, y := affine(t, ctx, r)
	require.Equal(t, uint64(80), x)
	require.Equal(t, uint64(10), y)
}

func TestMontgomeryDblDiffAddConsistency(t *testing.T) {
	ctx, err := bigint.NewMontgomeryCtx([]uint64{1000003})
	require.NoError(t, err)

	c, p, err := GenerateMontgomery(ctx, 6)
	require.NoError(t, err)
	require.False(t, bigint.IsZero(p.Z))

	twoP := c.NewPoint()
	c.MontDbl(twoP, p)
	require.False(t, bigint.IsZero(twoP.Z))

	threeP := c.NewPoint()
	c.DiffAdd(threeP, twoP, p, p)
	require.False(t, bigint.IsZero(threeP.Z))
}

func TestGenerateEdwardsProducesNonDegeneratePoint(t *testing.T) {
	ctx, err := bigint.NewMontgomeryCtx([]uint64{1000003})
	require.NoError(t, err)

	c, p, err := GenerateEdwards(ctx, 11)
	require.NoError(t, err)
	require.Equal(t, TwistedEdwards, c.Form)
	require.False(t, bigint.IsZero(p.Z))
}

func TestEdwardsDblMatchesTplComposition(t *testing.T) {
	ctx, err := bigint.NewMontgomeryCtx([]uint64{1000003})
	require.NoError(t, err)

	c, p, err := GenerateEdwards(ctx, 7)
	require.NoError(t, err)

	two := c.NewPoint()
	c.Dbl(two, p)

	twoPlusP := c.NewPoint()
	c.Add(twoPlusP, two, p)

	tpl := c.NewPoint()
	c.Tpl(tpl, p)

	// Both sides compute 3p; compare as projective-equivalence via
	// cross-multiplication (X1*Z2 == X2*Z1) rather than requiring
	// identical representatives.
	lhs := make([]uint64, ctx.B)
	rhs := make([]uint64, ctx.B)
	ctx.MontMul(lhs, twoPlusP.X, tpl.Z)
	ctx.MontMul(rhs, tpl.X, twoPlusP.Z)
	require.Equal(t, rhs, lhs)
}
