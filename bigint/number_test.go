package bigint

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberDecimalRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "91", "2047", "10200011",
		strings.Repeat("9", 18),
		strings.Repeat("7", 19),
		strings.Repeat("3", 40),
		strings.Repeat("1", 153),
		strings.Repeat("1", 200),
	}
	for _, c := range cases {
		n, err := NewNumberFromDecimal(c)
		require.NoError(t, err, c)
		require.Equal(t, orZero(strings.TrimLeft(c, "0")), n.String(), c)
	}
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func TestNumberVariantSelection(t *testing.T) {
	n, err := NewNumberFromDecimal(strings.Repeat("9", 18))
	require.NoError(t, err)
	require.False(t, n.IsArb())

	n, err = NewNumberFromDecimal(strings.Repeat("9", 152))
	require.NoError(t, err)
	require.False(t, n.IsArb())
	require.Equal(t, Kind(MaxFixedWidth), n.Kind())

	n, err = NewNumberFromDecimal(strings.Repeat("9", 153))
	require.NoError(t, err)
	require.True(t, n.IsArb())
}

func TestNumberParseRejectsInvalid(t *testing.T) {
	_, err := NewNumberFromDecimal("12x4")
	require.Error(t, err)
	_, err = NewNumberFromDecimal("")
	require.Error(t, err)
}

func TestFitToSizeIdempotent(t *testing.T) {
	n, err := NewNumberFromDecimal("123456789012345678901234567890")
	require.NoError(t, err)
	before := append([]uint64(nil), n.Slice()...)
	n.FitToSize()
	n.FitToSize()
	require.Equal(t, before, n.Slice())
}

func TestNumberAgainstMathBig(t *testing.T) {
	for _, s := range []string{"123456789", "999999999999999999999999999999999999999999"} {
		n, err := NewNumberFromDecimal(s)
		require.NoError(t, err)
		want, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		require.Equal(t, want.String(), n.String())
	}
}
