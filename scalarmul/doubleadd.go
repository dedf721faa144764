package scalarmul

import "github.com/ptrawinski/gofactor/curve"

// mostSignificantBit returns a bitmask with only n's highest set bit on
// (1 for n==1, 0 for n==0), matching
// original_source/Utility/bitManipulation.h's mostSignificantBit, which
// returns the mask 1<<highBit rather than the bit's index.
func mostSignificantBit(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	mask := uint64(1)
	for n > 1 {
		n >>= 1
		mask <<= 1
	}
	return mask
}

// DoubleAndAdd evaluates p = n*p via left-to-right binary double-and-add,
// grounded on
// original_source/.../multiplicationMethods/doubleAndAddMul.h's
// doubleAndAddMul.
func DoubleAndAdd(c *curve.Curve, p *curve.Point, n uint64) {
	if n == 0 {
		identityInto(c, p)
		return
	}
	if n == 1 {
		return
	}

	q := p.Copy()
	for i := mostSignificantBit(n) >> 1; i > 0; i >>= 1 {
		c.Dbl(p, p)
		if n&i != 0 {
			c.Add(p, p, q)
		}
	}
}

func identityInto(c *curve.Curve, p *curve.Point) {
	for _, s := range [][]uint64{p.X, p.Y, p.Z, p.T} {
		for i := range s {
			s[i] = 0
		}
	}
	one := make([]uint64, c.Ctx.B)
	c.Ctx.ToMontgomery(one, []uint64{1})
	if c.Form == curve.ShortWeierstrass {
		copy(p.Y, one)
	} else if c.Form == curve.TwistedEdwards {
		copy(p.Y, one)
		copy(p.Z, one)
	}
}
