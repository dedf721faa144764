package ecm

import (
	"math/bits"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/curve"
)

const bigScalarLimbs = 4 // 256 bits

// CascadeScalarsBig is MaxUntil256Overflow's batching: primes up to b1
// are multiplied into running products as large as a 256-bit
// accumulator can hold, grounded on cascadeMultiplication.h's
// ecmStage1Mul MaxUntil256Overflow branch. Scalars here can exceed a
// uint64, so they're returned as *bigint.Arb rather than through
// CascadeScalars' []uint64. The source's own copy of this branch inside
// createBytecode is commented out in its entirety, i.e. it was never
// wired to bytecode emission even experimentally — reflected here by
// this package exposing no Arb-accepting bytecode compiler, only Run's
// direct multiplication through doubleAndAddBig.
func CascadeScalarsBig(b1 uint64, primes []uint32) []*bigint.Arb {
	maxLimb := make([]uint64, bigScalarLimbs)
	maxLimb[0] = ^uint64(0)
	shifted := make([]uint64, bigScalarLimbs)
	bigint.Shl(shifted, maxLimb, 190)
	limit := bigint.NewArbFromLimbs(shifted)

	x := bigint.NewArb(bigScalarLimbs)
	x.SetLimbs([]uint64{1})
	y := bigint.NewArb(bigScalarLimbs)
	y.SetLimbs([]uint64{1})

	var out []*bigint.Arb
	for _, pr := range primes {
		prime := uint64(pr)
		if prime > b1 {
			break
		}
		primeArb := bigint.NewArbFromLimbs([]uint64{prime})

		p := prime
		for {
			y.Mul(y, primeArb)
			if bigint.Cmp(x.Slice(), y.Slice()) > 0 || bigint.Cmp(y.Slice(), limit.Slice()) > 0 {
				out = append(out, x.Copy())
				y.SetLimbs([]uint64{prime})
			}
			x.SetLimbs(y.Slice())
			p *= prime
			if p > b1 {
				break
			}
		}
	}
	out = append(out, x.Copy())
	return out
}

// doubleAndAddBig evaluates p = n*p via binary double-and-add for a
// scalar too wide for a uint64, the big-scalar generalization of
// scalarmul.DoubleAndAdd. Grounded the same way:
// original_source/.../multiplicationMethods/doubleAndAddMul.h's
// doubleAndAddMulX overload, the only multiplication method
// cascadeMulDoMultiplication's big-scalar path supports — every other
// method's big-scalar overload is an unconditional assertion failure in
// the source.
func doubleAndAddBig(c *curve.Curve, p *curve.Point, n *bigint.Arb) {
	limbs := n.Slice()
	if len(limbs) == 0 {
		return
	}

	top := len(limbs) - 1
	totalBits := top*64 + bits.Len64(limbs[top])
	if totalBits <= 1 {
		return
	}

	q := p.Copy()
	for i := totalBits - 2; i >= 0; i-- {
		c.Dbl(p, p)
		if limbs[i/64]>>(uint(i)%64)&1 != 0 {
			c.Add(p, p, q)
		}
	}
}
