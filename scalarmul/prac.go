package scalarmul

import "github.com/ptrawinski/gofactor/curve"

const (
	montgomeryAddCost = 6.0 // multiplications in a diffAdd
	montgomeryDblCost = 5.0 // multiplications in a dbl
)

// lucasCost estimates the multiplication cost of evaluating n*P via PRAC
// with continued-fraction ratio v, grounded on
// original_source/.../multiplicationMethods/pracMul.h's lucasCost.
func lucasCost(n uint64, v float64) float64 {
	d := n
	r := uint64(float64(d)*v + 0.5)
	if r >= n {
		return montgomeryAddCost * float64(n)
	}
	d = n - r
	e := 2*r - n
	cost := montgomeryDblCost + montgomeryAddCost

	for d != e {
		if d < e {
			d, e = e, d
		}
		switch {
		case d-e <= e/4 && (d+e)%3 == 0:
			d = (2*d - e) / 3
			e = (e - d) / 2
			cost += 3 * montgomeryAddCost
		case d-e <= e/4 && (d-e)%6 == 0:
			d = (d - e) / 2
			cost += montgomeryAddCost + montgomeryDblCost
		case (d+3)/4 <= e:
			d -= e
			cost += montgomeryAddCost
		case (d+e)%2 == 0:
			d = (d - e) / 2
			cost += montgomeryAddCost + montgomeryDblCost
		case d%2 == 0:
			d /= 2
			cost += montgomeryAddCost + montgomeryDblCost
		case d%3 == 0:
			d = d/3 - e
			cost += 3*montgomeryAddCost + montgomeryDblCost
		case (d+e)%3 == 0:
			d = (d - 2*e) / 3
			cost += 3*montgomeryAddCost + montgomeryDblCost
		case (d-e)%3 == 0:
			d = (d - e) / 3
			cost += 3*montgomeryAddCost + montgomeryDblCost
		default:
			e /= 2
			cost += montgomeryAddCost + montgomeryDblCost
		}
	}
	return cost
}

// pracRatios are the ten precomputed v seeds spec 4.5 names: 1/val[0] is
// the golden ratio, 1/val[i] for i>0 is the real number whose continued
// fraction is all 1s except a 2 in the (i+1)-th place, grounded on
// pracMul.h's val table.
var pracRatios = [10]float64{
	0.61803398874989485, 0.72360679774997897, 0.58017872829546410,
	0.63283980608870629, 0.61242994950949500, 0.62018198080741576,
	0.61721461653440386, 0.61834711965622806, 0.61791440652881789,
	0.61807966846989581,
}

// rotate3 performs the circular permutation a<-b<-c<-a on the X,Z
// field-element slices (newA=oldB, newB=oldC, newC=oldA), grounded on
// pracMul.h's two "circular permutation" steps (conditions 3 and 6),
// which reduce to this same rotation despite being written with their
// operands in different textual order.
func rotate3(a, b, c *curve.Point) {
	tmpX, tmpZ := a.X, a.Z
	a.X, a.Z = b.X, b.Z
	b.X, b.Z = c.X, c.Z
	c.X, c.Z = tmpX, tmpZ
}

// PRAC evaluates p = k*p on a Montgomery-XZ curve via a Lucas addition
// chain (Montgomery 1992, rules 1-9), choosing the best of the ten
// precomputed v ratios by simulated cost, grounded on
// pracMul.h's prac().
func PRAC(c *curve.Curve, p *curve.Point, k uint64) {
	if c.Form != curve.MontgomeryXZ {
		panic("scalarmul: PRAC is only defined on Montgomery-XZ curves")
	}

	if k == 0 {
		identityInto(c, p)
		return
	}
	if k == 1 {
		return
	}
	if k == 2 { // the Lucas-chain recurrence below does not terminate for k=2
		c.MontDbl(p, p)
		return
	}

	const nv = 10
	limbs := c.Ctx.B
	tries := nv
	if limbs < tries {
		tries = limbs
	}
	if tries < 1 {
		tries = 1
	}

	best := 0
	if tries > 1 {
		cmin := montgomeryAddCost * float64(k)
		for i := 0; i < tries; i++ {
			cost := lucasCost(k, pracRatios[i])
			if cost < cmin {
				cmin = cost
				best = i
			}
		}
	}

	d := k
	r := uint64(float64(d)*pracRatios[best] + 0.5)
	d = k - r
	e := 2*r - k

	A := p
	B := p.Copy()
	C := p.Copy()
	T := p.Copy()
	U := p.Copy()

	c.MontDbl(A, A) // A = 2*A

	for d != e {
		if d < e {
			d, e = e, d
			curve.Swap(A, B)
		}

		switch {
		case d-e <= e/4 && (d+e)%3 == 0: // rule 1
			d = (2*d - e) / 3
			e = (e - d) / 2
			c.DiffAdd(T, A, B, C)
			c.DiffAdd(U, T, A, B)
			c.DiffAdd(B, B, T, A)
			curve.Swap(A, U)

		case d-e <= e/4 && (d-e)%6 == 0: // rule 2
			d = (d - e) / 2
			c.DiffAdd(B, A, B, C)
			c.MontDbl(A, A)

		case (d+3)/4 <= e: // rule 3
			d -= e
			c.DiffAdd(T, B, A, C)
			rotate3(B, T, C)

		case (d+e)%2 == 0: // rule 4
			d = (d - e) / 2
			c.DiffAdd(B, B, A, C)
			c.MontDbl(A, A)

		case d%2 == 0: // rule 5
			d /= 2
			c.DiffAdd(C, C, A, B)
			c.MontDbl(A, A)

		case d%3 == 0: // rule 6
			d = d/3 - e
			c.MontDbl(T, A)
			c.DiffAdd(U, A, B, C)
			c.DiffAdd(A, T, A, A)
			c.DiffAdd(T, T, U, C)
			rotate3(B, T, C)

		case (d+e)%3 == 0: // rule 7
			d = (d - 2*e) / 3
			c.DiffAdd(T, A, B, C)
			c.DiffAdd(B, T, A, B)
			c.MontDbl(T, A)
			c.DiffAdd(A, A, T, A)

		case (d-e)%3 == 0: // rule 8
			d = (d - e) / 3
			c.DiffAdd(T, A, B, C)
			c.DiffAdd(C, C, A, B)
			curve.Swap(B, T)
			c.MontDbl(T, A)
			c.DiffAdd(A, A, T, A)

		default: // rule 9: necessarily e is even here
			e /= 2
			c.DiffAdd(C, C, B, A)
			c.MontDbl(B, B)
		}
	}

	c.DiffAdd(A, A, B, C)
	p.Set(A)
}
