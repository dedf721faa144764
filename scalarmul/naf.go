package scalarmul

import "github.com/ptrawinski/gofactor/curve"

// wnaf computes e's width-w non-adjacent form as a little-endian digit
// sequence, grounded on
// original_source/.../multiplicationMethods/wnafMul.h's wnaf<w>. Includes
// the source's noted optimization that rewrites a trailing (...,-1,0,1)
// pattern into (...,1,1), which is not "true" NAF but composes more
// simply with the table-lookup evaluator (see DESIGN.md's Open Question
// on NAF rewrite timing — this implementation performs the rewrite
// inline, at the moment the top digit would be appended; the digits are
// the same as a post-pass over the top three digits would give).
func wnaf(e int64, w int64) []int8 {
	var z []int8
	for e > 0 {
		if e%2 == 1 {
			zi := e % (1 << w)
			if w > 1 && zi >= (1<<(w-1)) {
				zi -= 1 << w
			}
			if e == 1 && len(z) >= 2 && z[len(z)-2] == -1 {
				z[len(z)-2] = 1
				z[len(z)-1] = 1
			} else {
				z = append(z, int8(zi))
			}
			e -= zi
		} else {
			z = append(z, 0)
		}
		e /= 2
	}
	return z
}

// absoluteMaxNaf returns the largest absolute digit value appearing in
// naf (always odd, at least 1).
func absoluteMaxNaf(naf []int8) int {
	max := 1
	for _, d := range naf {
		v := int(d)
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// nafDblAddCounts returns the number of doublings and additions nafMul/
// wnafMul would perform to evaluate naf, grounded on wnafMul.h's
// nafDblAddCounts.
func nafDblAddCounts(naf []int8) (dblCount, addCount int) {
	top := len(naf) - 1
	dblCount = len(naf) - 1
	if naf[top] != 1 {
		dblCount++
	}
	addCount = (absoluteMaxNaf(naf)+1)/2 - 1
	for i := 0; i < top; i++ {
		if naf[i] != 0 {
			addCount++
		}
	}
	return
}

// nafCost scores a NAF digit sequence given per-curve-form operation
// costs, grounded on wnafMul.h's nafCost: intermediate table-building
// doublings/additions are costed separately from the final evaluation's.
func nafCost(naf []int8, dblCost, addCost, intermediateDblCost, intermediateAddCost int) int {
	dblCount, addCount := nafDblAddCounts(naf)
	return intermediateDblCost*(dblCount-addCount) + dblCost*addCount +
		intermediateAddCost*(addCount-1) + addCost
}

// NAF evaluates p = n*p using width-2 non-adjacent form, grounded on
// wnafMul.h's nafMul.
func NAF(c *curve.Curve, p *curve.Point, n uint64) {
	if n == 0 {
		identityInto(c, p)
		return
	}
	if n == 1 {
		return
	}

	digits := wnaf(int64(n), 2)
	q := p.Copy()
	for i := len(digits) - 2; i >= 0; i-- {
		c.Dbl(p, p)
		switch digits[i] {
		case 1:
			c.Add(p, p, q)
		case -1:
			c.Sub(p, p, q)
		}
	}
}

// WNAF evaluates p = n*p using width-w non-adjacent form for
// w in {3,4,5,6}, grounded on wnafMul.h's wnafMul. Builds a table of odd
// multiples 1*p, 3*p, ..., via repeated addition of 2*p.
func WNAF(c *curve.Curve, p *curve.Point, n uint64, w int) {
	if n == 0 {
		identityInto(c, p)
		return
	}
	if n == 1 {
		return
	}
	if w < 3 || w > 6 {
		panic("scalarmul: WNAF requires w in [3,6]")
	}

	digits := wnaf(int64(n), int64(w))
	tableSize := (absoluteMaxNaf(digits) + 1) / 2

	table := make([]*curve.Point, tableSize)
	table[0] = p.Copy()
	c.Dbl(p, p)
	for i := 1; i < tableSize; i++ {
		table[i] = table[i-1].Copy()
		c.Add(table[i], table[i], p)
	}

	start := len(digits) - 3
	if digits[len(digits)-1] != 1 {
		start++
		p.Set(table[(digits[len(digits)-1]-1)/2])
	}
	for i := start; i >= 0; i-- {
		c.Dbl(p, p)
		d := digits[i]
		switch {
		case d > 0:
			c.Add(p, p, table[(d-1)/2])
		case d < 0:
			c.Sub(p, p, table[(-d-1)/2])
		}
	}
}
