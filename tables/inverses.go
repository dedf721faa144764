package tables

import (
	"math"
	"math/bits"
	"sync"
)

// reciprocal computes the 64-bit reciprocal spec.md 6.2 names for a divisor
// d: (2^(64+l-1) - d*floor(2^(64+l-1)/d)) / d + 1, where l = ceil(log2 d).
// It backs the wheel sieve's multiply-high fast-mod check for each cached
// prime divisor, grounded on ring.GetMRedConstant's reciprocal trick
// generalized from a fixed 64-bit modulus to an arbitrary divisor.
func reciprocal(d uint32) uint64 {
	if d == 0 {
		return 0
	}
	l := bits.Len32(d - 1)
	if d == 1 {
		l = 0
	}
	shift := uint(64 + l - 1)
	var hi, lo uint64
	if shift >= 64 {
		hi = uint64(1) << (shift - 64)
	} else {
		lo = uint64(1) << shift
	}
	q, _ := bits.Div64(hi, lo, uint64(d))
	return q + 1
}

// reciprocalDouble returns the IEEE-754 double reciprocal of d, rounded up
// so that d*reciprocalDouble(d) never underestimates 1.0 (spec.md 6.2,
// Multiplicative_Inverses_Double.dat).
func reciprocalDouble(d uint32) float64 {
	r := 1.0 / float64(d)
	for float64(d)*r < 1.0 {
		r = nextFloatUp(r)
	}
	return r
}

func nextFloatUp(f float64) float64 {
	if f == 0 {
		return math.Float64frombits(1)
	}
	bits64 := math.Float64bits(f)
	if f > 0 {
		bits64++
	} else {
		bits64--
	}
	return math.Float64frombits(bits64)
}

var (
	inverseMu    sync.Mutex
	inverseCache map[uint32]uint64
	doubleCache  map[uint32]float64
)

func init() {
	inverseCache = make(map[uint32]uint64, DefaultPrimeCount)
	doubleCache = make(map[uint32]float64, DefaultPrimeCount)
}

// Inverse returns the 64-bit reciprocal for prime p, computing and caching
// it on first use.
func Inverse(p uint32) uint64 {
	inverseMu.Lock()
	defer inverseMu.Unlock()
	if v, ok := inverseCache[p]; ok {
		return v
	}
	v := reciprocal(p)
	inverseCache[p] = v
	return v
}

// InverseDouble returns the floating-point reciprocal for prime p.
func InverseDouble(p uint32) float64 {
	inverseMu.Lock()
	defer inverseMu.Unlock()
	if v, ok := doubleCache[p]; ok {
		return v
	}
	v := reciprocalDouble(p)
	doubleCache[p] = v
	return v
}
