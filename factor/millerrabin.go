package factor

import (
	"crypto/rand"
	"math/big"

	"github.com/ptrawinski/gofactor/bigint"
)

// IsProbablyPrime runs k rounds of Miller-Rabin with randomized bases in
// [2, n-2], grounded on millerRabin.h's millerRabinTest. n is plain
// (non-Montgomery) limbs; modCtx must be n's own Montgomery context
// (what bigint.Number.MontgomeryCtx returns, treating n as modulus).
func IsProbablyPrime(n []uint64, modCtx *bigint.MontgomeryCtx, k int) bool {
	if bigint.RealSize(n) == 0 {
		return false
	}
	if bigint.Cmp(n, []uint64{2}) == 0 || bigint.Cmp(n, []uint64{3}) == 0 {
		return true
	}
	if n[0]&1 == 0 {
		return false
	}

	b := modCtx.B
	nMinus1 := make([]uint64, b)
	bigint.Sub(nMinus1, n, []uint64{1})

	// n - 1 = 2^s * d, d odd.
	d := append([]uint64(nil), nMinus1...)
	s := 0
	for bigint.RealSize(d) > 0 && d[0]&1 == 0 {
		bigint.Shr(d, d, 1)
		s++
	}

	one := modCtx.GetConstant(1)
	nMinus1Mont := make([]uint64, b)
	modCtx.ToMontgomery(nMinus1Mont, nMinus1)

	nBig := limbsToBig(n)
	upper := new(big.Int).Sub(nBig, big.NewInt(4)) // a uniform in [2, n-2] == 2 + uniform in [0, n-4]

	x := make([]uint64, b)
	aMont := make([]uint64, b)
	for i := 0; i < k; i++ {
		a := randomBase(upper)
		aLimbs := bigToLimbs(a, b)
		modCtx.ToMontgomery(aMont, aLimbs)

		bigint.ModPow(modCtx, x, aMont, d)

		if bigint.Cmp(x, one) == 0 || bigint.Cmp(x, nMinus1Mont) == 0 {
			continue
		}

		witness := true
		for j := 0; j < s-1; j++ {
			modCtx.MontSqr(x, x)
			if bigint.Cmp(x, one) == 0 {
				return false
			}
			if bigint.Cmp(x, nMinus1Mont) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// randomBase draws a uniform value in [2, 2+upper] via crypto/rand,
// matching the teacher's convention for cryptographic-quality random
// big integers (utils/bignum's own rand.Int usage).
func randomBase(upper *big.Int) *big.Int {
	r, err := rand.Int(rand.Reader, new(big.Int).Add(upper, big.NewInt(1)))
	if err != nil {
		panic(err)
	}
	return r.Add(r, big.NewInt(2))
}

func limbsToBig(limbs []uint64) *big.Int {
	bytes := make([]byte, len(limbs)*8)
	for i, w := range limbs {
		for j := 0; j < 8; j++ {
			bytes[len(bytes)-1-(i*8+j)] = byte(w >> (8 * j))
		}
	}
	return new(big.Int).SetBytes(bytes)
}

func bigToLimbs(x *big.Int, width int) []uint64 {
	bytes := x.Bytes()
	limbs := make([]uint64, width)
	for i, b := range bytes {
		pos := len(bytes) - 1 - i
		limbs[pos/8] |= uint64(b) << (8 * uint(pos%8))
	}
	return limbs
}
