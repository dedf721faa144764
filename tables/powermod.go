package tables

import (
	"math/bits"
	"sync"
)

// PowerModDegree is the exponent count spec.md 6.2's Power_Mod_Table_8.dat
// carries per prime: (2^64 mod p)^i mod p for i=1..7.
const PowerModDegree = 7

var (
	powerModMu    sync.Mutex
	powerModCache map[uint32]*[PowerModDegree]uint64
)

func init() {
	powerModCache = make(map[uint32]*[PowerModDegree]uint64, DefaultPrimeCount)
}

// PowerMod returns the seven values (2^64 mod p)^i mod p for i=1..7,
// computed lazily and cached per prime.
func PowerMod(p uint32) *[PowerModDegree]uint64 {
	powerModMu.Lock()
	defer powerModMu.Unlock()
	if v, ok := powerModCache[p]; ok {
		return v
	}
	v := computePowerMod(p)
	powerModCache[p] = v
	return v
}

func computePowerMod(p uint32) *[PowerModDegree]uint64 {
	var out [PowerModDegree]uint64
	base := modPow64(2, 64, uint64(p))
	acc := uint64(1)
	for i := 0; i < PowerModDegree; i++ {
		acc = mulModWord(acc, base, uint64(p))
		out[i] = acc
	}
	return &out
}

// modPow64 computes base^exp mod m via right-to-left square-and-multiply,
// the word-granularity counterpart of bigint.ModPow.
func modPow64(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulModWord(result, base, m)
		}
		base = mulModWord(base, base, m)
		exp >>= 1
	}
	return result
}

// mulModWord computes a*b mod m for 64-bit a, b, m using 128-bit
// intermediate math (bits.Mul64/Div64), avoiding overflow.
func mulModWord(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi%m, lo, m)
	return r
}
