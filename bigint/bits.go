package bigint

import "math/bits"

// trailingZeros64 returns the number of trailing zero bits of x, 64 if x == 0.
//
// Grounded on original_source/src/Utility/bitManipulation.h.
func trailingZeros64(x uint64) int {
	return bits.TrailingZeros64(x)
}

// isPowerOfTwo reports whether x is a power of two. 0 is not.
func isPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// bitLen64 returns the number of bits required to represent x, 0 for x == 0.
func bitLen64(x uint64) int {
	return bits.Len64(x)
}
