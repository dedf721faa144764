package tables

import "sync"

// PrimesPerBit is the row width of spec.md 6.2's
// 100_first_primes_up_to_64_bits.dat: for each bit-length 0..64, the
// hundred smallest primes with exactly that many bits (rows 0 and 1 are
// padded with zeroes since no prime has 0 or 1 significant bits).
const PrimesPerBit = 100

var (
	firstPrimesMu    sync.Mutex
	firstPrimesTable [][PrimesPerBit]uint64
)

// FirstPrimesOfBitLength returns the hundred smallest primes whose value
// occupies exactly bitLen bits (1<<(bitLen-1) <= p < 1<<bitLen), or a
// zero-padded row for bitLen 0 or 1. bitLen must be in [0, 64].
func FirstPrimesOfBitLength(bitLen int) [PrimesPerBit]uint64 {
	firstPrimesMu.Lock()
	defer firstPrimesMu.Unlock()
	if firstPrimesTable == nil {
		firstPrimesTable = buildFirstPrimesTable()
	}
	return firstPrimesTable[bitLen]
}

func buildFirstPrimesTable() [][PrimesPerBit]uint64 {
	rows := make([][PrimesPerBit]uint64, 65)
	for b := 2; b <= 64; b++ {
		lo := uint64(1) << uint(b-1)
		hi := uint64(1)<<uint(b) - 1
		if b == 64 {
			hi = ^uint64(0)
		}
		found := 0
		for n := lo; n <= hi && found < PrimesPerBit; n++ {
			if isPrime64(n) {
				rows[b][found] = n
				found++
			}
			if n == hi {
				break
			}
		}
	}
	return rows
}

// isPrime64 is a deterministic Miller-Rabin primality test valid for the
// full uint64 range using the witness set {2,3,5,7,11,13,17,19,23,29,31,37}
// (Pomerance-Selfridge-Wagstaff strong pseudoprime bound for n < 3.3*10^24).
func isPrime64(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37} {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	d := n - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}
	for _, a := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37} {
		if !mrWitness(a, d, s, n) {
			return false
		}
	}
	return true
}

func mrWitness(a, d uint64, s int, n uint64) bool {
	x := modPow64(a%n, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = mulModWord(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}
