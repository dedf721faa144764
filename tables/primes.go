package tables

import (
	"math"
	"sync"
)

// DefaultPrimeCount is the table size computed eagerly at init(), chosen to
// keep process start sub-second; 100,000 primes reach 1,299,709, which
// covers the lower tiers of the factor package's escalation table but not
// the larger B1/B2 bounds. Grow extends the table on demand for
// callers that need more (spec 6.2 names a million-entry table; this
// package defaults smaller and grows lazily instead of shipping an ~8MB
// blob, see DESIGN.md).
const DefaultPrimeCount = 100_000

var (
	mu     sync.Mutex
	primes []uint32
)

func init() {
	Grow(DefaultPrimeCount)
}

// Grow ensures the prime table holds at least n entries, sieving further
// if needed. Safe to call concurrently; the table is append-only.
func Grow(n int) {
	mu.Lock()
	defer mu.Unlock()
	growLocked(n)
}

func growLocked(n int) {
	if len(primes) >= n {
		return
	}
	bound := nthPrimeUpperBound(n)
	primes = sieveUpTo(bound)
	for len(primes) < n {
		bound *= 2
		primes = sieveUpTo(bound)
	}
}

// nthPrimeUpperBound returns an upper bound on the n-th prime (1-indexed),
// using the classical bound p_n <= n*(ln n + ln ln n) for n >= 6.
func nthPrimeUpperBound(n int) uint64 {
	if n < 6 {
		return 15
	}
	fn := float64(n)
	bound := fn * (math.Log(fn) + math.Log(math.Log(fn)))
	return uint64(bound) + 16
}

// sieveUpTo returns every prime <= bound via a plain sieve of Eratosthenes.
func sieveUpTo(bound uint64) []uint32 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	var out []uint32
	for i := uint64(2); i <= bound; i++ {
		if composite[i] {
			continue
		}
		out = append(out, uint32(i))
		if i*i <= bound {
			for j := i * i; j <= bound; j += i {
				composite[j] = true
			}
		}
	}
	return out
}

// Count returns how many primes are currently cached.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(primes)
}

// Prime returns the i-th prime (0-indexed: Prime(0) == 2), growing the
// table if necessary.
func Prime(i int) uint32 {
	mu.Lock()
	defer mu.Unlock()
	growLocked(i + 1)
	return primes[i]
}

// Primes returns the first n primes, growing the table if necessary. The
// returned slice is a copy; callers must not mutate the shared cache.
func Primes(n int) []uint32 {
	mu.Lock()
	defer mu.Unlock()
	growLocked(n)
	out := make([]uint32, n)
	copy(out, primes[:n])
	return out
}

// PrimesUpTo returns every cached prime <= bound, growing the table until
// bound is covered.
func PrimesUpTo(bound uint64) []uint32 {
	mu.Lock()
	defer mu.Unlock()
	for len(primes) == 0 || uint64(primes[len(primes)-1]) < bound {
		growLocked(len(primes) + DefaultPrimeCount)
		if len(primes) > 0 && uint64(primes[len(primes)-1]) >= bound {
			break
		}
	}
	out := make([]uint32, 0, len(primes))
	for _, p := range primes {
		if uint64(p) > bound {
			break
		}
		out = append(out, p)
	}
	return out
}
