// Package tables provides the precomputed constant tables spec 6.2 names:
// a prime table, a multiplicative-inverse table, a power-mod table, and a
// smallest-primes-per-bit-length table. The source ships these as offline-
// generated binary files read once at process start; this package
// reconstructs the same values by direct computation instead — the prime
// table at init() time, the other tables per prime on first use (see
// DESIGN.md's Open Question resolution) — and treats them as immutable
// once computed, per
// spec 5's "loaded once... immutable thereafter" lifecycle.
package tables
