// Package bigint implements the polymorphic big-integer layer used by the
// factorization engine: fixed-width limb arithmetic, an arbitrary-precision
// fallback, and the Montgomery/Barrett modular-reduction contexts built on
// top of both.
package bigint
