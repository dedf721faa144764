// Package curve implements point arithmetic on the three elliptic-curve
// forms the ECM stage loops drive: projective short Weierstrass, extended
// twisted Edwards, and Montgomery XZ-only. All field elements are held in
// Montgomery form (bigint.MontgomeryCtx) so that every add/dbl/tpl call is
// a sequence of MontMul/ModAdd/ModSub operations with no per-call
// conversion overhead, mirroring ring's convention of keeping polynomial
// coefficients in Montgomery form for the lifetime of a computation.
package curve
