// Package bytecode implements the compact per-modulus scalar-multiplication
// schedule: a compiler that turns a scalar (or a cascade of prime-power
// scalars) into a byte stream of NAF/DbChain/PRAC blocks, and a VM that
// replays that stream against any curve.Curve/curve.Point pair without
// recomputing the schedule. A single schedule is built once per modulus per
// ECM configuration and then reused across tens of thousands of curves,
// which is the entire point of precompiling it, grounded on
// original_source/.../Ecm/bytecode.h and cascadeMultiplication.h.
package bytecode
