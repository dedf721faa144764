// Package scalarmul implements the ECM/p-1 scalar-multiplication
// strategies spec 4.5 names: double-and-add, width-w NAF (including the
// non-adjacent w=2 case), dynamic NAF (cost-scored choice among w in
// 2..6), and PRAC (Montgomery Lucas chains). Each strategy mutates a
// curve.Point in place through a curve.Curve's Add/Sub/Dbl/DiffAdd
// operations; none of them allocate a new Point per step, mirroring the
// teacher's preference for pre-sized scratch over per-call allocation.
package scalarmul
