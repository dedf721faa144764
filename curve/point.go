package curve

// Point is the common four-field-element representation spec 3 names:
// (x, y, z, t), of which only the fields a given curve form's coordinate
// system actually uses are live — X,Y,Z for projective short
// Weierstrass, X,Y,Z,T for extended twisted Edwards, X,Z for
// Montgomery-XZ.
type Point struct {
	X, Y, Z, T []uint64
}

// BufferSize returns the number of uint64 words a Point of limb width b
// needs backing it (four b-limb field elements).
func BufferSize(b int) int { return 4 * b }

// NewPoint allocates a fresh Point whose field elements each have b
// limbs.
func NewPoint(b int) *Point {
	return FromBuffer(make([]uint64, BufferSize(b)), b)
}

// FromBuffer carves a Point's four field elements out of a pre-allocated
// buffer of at least BufferSize(b) words, mirroring ring.Point.FromBuffer
// so that ECM's per-curve inner loop can pre-allocate scratch once and
// reuse it across tens of thousands of curves. Panics if buf is too
// small.
func FromBuffer(buf []uint64, b int) *Point {
	if len(buf) < BufferSize(b) {
		panic("curve: buffer too small for point of this limb width")
	}
	return &Point{
		X: buf[0*b : 1*b],
		Y: buf[1*b : 2*b],
		Z: buf[2*b : 3*b],
		T: buf[3*b : 4*b],
	}
}

// Copy returns a deep copy of p.
func (p *Point) Copy() *Point {
	b := len(p.X)
	q := NewPoint(b)
	copy(q.X, p.X)
	copy(q.Y, p.Y)
	copy(q.Z, p.Z)
	copy(q.T, p.T)
	return q
}

// Set copies src's field elements into the receiver.
func (p *Point) Set(src *Point) {
	copy(p.X, src.X)
	copy(p.Y, src.Y)
	copy(p.Z, src.Z)
	copy(p.T, src.T)
}

// Swap exchanges p and q's backing field-element slices in place
// (pointer-equivalent swap), grounded on spec 4.5's PRAC rule
// description: "swaps of point components are by pointer-equivalent
// in-place swap."
func Swap(p, q *Point) {
	p.X, q.X = q.X, p.X
	p.Y, q.Y = q.Y, p.Y
	p.Z, q.Z = q.Z, p.Z
	p.T, q.T = q.T, p.T
}
