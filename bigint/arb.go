package bigint

// Arb is an arbitrary-precision natural number with a heap-allocated limb
// buffer, explicit size and capacity, and exclusive ownership semantics:
// Copy duplicates the buffer, Move transfers ownership and zeros the
// source. Grounded on the FromBuffer/grow idiom in ring/structs.go
// (Point.FromBuffer), adapted to a single growable buffer instead of a
// pre-partitioned one.
type Arb struct {
	limbs []uint64 // little-endian, len == capacity; logical size tracked separately
	size  int      // number of significant limbs currently in use
}

// NewArb allocates a zero Arb with the given initial capacity in limbs.
func NewArb(capacity int) *Arb {
	if capacity < 1 {
		capacity = 1
	}
	return &Arb{limbs: make([]uint64, capacity)}
}

// NewArbFromLimbs copies limbs into a new Arb.
func NewArbFromLimbs(limbs []uint64) *Arb {
	a := &Arb{limbs: append([]uint64(nil), limbs...)}
	a.size = RealSize(a.limbs)
	return a
}

// Slice returns the significant-limb window of the backing buffer.
func (a *Arb) Slice() []uint64 {
	if a.size == 0 {
		return a.limbs[:0]
	}
	return a.limbs[:a.size]
}

// Cap returns the current backing-array capacity in limbs.
func (a *Arb) Cap() int { return len(a.limbs) }

// grow reallocates the backing array in place (via append/copy, the Go
// substitute for the source's realloc) so it holds at least n limbs.
func (a *Arb) grow(n int) {
	if n <= len(a.limbs) {
		return
	}
	newLimbs := make([]uint64, n)
	copy(newLimbs, a.limbs)
	a.limbs = newLimbs
}

// normalize recomputes a.size from the current buffer contents.
func (a *Arb) normalize() {
	a.size = RealSize(a.limbs[:len(a.limbs)])
}

// SetLimbs replaces the receiver's value, growing the backing buffer if
// needed.
func (a *Arb) SetLimbs(limbs []uint64) *Arb {
	a.grow(len(limbs))
	copy(a.limbs, limbs)
	for i := len(limbs); i < len(a.limbs); i++ {
		a.limbs[i] = 0
	}
	a.normalize()
	return a
}

// Copy duplicates the receiver's value into a new, independently-owned Arb.
func (a *Arb) Copy() *Arb {
	cp := &Arb{limbs: append([]uint64(nil), a.limbs...), size: a.size}
	return cp
}

// Move transfers ownership of other's buffer to the receiver and zeros
// other, per spec's move semantics.
func (a *Arb) Move(other *Arb) *Arb {
	a.limbs = other.limbs
	a.size = other.size
	other.limbs = nil
	other.size = 0
	return a
}

// Add evaluates a = x + y, growing the receiver's buffer as needed.
func (a *Arb) Add(x, y *Arb) *Arb {
	n := max(x.size, y.size) + 1
	a.grow(n)
	for i := n; i < len(a.limbs); i++ {
		a.limbs[i] = 0
	}
	Add(a.limbs[:n], x.Slice(), y.Slice())
	a.normalize()
	return a
}

// Sub evaluates the absolute difference of x and y into a, returning
// whether x < y.
func (a *Arb) Sub(x, y *Arb) (neg bool) {
	n := max(x.size, y.size)
	if n == 0 {
		n = 1
	}
	a.grow(n)
	for i := n; i < len(a.limbs); i++ {
		a.limbs[i] = 0
	}
	neg = Sub(a.limbs[:n], x.Slice(), y.Slice())
	a.normalize()
	return neg
}

// Mul evaluates a = x * y. If a aliases x or y, the product is computed
// into a scratch buffer first and then moved in, per spec 9's note on
// fastMul's aliasing handling.
func (a *Arb) Mul(x, y *Arb) *Arb {
	n := x.size + y.size
	if n == 0 {
		n = 1
	}
	if a == x || a == y {
		scratch := make([]uint64, n)
		Mul(scratch, x.Slice(), y.Slice())
		a.limbs = scratch
		a.normalize()
		return a
	}
	a.grow(n)
	for i := range a.limbs {
		a.limbs[i] = 0
	}
	Mul(a.limbs[:n], x.Slice(), y.Slice())
	a.normalize()
	return a
}

// DivMod evaluates q, r such that x = q*y + r, 0 <= r < y.
func (a *Arb) DivMod(q, r, x, y *Arb) {
	nq := x.size - y.size + 1
	if nq < 1 {
		nq = 1
	}
	q.grow(nq)
	r.grow(y.size)
	for i := range q.limbs[:nq] {
		q.limbs[i] = 0
	}
	for i := range r.limbs[:y.size] {
		r.limbs[i] = 0
	}
	DivMod(q.limbs[:nq], r.limbs[:max(y.size, 1)], x.Slice(), y.Slice())
	q.normalize()
	r.normalize()
}
