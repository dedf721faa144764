package bigint

import "fmt"

// MaxFixedWidth is the largest supported FixedInt width, in 64-bit limbs.
const MaxFixedWidth = 8

// FixedInt is a fixed-width natural number occupying exactly Width limbs of
// an 8-limb backing array (spec's FixedInt<S>, S in 1..8, collapsed into a
// single Go type parameterized by a runtime Width field rather than eight
// distinct generic instantiations — Go has no const-generic array length,
// so this is the idiomatic substitute).
//
// Operations act on the full Width; the caller must guarantee no overflow
// (spec's "users must guarantee no overflow" contract) — violations are
// only caught when debug assertions are enabled.
type FixedInt struct {
	Limbs [MaxFixedWidth]uint64
	Width int
}

// NewFixed allocates a zero FixedInt of the given width (1..8).
func NewFixed(width int) *FixedInt {
	if width < 1 || width > MaxFixedWidth {
		panic(fmt.Errorf("bigint: invalid FixedInt width %d", width))
	}
	return &FixedInt{Width: width}
}

// Slice returns the active Width-limb window of the backing array.
func (f *FixedInt) Slice() []uint64 { return f.Limbs[:f.Width] }

// RealSize reports the index past the highest non-zero limb.
func (f *FixedInt) RealSize() int { return RealSize(f.Slice()) }

// SetUint64 sets the receiver to x.
func (f *FixedInt) SetUint64(x uint64) *FixedInt {
	s := f.Slice()
	s[0] = x
	for i := 1; i < len(s); i++ {
		s[i] = 0
	}
	return f
}

// Cmp compares f and g as unsigned integers, ignoring width differences
// (spec: "equality ignores significant-limb count when both buffers
// match exactly").
func (f *FixedInt) Cmp(g *FixedInt) int { return Cmp(f.Slice(), g.Slice()) }

// Add evaluates f = a + b (mod 2^(64*Width)); a, b must have the same
// width as f.
func (f *FixedInt) Add(a, b *FixedInt) *FixedInt {
	Add(f.Slice(), a.Slice(), b.Slice())
	return f
}

// Sub evaluates the absolute difference of a and b into f, per the
// FixedInt/limb-kernel "negative-result flag" contract; returns whether
// a < b.
func (f *FixedInt) Sub(a, b *FixedInt) (neg bool) {
	return Sub(f.Slice(), a.Slice(), b.Slice())
}

// FitToSize returns the smallest FixedInt width (at least 1) that can
// hold f's current value, per spec's fitToSize operation.
func (f *FixedInt) FitToSize() int {
	n := f.RealSize()
	if n == 0 {
		return 1
	}
	return n
}
