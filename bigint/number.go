package bigint

import "fmt"

// Kind tags which variant a Number currently holds: 1..MaxFixedWidth for a
// FixedInt of that width, or KindArb for the arbitrary-precision variant.
type Kind int

// KindArb marks the arbitrary-precision variant.
const KindArb Kind = MaxFixedWidth + 1

// Number is the tagged-sum facade over FixedInt<1..8> and Arb (spec 3,
// "Number"). Go has no template-instantiated variant dispatch, so per
// spec 9's re-architecture note this is a tagged sum (a Kind byte plus
// exactly one of two pointer fields) with a type-switch-shaped dispatch
// table, instead of nine compile-time-selected types.
type Number struct {
	kind  Kind
	fixed *FixedInt
	arb   *Arb

	mont      *MontgomeryCtx
	montReady bool
}

// NewNumberUint64 builds a Number from a small literal, using the
// narrowest FixedInt width (1 limb) that can hold it.
func NewNumberUint64(x uint64) *Number {
	return &Number{kind: 1, fixed: NewFixed(1).SetUint64(x)}
}

// NewNumberFromLimbs builds a Number holding limbs' value, choosing the
// narrowest FixedInt width that fits (or the arbitrary-precision variant
// above MaxFixedWidth limbs), the same width-selection FitToSize uses.
func NewNumberFromLimbs(limbs []uint64) *Number {
	size := RealSize(limbs)
	if size == 0 {
		size = 1
	}
	if size <= MaxFixedWidth {
		f := NewFixed(size)
		copy(f.Slice(), limbs)
		return &Number{kind: Kind(size), fixed: f}
	}
	return &Number{kind: KindArb, arb: NewArbFromLimbs(limbs)}
}

// Kind reports which variant the receiver currently holds.
func (n *Number) Kind() Kind { return n.kind }

// IsArb reports whether the receiver currently holds the arbitrary-
// precision variant.
func (n *Number) IsArb() bool { return n.kind == KindArb }

// Slice exposes the underlying limb buffer regardless of variant (spec's
// "visitation" operation).
func (n *Number) Slice() []uint64 {
	if n.kind == KindArb {
		return n.arb.Slice()
	}
	return n.fixed.Slice()
}

// decimalDigitsPerLimb is the worst-case number of decimal digits a single
// 64-bit limb can represent (2^64-1 has 20 digits, but spec's sizing
// formula "roughly 19*S digits for S limbs" undercounts slightly on
// purpose to stay a safe lower bound when picking a width).
const decimalDigitsPerLimb = 19

// maxFixedDecimalDigits is spec 4.2's cutover point: strings of this many
// digits or more use the arbitrary-precision variant, so 8*19=152 digits
// is the longest input held in a FixedInt.
const maxFixedDecimalDigits = 153

// NewNumberFromDecimal parses a decimal string into the narrowest variant
// that can hold it, per spec 4.2. Returns a parse error at the
// construction boundary (spec 7) rather than panicking.
func NewNumberFromDecimal(s string) (*Number, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("bigint: empty decimal string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("bigint: invalid decimal digit %q", c)
		}
	}

	digits := len(s)
	limbWidth := (digits + decimalDigitsPerLimb - 1) / decimalDigitsPerLimb
	if limbWidth < 1 {
		limbWidth = 1
	}

	useArb := digits >= maxFixedDecimalDigits
	if !useArb && limbWidth > MaxFixedWidth {
		useArb = true
	}

	if useArb {
		limbs := parseDecimalLimbs(s, limbWidth)
		return &Number{kind: KindArb, arb: NewArbFromLimbs(limbs)}, nil
	}

	limbs := parseDecimalLimbs(s, MaxFixedWidth)
	f := NewFixed(limbWidth)
	copy(f.Slice(), limbs[:limbWidth])
	return &Number{kind: Kind(limbWidth), fixed: f}, nil
}

// parseDecimalLimbs converts a validated decimal string into a
// width-limb little-endian buffer via Horner's method: acc = acc*10 + d.
func parseDecimalLimbs(s string, width int) []uint64 {
	acc := make([]uint64, width+1)
	ten := make([]uint64, width+1)
	ten[0] = 10
	tmp := make([]uint64, width+1)
	for _, c := range s {
		Mul(tmp, acc[:width], ten[:1])
		copy(acc, tmp[:width+1])
		AddWord(acc, acc, uint64(c-'0'))
	}
	return acc[:width]
}

// String renders the receiver in decimal, via repeated division by 10.
func (n *Number) String() string {
	src := append([]uint64(nil), n.Slice()...)
	if RealSize(src) == 0 {
		return "0"
	}
	var digits []byte
	q := make([]uint64, len(src))
	r := make([]uint64, 1)
	ten := []uint64{10}
	for RealSize(src) != 0 {
		DivMod(q, r, src, ten)
		digits = append(digits, byte('0')+byte(r[0]))
		src, q = q, src
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// FitToSize migrates the receiver to the smallest variant that can hold
// its current value (spec's fitToSize operation). Idempotent: calling it
// twice in a row is a no-op the second time.
func (n *Number) FitToSize() {
	size := RealSize(n.Slice())
	if size == 0 {
		size = 1
	}

	if size <= MaxFixedWidth {
		if n.kind == Kind(size) {
			return
		}
		f := NewFixed(size)
		copy(f.Slice(), n.Slice())
		n.fixed, n.arb, n.kind = f, nil, Kind(size)
	} else {
		if n.kind == KindArb {
			return
		}
		a := NewArbFromLimbs(n.Slice())
		n.arb, n.fixed, n.kind = a, nil, KindArb
	}
	n.montReady = false
}

// Equal reports whether n and m hold the same value, regardless of
// variant (spec's FixedInt equality rule, lifted to Number).
func (n *Number) Equal(m *Number) bool {
	return Cmp(n.Slice(), m.Slice()) == 0
}

// ensureMontgomery lazily computes the receiver's Montgomery context the
// first time a mutating modular operation needs it, per spec 4.2: "a flag
// records whether the current context has computed its Montgomery
// parameters; visiting a mutating operation triggers computation on
// demand."
func (n *Number) ensureMontgomery() *MontgomeryCtx {
	if !n.montReady {
		ctx, err := NewMontgomeryCtx(n.Slice())
		if err != nil {
			panic(err) // modulus parity is a programmer contract, not a parse boundary
		}
		n.mont = ctx
		n.montReady = true
	}
	return n.mont
}

// MontgomeryCtx returns the receiver's (lazily computed) Montgomery
// context, treating the receiver's value as the modulus.
func (n *Number) MontgomeryCtx() *MontgomeryCtx { return n.ensureMontgomery() }
