package bytecode

import (
	"bytes"
	"testing"

	"github.com/ptrawinski/gofactor/bigint"
	"github.com/ptrawinski/gofactor/curve"
	"github.com/ptrawinski/gofactor/scalarmul"
	"github.com/stretchr/testify/require"
)

// weierstrassFixture builds the textbook curve y^2 = x^3+2x+3 mod 97 with
// generator (3,6), order 5, the same fixture curve/curve_test.go and
// scalarmul/scalarmul_test.go pin. 5*P is the identity, so k*P wraps mod
// 5 — a cheap correctness oracle for every bytecode strategy below.
func weierstrassFixture(t *testing.T) (*bigint.MontgomeryCtx, *curve.Curve, *curve.Point) {
	t.Helper()
	ctx, err := bigint.NewMontgomeryCtx([]uint64{97})
	require.NoError(t, err)

	a := ctx.GetConstant(2)
	c := curve.NewShortWeierstrass(ctx, a)

	p := c.NewPoint()
	ctx.ToMontgomery(p.X, []uint64{3})
	ctx.ToMontgomery(p.Y, []uint64{6})
	ctx.ToMontgomery(p.Z, []uint64{1})
	return ctx, c, p
}

func projEqual(ctx *bigint.MontgomeryCtx, p, q *curve.Point) bool {
	lhs := make([]uint64, ctx.B)
	rhs := make([]uint64, ctx.B)
	ctx.MontMul(lhs, p.X, q.Z)
	ctx.MontMul(rhs, q.X, p.Z)
	if bigint.Cmp(lhs, rhs) != 0 {
		return false
	}
	ctx.MontMul(lhs, p.Y, q.Z)
	ctx.MontMul(rhs, q.Y, p.Z)
	return bigint.Cmp(lhs, rhs) == 0
}

func montgomeryProjEqual(ctx *bigint.MontgomeryCtx, p, q *curve.Point) bool {
	lhs := make([]uint64, ctx.B)
	rhs := make([]uint64, ctx.B)
	ctx.MontMul(lhs, p.X, q.Z)
	ctx.MontMul(rhs, q.X, p.Z)
	return bigint.Cmp(lhs, rhs) == 0
}

// runSingleBlock compiles emit against a fresh Writer and replays the
// result through vm, independent of Compile's cascade wiring.
func runSingleBlock(t *testing.T, vm *VM, p *curve.Point, emit func(w *Writer)) *curve.Point {
	t.Helper()
	var w Writer
	w.Start(0)
	emit(&w)
	sched := w.End()

	got := p.Copy()
	vm.Execute(sched.Blocks, got)
	return got
}

func TestDoubleAndAddBytecodeMatchesDirectComputation(t *testing.T) {
	ctx, c, p := weierstrassFixture(t)
	vm := NewVM(c)

	for k := uint64(1); k <= 12; k++ {
		want := p.Copy()
		scalarmul.DoubleAndAdd(c, want, k)

		got := runSingleBlock(t, vm, p, func(w *Writer) { doubleAndAddToBytecode(w, k) })
		require.True(t, projEqual(ctx, want, got), "double-and-add bytecode disagrees at k=%d", k)
	}
}

func TestNafBytecodeMatchesDirectComputation(t *testing.T) {
	ctx, c, p := weierstrassFixture(t)
	vm := NewVM(c)

	for k := uint64(1); k <= 12; k++ {
		want := p.Copy()
		scalarmul.NAF(c, want, k)

		got := runSingleBlock(t, vm, p, func(w *Writer) { nafToBytecode(w, k) })
		require.True(t, projEqual(ctx, want, got), "NAF bytecode disagrees at k=%d", k)
	}
}

func TestWNafBytecodeMatchesDirectComputation(t *testing.T) {
	ctx, c, p := weierstrassFixture(t)
	vm := NewVM(c)

	for _, width := range []int{3, 4} {
		for k := uint64(1); k <= 12; k++ {
			want := p.Copy()
			scalarmul.WNAF(c, want, k, width)

			got := runSingleBlock(t, vm, p, func(w *Writer) { wnafToBytecode(w, k, width) })
			require.True(t, projEqual(ctx, want, got), "WNAF(w=%d) bytecode disagrees at k=%d", width, k)
		}
	}
}

func TestDynamicNafBytecodeMatchesDirectComputation(t *testing.T) {
	ctx, c, p := weierstrassFixture(t)
	vm := NewVM(c)

	for k := uint64(1); k <= 12; k++ {
		want := p.Copy()
		scalarmul.DynamicNAF(c, want, k)

		got := runSingleBlock(t, vm, p, func(w *Writer) { dynamicNafToBytecode(w, k, c.Form) })
		require.True(t, projEqual(ctx, want, got), "dynamic NAF bytecode disagrees at k=%d", k)
	}
}

func TestPracBytecodeMatchesDirectComputation(t *testing.T) {
	ctx, err := bigint.NewMontgomeryCtx([]uint64{10403}) // 101*103
	require.NoError(t, err)

	c, p, err := curve.GenerateMontgomery(ctx, 6)
	require.NoError(t, err)

	vm := NewVM(c)

	for _, k := range []uint64{13, 3, 5, 7, 11, 19, 100, 257} {
		want := p.Copy()
		scalarmul.PRAC(c, want, k)

		got := runSingleBlock(t, vm, p, func(w *Writer) { pracToBytecode(w, k, ctx.B) })
		require.True(t, montgomeryProjEqual(ctx, want, got), "PRAC bytecode disagrees at k=%d", k)
	}
}

// TestCompileChainsCascadeScalars checks that a multi-scalar schedule
// applies every scalar in turn to the same point, i.e. Compile(b1,
// [m1,m2], DoubleAndAdd, ...) run once equals applying DoubleAndAdd(m1)
// then DoubleAndAdd(m2) by hand.
func TestCompileChainsCascadeScalars(t *testing.T) {
	ctx, c, p := weierstrassFixture(t)
	vm := NewVM(c)

	want := p.Copy()
	scalarmul.DoubleAndAdd(c, want, 3)
	scalarmul.DoubleAndAdd(c, want, 4)

	sched := Compile(0, []uint64{3, 4}, DoubleAndAdd, c.Form, ctx.B)
	got := p.Copy()
	vm.Execute(sched.Blocks, got)

	require.True(t, projEqual(ctx, want, got), "Compile did not chain cascade scalars in order")
}

// TestEcmStage1IdempotentOnIdentity checks that running a stage-1
// schedule against the curve identity leaves it the identity, the
// invariant spec.md's testable properties name explicitly: scalar
// multiplication of any kind fixes the point at infinity.
func TestEcmStage1IdempotentOnIdentity(t *testing.T) {
	_, c, _ := weierstrassFixture(t)
	vm := NewVM(c)

	identity := c.NewPoint()
	one := make([]uint64, c.Ctx.B)
	c.Ctx.ToMontgomery(one, []uint64{1})
	copy(identity.Y, one) // SW identity: X=0, Y=1, Z=0

	sched := Compile(0, []uint64{3, 5, 7}, DoubleAndAdd, c.Form, 1)
	got := identity.Copy()
	vm.Execute(sched.Blocks, got)

	require.True(t, bigint.IsZero(got.Z), "stage-1 bytecode should fix the identity")
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		TotalSize: 123,
		B1:        1000,
		Counts: OperationCounts{
			Dbl: 1, Dbln: 2, Tpl: 3, Tpln: 4, Add: 5, Addn: 6, Dadd: 7, Ddbl: 8,
		},
	}

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize), n)

	var got Header
	n, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize), n)
	require.Equal(t, h, got)
}

func TestScheduleRoundTrip(t *testing.T) {
	sched := Compile(1000, []uint64{3, 5, 7}, Naf, curve.ShortWeierstrass, 2)

	var buf bytes.Buffer
	_, err := sched.WriteTo(&buf)
	require.NoError(t, err)

	var got Schedule
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	require.Equal(t, sched.Header, got.Header)
	require.Equal(t, sched.Blocks, got.Blocks)
}
