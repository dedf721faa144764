package bytecode

import "github.com/ptrawinski/gofactor/curve"

// VM replays a compiled block stream against a curve.Curve, owning a
// 256-entry register file of auxiliary points reused across every
// Execute call so that attacking tens of thousands of curves with the
// same schedule allocates the register file only once, grounded on
// cascadeMultiplication.h's runBytecode and its std::array<CurvePoint,256>.
type VM struct {
	c   *curve.Curve
	reg [256]*curve.Point
}

// NewVM allocates a VM's register file for curves over c.
func NewVM(c *curve.Curve) *VM {
	vm := &VM{c: c}
	for i := range vm.reg {
		vm.reg[i] = c.NewPoint()
	}
	return vm
}

// SetCurve retargets vm at a different curve sharing the same modulus
// width, without reallocating the register file — the register points
// are sized only by limb width, which is invariant across the many
// randomly generated curves one ECM run tries against a fixed modulus.
func (vm *VM) SetCurve(c *curve.Curve) { vm.c = c }

// Execute runs blocks (a Schedule's Blocks field) against p in place.
func (vm *VM) Execute(blocks []byte, p *curve.Point) {
	r := newReader(blocks)
	for {
		switch r.peekNextBlockOpCode() {
		case BlockNaf:
			vm.runNafBlock(r, p)
		case BlockDbChain:
			vm.runDbChainBlock(r, p)
		case BlockPrac:
			vm.runPracBlock(r, p)
		case BlockEnd:
			return
		}
	}
}

// runNafBlock interprets a NAF block, grounded on
// cascadeMultiplication.h's runNafBlock. peekDataBits() at the block's
// opening byte gives the odd-multiples table size; when present, the
// table is built once up front (a separate doubled copy in reg[255] feeds
// each add) and p is repositioned to the appropriate starting entry.
func (vm *VM) runNafBlock(r *reader, p *curve.Point) {
	c := vm.c
	reg := &vm.reg

	initPointCount := r.peekDataBits()
	reg[0].Set(p)
	if initPointCount > 1 {
		reg[255].Set(p)
		c.Dbl(reg[255], reg[255])
		for i := byte(1); i < initPointCount; i++ {
			reg[i].Set(reg[i-1])
			c.Add(reg[i], reg[i], reg[255])
		}
		r.skipByte()
		p.Set(reg[r.peekByte()])
	}

	for {
		r.skipByte()
		switch r.peekNafOpCode() {
		case NafAdd, NafAddn:
			idx := r.peekDataBits()
			c.Add(p, p, reg[idx])
		case NafSub, NafSubn:
			idx := r.peekDataBits()
			c.Sub(p, p, reg[idx])
		case NafDbl, NafDbln:
			c.Dbl(p, p)
		case NafEnd:
			r.skipByte()
			return
		case NafFullMask:
			return // unreachable in well-formed bytecode
		}
	}
}

// runDbChainBlock interprets a DB-chain block, grounded on
// cascadeMultiplication.h's runDbChainBlock.
func (vm *VM) runDbChainBlock(r *reader, p *curve.Point) {
	c := vm.c
	reg := &vm.reg

	initPointCount := r.peekDataBits()
	reg[0].Set(p)
	if initPointCount > 1 {
		c.Dbl(p, p)
		for i := byte(1); i < initPointCount; i++ {
			reg[i].Set(reg[i-1])
			c.Add(reg[i], reg[i], p)
		}
		r.skipByte()
		startIndex := r.peekByte()
		if startIndex != 0 {
			p.Set(reg[startIndex])
		}
	}
	r.skipByte()

	for {
		inst := r.nextInstruction()
		for i := uint8(0); i < inst.dblCount; i++ {
			c.Dbl(p, p)
		}
		for i := uint8(0); i < inst.tplCount; i++ {
			c.Tpl(p, p)
		}
		if !inst.skipAdd {
			if inst.isSub {
				c.Sub(p, p, reg[inst.index])
			} else {
				c.Add(p, p, reg[inst.index])
			}
		}
		if inst.isFinal {
			return
		}
	}
}

// pracRotate3 performs the circular permutation a<-b<-c<-a on the X,Z
// coordinates, grounded on cascadeMultiplication.h's pracSwap3. Kept as
// its own small helper (distinct from scalarmul's rotate3) because the
// two are independent implementations of the same rule set, exactly as
// the source keeps the VM's point-swap helpers separate from prac()'s own
// inline swaps.
func pracRotate3(a, b, c *curve.Point) {
	tmpX, tmpZ := a.X, a.Z
	a.X, a.Z = b.X, b.Z
	b.X, b.Z = c.X, c.Z
	c.X, c.Z = tmpX, tmpZ
}

// runPracBlock interprets a PRAC block, grounded on
// cascadeMultiplication.h's runPracBlock. p itself plays the role of
// register A; B, C, T, U are reg[0..3].
func (vm *VM) runPracBlock(r *reader, p *curve.Point) {
	c := vm.c
	reg := &vm.reg

	B, C, T, U := reg[0], reg[1], reg[2], reg[3]
	B.Set(p)
	C.Set(p)
	T.Set(p)
	U.Set(p)
	A := p

	c.MontDbl(A, A)

outer:
	for {
		r.skipByte()
		repCount := r.peekRepCount()
		isSwap := r.peekIfPracSwap()
		opCode := r.peekPracOpCode()

		for i := 0; i < repCount; i++ {
			if isSwap {
				curve.Swap(A, B)
			}
			switch opCode {
			case PracRule1:
				c.DiffAdd(T, A, B, C)
				c.DiffAdd(U, T, A, B)
				c.DiffAdd(B, B, T, A)
				curve.Swap(A, U)
			case PracRule2:
				c.DiffAdd(B, A, B, C)
				c.MontDbl(A, A)
			case PracRule3:
				c.DiffAdd(T, B, A, C)
				pracRotate3(B, T, C)
			case PracRule4:
				c.DiffAdd(B, B, A, C)
				c.MontDbl(A, A)
			case PracRule5:
				c.DiffAdd(C, C, A, B)
				c.MontDbl(A, A)
			case PracRule6:
				c.MontDbl(T, A)
				c.DiffAdd(U, A, B, C)
				c.DiffAdd(A, T, A, A)
				c.DiffAdd(T, T, U, C)
				pracRotate3(C, B, T)
			case PracRule7:
				c.DiffAdd(T, A, B, C)
				c.DiffAdd(B, T, A, B)
				c.MontDbl(T, A)
				c.DiffAdd(A, A, T, A)
			case PracRule8:
				c.DiffAdd(T, A, B, C)
				c.DiffAdd(C, C, A, B)
				curve.Swap(B, T)
				c.MontDbl(T, A)
				c.DiffAdd(A, A, T, A)
			case PracRule9:
				c.DiffAdd(C, C, B, A)
				c.MontDbl(B, B)
			case PracEnd:
				break outer
			}
		}
	}
	r.skipByte()
	c.DiffAdd(A, A, B, C)
}
