package bytecode

// reader walks a compiled block stream, grounded on bytecode.h's Reader.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader { return &reader{buf: buf} }

func (r *reader) skipByte() { r.pos++ }

func (r *reader) peekNextBlockOpCode() Block { return Block(r.buf[r.pos] & 0x0f) }
func (r *reader) peekNafOpCode() NafOpCode   { return NafOpCode(r.buf[r.pos] & 0x0f) }
func (r *reader) peekIfPracSwap() bool       { return r.buf[r.pos]&0x10 != 0 }
func (r *reader) peekRepCount() int          { return int((r.buf[r.pos]&0b11100000)>>5) + 1 }
func (r *reader) peekPracOpCode() PracOpCode { return PracOpCode(r.buf[r.pos] & 0x0f) }
func (r *reader) peekDataBits() byte         { return r.buf[r.pos] >> 4 }
func (r *reader) peekByte() byte             { return r.buf[r.pos] }

func (r *reader) getPointIndex() int {
	v := int(r.buf[r.pos] & 0x0f)
	r.pos++
	return v
}

// instruction is a decoded DB-chain instruction.
type instruction struct {
	dblCount uint8
	tplCount uint8
	index    uint8
	isSub    bool
	skipAdd  bool
	isFinal  bool
}

// nextInstruction decodes the 2- or 3-byte DB-chain instruction at the
// current position and advances past it, grounded on
// Reader::nextInstruction.
func (r *reader) nextInstruction() instruction {
	b := r.buf[r.pos]
	inst := instruction{
		skipAdd: b&0x40 != 0,
		isFinal: b&0x20 != 0,
		isSub:   b&0x10 != 0,
		index:   b & 0x0f,
	}
	inst.dblCount = r.buf[r.pos+1]
	if b>>7 != 0 {
		inst.tplCount = r.buf[r.pos+2]
		r.pos += 3
	} else {
		inst.tplCount = 0
		r.pos += 2
	}
	return inst
}
