package bytecode

// Writer incrementally builds one schedule's block stream, tracking the
// OperationCounts the header records, grounded on bytecode.h's Writer.
// Where the C++ type manages its own growable Buffer, this type just
// appends to a Go slice.
type Writer struct {
	buf []byte
	b1  uint64

	pracLastByte       byte
	pracLastByteValid  bool
	curDblCount        int
	curTplCount        int
	lastInstructionIdx int

	Counts OperationCounts
}

// Start resets the writer and begins a new schedule for smoothness bound
// b1.
func (w *Writer) Start(b1 uint64) {
	w.buf = w.buf[:0]
	w.b1 = b1
	w.pracLastByte = 0
	w.pracLastByteValid = false
	w.curDblCount = 0
	w.curTplCount = 0
	w.lastInstructionIdx = 0
	w.Counts = OperationCounts{}
}

// End terminates the block stream and returns the completed Schedule.
func (w *Writer) End() Schedule {
	w.buf = append(w.buf, byte(BlockEnd))
	return Schedule{
		Header: Header{
			TotalSize: uint64(HeaderSize + len(w.buf)),
			B1:        w.b1,
			Counts:    w.Counts,
		},
		Blocks: append([]byte(nil), w.buf...),
	}
}

// --- NAF block ---

// NafStart opens a NAF block. tableSize is the number of odd-multiple
// table entries the VM should build (0 or 1 means "no table, use p
// directly"); initialIndex selects which table entry the VM should start
// evaluation from when tableSize > 1, grounded on Writer::nafSTART.
func (w *Writer) NafStart(tableSize, initialIndex byte) {
	w.buf = append(w.buf, byte(BlockNaf)|(tableSize<<4))
	if tableSize > 1 {
		w.buf = append(w.buf, initialIndex)
		w.Counts.Dbl += 1
		w.Counts.Add += uint32(initialIndex) - 1
	}
}

// NafStartDefault opens a NAF block with no precomputed table.
func (w *Writer) NafStartDefault() { w.NafStart(0, 0) }

func (w *Writer) NafEnd() { w.buf = append(w.buf, byte(NafEnd)) }

func (w *Writer) NafDbl() {
	w.buf = append(w.buf, byte(NafDbln))
	w.Counts.Dbln += 1
}

// nafFuse rewrites the just-emitted DBLn into a fused ADDn/SUBn carrying
// table index arg, matching Writer::nafADD/nafSUB's in-place OR of
// FullMask onto the previous byte. The source's own comment notes this is
// not always correct (the previous op could already be an add/sub), a
// limitation carried over unchanged here.
func (w *Writer) nafFuse(op NafOpCode, arg byte) {
	w.buf[len(w.buf)-1] |= byte(NafFullMask)
	w.buf = append(w.buf, byte(op)|(arg<<4))
	w.Counts.Addn += 1
	w.Counts.Dbl += 1
	w.Counts.Dbln -= 1
}

func (w *Writer) NafAdd(arg byte) { w.nafFuse(NafAddn, arg) }
func (w *Writer) NafSub(arg byte) { w.nafFuse(NafSubn, arg) }

// --- DbChain block ---

// DbChainStart opens a DB-chain block, semantics mirroring NafStart but
// with the table built unconditionally once tableSize > 0, grounded on
// Writer::dbChainSTART.
func (w *Writer) DbChainStart(tableSize, initialIndex byte) {
	w.buf = append(w.buf, byte(BlockDbChain)|(tableSize<<4))
	if tableSize > 0 {
		w.buf = append(w.buf, initialIndex)
		w.Counts.Dbl += 1
		w.Counts.Add += uint32(initialIndex)
	}
}

func (w *Writer) DbChainStartDefault() { w.DbChainStart(0, 0) }

// DbChainEnd flushes any pending dbl/tpl run as a skip-add instruction (if
// nonempty) and marks the last emitted instruction final, grounded on
// Writer::dbChainEND.
func (w *Writer) DbChainEnd() {
	if w.curDblCount != 0 || w.curTplCount != 0 {
		w.dbChainAddInstruction(0, 0)
		w.buf[w.lastInstructionIdx] |= 0x40
		w.Counts.Addn -= 1
	}
	w.buf[w.lastInstructionIdx] |= 0x20
	w.Counts.Addn -= 1
	w.Counts.Add += 1
}

func (w *Writer) DbChainDbl() { w.curDblCount += 1 }
func (w *Writer) DbChainTpl() { w.curTplCount += 1 }

func (w *Writer) DbChainAdd(arg byte) { w.dbChainAddInstruction(arg, 0) }
func (w *Writer) DbChainSub(arg byte) { w.dbChainAddInstruction(arg, 1) }

// dbChainAddInstruction emits the pending dbl/tpl run plus a final
// add/sub of table[arg], grounded on Writer::dbChainAddInstruction. Byte
// layout: `0kfsnnnn dddddddd` (2 bytes) or `1kfsnnnn dddddddd tttttttt`
// (3 bytes, when a tpl run is pending).
func (w *Writer) dbChainAddInstruction(arg, signBit byte) {
	if arg > 15 {
		panic("bytecode: dbChain table index must fit in 4 bits")
	}
	var startByte byte
	if w.curTplCount > 0 {
		startByte |= 0x80
	}
	startByte |= signBit << 4
	startByte |= arg

	w.buf = append(w.buf, startByte)
	w.lastInstructionIdx = len(w.buf) - 1
	w.buf = append(w.buf, byte(w.curDblCount))
	if w.curTplCount > 0 {
		w.buf = append(w.buf, byte(w.curTplCount))
	}

	w.Counts.Addn += 1
	if w.curDblCount > 0 {
		w.Counts.Tpln += uint32(w.curTplCount)
		w.Counts.Dbln += uint32(w.curDblCount) - 1
		w.Counts.Dbl += 1
	} else {
		w.Counts.Tpln += uint32(w.curTplCount) - 1
		w.Counts.Tpl += 1
	}
	w.curDblCount = 0
	w.curTplCount = 0
}

// --- PRAC block ---

// PracStart opens a PRAC block. The block header byte is not a rule byte,
// so the next PracRule never coalesces into it.
func (w *Writer) PracStart() {
	w.buf = append(w.buf, byte(BlockPrac))
	w.pracLastByteValid = false
}

func (w *Writer) PracEnd() { w.buf = append(w.buf, byte(PracEnd)) }

// PracRule emits one application of PRAC rule ruleNr (1..9), coalescing
// consecutive identical (ruleNr, swapBefore) applications into a single
// byte's 3-bit repeat count (1..8), grounded on Writer::pracRule.
func (w *Writer) PracRule(ruleNr byte, swapBefore bool) {
	var swapBit byte
	if swapBefore {
		swapBit = 1
	}
	b := (swapBit << 4) | ruleNr

	if w.pracLastByteValid && (w.pracLastByte&0x1f) == b && w.pracLastByte < 0b11100000 {
		w.buf[len(w.buf)-1] += 0b00100000
		w.pracLastByte = w.buf[len(w.buf)-1]
	} else {
		w.buf = append(w.buf, b)
		w.pracLastByte = b
		w.pracLastByteValid = true
	}

	w.Counts.Dadd += pracRuleAddCounts[ruleNr-1]
	w.Counts.Ddbl += pracRuleDblCounts[ruleNr-1]
}
