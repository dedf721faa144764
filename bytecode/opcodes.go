package bytecode

// Block tags the kind of the next block in the stream, stored in the low
// nibble of its first byte, grounded on bytecode.h's Block enum.
type Block byte

const (
	BlockEnd     Block = 0
	BlockNaf     Block = 1
	BlockDbChain Block = 2
	BlockPrac    Block = 11
)

// NafOpCode tags a single NAF-block opcode byte (low nibble only; the
// high nibble carries the fused table index for ADD/SUB), grounded on
// bytecode.h's NafOpCode enum. The writer emits DBLn, ADDn and SUBn, and
// produces DBL (DBLn with FullMask set) when it fuses a following
// add/sub onto a doubling; ADD/SUB with FullMask set are never produced
// and are kept only so the reader's peek matches the source exactly.
type NafOpCode byte

const (
	NafEnd  NafOpCode = 0b000
	NafAddn NafOpCode = 0b001
	NafSubn NafOpCode = 0b010
	NafDbln NafOpCode = 0b011

	NafFullMask NafOpCode = 0b100
	NafAdd      NafOpCode = 0b101
	NafSub      NafOpCode = 0b110
	NafDbl      NafOpCode = 0b111
)

// PracOpCode tags a PRAC rule byte's low nibble, grounded on bytecode.h's
// PracOpCode enum.
type PracOpCode byte

const (
	PracRule1 PracOpCode = 1
	PracRule2 PracOpCode = 2
	PracRule3 PracOpCode = 3
	PracRule4 PracOpCode = 4
	PracRule5 PracOpCode = 5
	PracRule6 PracOpCode = 6
	PracRule7 PracOpCode = 7
	PracRule8 PracOpCode = 8
	PracRule9 PracOpCode = 9
	PracEnd   PracOpCode = 10
)

// pracRuleAddCounts/pracRuleDblCounts are the abstract dadd/ddbl
// operation counts each PRAC rule contributes to the header's running
// statistics, indexed by ruleNr-1, grounded on bytecode.h's Writer::pracRule.
var pracRuleAddCounts = [9]uint32{3, 1, 1, 1, 1, 3, 3, 3, 1}
var pracRuleDblCounts = [9]uint32{0, 1, 0, 1, 1, 1, 1, 1, 1}
