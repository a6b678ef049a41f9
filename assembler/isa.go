package assembler

// The i281 instruction word is 16 bits wide:
//
//	[15:12] opcode | [11:10] field1 | [9:8] field2 | [7:0] imm8
//
// field1 and field2 hold two-bit register ids or fixed mode bits depending on
// the mnemonic; imm8 holds an immediate, a DMEM address, or a relative branch
// offset in two's complement.

const (
	IMEMSize     = 32 // instruction words
	DMEMSize     = 16 // data bytes
	AddressLimit = 63 // highest bracket-addressable DMEM location
)

// OperandShape describes the operand grammar a mnemonic requires.
type OperandShape int

const (
	ShapeNone   OperandShape = iota
	ShapeReg                 // SHIFTL A
	ShapeRegReg              // MOVE A, B
	ShapeRegImm              // LOADI A, 42
	ShapeRegMem              // LOAD A, [V]  /  LOADF A, [V+B]
	ShapeMemReg              // STORE [V], A  /  STOREF [V+B], A
	ShapeRegPtr              // LOADP A, {V}
	ShapeMem                 // INPUTC [V]  /  INPUTCF [V+B]
	ShapeLabel               // JUMP L
)

// InstructionSpec is one row of the static mnemonic table. Mode is placed in
// field2 for the input, shift, and branch families. Indexed marks memory
// shapes whose bracket must carry an index register. Checked memory shapes
// treat an out-of-bounds address as an error rather than a warning.
type InstructionSpec struct {
	Opcode  uint16
	Shape   OperandShape
	Mode    uint16
	Indexed bool
	Checked bool
}

var InstructionSet = map[string]InstructionSpec{
	"NOOP":    {Opcode: 0b0000, Shape: ShapeNone},
	"INPUTC":  {Opcode: 0b0001, Shape: ShapeMem, Mode: 0b00, Checked: true},
	"INPUTCF": {Opcode: 0b0001, Shape: ShapeMem, Mode: 0b01, Indexed: true, Checked: true},
	"INPUTD":  {Opcode: 0b0001, Shape: ShapeMem, Mode: 0b10, Checked: true},
	"INPUTDF": {Opcode: 0b0001, Shape: ShapeMem, Mode: 0b11, Indexed: true, Checked: true},
	"MOVE":    {Opcode: 0b0010, Shape: ShapeRegReg},
	"LOADI":   {Opcode: 0b0011, Shape: ShapeRegImm},
	"LOADP":   {Opcode: 0b0011, Shape: ShapeRegPtr},
	"ADD":     {Opcode: 0b0100, Shape: ShapeRegReg},
	"ADDI":    {Opcode: 0b0101, Shape: ShapeRegImm},
	"SUB":     {Opcode: 0b0110, Shape: ShapeRegReg},
	"SUBI":    {Opcode: 0b0111, Shape: ShapeRegImm},
	"LOAD":    {Opcode: 0b1000, Shape: ShapeRegMem, Checked: true},
	"LOADF":   {Opcode: 0b1001, Shape: ShapeRegMem, Indexed: true},
	"STORE":   {Opcode: 0b1010, Shape: ShapeMemReg, Checked: true},
	"STOREF":  {Opcode: 0b1011, Shape: ShapeMemReg, Indexed: true, Checked: true},
	"SHIFTL":  {Opcode: 0b1100, Shape: ShapeReg, Mode: 0b00},
	"SHIFTR":  {Opcode: 0b1100, Shape: ShapeReg, Mode: 0b01},
	"CMP":     {Opcode: 0b1101, Shape: ShapeRegReg},
	"JUMP":    {Opcode: 0b1110, Shape: ShapeLabel, Mode: 0b00},
	"BRE":     {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b00},
	"BRZ":     {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b00},
	"BRNE":    {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b01},
	"BRNZ":    {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b01},
	"BRG":     {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b10},
	"BRGE":    {Opcode: 0b1111, Shape: ShapeLabel, Mode: 0b11},
}

// RegisterNames maps the case-sensitive register names to their two-bit ids.
var RegisterNames = map[string]uint16{
	"A": 0b00,
	"B": 0b01,
	"C": 0b10,
	"D": 0b11,
}

// formatFor returns the human-readable operand format for diagnostics.
func formatFor(mnemonic string, spec InstructionSpec) string {
	switch spec.Shape {
	case ShapeNone:
		return mnemonic
	case ShapeReg:
		return mnemonic + " <reg>"
	case ShapeRegReg:
		return mnemonic + " <reg>, <reg>"
	case ShapeRegImm:
		return mnemonic + " <reg>, <imm>"
	case ShapeRegMem:
		if spec.Indexed {
			return mnemonic + " <reg>, [<var>+<reg>]"
		}
		return mnemonic + " <reg>, [<var>]"
	case ShapeMemReg:
		if spec.Indexed {
			return mnemonic + " [<var>+<reg>], <reg>"
		}
		return mnemonic + " [<var>], <reg>"
	case ShapeRegPtr:
		return mnemonic + " <reg>, {<var>}"
	case ShapeMem:
		if spec.Indexed {
			return mnemonic + " [<var>+<reg>]"
		}
		return mnemonic + " [<var>]"
	case ShapeLabel:
		return mnemonic + " <label>"
	}
	return mnemonic
}

// MakeInstruction packs one instruction word. imm is masked to eight bits;
// range validation happens before packing so the mask never truncates a
// checked value.
func MakeInstruction(opcode, field1, field2, imm uint16) uint16 {
	return (opcode&0xF)<<12 | (field1&0x3)<<10 | (field2&0x3)<<8 | imm&0xFF
}

// DecodeInstruction unpacks the four fields of an instruction word.
func DecodeInstruction(word uint16) (opcode, field1, field2, imm uint16) {
	opcode = word >> 12
	field1 = (word >> 10) & 0x3
	field2 = (word >> 8) & 0x3
	imm = word & 0xFF
	return
}

// ImmediateValue returns the signed view of a word's imm8 field.
func ImmediateValue(word uint16) int {
	return int(int8(word & 0xFF))
}
