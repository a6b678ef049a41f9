package assembler

type hoverInfoFormatsType struct {
	labelDefinition   string
	labelReference    string
	variableReference string
	integerLiteral    string

	register string

	// instructions
	noop string

	inputc  string
	inputcf string
	inputd  string
	inputdf string

	move  string
	loadi string
	loadp string

	add  string
	addi string
	sub  string
	subi string

	load   string
	loadf  string
	store  string
	storef string

	shiftl string
	shiftr string

	cmp string

	jump string
	bre  string
	brne string
	brg  string
	brge string
}

var hoverInfoFormats = hoverInfoFormatsType{
	labelDefinition:   "Definition of label `%s`.\n\nInstruction address `%d`",
	labelReference:    "Reference to label `%s`\n\nEvaluates to instruction address `%d`",
	variableReference: "Reference to variable `%s`\n\nEvaluates to data address `%d`",
	integerLiteral:    "Integer Literal `%d` (`%s`)",

	register: "Register `%s` (`%d`). 8-Bit General Purpose Register",

	noop: "No Operation Instruction.\n\nFormat: `NOOP`\n\nDoes nothing for one cycle.",

	inputc:  "Input to Code Memory Instruction.\n\nFormat: `INPUTC [<var>]`\n\nExample: `INPUTC [prog]` writes the switch inputs into code memory at the address of `prog`.\n\nOnly meaningful on the hardware build, where code memory is writable from the switches.",
	inputcf: "Input to Code Memory Indexed Instruction.\n\nFormat: `INPUTCF [<var>+<reg>]`\n\nExample: `INPUTCF [prog+C]` writes the switch inputs into code memory at the address of `prog` plus the value of `C`.",
	inputd:  "Input to Data Memory Instruction.\n\nFormat: `INPUTD [<var>]`\n\nExample: `INPUTD [buf]` writes the switch inputs into data memory at the address of `buf`.",
	inputdf: "Input to Data Memory Indexed Instruction.\n\nFormat: `INPUTDF [<var>+<reg>]`\n\nExample: `INPUTDF [buf+C]` writes the switch inputs into data memory at the address of `buf` plus the value of `C`.",

	move:  "Move Instruction.\n\nFormat: `MOVE <dst reg>, <src reg>`\n\nExample: `MOVE A, B` is the same as `A = B`",
	loadi: "Load Immediate Instruction.\n\nFormat: `LOADI <dst reg>, <imm>`\n\nExample: `LOADI A, 5` is the same as `A = 5`\n\nNote that the immediate is an 8-bit value, so it must be between -128 and 255.",
	loadp: "Load Pointer Instruction.\n\nFormat: `LOADP <dst reg>, {<var>}`\n\nExample: `LOADP A, {arr}` loads the address of `arr` into `A`, so it can later be used as an index.",

	add:  "Addition Instruction.\n\nFormat: `ADD <dst reg>, <src reg>`\n\nExample: `ADD A, B` is the same as `A = A + B`",
	addi: "Addition Immediate Instruction.\n\nFormat: `ADDI <dst reg>, <imm>`\n\nExample: `ADDI A, 5` is the same as `A = A + 5`\n\nNote that the immediate is an 8-bit value, so it must be between -128 and 255.",
	sub:  "Subtraction Instruction.\n\nFormat: `SUB <dst reg>, <src reg>`\n\nExample: `SUB A, B` is the same as `A = A - B`",
	subi: "Subtraction Immediate Instruction.\n\nFormat: `SUBI <dst reg>, <imm>`\n\nExample: `SUBI A, 5` is the same as `A = A - 5`\n\nNote that the immediate is an 8-bit value, so it must be between -128 and 255.",

	load:   "Load Instruction.\n\nFormat: `LOAD <dst reg>, [<var>]`\n\nExample: `LOAD A, [x]` is the same as `A = mem[x]`\n\nA constant offset may be added, as in `LOAD A, [x+1]`.",
	loadf:  "Load Indexed Instruction.\n\nFormat: `LOADF <dst reg>, [<var>+<reg>]`\n\nExample: `LOADF A, [arr+C]` is the same as `A = mem[arr + C]`\n\nA constant offset may be added, as in `LOADF A, [arr+C+1]`.",
	store:  "Store Instruction.\n\nFormat: `STORE [<var>], <src reg>`\n\nExample: `STORE [x], A` is the same as `mem[x] = A`\n\nA constant offset may be added, as in `STORE [x+1], A`.",
	storef: "Store Indexed Instruction.\n\nFormat: `STOREF [<var>+<reg>], <src reg>`\n\nExample: `STOREF [arr+C], A` is the same as `mem[arr + C] = A`\n\nA constant offset may be added, as in `STOREF [arr+C+1], A`.",

	shiftl: "Shift Left Instruction.\n\nFormat: `SHIFTL <reg>`\n\nExample: `SHIFTL A` is the same as `A = A << 1`",
	shiftr: "Shift Right Instruction.\n\nFormat: `SHIFTR <reg>`\n\nExample: `SHIFTR A` is the same as `A = A >> 1`",

	cmp: "Compare Instruction.\n\nFormat: `CMP <reg>, <reg>`\n\nExample: `CMP A, B` computes `A - B`, discards the result, and sets the flags for a following branch.",

	jump: "Unconditional Jump Instruction.\n\nFormat: `JUMP <label>`\n\nExample: `JUMP loop` continues execution at `loop`.\n\nThe target is encoded as a signed 8-bit offset relative to the next instruction.",
	bre:  "Branch if Equal Instruction (alias `BRZ`).\n\nFormat: `BRE <label>`\n\nBranches to `<label>` if the last `CMP` or arithmetic result was zero.\n\nThe target is encoded as a signed 8-bit offset relative to the next instruction.",
	brne: "Branch if Not Equal Instruction (alias `BRNZ`).\n\nFormat: `BRNE <label>`\n\nBranches to `<label>` if the last `CMP` or arithmetic result was not zero.\n\nThe target is encoded as a signed 8-bit offset relative to the next instruction.",
	brg:  "Branch if Greater Instruction.\n\nFormat: `BRG <label>`\n\nBranches to `<label>` if the first `CMP` operand was greater than the second.\n\nThe target is encoded as a signed 8-bit offset relative to the next instruction.",
	brge: "Branch if Greater or Equal Instruction.\n\nFormat: `BRGE <label>`\n\nBranches to `<label>` if the first `CMP` operand was greater than or equal to the second.\n\nThe target is encoded as a signed 8-bit offset relative to the next instruction.",
}
