package assembler

// TokenKind classifies a lexeme produced by the tokenizer.
type TokenKind int

const (
	TokenInvalid TokenKind = iota
	TokenMnemonic
	TokenRegister
	TokenImmediate
	TokenLabelRef // any identifier that is not a mnemonic or register
	TokenLabelDef // identifier immediately followed by ':'
	TokenDirective
	TokenStringLit
	TokenComma
	TokenLeftBracket
	TokenRightBracket
	TokenLeftBrace
	TokenRightBrace
	TokenPlus
	TokenMinus
	TokenQuestion
	TokenComment
	TokenEndOfLine
)

type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// Range covers the token's source text, excluding the colon of a label
// definition.
func (t Token) Range() TextRange {
	return TextRange{
		Start: TextPosition{Line: t.Line, Char: t.Column},
		End:   TextPosition{Line: t.Line, Char: t.Column + len(t.Text)},
	}
}

type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandImmediate
	OperandLabel
	OperandMemory
)

// Operand is one parsed instruction operand. Register holds the two-bit
// register id for OperandRegister and is unused otherwise. Memory operands
// carry the variable name, an optional index register (Index is -1 when
// absent), a constant offset, and whether the pointer form {VAR} was used.
type Operand struct {
	Kind     OperandKind
	Register uint16
	Value    int
	Symbol   string
	Index    int
	Offset   int
	Pointer  bool
	Pos      TextRange
}

type StatementKind int

const (
	StatementBlank StatementKind = iota
	StatementSection
	StatementData
	StatementInstruction
	StatementLabel
)

// Statement is one parsed logical line element. A line such as
// "loop: ADDI A, 1" produces a StatementLabel followed by a
// StatementInstruction. Invalid marks a placeholder instruction that failed
// syntactic validation: it still occupies one instruction word so later
// addresses are unaffected, but the encoder skips it.
type Statement struct {
	Kind     StatementKind
	Mnemonic string
	Operands []Operand
	Name     string // section, label, or variable name
	Values   []DataValue
	Line     int
	Invalid  bool
}

// DataValue is one element of a BYTE declaration.
type DataValue struct {
	Value int
	Pos   TextRange
}

// SymbolTable holds the pass-1 bindings: code labels to instruction-word
// addresses and data variables to DMEM byte addresses. Each name appears at
// most once; duplicates are reported during pass 1.
type SymbolTable struct {
	Labels        map[string]uint16
	Variables     map[string]uint16
	LabelLines    map[string]int
	VariableLines map[string]int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Labels:        make(map[string]uint16),
		Variables:     make(map[string]uint16),
		LabelLines:    make(map[string]int),
		VariableLines: make(map[string]int),
	}
}

// EncodedWord is one 16-bit instruction word together with its IMEM address
// and originating source line.
type EncodedWord struct {
	Address    uint16
	Value      uint16
	SourceLine int
}

// DataByte is one initialized DMEM byte. Symbol names the variable the byte
// belongs to, for listing and ROM generation.
type DataByte struct {
	Address    uint16
	Value      uint8
	Symbol     string
	SourceLine int
}

// AssembledResult is the terminal artifact of one Assemble call.
type AssembledResult struct {
	Code        []EncodedWord
	Data        []DataByte
	Symbols     *SymbolTable
	Diagnostics []Diagnostic
	FileName    string

	fileContents []string
	lines        [][]Token
	statements   []Statement
	fatal        bool // pass 1 recorded errors that make addresses untrustworthy
}

// Succeeded reports whether assembly completed with no Error-level
// diagnostics. Warnings never affect the outcome.
func (a *AssembledResult) Succeeded() bool {
	for _, d := range a.Diagnostics {
		if d.Severity == Error {
			return false
		}
	}
	return true
}

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}
