package assembler

import "strconv"

// parser turns token sequences into statements, one logical line at a time.
// It tracks which section the line falls in because the grammar differs:
// .data lines declare BYTE variables, .code lines hold instructions.
// Validation here is purely syntactic (operand count and token-kind shape);
// value ranges and symbol resolution belong to the later passes.
type parser struct {
	result  *AssembledResult
	section string
}

func (p *parser) report(d Diagnostic) {
	p.result.Diagnostics = append(p.result.Diagnostics, d)
}

// parseLine consumes one line's tokens and returns the statements it defines.
// A line can yield up to two statements: a label definition and the
// instruction following it.
func (p *parser) parseLine(tokens []Token, lineNum int) []Statement {
	body := tokens
	for len(body) > 0 {
		last := body[len(body)-1].Kind
		if last == TokenComment || last == TokenEndOfLine {
			body = body[:len(body)-1]
			continue
		}
		break
	}
	if len(body) == 0 {
		return nil
	}

	var stmts []Statement

	if body[0].Kind == TokenLabelDef {
		if p.section != "code" {
			p.report(Errors.LabelOutsideCode(body[0].Text, body[0].Range()))
		} else {
			stmts = append(stmts, Statement{Kind: StatementLabel, Name: body[0].Text, Line: lineNum})
		}
		body = body[1:]
		if len(body) == 0 {
			return stmts
		}
	}

	if body[0].Kind == TokenDirective {
		return append(stmts, p.parseDirective(body, lineNum)...)
	}

	switch p.section {
	case "":
		p.report(Errors.StatementOutsideSection(body[0].Range()))
		return stmts
	case "data":
		return append(stmts, p.parseData(body, lineNum)...)
	default:
		return append(stmts, p.parseInstruction(body, lineNum))
	}
}

func (p *parser) parseDirective(body []Token, lineNum int) []Statement {
	name := body[0].Text
	if name != ".data" && name != ".code" {
		p.report(Errors.UnknownDirective(name, body[0].Range()))
		return nil
	}
	if len(body) > 1 {
		p.report(Errors.UnexpectedToken(body[1].Text, body[1].Range()))
	}
	p.section = name[1:]
	return []Statement{{Kind: StatementSection, Name: name[1:], Line: lineNum}}
}

// parseData handles "<name> BYTE <value>[, <value>...]" declarations. Values
// are unsigned decimal integers or ?, which reserves a zeroed byte.
func (p *parser) parseData(body []Token, lineNum int) []Statement {
	if len(body) < 3 || body[0].Kind != TokenLabelRef || body[1].Kind != TokenLabelRef || body[1].Text != "BYTE" {
		p.report(Errors.InvalidDataDeclaration(lineRange(body)))
		return nil
	}

	stmt := Statement{Kind: StatementData, Name: body[0].Text, Line: lineNum}

	rest := body[2:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		switch tok.Kind {
		case TokenImmediate:
			v, err := strconv.Atoi(tok.Text)
			if err != nil {
				p.report(Errors.DataValueOutOfRange(tok.Text, tok.Range()))
				stmt.Invalid = true
				v = 0
			}
			stmt.Values = append(stmt.Values, DataValue{Value: v, Pos: tok.Range()})
		case TokenQuestion:
			stmt.Values = append(stmt.Values, DataValue{Value: 0, Pos: tok.Range()})
		default:
			p.report(Errors.InvalidDataValue(tok.Text, tok.Range()))
			stmt.Invalid = true
			continue
		}

		// between values there must be exactly one comma
		if i+1 < len(rest) {
			if rest[i+1].Kind != TokenComma {
				p.report(Errors.InvalidDataValue(rest[i+1].Text, rest[i+1].Range()))
				stmt.Invalid = true
				return []Statement{stmt}
			}
			i++
			if i+1 == len(rest) {
				p.report(Warnings.TrailingComma(rest[i].Range()))
			}
		}
	}

	return []Statement{stmt}
}

func (p *parser) parseInstruction(body []Token, lineNum int) Statement {
	first := body[0]
	if first.Kind != TokenMnemonic {
		if first.Kind == TokenLabelRef || first.Kind == TokenRegister {
			p.report(Errors.UnknownMnemonic(first.Text, first.Range()))
		} else {
			p.report(Errors.UnexpectedToken(first.Text, first.Range()))
		}
		// placeholder so pass 1 still advances the location counter
		return Statement{Kind: StatementInstruction, Mnemonic: first.Text, Line: lineNum, Invalid: true}
	}

	spec := InstructionSet[first.Text]
	stmt := Statement{Kind: StatementInstruction, Mnemonic: first.Text, Line: lineNum}

	c := &tokenCursor{toks: body[1:], line: lineNum, end: lineEnd(body)}
	ok := true
	switch spec.Shape {
	case ShapeNone:
		// no operands
	case ShapeReg:
		ok = p.operandRegister(c, &stmt)
	case ShapeRegReg:
		ok = p.operandRegister(c, &stmt) && p.comma(c, &stmt, spec) && p.operandRegister(c, &stmt)
	case ShapeRegImm:
		ok = p.operandRegister(c, &stmt) && p.comma(c, &stmt, spec) && p.operandImmediate(c, &stmt)
	case ShapeRegMem:
		ok = p.operandRegister(c, &stmt) && p.comma(c, &stmt, spec) &&
			p.operandMemory(c, &stmt, spec, '[')
	case ShapeMemReg:
		ok = p.operandMemory(c, &stmt, spec, '[') && p.comma(c, &stmt, spec) &&
			p.operandRegister(c, &stmt)
	case ShapeRegPtr:
		ok = p.operandRegister(c, &stmt) && p.comma(c, &stmt, spec) &&
			p.operandMemory(c, &stmt, spec, '{')
	case ShapeMem:
		ok = p.operandMemory(c, &stmt, spec, '[')
	case ShapeLabel:
		ok = p.operandLabel(c, &stmt)
	}

	if ok && c.i < len(c.toks) {
		p.report(Errors.InvalidInstructionFormat(formatFor(stmt.Mnemonic, spec), stmt.Mnemonic, c.peek().Range()))
		ok = false
	}

	if !ok {
		stmt.Invalid = true
		stmt.Operands = nil
	}
	return stmt
}

type tokenCursor struct {
	toks []Token
	i    int
	line int
	end  int
}

func (c *tokenCursor) peek() Token {
	if c.i >= len(c.toks) {
		return Token{Kind: TokenEndOfLine, Line: c.line, Column: c.end}
	}
	return c.toks[c.i]
}

func (c *tokenCursor) next() Token {
	t := c.peek()
	if c.i < len(c.toks) {
		c.i++
	}
	return t
}

func (p *parser) comma(c *tokenCursor, stmt *Statement, spec InstructionSpec) bool {
	tok := c.next()
	if tok.Kind != TokenComma {
		p.report(Errors.InvalidInstructionFormat(formatFor(stmt.Mnemonic, spec), stmt.Mnemonic, tok.Range()))
		return false
	}
	return true
}

func (p *parser) operandRegister(c *tokenCursor, stmt *Statement) bool {
	tok := c.next()
	if tok.Kind != TokenRegister {
		p.report(Errors.InvalidRegister(tok.Text, tok.Range()))
		return false
	}
	stmt.Operands = append(stmt.Operands, Operand{
		Kind:     OperandRegister,
		Register: RegisterNames[tok.Text],
		Index:    -1,
		Pos:      tok.Range(),
	})
	return true
}

func (p *parser) operandImmediate(c *tokenCursor, stmt *Statement) bool {
	sign := 1
	start := c.peek()
	if start.Kind == TokenMinus {
		sign = -1
		c.next()
	}
	tok := c.next()
	if tok.Kind != TokenImmediate {
		p.report(Errors.UnexpectedToken(tok.Text, tok.Range()))
		return false
	}
	v, err := strconv.Atoi(tok.Text)
	if err != nil {
		p.report(Errors.ImmediateOutOfRange(tok.Text, tok.Range()))
		return false
	}
	pos := TextRange{Start: start.Range().Start, End: tok.Range().End}
	stmt.Operands = append(stmt.Operands, Operand{Kind: OperandImmediate, Value: sign * v, Index: -1, Pos: pos})
	return true
}

func (p *parser) operandLabel(c *tokenCursor, stmt *Statement) bool {
	tok := c.next()
	if tok.Kind != TokenLabelRef {
		p.report(Errors.UnexpectedToken(tok.Text, tok.Range()))
		return false
	}
	stmt.Operands = append(stmt.Operands, Operand{Kind: OperandLabel, Symbol: tok.Text, Index: -1, Pos: tok.Range()})
	return true
}

// operandMemory parses [VAR], [VAR+REG], and their +/- constant offset forms,
// or the {VAR} pointer form when open is '{'. Whether an index register is
// required is decided by the mnemonic's table row.
func (p *parser) operandMemory(c *tokenCursor, stmt *Statement, spec InstructionSpec, open byte) bool {
	wantOpen, wantClose := TokenLeftBracket, TokenRightBracket
	if open == '{' {
		wantOpen, wantClose = TokenLeftBrace, TokenRightBrace
	}

	format := formatFor(stmt.Mnemonic, spec)
	tok := c.next()
	if tok.Kind != wantOpen {
		p.report(Errors.InvalidInstructionFormat(format, stmt.Mnemonic, tok.Range()))
		return false
	}

	startPos := tok.Range().Start
	name := c.next()
	if name.Kind != TokenLabelRef {
		p.report(Errors.InvalidInstructionFormat(format, stmt.Mnemonic, name.Range()))
		return false
	}

	op := Operand{Kind: OperandMemory, Symbol: name.Text, Index: -1, Pointer: open == '{'}

	if spec.Indexed {
		if c.next().Kind != TokenPlus {
			p.report(Errors.InvalidInstructionFormat(format, stmt.Mnemonic, name.Range()))
			return false
		}
		reg := c.next()
		if reg.Kind != TokenRegister {
			p.report(Errors.InvalidRegister(reg.Text, reg.Range()))
			return false
		}
		op.Index = int(RegisterNames[reg.Text])
	}

	// optional constant offset
	if k := c.peek().Kind; k == TokenPlus || k == TokenMinus {
		sign := 1
		if k == TokenMinus {
			sign = -1
		}
		c.next()
		offTok := c.next()
		if offTok.Kind != TokenImmediate {
			p.report(Errors.InvalidInstructionFormat(format, stmt.Mnemonic, offTok.Range()))
			return false
		}
		v, err := strconv.Atoi(offTok.Text)
		if err != nil {
			p.report(Errors.ImmediateOutOfRange(offTok.Text, offTok.Range()))
			return false
		}
		op.Offset = sign * v
	}

	closing := c.next()
	if closing.Kind != wantClose {
		p.report(Errors.InvalidInstructionFormat(format, stmt.Mnemonic, closing.Range()))
		return false
	}

	op.Pos = TextRange{Start: startPos, End: closing.Range().End}
	stmt.Operands = append(stmt.Operands, op)
	return true
}

func lineRange(body []Token) TextRange {
	return TextRange{Start: body[0].Range().Start, End: body[len(body)-1].Range().End}
}

func lineEnd(body []Token) int {
	last := body[len(body)-1]
	return last.Column + len(last.Text)
}
