package assembler

// Tokenize splits one source line into tokens. It is total: unrecognized
// characters become TokenInvalid tokens and are reported by the parser, never
// here. The token sequence always ends with either a TokenComment (when the
// line carries one) or a TokenEndOfLine.
func Tokenize(line string, lineNumber int) []Token {
	tokens := []Token{}

	pos := 0
	for pos < len(line) {
		c := line[pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r':
			pos++
			continue
		case c == ';':
			tokens = append(tokens, Token{Kind: TokenComment, Text: line[pos:], Line: lineNumber, Column: pos})
			return tokens
		case c == ',':
			tokens = append(tokens, Token{Kind: TokenComma, Text: ",", Line: lineNumber, Column: pos})
			pos++
		case c == '[':
			tokens = append(tokens, Token{Kind: TokenLeftBracket, Text: "[", Line: lineNumber, Column: pos})
			pos++
		case c == ']':
			tokens = append(tokens, Token{Kind: TokenRightBracket, Text: "]", Line: lineNumber, Column: pos})
			pos++
		case c == '{':
			tokens = append(tokens, Token{Kind: TokenLeftBrace, Text: "{", Line: lineNumber, Column: pos})
			pos++
		case c == '}':
			tokens = append(tokens, Token{Kind: TokenRightBrace, Text: "}", Line: lineNumber, Column: pos})
			pos++
		case c == '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Text: "+", Line: lineNumber, Column: pos})
			pos++
		case c == '-':
			tokens = append(tokens, Token{Kind: TokenMinus, Text: "-", Line: lineNumber, Column: pos})
			pos++
		case c == '?':
			tokens = append(tokens, Token{Kind: TokenQuestion, Text: "?", Line: lineNumber, Column: pos})
			pos++
		case c == '"':
			tokens = append(tokens, lexString(line, lineNumber, &pos))
		case c == '.':
			tokens = append(tokens, lexDirective(line, lineNumber, &pos))
		case c >= '0' && c <= '9':
			tokens = append(tokens, lexNumber(line, lineNumber, &pos))
		case isIdentChar(c):
			tokens = append(tokens, lexIdentifier(line, lineNumber, &pos))
		default:
			tokens = append(tokens, Token{Kind: TokenInvalid, Text: string(c), Line: lineNumber, Column: pos})
			pos++
		}
	}

	tokens = append(tokens, Token{Kind: TokenEndOfLine, Line: lineNumber, Column: len(line)})
	return tokens
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func lexNumber(line string, lineNumber int, pos *int) Token {
	start := *pos
	for *pos < len(line) && line[*pos] >= '0' && line[*pos] <= '9' {
		*pos++
	}

	// a digit run glued to identifier characters is not a number
	if *pos < len(line) && isIdentChar(line[*pos]) {
		for *pos < len(line) && isIdentChar(line[*pos]) {
			*pos++
		}
		return Token{Kind: TokenInvalid, Text: line[start:*pos], Line: lineNumber, Column: start}
	}

	return Token{Kind: TokenImmediate, Text: line[start:*pos], Line: lineNumber, Column: start}
}

func lexIdentifier(line string, lineNumber int, pos *int) Token {
	start := *pos
	for *pos < len(line) && isIdentChar(line[*pos]) {
		*pos++
	}
	text := line[start:*pos]

	// a trailing colon turns the identifier into a label definition
	if *pos < len(line) && line[*pos] == ':' {
		*pos++
		return Token{Kind: TokenLabelDef, Text: text, Line: lineNumber, Column: start}
	}

	if _, ok := InstructionSet[text]; ok {
		return Token{Kind: TokenMnemonic, Text: text, Line: lineNumber, Column: start}
	}
	if _, ok := RegisterNames[text]; ok {
		return Token{Kind: TokenRegister, Text: text, Line: lineNumber, Column: start}
	}
	return Token{Kind: TokenLabelRef, Text: text, Line: lineNumber, Column: start}
}

func lexDirective(line string, lineNumber int, pos *int) Token {
	start := *pos
	*pos++ // leading dot
	for *pos < len(line) && isIdentChar(line[*pos]) {
		*pos++
	}
	return Token{Kind: TokenDirective, Text: line[start:*pos], Line: lineNumber, Column: start}
}

func lexString(line string, lineNumber int, pos *int) Token {
	start := *pos
	*pos++ // opening quote
	for *pos < len(line) && line[*pos] != '"' {
		*pos++
	}
	if *pos >= len(line) {
		// unterminated
		return Token{Kind: TokenInvalid, Text: line[start:], Line: lineNumber, Column: start}
	}
	*pos++ // closing quote
	return Token{Kind: TokenStringLit, Text: line[start:*pos], Line: lineNumber, Column: start}
}
