package assembler

import "strings"

// Assemble runs the full two-pass pipeline over one source text: tokenize
// each line, parse into statements, resolve symbols (pass 1), then encode
// (pass 2). Every stage appends to the shared diagnostic collector and keeps
// going, so one run surfaces every problem in the file. Pass 2 only runs if
// pass 1 left the symbol table trustworthy.
func Assemble(input string) *AssembledResult {
	res := &AssembledResult{Symbols: NewSymbolTable()}
	res.fileContents = strings.Split(input, "\n")

	res.lines = make([][]Token, len(res.fileContents))
	for i, line := range res.fileContents {
		res.lines[i] = Tokenize(line, i)
	}

	p := parser{result: res}
	for i, tokens := range res.lines {
		res.statements = append(res.statements, p.parseLine(tokens, i)...)
	}

	res.resolveSymbols()

	if !res.fatal {
		res.encode()
	}
	return res
}
