package assembler

import "sort"

// resolveSymbols is pass 1: it walks the parsed statements in order,
// maintains the code and data location counters, and binds every label and
// variable to an address. Sizing depends only on the statement kind (every
// instruction is one word, a BYTE declaration is one byte per value), so the
// addresses it assigns are independent of forward references.
//
// Errors that make addresses untrustworthy (duplicate definitions, section
// errors, references to symbols that are never defined) mark the result
// fatal, which prevents pass 2 from running.
func (a *AssembledResult) resolveSymbols() {
	codeCount := 0
	dataCount := 0
	seenData := false
	seenCode := false
	codeOverflow := false
	dataOverflow := false

	for _, stmt := range a.statements {
		switch stmt.Kind {
		case StatementSection:
			if stmt.Name == "data" {
				if seenData {
					a.Diagnostics = append(a.Diagnostics, Errors.DuplicateSection(".data", a.lineRangeOf(stmt.Line)))
					a.fatal = true
				}
				seenData = true
			} else {
				if seenCode {
					a.Diagnostics = append(a.Diagnostics, Errors.DuplicateSection(".code", a.lineRangeOf(stmt.Line)))
					a.fatal = true
				}
				seenCode = true
			}

		case StatementLabel:
			if first, ok := a.Symbols.LabelLines[stmt.Name]; ok {
				a.Diagnostics = append(a.Diagnostics, Errors.DuplicateLabel(stmt.Name, first, a.lineRangeOf(stmt.Line)))
				a.fatal = true
				continue
			}
			a.Symbols.Labels[stmt.Name] = uint16(codeCount)
			a.Symbols.LabelLines[stmt.Name] = stmt.Line

		case StatementInstruction:
			codeCount++
			if codeCount > IMEMSize && !codeOverflow {
				a.Diagnostics = append(a.Diagnostics, Errors.CodeSegmentOverflow(a.lineRangeOf(stmt.Line)))
				codeOverflow = true
			}

		case StatementData:
			if first, ok := a.Symbols.VariableLines[stmt.Name]; ok {
				a.Diagnostics = append(a.Diagnostics, Errors.DuplicateLabel(stmt.Name, first, a.lineRangeOf(stmt.Line)))
				a.fatal = true
				continue
			}
			a.Symbols.Variables[stmt.Name] = uint16(dataCount)
			a.Symbols.VariableLines[stmt.Name] = stmt.Line
			dataCount += len(stmt.Values)
			if dataCount > DMEMSize && !dataOverflow {
				a.Diagnostics = append(a.Diagnostics, Errors.DataSegmentOverflow(a.lineRangeOf(stmt.Line)))
				dataOverflow = true
			}
		}
	}

	if !seenCode {
		a.Diagnostics = append(a.Diagnostics, Errors.MissingCodeSection(a.lineRangeOf(len(a.fileContents)-1)))
		a.fatal = true
	}

	a.checkReferences()
}

// checkReferences verifies every label and variable reference against the
// completed table. Undefined symbols are fatal: encoding against a missing
// address would be meaningless. Labels that are never the target of a jump
// or branch are reported as warnings.
func (a *AssembledResult) checkReferences() {
	usedLabels := make(map[string]bool)

	for _, stmt := range a.statements {
		if stmt.Kind != StatementInstruction || stmt.Invalid {
			continue
		}
		for _, op := range stmt.Operands {
			switch op.Kind {
			case OperandLabel:
				if _, ok := a.Symbols.Labels[op.Symbol]; !ok {
					a.Diagnostics = append(a.Diagnostics, Errors.UndefinedSymbol(op.Symbol, op.Pos))
					a.fatal = true
					continue
				}
				usedLabels[op.Symbol] = true
			case OperandMemory:
				if _, ok := a.Symbols.Variables[op.Symbol]; !ok {
					a.Diagnostics = append(a.Diagnostics, Errors.UndefinedSymbol(op.Symbol, op.Pos))
					a.fatal = true
				}
			}
		}
	}

	var unused []string
	for name := range a.Symbols.LabelLines {
		if !usedLabels[name] {
			unused = append(unused, name)
		}
	}
	sort.Slice(unused, func(i, j int) bool {
		return a.Symbols.LabelLines[unused[i]] < a.Symbols.LabelLines[unused[j]]
	})
	for _, name := range unused {
		a.Diagnostics = append(a.Diagnostics, Warnings.UnusedLabel(name, a.lineRangeOf(a.Symbols.LabelLines[name])))
	}
}

func (a *AssembledResult) lineRangeOf(line int) TextRange {
	if line < 0 {
		line = 0
	}
	length := 0
	if line < len(a.fileContents) {
		length = len(a.fileContents[line])
	}
	return TextRange{
		Start: TextPosition{Line: line, Char: 0},
		End:   TextPosition{Line: line, Char: length},
	}
}
