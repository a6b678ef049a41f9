package assembler

import "strconv"

// encode is pass 2: it re-walks the statements with the completed symbol
// table and emits one instruction word per valid instruction statement plus
// the initialized DMEM bytes. Each statement is encoded independently, so an
// error on one line never suppresses diagnostics for the lines after it; the
// faulty statement is simply omitted from the output while still consuming
// its address.
func (a *AssembledResult) encode() {
	codeIdx := 0
	dataAddr := 0

	for _, stmt := range a.statements {
		switch stmt.Kind {
		case StatementInstruction:
			addr := uint16(codeIdx)
			codeIdx++
			if stmt.Invalid {
				continue
			}
			word, ok := a.encodeInstruction(stmt, addr)
			if ok {
				a.Code = append(a.Code, EncodedWord{Address: addr, Value: word, SourceLine: stmt.Line})
			}

		case StatementData:
			for _, v := range stmt.Values {
				value := v.Value
				if value < 0 || value > 255 {
					a.Diagnostics = append(a.Diagnostics, Errors.DataValueOutOfRange(strconv.Itoa(value), v.Pos))
					value = 0
				}
				a.Data = append(a.Data, DataByte{
					Address:    uint16(dataAddr),
					Value:      uint8(value),
					Symbol:     stmt.Name,
					SourceLine: stmt.Line,
				})
				dataAddr++
			}
		}
	}
}

func (a *AssembledResult) encodeInstruction(stmt Statement, addr uint16) (uint16, bool) {
	spec := InstructionSet[stmt.Mnemonic]
	ops := stmt.Operands

	field1 := uint16(0)
	field2 := uint16(0)
	imm := uint16(0)

	switch spec.Shape {
	case ShapeNone:
		// opcode only, all operand fields zero

	case ShapeReg:
		field1 = ops[0].Register
		field2 = spec.Mode

	case ShapeRegReg:
		field1 = ops[0].Register
		field2 = ops[1].Register

	case ShapeRegImm:
		field1 = ops[0].Register
		v := ops[1].Value
		if v < -128 || v > 255 {
			a.Diagnostics = append(a.Diagnostics, Errors.ImmediateOutOfRange(strconv.Itoa(v), ops[1].Pos))
			return 0, false
		}
		imm = uint16(v) & 0xFF

	case ShapeRegMem:
		field1 = ops[0].Register
		address, ok := a.memoryAddress(ops[1], spec)
		if !ok {
			return 0, false
		}
		if ops[1].Index >= 0 {
			field2 = uint16(ops[1].Index)
		}
		imm = uint16(address) & 0xFF

	case ShapeMemReg:
		field1 = ops[1].Register
		address, ok := a.memoryAddress(ops[0], spec)
		if !ok {
			return 0, false
		}
		if ops[0].Index >= 0 {
			field2 = uint16(ops[0].Index)
		}
		imm = uint16(address) & 0xFF

	case ShapeRegPtr:
		field1 = ops[0].Register
		address, ok := a.memoryAddress(ops[1], spec)
		if !ok {
			return 0, false
		}
		imm = uint16(address) & 0xFF

	case ShapeMem:
		if ops[0].Index >= 0 {
			field1 = uint16(ops[0].Index)
		}
		field2 = spec.Mode
		address, ok := a.memoryAddress(ops[0], spec)
		if !ok {
			return 0, false
		}
		imm = uint16(address) & 0xFF

	case ShapeLabel:
		field2 = spec.Mode
		// pass 1 already verified the label exists, but re-check so a bad
		// table can never encode a bogus address
		target, ok := a.Symbols.Labels[ops[0].Symbol]
		if !ok {
			a.Diagnostics = append(a.Diagnostics, Errors.UndefinedSymbol(ops[0].Symbol, ops[0].Pos))
			return 0, false
		}
		offset := int(target) - (int(addr) + 1)
		if offset < -128 || offset > 127 {
			a.Diagnostics = append(a.Diagnostics, Errors.BranchTargetTooFar(ops[0].Symbol, ops[0].Pos))
			return 0, false
		}
		imm = uint16(offset) & 0xFF
	}

	return MakeInstruction(spec.Opcode, field1, field2, imm), true
}

// memoryAddress resolves a bracket operand to variable address + constant
// offset and bounds-checks it. For the unchecked mnemonics (LOADF, LOADP)
// an out-of-bounds address only warns, matching the hardware documentation's
// stance that indexed accesses cannot be fully validated statically.
func (a *AssembledResult) memoryAddress(op Operand, spec InstructionSpec) (int, bool) {
	base, ok := a.Symbols.Variables[op.Symbol]
	if !ok {
		a.Diagnostics = append(a.Diagnostics, Errors.UndefinedSymbol(op.Symbol, op.Pos))
		return 0, false
	}

	address := int(base) + op.Offset
	if address < 0 || address > AddressLimit {
		if spec.Checked {
			a.Diagnostics = append(a.Diagnostics, Errors.AddressOutOfBounds(address, op.Pos))
			return 0, false
		}
		a.Diagnostics = append(a.Diagnostics, Warnings.AddressMaybeOutOfBounds(address, op.Pos))
	}
	return address, true
}
