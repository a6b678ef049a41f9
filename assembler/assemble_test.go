package assembler_test

import (
	"strings"
	"testing"

	"github.com/brandtdamman/i281-software/assembler"
)

func TestMinimalProgram(t *testing.T) {
	program := assembler.Assemble(".code\nNOOP")
	validateResult(t, program, []assembler.EncodedWord{{Address: 0, Value: 0x0000}}, nil, nil)
}

func TestSymbolTableAddresses(t *testing.T) {
	source := `.data
x BYTE 1
arr BYTE 2, 3
.code
start: JUMP done
NOOP
NOOP
done: JUMP start`

	program := assembler.Assemble(source)

	// label addresses depend only on preceding statement sizes, so the
	// forward reference to done resolves the same as the backward one
	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0xE002},
		{Address: 1, Value: 0x0000},
		{Address: 2, Value: 0x0000},
		{Address: 3, Value: 0xE0FC},
	}
	expectedData := []uint8{1, 2, 3}
	validateResult(t, program, expected, expectedData, nil)

	if len(program.Symbols.Labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(program.Symbols.Labels))
	}
	if addr := program.Symbols.Labels["start"]; addr != 0 {
		t.Errorf("Expected start at address 0, got %d", addr)
	}
	if addr := program.Symbols.Labels["done"]; addr != 3 {
		t.Errorf("Expected done at address 3, got %d", addr)
	}
	if addr := program.Symbols.Variables["x"]; addr != 0 {
		t.Errorf("Expected x at address 0, got %d", addr)
	}
	if addr := program.Symbols.Variables["arr"]; addr != 1 {
		t.Errorf("Expected arr at address 1, got %d", addr)
	}
}

func TestProgramArithmetic(t *testing.T) {
	source := `.code
LOADI A, 1
ADDI B, 2
MOVE A, B
SUB C, D
ADD A, B
SUBI D, 2
LOADI B, -1`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x3001},
		{Address: 1, Value: 0x5402},
		{Address: 2, Value: 0x2100},
		{Address: 3, Value: 0x6B00},
		{Address: 4, Value: 0x4100},
		{Address: 5, Value: 0x7C02},
		{Address: 6, Value: 0x34FF},
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, nil, nil)
}

func TestProgramBranchesAndLabels(t *testing.T) {
	source := `.code
loop: ADDI A, 1
CMP A, B
BRNE loop`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x5001},
		{Address: 1, Value: 0xD100},
		{Address: 2, Value: 0xF1FD}, // offset -3
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, nil, nil)
}

func TestProgramJumps(t *testing.T) {
	source := `.code
JUMP end
NOOP
end: SHIFTL A`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0xE001},
		{Address: 1, Value: 0x0000},
		{Address: 2, Value: 0xC000},
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, nil, nil)
}

func TestDataAndMemory(t *testing.T) {
	source := `.data
x BYTE 5
arr BYTE 1, 2, 3
.code
LOAD A, [x]
LOADF B, [arr+C]
STOREF [arr+C], D
STORE [x], B`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x8000},
		{Address: 1, Value: 0x9601},
		{Address: 2, Value: 0xBE01},
		{Address: 3, Value: 0xA400},
	}
	expectedData := []uint8{5, 1, 2, 3}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, nil)
}

func TestMemoryOffsets(t *testing.T) {
	source := `.data
arr BYTE 1, 2, 3
.code
LOAD A, [arr+1]
STORE [arr+2], B`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x8001},
		{Address: 1, Value: 0xA402},
	}
	expectedData := []uint8{1, 2, 3}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, nil)
}

func TestPointerLoad(t *testing.T) {
	source := `.data
arr BYTE 1, 2
.code
LOADP D, {arr}
SHIFTR B`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x3C00},
		{Address: 1, Value: 0xC500},
	}
	expectedData := []uint8{1, 2}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, nil)
}

func TestInputInstructions(t *testing.T) {
	source := `.data
buf BYTE ?, ?
.code
INPUTC [buf]
INPUTCF [buf+C]
INPUTD [buf+1]
INPUTDF [buf+D]`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x1000},
		{Address: 1, Value: 0x1900},
		{Address: 2, Value: 0x1201},
		{Address: 3, Value: 0x1F00},
	}
	expectedData := []uint8{0, 0}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, nil)
}

func TestDuplicateLabel(t *testing.T) {
	source := `.code
loop: NOOP
loop: NOOP`

	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.DuplicateLabel("loop", 1, lineSpan(2, len("loop: NOOP"))),
		assembler.Warnings.UnusedLabel("loop", lineSpan(1, len("loop: NOOP"))),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, nil, nil, expectedDiagnostics)
}

func TestImmediateTooLarge(t *testing.T) {
	source := `.code
LOADI A, 300`

	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.ImmediateOutOfRange("300", charSpan(1, 9, 12)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, nil, nil, expectedDiagnostics)
}

func TestUndefinedJumpTarget(t *testing.T) {
	source := `.code
JUMP nowhere`

	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.UndefinedSymbol("nowhere", charSpan(1, 5, 12)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, nil, nil, expectedDiagnostics)
}

func TestUnknownMnemonicKeepsAddresses(t *testing.T) {
	source := `.code
FOO A, B
NOOP`

	// the bad line still occupies word 0, so NOOP lands at word 1
	expected := []assembler.EncodedWord{
		{Address: 1, Value: 0x0000},
	}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.UnknownMnemonic("FOO", charSpan(1, 0, 3)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, nil, expectedDiagnostics)
}

func TestTrailingCommaWarning(t *testing.T) {
	source := `.data
x BYTE 1, 2,
.code
NOOP`

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x0000},
	}
	expectedData := []uint8{1, 2}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Warnings.TrailingComma(charSpan(1, 11, 12)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, expectedDiagnostics)
}

func TestMissingCodeSection(t *testing.T) {
	source := `.data
x BYTE 1`

	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.MissingCodeSection(lineSpan(1, len("x BYTE 1"))),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, nil, nil, expectedDiagnostics)
}

func TestCheckedAddressOutOfBounds(t *testing.T) {
	source := `.data
x BYTE 1
.code
LOAD A, [x+70]`

	expectedData := []uint8{1}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.AddressOutOfBounds(70, charSpan(3, 8, 14)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, nil, expectedData, expectedDiagnostics)
}

func TestUncheckedAddressWarns(t *testing.T) {
	source := `.data
x BYTE 1
.code
LOADF A, [x+C+70]`

	// LOADF cannot be fully validated statically, so the word is still emitted
	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x9246},
	}
	expectedData := []uint8{1}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Warnings.AddressMaybeOutOfBounds(70, charSpan(3, 9, 17)),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, expectedDiagnostics)
}

func TestCodeSegmentOverflow(t *testing.T) {
	source := ".code\n" + strings.Repeat("NOOP\n", 33)

	var expected []assembler.EncodedWord
	for i := 0; i < 33; i++ {
		expected = append(expected, assembler.EncodedWord{Address: uint16(i), Value: 0x0000})
	}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.CodeSegmentOverflow(lineSpan(33, len("NOOP"))),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, nil, expectedDiagnostics)
}

func TestDataSegmentOverflow(t *testing.T) {
	dataLine := "big BYTE 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17"
	source := ".data\n" + dataLine + "\n.code\nNOOP"

	expected := []assembler.EncodedWord{
		{Address: 0, Value: 0x0000},
	}
	expectedData := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	expectedDiagnostics := []assembler.Diagnostic{
		assembler.Errors.DataSegmentOverflow(lineSpan(1, len(dataLine))),
	}

	program := assembler.Assemble(source)
	validateResult(t, program, expected, expectedData, expectedDiagnostics)
}

func lineSpan(line, length int) assembler.TextRange {
	return charSpan(line, 0, length)
}

func charSpan(line, start, end int) assembler.TextRange {
	return assembler.TextRange{
		Start: assembler.TextPosition{Line: line, Char: start},
		End:   assembler.TextPosition{Line: line, Char: end},
	}
}

func validateResult(t *testing.T, program *assembler.AssembledResult, expectedCode []assembler.EncodedWord, expectedData []uint8, expectedDiagnostics []assembler.Diagnostic) {
	if len(program.Diagnostics) != len(expectedDiagnostics) {
		t.Fatalf("Expected %d diagnostics, got %d (%v)", len(expectedDiagnostics), len(program.Diagnostics), program.Diagnostics)
	}

	for i, diagnostic := range program.Diagnostics {
		if diagnostic.Severity != expectedDiagnostics[i].Severity {
			t.Errorf("Expected diagnostic %d to have severity %d, got %d", i, expectedDiagnostics[i].Severity, diagnostic.Severity)
		}

		if diagnostic.Range != expectedDiagnostics[i].Range {
			t.Errorf("Expected diagnostic %d to cover %v, got %v", i, expectedDiagnostics[i].Range, diagnostic.Range)
		}

		if diagnostic.Message != expectedDiagnostics[i].Message {
			t.Errorf("Expected diagnostic %d to be \"%s\", got \"%s\"", i, expectedDiagnostics[i].Message, diagnostic.Message)
		}
	}

	if len(program.Code) != len(expectedCode) {
		t.Fatalf("Expected %d instructions, got %d", len(expectedCode), len(program.Code))
	}

	if len(program.Data) != len(expectedData) {
		t.Fatalf("Expected %d data bytes, got %d", len(expectedData), len(program.Data))
	}

	for i, word := range program.Code {
		if word.Address != expectedCode[i].Address {
			t.Errorf("Expected instruction %d at address %d, got %d", i, expectedCode[i].Address, word.Address)
		}
		if word.Value != expectedCode[i].Value {
			t.Errorf("Expected instruction %d to be 0x%04x, got 0x%04x", i, expectedCode[i].Value, word.Value)
		}
	}

	for i, b := range program.Data {
		if b.Address != uint16(i) {
			t.Errorf("Expected data byte %d at address %d, got %d", i, i, b.Address)
		}
		if b.Value != expectedData[i] {
			t.Errorf("Expected data byte %d to be %d, got %d", i, expectedData[i], b.Value)
		}
	}
}
