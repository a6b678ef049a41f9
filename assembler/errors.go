package assembler

import "strconv"

// Errors and Warnings build the structured diagnostics every pass appends to
// the run's collector. Construction is centralized here so message wording
// and severities stay uniform.

type assemblyError struct{}

var Errors assemblyError

func (assemblyError) UnknownMnemonic(mnemonic string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unknown instruction mnemonic: \"" + mnemonic + "\"",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) UnknownDirective(directive string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unknown directive: \"" + directive + "\"",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) InvalidRegister(text string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Expected register (A, B, C, or D), got: \"" + text + "\"",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) InvalidInstructionFormat(format, mnemonic string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Invalid instruction format for " + mnemonic + "\nFormat: " + format,
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) ImmediateOutOfRange(value string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Immediate value \"" + value + "\" does not fit in 8 bits [-128, 255]",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) DataValueOutOfRange(value string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Data value \"" + value + "\" does not fit in a byte [0, 255]",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) UndefinedSymbol(name string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Undefined symbol: \"" + name + "\"",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) DuplicateLabel(name string, firstLine int, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Duplicate definition of \"" + name + "\", first defined on line " + strconv.Itoa(firstLine+1),
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) DuplicateSection(name string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "More than one " + name + " section exists",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) MissingCodeSection(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "There does not exist a .code section",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) StatementOutsideSection(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Statement appears before any .data or .code section",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) LabelOutsideCode(name string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Label \"" + name + "\" defined outside the .code section",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) InvalidDataValue(text string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Invalid data value: \"" + text + "\", expected an integer or ?",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) InvalidDataDeclaration(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Invalid data declaration\nFormat: <name> BYTE <value>[, <value>...]",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) AddressOutOfBounds(address int, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Address " + strconv.Itoa(address) + " is out of bounds of DMEM [0, " + strconv.Itoa(AddressLimit) + "]",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) BranchTargetTooFar(label string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Branch target \"" + label + "\" is too far away; the offset does not fit in 8 bits",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) CodeSegmentOverflow(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Length of code exceeds size of IMEM (" + strconv.Itoa(IMEMSize) + " instructions)",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) DataSegmentOverflow(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Data variables exceed DMEM (" + strconv.Itoa(DMEMSize) + " bytes)",
		Source:   "Assembler",
		Severity: Error,
	}
}

func (assemblyError) UnexpectedToken(text string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unexpected token: \"" + text + "\"",
		Source:   "Assembler",
		Severity: Error,
	}
}

// Warnings

type assemblyWarning struct{}

var Warnings assemblyWarning

func (assemblyWarning) AddressMaybeOutOfBounds(address int, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Address " + strconv.Itoa(address) + " might be out of bounds of DMEM",
		Source:   "Assembler",
		Severity: Warning,
	}
}

func (assemblyWarning) TrailingComma(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Trailing comma found in array declaration",
		Source:   "Assembler",
		Severity: Warning,
	}
}

func (assemblyWarning) UnusedLabel(label string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unused label: \"" + label + "\"",
		Source:   "Assembler",
		Severity: Warning,
	}
}
