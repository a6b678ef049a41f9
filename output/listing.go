// Package output renders an assembled program into the artifacts the
// hardware toolchain consumes: a human-readable listing and the Verilog ROM
// modules loaded onto the FPGA build of the processor.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/brandtdamman/i281-software/assembler"
)

// FormatWord renders one instruction word as underscore-separated binary,
// matching the field layout: opcode, field1, field2, imm8.
func FormatWord(word uint16) string {
	opcode, field1, field2, imm := assembler.DecodeInstruction(word)
	return fmt.Sprintf("%04b_%02b_%02b_%08b", opcode, field1, field2, imm)
}

// FormatByte renders one data byte as plain binary.
func FormatByte(b uint8) string {
	return fmt.Sprintf("%08b", b)
}

// WriteListing writes the .bin listing: the original assembly followed by the
// machine code, one underscored binary word per instruction.
func WriteListing(w io.Writer, source string, result *assembler.AssembledResult) error {
	var sb strings.Builder
	sb.WriteString("=======ASSEMBLY CODE======\n")
	for _, line := range strings.Split(source, "\n") {
		if len(strings.TrimRight(line, "\r")) > 1 {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString("=======MACHINE CODE=======\n")
	words := make([]string, 0, len(result.Code))
	for _, word := range result.Code {
		words = append(words, FormatWord(word.Value))
	}
	sb.WriteString(strings.Join(words, "\n"))

	_, err := io.WriteString(w, sb.String())
	return err
}
