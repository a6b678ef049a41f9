package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandtdamman/i281-software/assembler"
)

// The FPGA build of the processor loads its ROMs from three generated
// modules: User_Code_Low holds instruction words 0 to 15, User_Code_High
// words 16 to 31, and User_Data the initialized DMEM bytes. Each module
// drives sixteen output buses named b0I through b15I.

const codeFill = "0000_00_00_00000000"

// WriteVerilog writes the three ROM module files into dir.
func WriteVerilog(dir string, result *assembler.AssembledResult) error {
	image := codeImage(result)

	files := map[string]string{
		"User_Code_Low.v":  VerilogCode("User_Code_Low", image[:16]),
		"User_Code_High.v": VerilogCode("User_Code_High", image[16:]),
		"User_Data.v":      VerilogData(result.Data),
	}

	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// codeImage places each encoded word at its IMEM address. Addresses with no
// word, which only happens for programs with errors, read as zero.
func codeImage(result *assembler.AssembledResult) [assembler.IMEMSize]uint16 {
	var image [assembler.IMEMSize]uint16
	for _, word := range result.Code {
		if int(word.Address) < len(image) {
			image[word.Address] = word.Value
		}
	}
	return image
}

// VerilogCode renders one 16-entry code ROM module. Entries beyond the
// program's length are filled with zero words.
func VerilogCode(name string, words []uint16) string {
	var sb strings.Builder
	writeModuleHeader(&sb, name, 15)

	for i, word := range words {
		fmt.Fprintf(&sb, "\tassign b%dI[15:0] = 16'b%s;\r\n", i, FormatWord(word))
	}
	for i := len(words); i < 16; i++ {
		fmt.Fprintf(&sb, "\tassign b%dI[15:0] = 16'b%s;\r\n", i, codeFill)
	}

	sb.WriteString("\nendmodule\r\n")
	return sb.String()
}

// VerilogData renders the User_Data ROM module. Each initialized byte is
// annotated with the variable it belongs to; bytes of a multi-byte variable
// carry their DMEM address as an index.
func VerilogData(data []assembler.DataByte) string {
	var sb strings.Builder
	writeModuleHeader(&sb, "User_Data", 7)

	arrays := make(map[string]int)
	for _, b := range data {
		arrays[b.Symbol]++
	}

	for i, b := range data {
		if i >= 16 {
			break
		}
		comment := "//" + b.Symbol
		if arrays[b.Symbol] > 1 {
			comment = fmt.Sprintf("//%s[%d]", b.Symbol, b.Address)
		}
		fmt.Fprintf(&sb, "\tassign b%dI[7:0] = 8'b%s; %s\r\n", i, FormatByte(b.Value), comment)
	}
	for i := len(data); i < 16; i++ {
		fmt.Fprintf(&sb, "\tassign b%dI[7:0] = 8'b%s;\r\n", i, strings.Repeat("0", 8))
	}

	sb.WriteString("\nendmodule\r\n")
	return sb.String()
}

func writeModuleHeader(sb *strings.Builder, name string, width int) {
	sb.WriteString("module " + name + "(")
	for i := 0; i < 16; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(sb, "b%dI", i)
	}
	sb.WriteString(");\r\n\r\n")

	for i := 0; i < 16; i++ {
		fmt.Fprintf(sb, "\toutput [%d:0] b%dI;\r\n", width, i)
	}
	sb.WriteString("\n")
}
