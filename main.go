package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandtdamman/i281-software/assembler"
	"github.com/brandtdamman/i281-software/languageServer"
	"github.com/brandtdamman/i281-software/output"
	"github.com/brandtdamman/i281-software/playground"
	"github.com/brandtdamman/i281-software/util"
)

const version = "1.0.0"

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "languageServer" {
		if len(os.Args) >= 3 && os.Args[2] == "debug" {
			util.LoggingEnabled = true
		}
		languageServer.ListenAndServe()
	} else if len(os.Args) >= 3 && os.Args[1] == "assemble" {
		failures := 0
		for _, filePath := range os.Args[2:] {
			if !assembleFile(filePath) {
				failures++
			}
		}
		if failures > 0 {
			os.Exit(1)
		}
	} else if len(os.Args) == 2 && os.Args[1] == "serve" {
		log.Fatalln(playground.ListenAndServe(":2812"))
	} else if len(os.Args) == 2 && os.Args[1] == "version" {
		fmt.Println("i281 assembler version", version)
	} else if len(os.Args) == 1 {
		// run as language server but in tcp mode so it can be remotely debugged
		languageServer.ListenAndServeTCP()
	} else {
		log.Fatalln("Invalid arguments:", os.Args)
	}
}

// assembleFile assembles one source file and writes its listing and Verilog
// ROM modules under output/<name>/. Diagnostics go to stderr either way.
func assembleFile(filePath string) bool {
	b, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Could not read file %s: %v", filePath, err)
		return false
	}

	source := string(b)
	result := assembler.Assemble(source)
	result.FileName = filepath.Base(filePath)

	for _, diag := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", result.FileName, diag.Range.Start.Line+1, diag.Range.Start.Char, strings.ReplaceAll(diag.Message, "\n", " "))
	}

	if !result.Succeeded() {
		return false
	}

	name := strings.TrimSuffix(result.FileName, filepath.Ext(result.FileName))
	dir := filepath.Join("output", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Could not create output directory %s: %v", dir, err)
		return false
	}

	listing, err := os.Create(filepath.Join(dir, name+".bin"))
	if err != nil {
		log.Printf("Could not create listing file: %v", err)
		return false
	}
	defer listing.Close()

	if err := output.WriteListing(listing, source, result); err != nil {
		log.Printf("Could not write listing: %v", err)
		return false
	}
	if err := output.WriteVerilog(dir, result); err != nil {
		log.Printf("Could not write Verilog files: %v", err)
		return false
	}

	fmt.Printf("%s assembled: %d instructions, %d data bytes -> %s\n", result.FileName, len(result.Code), len(result.Data), dir)
	return true
}
