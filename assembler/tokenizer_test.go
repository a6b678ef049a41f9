package assembler_test

import (
	"reflect"
	"testing"

	"github.com/brandtdamman/i281-software/assembler"
)

func checkTokens(t *testing.T, line string, expected []assembler.Token) {
	tokens := assembler.Tokenize(line, 0)
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d (%v)", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].Kind {
			t.Errorf("Expected token %d to have kind %d, got %d", i, expected[i].Kind, tok.Kind)
		}
		if tok.Text != expected[i].Text {
			t.Errorf("Expected token %d to be %q, got %q", i, expected[i].Text, tok.Text)
		}
		if tok.Column != expected[i].Column {
			t.Errorf("Expected token %d at column %d, got %d", i, expected[i].Column, tok.Column)
		}
	}
}

func TestTokenizeInstructionLine(t *testing.T) {
	checkTokens(t, "loop: LOADF A, [arr+C] ; fetch", []assembler.Token{
		{Kind: assembler.TokenLabelDef, Text: "loop", Column: 0},
		{Kind: assembler.TokenMnemonic, Text: "LOADF", Column: 6},
		{Kind: assembler.TokenRegister, Text: "A", Column: 12},
		{Kind: assembler.TokenComma, Text: ",", Column: 13},
		{Kind: assembler.TokenLeftBracket, Text: "[", Column: 15},
		{Kind: assembler.TokenLabelRef, Text: "arr", Column: 16},
		{Kind: assembler.TokenPlus, Text: "+", Column: 19},
		{Kind: assembler.TokenRegister, Text: "C", Column: 20},
		{Kind: assembler.TokenRightBracket, Text: "]", Column: 21},
		{Kind: assembler.TokenComment, Text: "; fetch", Column: 23},
	})
}

func TestTokenizeDataLine(t *testing.T) {
	checkTokens(t, "x BYTE 10, ?", []assembler.Token{
		{Kind: assembler.TokenLabelRef, Text: "x", Column: 0},
		{Kind: assembler.TokenLabelRef, Text: "BYTE", Column: 2},
		{Kind: assembler.TokenImmediate, Text: "10", Column: 7},
		{Kind: assembler.TokenComma, Text: ",", Column: 9},
		{Kind: assembler.TokenQuestion, Text: "?", Column: 11},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 12},
	})
}

func TestTokenizeDirective(t *testing.T) {
	checkTokens(t, ".data", []assembler.Token{
		{Kind: assembler.TokenDirective, Text: ".data", Column: 0},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 5},
	})
}

func TestTokenizePointerForm(t *testing.T) {
	checkTokens(t, "LOADP B, {arr-2}", []assembler.Token{
		{Kind: assembler.TokenMnemonic, Text: "LOADP", Column: 0},
		{Kind: assembler.TokenRegister, Text: "B", Column: 6},
		{Kind: assembler.TokenComma, Text: ",", Column: 7},
		{Kind: assembler.TokenLeftBrace, Text: "{", Column: 9},
		{Kind: assembler.TokenLabelRef, Text: "arr", Column: 10},
		{Kind: assembler.TokenMinus, Text: "-", Column: 13},
		{Kind: assembler.TokenImmediate, Text: "2", Column: 14},
		{Kind: assembler.TokenRightBrace, Text: "}", Column: 15},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 16},
	})
}

func TestTokenizeInvalid(t *testing.T) {
	checkTokens(t, "1abc @", []assembler.Token{
		{Kind: assembler.TokenInvalid, Text: "1abc", Column: 0},
		{Kind: assembler.TokenInvalid, Text: "@", Column: 5},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 6},
	})
}

func TestTokenizeUnterminatedString(t *testing.T) {
	checkTokens(t, `"abc`, []assembler.Token{
		{Kind: assembler.TokenInvalid, Text: `"abc`, Column: 0},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 4},
	})
}

func TestTokenizeEmptyLine(t *testing.T) {
	checkTokens(t, "", []assembler.Token{
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 0},
	})
}

func TestTokenizeDeterministic(t *testing.T) {
	line := "loop: LOADF A, [arr+C] ; fetch"
	first := assembler.Tokenize(line, 0)
	second := assembler.Tokenize(line, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenizing the same line twice gave %v and %v", first, second)
	}
}

func TestTokenizeCaseSensitivity(t *testing.T) {
	// mnemonics and registers must be uppercase; lowercase forms are symbols
	checkTokens(t, "loadi a", []assembler.Token{
		{Kind: assembler.TokenLabelRef, Text: "loadi", Column: 0},
		{Kind: assembler.TokenLabelRef, Text: "a", Column: 6},
		{Kind: assembler.TokenEndOfLine, Text: "", Column: 7},
	})
}
