package assembler

import (
	"fmt"
	"strconv"
)

// EvaluateHover returns markdown documentation for whatever sits under the
// given source position, and whether there is anything to show. It works off
// the token stream kept from the last assembly, so hover keeps functioning
// even when the file has errors.
func (a *AssembledResult) EvaluateHover(position TextPosition) (string, bool) {
	if position.Line < 0 || position.Line >= len(a.lines) {
		return "", false
	}

	var tok Token
	found := false
	for _, t := range a.lines[position.Line] {
		if t.Kind == TokenComment || t.Kind == TokenEndOfLine {
			break
		}
		if position.Char >= t.Column && position.Char < t.Column+len(t.Text) {
			tok = t
			found = true
			break
		}
	}
	if !found {
		return "", false
	}

	switch tok.Kind {
	case TokenMnemonic:
		return getHoverInfoForInstruction(tok.Text), true

	case TokenRegister:
		return getHoverInfoForRegister(int(RegisterNames[tok.Text]), tok.Text), true

	case TokenLabelDef:
		return fmt.Sprintf(hoverInfoFormats.labelDefinition, tok.Text, a.Symbols.Labels[tok.Text]), true

	case TokenLabelRef:
		if addr, ok := a.Symbols.Labels[tok.Text]; ok {
			return fmt.Sprintf(hoverInfoFormats.labelReference, tok.Text, addr), true
		}
		if addr, ok := a.Symbols.Variables[tok.Text]; ok {
			return fmt.Sprintf(hoverInfoFormats.variableReference, tok.Text, addr), true
		}
		return "", false

	case TokenImmediate:
		v, err := strconv.Atoi(tok.Text)
		if err != nil {
			return "", false
		}
		return fmt.Sprintf(hoverInfoFormats.integerLiteral, v, "0x"+strconv.FormatInt(int64(v), 16)), true
	}

	return "", false
}

func getHoverInfoForInstruction(mnemonic string) string {
	switch mnemonic {
	case "NOOP":
		return hoverInfoFormats.noop
	case "INPUTC":
		return hoverInfoFormats.inputc
	case "INPUTCF":
		return hoverInfoFormats.inputcf
	case "INPUTD":
		return hoverInfoFormats.inputd
	case "INPUTDF":
		return hoverInfoFormats.inputdf
	case "MOVE":
		return hoverInfoFormats.move
	case "LOADI":
		return hoverInfoFormats.loadi
	case "LOADP":
		return hoverInfoFormats.loadp
	case "ADD":
		return hoverInfoFormats.add
	case "ADDI":
		return hoverInfoFormats.addi
	case "SUB":
		return hoverInfoFormats.sub
	case "SUBI":
		return hoverInfoFormats.subi
	case "LOAD":
		return hoverInfoFormats.load
	case "LOADF":
		return hoverInfoFormats.loadf
	case "STORE":
		return hoverInfoFormats.store
	case "STOREF":
		return hoverInfoFormats.storef
	case "SHIFTL":
		return hoverInfoFormats.shiftl
	case "SHIFTR":
		return hoverInfoFormats.shiftr
	case "CMP":
		return hoverInfoFormats.cmp
	case "JUMP":
		return hoverInfoFormats.jump
	case "BRE", "BRZ":
		return hoverInfoFormats.bre
	case "BRNE", "BRNZ":
		return hoverInfoFormats.brne
	case "BRG":
		return hoverInfoFormats.brg
	case "BRGE":
		return hoverInfoFormats.brge
	}
	return ""
}

func getHoverInfoForRegister(register int, name string) string {
	return fmt.Sprintf(hoverInfoFormats.register, name, register)
}
