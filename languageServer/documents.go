package languageServer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/brandtdamman/i281-software/assembler"
	"github.com/brandtdamman/i281-software/util"
)

var documentMap = make(map[string]TextDocumentItem) // map from uri to document

func assembleAndReportDiagnostics(conn *jsonrpc2.Conn, uri DocumentUri) []assembler.Diagnostic {
	doc := documentMap[string(uri)]

	assembledRes := assembler.Assemble(doc.Text)
	if assembledRes.Diagnostics == nil {
		assembledRes.Diagnostics = make([]assembler.Diagnostic, 0)
	}
	doc.lastAssembledResult = assembledRes
	documentMap[string(uri)] = doc
	return assembledRes.Diagnostics
}

func documentOpenNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	err := json.Unmarshal(*req.Params, &decodedParams)
	if err != nil {
		rpcErr := jsonrpc2.Error{}
		rpcErr.SetError("invalid parameters")
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return
	}

	documentMap[string(decodedParams.TextDocument.URI)] = decodedParams.TextDocument

	diagnostics := assembleAndReportDiagnostics(conn, decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Diagnostics: diagnostics,
	})
}

func documentCloseNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	err := json.Unmarshal(*req.Params, &decodedParams)
	if err != nil {
		rpcErr := jsonrpc2.Error{}
		rpcErr.SetError("invalid parameters")
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return
	}

	delete(documentMap, string(decodedParams.TextDocument.URI))
}

func documentChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	err := json.Unmarshal(*req.Params, &decodedParams)
	if err != nil {
		rpcErr := jsonrpc2.Error{}
		rpcErr.SetError("invalid parameters")
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return
	}

	doc := documentMap[string(decodedParams.TextDocument.URI)]
	doc.Text = decodedParams.ContentChanges[0].Text
	doc.Version = decodedParams.TextDocument.Version
	documentMap[string(decodedParams.TextDocument.URI)] = doc

	diagnostics := assembleAndReportDiagnostics(conn, decodedParams.TextDocument.URI)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         decodedParams.TextDocument.URI,
		Version:     doc.Version,
		Diagnostics: diagnostics,
	})
}

func documentDiagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	err := json.Unmarshal(*req.Params, &decodedParams)
	if err != nil {
		rpcErr := jsonrpc2.Error{}
		rpcErr.SetError("invalid parameters")
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return
	}

	diagnostics := assembleAndReportDiagnostics(conn, decodedParams.TextDocument.URI)
	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

// reformatDocument normalizes whitespace: directives go to column zero,
// instructions are indented past the longest label, and labeled instructions
// get exactly one space after the colon. Comments are left as written.
func reformatDocument(uri DocumentUri) string {
	doc := documentMap[string(uri)]
	assembledRes := assembler.Assemble(doc.Text)

	lines := strings.Split(doc.Text, "\n")
	maxLabelLength := 0
	for label := range assembledRes.Symbols.Labels {
		if len(label) > maxLabelLength {
			maxLabelLength = len(label)
		}
	}

	for i, line := range lines {
		withoutComment := strings.Split(line, ";")[0]
		withComment := ""
		if strings.Contains(line, ";") {
			withComment = ";" + strings.SplitN(line, ";", 2)[1]
		}
		stripped := strings.TrimLeft(withoutComment, " \t")
		stripped = strings.ReplaceAll(stripped, "\t", " ")
		// removing duplicate whitespaces between tokens
		for strings.Contains(stripped, "  ") {
			stripped = strings.ReplaceAll(stripped, "  ", " ")
		}
		stripped = strings.TrimRight(stripped, " ")

		if strings.HasPrefix(stripped, ".") {
			lines[i] = stripped + withComment
		} else if colon := strings.Index(stripped, ":"); colon != -1 {
			label := stripped[:colon]
			rest := strings.TrimLeft(stripped[colon+1:], " ")
			if rest == "" {
				lines[i] = label + ":" + withComment
			} else {
				lines[i] = label + ": " + rest + withComment
			}
		} else if stripped == "" {
			lines[i] = withComment
		} else {
			// indent instructions past the longest label
			lines[i] = strings.Repeat(" ", maxLabelLength+2) + stripped + withComment
		}
	}
	return strings.Join(lines, "\n")
}

func documentWillSaveWaitUntil(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentWillSaveWaitUntilParams{}
	err := json.Unmarshal(*req.Params, &decodedParams)
	if err != nil {
		rpcErr := jsonrpc2.Error{}
		rpcErr.SetError("invalid parameters")
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return
	}

	lines := strings.Split(documentMap[string(decodedParams.TextDocument.URI)].Text, "\n")

	edits := make([]TextEdit, 0)
	edits = append(edits, TextEdit{
		Range: assembler.TextRange{
			Start: assembler.TextPosition{Line: 0, Char: 0},
			End:   assembler.TextPosition{Line: len(lines) - 1, Char: len(lines[len(lines)-1])},
		},
		NewText: reformatDocument(decodedParams.TextDocument.URI),
	})

	conn.Reply(context.Background(), req.ID, edits)
	util.LogF("i281 Language Server: reformatted document")
}
