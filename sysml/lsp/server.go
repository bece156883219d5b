// Package lsp serves live lint diagnostics over the Language Server
// Protocol. Every open document is re-linted on open, change, and save,
// and the merged diagnostics are pushed to the client.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/syslint/sysml"
	"github.com/dhamidi/syslint/sysml/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "syslint"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	opts    sysml.Options
}

func NewServer(version string) *Server {
	ls := &Server{
		version: version,
		opts:    sysml.DefaultOptions(),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear stale diagnostics for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publish lints one document and pushes the result to the client.
func (ls *Server) publish(ctx *glsp.Context, uri string, content []byte) {
	path := uriToPath(uri)
	diags := sysml.LintSource(content, path, ls.opts)

	items := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		items = append(items, toProtocolDiagnostic(d))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: items,
	})
}

func toProtocolDiagnostic(d parser.Diagnostic) protocol.Diagnostic {
	severity := toProtocolSeverity(d.Severity)
	code := protocol.IntegerOrString{Value: d.Code}
	source := lsName
	return protocol.Diagnostic{
		Range:    toProtocolRange(d.Span),
		Severity: &severity,
		Code:     &code,
		Source:   &source,
		Message:  d.Message,
	}
}

func toProtocolSeverity(sev parser.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case parser.SeverityError:
		return protocol.DiagnosticSeverityError
	case parser.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// toProtocolRange converts 1-based source positions to the protocol's
// 0-based lines and columns.
func toProtocolRange(span parser.Span) protocol.Range {
	start := protocol.Position{
		Line:      protocolLine(span.Start.Line),
		Character: protocolLine(span.Start.Column),
	}
	end := protocol.Position{
		Line:      protocolLine(span.End.Line),
		Character: protocolLine(span.End.Column),
	}
	// A zero-width range still highlights one position.
	if end.Line < start.Line || (end.Line == start.Line && end.Character < start.Character) {
		end = start
	}
	return protocol.Range{Start: start, End: end}
}

func protocolLine(n int) protocol.UInteger {
	if n <= 0 {
		return 0
	}
	return protocol.UInteger(n - 1)
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
