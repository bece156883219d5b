package lsp

import (
	"testing"

	"github.com/dhamidi/syslint/sysml/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestToProtocolRange(t *testing.T) {
	span := parser.Span{
		Start: parser.Position{Line: 3, Column: 5},
		End:   parser.Position{Line: 3, Column: 12},
	}
	r := toProtocolRange(span)
	if r.Start.Line != 2 || r.Start.Character != 4 {
		t.Errorf("Start = %d:%d, want 2:4 (zero-based)", r.Start.Line, r.Start.Character)
	}
	if r.End.Line != 2 || r.End.Character != 11 {
		t.Errorf("End = %d:%d, want 2:11", r.End.Line, r.End.Character)
	}
}

func TestToProtocolRangeDegenerate(t *testing.T) {
	// A span with no end position collapses to its start.
	span := parser.Span{Start: parser.Position{Line: 2, Column: 7}}
	r := toProtocolRange(span)
	if r.End != r.Start {
		t.Errorf("End = %v, want Start %v", r.End, r.Start)
	}
}

func TestToProtocolSeverity(t *testing.T) {
	tests := []struct {
		in   parser.Severity
		want protocol.DiagnosticSeverity
	}{
		{parser.SeverityError, protocol.DiagnosticSeverityError},
		{parser.SeverityWarning, protocol.DiagnosticSeverityWarning},
		{parser.SeverityInfo, protocol.DiagnosticSeverityInformation},
	}
	for _, tt := range tests {
		if got := toProtocolSeverity(tt.in); got != tt.want {
			t.Errorf("toProtocolSeverity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUriToPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"file:///work/model.sysml", "/work/model.sysml"},
		{"/already/a/path.sysml", "/already/a/path.sysml"},
	}
	for _, tt := range tests {
		if got := uriToPath(tt.in); got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
