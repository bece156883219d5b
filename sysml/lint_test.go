package sysml

import (
	"testing"

	"github.com/dhamidi/syslint/sysml/parser"
)

func TestLintMergesSyntaxAndRuleDiagnostics(t *testing.T) {
	src := "part def vehicle_model { part e : E }\n"
	diags := LintSource([]byte(src), "test.sysml", DefaultOptions())

	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	if len(diagsWithCode(diags, "syntax")) == 0 {
		t.Errorf("codes = %v, want a syntax diagnostic for the missing ';'", codes)
	}
	if len(diagsWithCode(diags, "W001")) != 1 {
		t.Errorf("codes = %v, want one W001", codes)
	}
}

func TestLintSortedByPosition(t *testing.T) {
	src := `part def zzz_last;
part def aaa_first;
`
	diags := LintSource([]byte(src), "test.sysml", DefaultOptions())
	for i := 1; i < len(diags); i++ {
		prev, cur := diags[i-1], diags[i]
		if cur.Span.Start.Line < prev.Span.Start.Line {
			t.Fatalf("diagnostics out of order: line %d after line %d",
				cur.Span.Start.Line, prev.Span.Start.Line)
		}
	}
}

func TestLintRuleAllowList(t *testing.T) {
	src := "part def vehicle_model;\n"
	opts := DefaultOptions()
	opts.Rules = []string{"W001"}
	diags := LintSource([]byte(src), "test.sysml", opts)

	if len(diags) != 1 || diags[0].Code != "W001" {
		t.Fatalf("diags = %v, want only W001", diags)
	}

	// Syntax diagnostics bypass the allow-list.
	src = "import ;\npart def vehicle_model;\n"
	diags = LintSource([]byte(src), "test.sysml", opts)
	if len(diagsWithCode(diags, "syntax")) != 1 {
		t.Errorf("diags = %v, want the syntax diagnostic kept", diags)
	}
}

func TestLintMinSeverity(t *testing.T) {
	// vehicle_model triggers W001 (warning), W010 (info), W020 (info).
	src := "part def vehicle_model;\n"

	opts := DefaultOptions()
	opts.MinSeverity = parser.SeverityWarning
	diags := LintSource([]byte(src), "test.sysml", opts)
	for _, d := range diags {
		if d.Severity > parser.SeverityWarning {
			t.Errorf("got %v diagnostic %s below min severity", d.Severity, d.Code)
		}
	}
	if len(diagsWithCode(diags, "W001")) != 1 {
		t.Errorf("diags = %v, want W001 kept", diags)
	}
	if len(diagsWithCode(diags, "W010")) != 0 {
		t.Errorf("diags = %v, want W010 filtered", diags)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name  string
		diags []parser.Diagnostic
		want  int
	}{
		{"clean", nil, 0},
		{"info only", []parser.Diagnostic{{Severity: parser.SeverityInfo}}, 1},
		{"warnings", []parser.Diagnostic{{Severity: parser.SeverityWarning}}, 1},
		{"errors win", []parser.Diagnostic{
			{Severity: parser.SeverityWarning},
			{Severity: parser.SeverityError},
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.diags); got != tt.want {
				t.Errorf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRuleCatalogCoversEmittedCodes(t *testing.T) {
	known := make(map[string]bool)
	for _, info := range RuleCatalog() {
		known[info.ID] = true
	}
	// A file engineered to trip most rules at once.
	src := `package bad_pkg {
    import Unused::Stuff;
    part def empty_thing { }
    part def empty_thing { }
    requirement def NoGood { }
    action def Brew { action grind; action pour; }
    part Untyped;
}`
	diags := LintSource([]byte(src), "test.sysml", DefaultOptions())
	for _, d := range diags {
		if d.Code == "lex" || d.Code == "syntax" {
			continue
		}
		if !known[d.Code] {
			t.Errorf("diagnostic code %s missing from RuleCatalog", d.Code)
		}
	}
}
