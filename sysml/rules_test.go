package sysml

import (
	"strings"
	"testing"

	"github.com/dhamidi/syslint/sysml/parser"
)

func lintAll(t *testing.T, src string) []parser.Diagnostic {
	t.Helper()
	return LintSource([]byte(src), "test.sysml", DefaultOptions())
}

func diagsWithCode(diags []parser.Diagnostic, code string) []parser.Diagnostic {
	var out []parser.Diagnostic
	for _, d := range diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestNamingRule(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		code    string
		count   int
		message string
	}{
		{
			name:    "definition not pascal case",
			src:     "part def vehicle_model;",
			code:    "W001",
			count:   1,
			message: "'VehicleModel'",
		},
		{
			name:  "definition pascal case ok",
			src:   "part def Vehicle;",
			code:  "W001",
			count: 0,
		},
		{
			name:    "usage not camel case",
			src:     "part BadName : Vehicle;",
			code:    "W002",
			count:   1,
			message: "'badName'",
		},
		{
			name:  "usage snake case ok",
			src:   "part front_axle : Axle;",
			code:  "W002",
			count: 0,
		},
		{
			name:    "package not pascal case",
			src:     "package bad_pkg { }",
			code:    "W003",
			count:   1,
			message: "'BadPkg'",
		},
		{
			name:  "quoted names exempt",
			src:   "part def 'Weird Name!';",
			code:  "W001",
			count: 0,
		},
		{
			name:  "anonymous elements exempt",
			src:   "part def ;",
			code:  "W001",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagsWithCode(lintAll(t, tt.src), tt.code)
			if len(got) != tt.count {
				t.Fatalf("%s diagnostics = %d, want %d (all: %v)", tt.code, len(got), tt.count, got)
			}
			if tt.count > 0 && tt.message != "" && !strings.Contains(got[0].Message, tt.message) {
				t.Errorf("Message = %q, want suggestion %q", got[0].Message, tt.message)
			}
		})
	}
}

func TestNamingSuggestions(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		camel  string
	}{
		{"vehicle_model", "VehicleModel", "vehicleModel"},
		{"BadName", "Badname", "badname"},
		{"a", "A", "a"},
		{"two words", "TwoWords", "twoWords"},
	}
	for _, tt := range tests {
		if got := toPascal(tt.in); got != tt.pascal {
			t.Errorf("toPascal(%q) = %q, want %q", tt.in, got, tt.pascal)
		}
		if got := toCamel(tt.in); got != tt.camel {
			t.Errorf("toCamel(%q) = %q, want %q", tt.in, got, tt.camel)
		}
	}
}

func TestDocumentationRule(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		code  string
		count int
	}{
		{
			name:  "undocumented definition",
			src:   "part def Vehicle { part e : E; }",
			code:  "W010",
			count: 1,
		},
		{
			name:  "documented definition ok",
			src:   "part def Vehicle { doc /* Carries people around. */ part e : E; }",
			code:  "W010",
			count: 0,
		},
		{
			name:  "leading comment counts as doc",
			src:   "/* Carries people around. */\npart def Vehicle { part e : E; }",
			code:  "W010",
			count: 0,
		},
		{
			name:  "too short doc still flagged",
			src:   "part def Vehicle { doc /* ab */ part e : E; }",
			code:  "W010",
			count: 1,
		},
		{
			name:  "undocumented requirement is a warning",
			src:   "requirement def MassLimit { subject v : V; require constraint { x } }",
			code:  "W011",
			count: 1,
		},
		{
			name:  "documented requirement ok",
			src:   "requirement def MassLimit { doc /* Keep the mass low. */ subject v : V; require constraint { x } }",
			code:  "W011",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagsWithCode(lintAll(t, tt.src), tt.code)
			if len(got) != tt.count {
				t.Fatalf("%s diagnostics = %d, want %d (all: %v)", tt.code, len(got), tt.count, got)
			}
		})
	}
}

func TestStructureRule(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		code  string
		count int
	}{
		{
			name:  "empty definition body",
			src:   "part def Empty { }",
			code:  "W020",
			count: 1,
		},
		{
			name:  "bodyless definition",
			src:   "part def Empty;",
			code:  "W020",
			count: 1,
		},
		{
			name:  "doc only body is still empty",
			src:   "part def Hollow { doc /* Documented but hollow. */ }",
			code:  "W020",
			count: 1,
		},
		{
			name:  "populated body ok",
			src:   "part def Full { part e : E; }",
			code:  "W020",
			count: 0,
		},
		{
			name:  "requirement without subject",
			src:   "requirement def R { require constraint { x } }",
			code:  "W021",
			count: 1,
		},
		{
			name:  "requirement without constraint",
			src:   "requirement def R { subject v : V; }",
			code:  "W022",
			count: 1,
		},
		{
			name:  "composite requirement exempt",
			src:   "requirement def R { requirement sub1 : S; requirement sub2 : S; }",
			code:  "W021",
			count: 0,
		},
		{
			name:  "untyped part usage",
			src:   "part def P { part engine; }",
			code:  "W023",
			count: 1,
		},
		{
			name:  "typed part usage ok",
			src:   "part def P { part engine : Engine; }",
			code:  "W023",
			count: 0,
		},
		{
			name:  "specializing usage ok",
			src:   "part def P { part engine :> baseEngine; }",
			code:  "W023",
			count: 0,
		},
		{
			name:  "actions without sequencing",
			src:   "action def Brew { action grind; action pour; }",
			code:  "I001",
			count: 1,
		},
		{
			name:  "actions with sequencing ok",
			src:   "action def Brew { action grind; action pour; first grind; then pour; }",
			code:  "I001",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagsWithCode(lintAll(t, tt.src), tt.code)
			if len(got) != tt.count {
				t.Fatalf("%s diagnostics = %d, want %d (all: %v)", tt.code, len(got), tt.count, got)
			}
		})
	}
}

func TestScopeRuleDuplicates(t *testing.T) {
	src := `package Garage {
    part def Engine;
    part def engine;
}`
	got := diagsWithCode(lintAll(t, src), "W030")
	if len(got) != 1 {
		t.Fatalf("W030 diagnostics = %d, want 1 (case-insensitive)", len(got))
	}
	if !strings.Contains(got[0].Message, "first declared at line 2") {
		t.Errorf("Message = %q, want first-declaration line", got[0].Message)
	}

	// Same name in sibling scopes is fine.
	src = `package A { part def Engine; }
package B { part def Engine; }`
	if got := diagsWithCode(lintAll(t, src), "W030"); len(got) != 0 {
		t.Errorf("sibling scopes: W030 = %v, want none", got)
	}
}

func TestScopeRuleUnusedImports(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		count int
	}{
		{
			name:  "unused import",
			src:   "import Unused::Stuff;\npart def A { part e : E; }",
			count: 1,
		},
		{
			name:  "used membership import",
			src:   "import ISQ::Mass;\nattribute m : Mass;",
			count: 0,
		},
		{
			name:  "used star import",
			src:   "import ScalarValues::*;\nattribute m : ScalarValues::Real;",
			count: 0,
		},
		{
			name:  "unused star import",
			src:   "import ScalarValues::*;\npart def A { part e : E; }",
			count: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagsWithCode(lintAll(t, tt.src), "W031")
			if len(got) != tt.count {
				t.Fatalf("W031 diagnostics = %d, want %d (all: %v)", len(got), tt.count, got)
			}
		})
	}
}
