// Package sysml lints SysML v2 textual-notation models. It runs the
// parser front-end and a set of style and structure rules over the
// resulting element tree, producing one merged diagnostic list per file.
package sysml

import (
	"github.com/dhamidi/syslint/sysml/parser"
)

// Rule checks one concern across a parsed file. Rules are stateless;
// every diagnostic they emit carries a stable rule ID as its code.
type Rule interface {
	Name() string
	Check(file *parser.File) []parser.Diagnostic
}

// Rules returns the full rule set in execution order.
func Rules() []Rule {
	return []Rule{
		NamingRule{},
		DocumentationRule{},
		StructureRule{},
		ScopeRule{},
	}
}

// RuleInfo describes one diagnostic ID for the catalog listing.
type RuleInfo struct {
	ID       string
	Severity parser.Severity
	Summary  string
}

// RuleCatalog lists every diagnostic ID the rule set can emit.
func RuleCatalog() []RuleInfo {
	return []RuleInfo{
		{"W001", parser.SeverityWarning, "Definition names should use PascalCase"},
		{"W002", parser.SeverityWarning, "Usage names should use camelCase or snake_case"},
		{"W003", parser.SeverityWarning, "Package and namespace names should use PascalCase"},
		{"W010", parser.SeverityInfo, "Definition has no doc block"},
		{"W011", parser.SeverityWarning, "Requirement definition is missing a doc block"},
		{"W020", parser.SeverityInfo, "Definition has an empty body"},
		{"W021", parser.SeverityWarning, "Requirement definition has no subject declaration"},
		{"W022", parser.SeverityInfo, "Requirement definition has no require constraint"},
		{"W023", parser.SeverityInfo, "Typed usage has no type annotation"},
		{"I001", parser.SeverityInfo, "Action definition defines sub-actions without sequencing"},
		{"W030", parser.SeverityWarning, "Duplicate name declared in the same scope"},
		{"W031", parser.SeverityInfo, "Import appears to be unused"},
	}
}

func ruleDiag(id string, sev parser.Severity, msg, path string, span parser.Span) parser.Diagnostic {
	return parser.Diagnostic{
		Code:     id,
		Severity: sev,
		Message:  msg,
		Path:     path,
		Span:     span,
	}
}
