package parser

import "sort"

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

var severityNames = map[Severity]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeverity maps a severity name back to its value. Unknown names map
// to SeverityInfo, the weakest level.
func ParseSeverity(name string) Severity {
	switch name {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	}
	return SeverityInfo
}

// Diagnostic is one finding against a source file. The syntax front-end
// emits diagnostics with code "lex" or "syntax"; the rule engine emits
// rule IDs like "W001". Both shapes share this type so a single reporter
// can merge and sort them.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	Path     string
	Span     Span
}

// SortDiagnostics orders diagnostics by file, then line, then column.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Span.Start.Line != b.Span.Start.Line {
			return a.Span.Start.Line < b.Span.Start.Line
		}
		return a.Span.Start.Column < b.Span.Start.Column
	})
}
