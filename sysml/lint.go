package sysml

import (
	"os"
	"strings"

	"github.com/dhamidi/syslint/sysml/parser"
)

// Options configures a lint run.
type Options struct {
	// Rules is an allow-list of diagnostic IDs (e.g. "W001"). Empty means
	// all rules. Lex and syntax diagnostics are always reported; the
	// allow-list only selects among lint rules.
	Rules []string

	// MinSeverity is the weakest severity to report. The zero value keeps
	// errors only; use DefaultOptions for the report-everything default.
	MinSeverity parser.Severity
}

// DefaultOptions reports every rule at every severity.
func DefaultOptions() Options {
	return Options{MinSeverity: parser.SeverityInfo}
}

// Lint runs the rule set over a parsed file and returns the merged,
// sorted diagnostics: the parser's lex and syntax findings first-class
// alongside the rule findings.
func Lint(file *parser.File, opts Options) []parser.Diagnostic {
	allow := make(map[string]bool, len(opts.Rules))
	for _, id := range opts.Rules {
		id = strings.TrimSpace(id)
		if id != "" {
			allow[id] = true
		}
	}

	diags := append([]parser.Diagnostic(nil), file.Diagnostics...)
	for _, rule := range Rules() {
		for _, d := range rule.Check(file) {
			if len(allow) > 0 && !allow[d.Code] {
				continue
			}
			diags = append(diags, d)
		}
	}

	var out []parser.Diagnostic
	for _, d := range diags {
		if d.Severity <= opts.MinSeverity {
			out = append(out, d)
		}
	}
	parser.SortDiagnostics(out)
	return out
}

// LintSource parses and lints in-memory source.
func LintSource(src []byte, path string, opts Options) []parser.Diagnostic {
	return Lint(parser.Parse(src, path), opts)
}

// LintFile reads, parses, and lints one file from disk.
func LintFile(path string, opts Options) ([]parser.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LintSource(src, path, opts), nil
}

// ExitCode maps a diagnostic list to the process exit code contract:
// 2 when any error is present, 1 for warnings or infos only, 0 when
// clean.
func ExitCode(diags []parser.Diagnostic) int {
	if len(diags) == 0 {
		return 0
	}
	for _, d := range diags {
		if d.Severity == parser.SeverityError {
			return 2
		}
	}
	return 1
}
