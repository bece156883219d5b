// Package format renders lint reports for human and machine consumers.
package format

import (
	"encoding"

	"github.com/dhamidi/syslint/sysml/parser"
)

// Encoder renders one report to an output stream.
type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// Report is the result of linting one or more files.
type Report struct {
	Diagnostics []parser.Diagnostic
}

// Counts tallies diagnostics per severity.
func (r *Report) Counts() (errors, warnings, infos int) {
	for _, d := range r.Diagnostics {
		switch d.Severity {
		case parser.SeverityError:
			errors++
		case parser.SeverityWarning:
			warnings++
		case parser.SeverityInfo:
			infos++
		}
	}
	return
}
