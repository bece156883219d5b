package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/syslint/sysml/parser"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

var severityColors = map[parser.Severity]string{
	parser.SeverityError:   ansiRed,
	parser.SeverityWarning: ansiYellow,
	parser.SeverityInfo:    ansiCyan,
}

// TextEncoder renders one diagnostic per line in the conventional
// path:line:col format, followed by a severity summary.
type TextEncoder struct {
	w      io.Writer
	color  bool
	report *Report
}

func NewTextEncoder(w io.Writer, color bool) *TextEncoder {
	return &TextEncoder{w: w, color: color}
}

func (e *TextEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, d := range e.report.Diagnostics {
		e.writeDiagnostic(&sb, d)
	}
	if len(e.report.Diagnostics) > 0 {
		sb.WriteString("\n")
	}
	e.writeSummary(&sb)
	return []byte(sb.String()), nil
}

func (e *TextEncoder) writeDiagnostic(sb *strings.Builder, d parser.Diagnostic) {
	location := d.Path + ":" + strconv.Itoa(d.Span.Start.Line) + ":" + strconv.Itoa(d.Span.Start.Column)
	sb.WriteString(e.paint(ansiBold, location))
	sb.WriteString(": ")
	sb.WriteString(e.paint(severityColors[d.Severity], d.Severity.String()))
	sb.WriteString(" ")
	sb.WriteString(e.paint(ansiDim, "["+d.Code+"]"))
	sb.WriteString(" ")
	sb.WriteString(d.Message)
	sb.WriteString("\n")
}

func (e *TextEncoder) writeSummary(sb *strings.Builder) {
	errors, warnings, infos := e.report.Counts()
	if errors+warnings+infos == 0 {
		sb.WriteString(e.paint(ansiBold, "No issues found."))
		sb.WriteString("\n")
		return
	}
	var parts []string
	if errors > 0 {
		parts = append(parts, e.paint(ansiRed, plural(errors, "error")))
	}
	if warnings > 0 {
		parts = append(parts, e.paint(ansiYellow, plural(warnings, "warning")))
	}
	if infos > 0 {
		parts = append(parts, e.paint(ansiCyan, plural(infos, "info")))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(".\n")
}

func (e *TextEncoder) paint(code, text string) string {
	if !e.color || code == "" {
		return text
	}
	return code + text + ansiReset
}

func plural(n int, word string) string {
	s := strconv.Itoa(n) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
