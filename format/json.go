package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder renders the report as a flat JSON array, one object per
// diagnostic. The shape is stable for downstream tooling.
type JSONEncoder struct {
	w      io.Writer
	report *Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(report *Report) error {
	e.report = report
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

type jsonDiagnostic struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]jsonDiagnostic, len(e.report.Diagnostics))
	for i, d := range e.report.Diagnostics {
		data[i] = jsonDiagnostic{
			Rule:     d.Code,
			Severity: d.Severity.String(),
			Message:  d.Message,
			File:     d.Path,
			Line:     d.Span.Start.Line,
			Col:      d.Span.Start.Column,
		}
	}
	return json.MarshalIndent(data, "", "  ")
}
