package parser

import "encoding/json"

type jsonElement struct {
	Kind          string         `json:"kind"`
	Category      string         `json:"category,omitempty"`
	Qualifiers    []string       `json:"qualifiers,omitempty"`
	Name          string         `json:"name,omitempty"`
	Modifiers     []string       `json:"modifiers,omitempty"`
	TypeRef       string         `json:"typeRef,omitempty"`
	Specializes   []string       `json:"specializes,omitempty"`
	Multiplicity  string         `json:"multiplicity,omitempty"`
	Doc           string         `json:"doc,omitempty"`
	Subject       string         `json:"subject,omitempty"`
	HasSequencing bool           `json:"hasSequencing,omitempty"`
	HasBody       bool           `json:"hasBody,omitempty"`
	ImportPath    string         `json:"importPath,omitempty"`
	ImportStar    bool           `json:"importStar,omitempty"`
	Span          *jsonSpan      `json:"span,omitempty"`
	Children      []*jsonElement `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toJSON())
}

func (e *Element) toJSON() *jsonElement {
	je := &jsonElement{
		Kind:          e.Kind.String(),
		Category:      e.Category,
		Qualifiers:    e.Qualifiers,
		Name:          e.Name,
		Modifiers:     e.Modifiers,
		TypeRef:       e.TypeRef,
		Specializes:   e.Specializes,
		Multiplicity:  e.Multiplicity,
		Doc:           e.Doc,
		Subject:       e.Subject,
		HasSequencing: e.HasSequencing,
		HasBody:       e.HasBody,
		ImportPath:    e.ImportPath,
		ImportStar:    e.ImportStar,
	}

	if e.Span.Start.Line != 0 || e.Span.End.Line != 0 {
		je.Span = &jsonSpan{
			Start: jsonPosition{Line: e.Span.Start.Line, Column: e.Span.Start.Column},
			End:   jsonPosition{Line: e.Span.End.Line, Column: e.Span.End.Column},
		}
	}

	if len(e.Children) > 0 {
		je.Children = make([]*jsonElement, len(e.Children))
		for i, child := range e.Children {
			je.Children[i] = child.toJSON()
		}
	}

	return je
}

type jsonFile struct {
	Path        string           `json:"path"`
	Elements    []*jsonElement   `json:"elements"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func (f *File) MarshalJSON() ([]byte, error) {
	jf := &jsonFile{
		Path:        f.Path,
		Elements:    make([]*jsonElement, len(f.Elements)),
		Diagnostics: make([]jsonDiagnostic, len(f.Diagnostics)),
	}
	for i, elem := range f.Elements {
		jf.Elements[i] = elem.toJSON()
	}
	for i, d := range f.Diagnostics {
		jf.Diagnostics[i] = jsonDiagnostic{
			Code:     d.Code,
			Severity: d.Severity.String(),
			Message:  d.Message,
			Line:     d.Span.Start.Line,
			Column:   d.Span.Start.Column,
		}
	}
	return json.Marshal(jf)
}
