package parser

import "strings"

type ElementKind int

const (
	ElementUnknown ElementKind = iota
	ElementPackage
	ElementImport
	ElementDefinition
	ElementUsage
	ElementRelationship
	ElementRequirementBody
	ElementDoc
	ElementComment
)

var elementKindNames = map[ElementKind]string{
	ElementUnknown:         "Unknown",
	ElementPackage:         "Package",
	ElementImport:          "Import",
	ElementDefinition:      "Definition",
	ElementUsage:           "Usage",
	ElementRelationship:    "Relationship",
	ElementRequirementBody: "RequirementBody",
	ElementDoc:             "Doc",
	ElementComment:         "Comment",
}

func (k ElementKind) String() string {
	if name, ok := elementKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Element is one node of the parsed tree. A single generic shape covers
// every element the grammar can produce; Kind and Category distinguish
// them. Children are owned exclusively by their parent.
type Element struct {
	Kind     ElementKind
	Category string // element keyword: "part", "action", "subject", ...

	// Qualifiers is the leading keyword sequence, e.g. ["part", "def"].
	Qualifiers []string

	// Name is the declared name, if present. Quoted names keep their
	// leading quote so rules can tell them apart from plain identifiers.
	Name string

	// Modifiers holds visibility and prefix modifiers in source order.
	Modifiers []string

	// TypeRef is the qualified name after ':', empty when absent.
	TypeRef string

	// Specializes lists qualified names after ':>' or 'specializes'.
	Specializes []string

	// Multiplicity is the bracket text, e.g. "[4]" or "[1..*]".
	Multiplicity string

	Children []*Element
	HasBody  bool

	// Doc is the extracted doc text from a 'doc' child or a leading block
	// comment. Empty means no documentation.
	Doc string

	// Subject is the type of the 'subject' declaration inside a
	// requirement definition body, or the subject's name when untyped.
	Subject string

	// HasSequencing reports whether the body contains first/then
	// succession members.
	HasSequencing bool

	// Import target, for ElementKind ElementImport.
	ImportPath string
	ImportStar bool

	Span Span
}

// IsDef reports whether the element was declared with the 'def' keyword.
func (e *Element) IsDef() bool {
	return e.Kind == ElementDefinition
}

// HasDoc reports whether the element carries non-trivial documentation.
func (e *Element) HasDoc() bool {
	return strings.TrimSpace(e.Doc) != ""
}

// KindKey is the category key rules match on: "part_def" for a part
// definition, "part" for a part usage, "package", "import", and so on.
func (e *Element) KindKey() string {
	if e.Kind == ElementDefinition {
		return e.Category + "_def"
	}
	return e.Category
}

func (e *Element) AddChild(child *Element) {
	if child != nil {
		e.Children = append(e.Children, child)
	}
}

func (e *Element) ChildrenOfCategory(category string) []*Element {
	var result []*Element
	for _, child := range e.Children {
		if child.Category == category {
			result = append(result, child)
		}
	}
	return result
}

func (e *Element) String() string {
	var b strings.Builder
	e.writeIndent(&b, 0)
	return b.String()
}

func (e *Element) writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	b.WriteString(e.Kind.String())
	if e.Category != "" {
		b.WriteString("(" + e.Category + ")")
	}
	if e.Name != "" {
		b.WriteString(" " + e.Name)
	}
	if e.TypeRef != "" {
		b.WriteString(" : " + e.TypeRef)
	}
	b.WriteString(" [" + e.Span.Start.String() + "-" + e.Span.End.String() + "]")
	b.WriteString("\n")
	for _, child := range e.Children {
		child.writeIndent(b, indent+1)
	}
}

// File is the root of the tree for one source file: the top-level
// elements plus the syntax diagnostics raised while producing them.
// Immutable after parsing; safe to share read-only.
type File struct {
	Path        string
	Elements    []*Element
	Diagnostics []Diagnostic
}

// Walk visits every element depth-first, parents before children.
func (f *File) Walk(visit func(e *Element, parent *Element)) {
	var walk func(elems []*Element, parent *Element)
	walk = func(elems []*Element, parent *Element) {
		for _, e := range elems {
			visit(e, parent)
			walk(e.Children, e)
		}
	}
	walk(f.Elements, nil)
}
