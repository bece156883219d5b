package sysml

import (
	"strconv"
	"strings"

	"github.com/dhamidi/syslint/sysml/parser"
)

// Kinds that introduce a name into their enclosing scope.
var scopeNamedKinds = map[string]bool{
	"part_def": true, "action_def": true, "requirement_def": true,
	"attribute_def": true, "port_def": true, "enum_def": true,
	"interface_def": true, "connection_def": true, "connector_def": true,
	"allocation_def": true, "metadata_def": true, "behavior_def": true,
	"function_def": true, "predicate_def": true, "calc_def": true,
	"analysis_def": true, "state_def": true, "view_def": true,
	"viewpoint_def": true, "use_case_def": true, "occurrence_def": true,
	"class_def": true, "assoc_def": true, "classifier_def": true,
	"datatype_def": true, "struct_def": true, "item_def": true,
	"type_def": true,
	"part": true, "action": true, "requirement": true, "attribute": true,
	"port": true, "item": true, "flow": true, "constraint": true,
	"subject": true,
}

// ScopeRule reports duplicate declarations within a scope (W030) and
// imports that nothing in the file references (W031). Name comparison is
// case-insensitive: SysML v2 resolution treats Engine and engine as the
// same name.
type ScopeRule struct{}

func (ScopeRule) Name() string { return "scope" }

func (ScopeRule) Check(file *parser.File) []parser.Diagnostic {
	var diags []parser.Diagnostic
	diags = append(diags, checkDuplicates(file.Elements, file.Path)...)
	diags = append(diags, checkUnusedImports(file)...)
	return diags
}

func checkDuplicates(elements []*parser.Element, path string) []parser.Diagnostic {
	var diags []parser.Diagnostic
	seen := make(map[string]*parser.Element)

	for _, e := range elements {
		if scopeNamedKinds[e.KindKey()] && e.Name != "" {
			key := strings.ToLower(e.Name)
			if first, ok := seen[key]; ok {
				diags = append(diags, ruleDiag("W030", parser.SeverityWarning,
					"Duplicate name '"+e.Name+"' in this scope (first declared at line "+
						strconv.Itoa(first.Span.Start.Line)+").",
					path, e.Span))
			} else {
				seen[key] = e
			}
		}
		if len(e.Children) > 0 {
			diags = append(diags, checkDuplicates(e.Children, path)...)
		}
	}
	return diags
}

func checkUnusedImports(file *parser.File) []parser.Diagnostic {
	var imports []*parser.Element
	file.Walk(func(e, _ *parser.Element) {
		if e.Kind == parser.ElementImport {
			imports = append(imports, e)
		}
	})
	if len(imports) == 0 {
		return nil
	}

	used := make(map[string]bool)
	file.Walk(func(e, _ *parser.Element) {
		if e.TypeRef != "" {
			for _, part := range strings.Split(e.TypeRef, "::") {
				used[part] = true
			}
		}
		for _, spec := range e.Specializes {
			for _, part := range strings.Split(spec, "::") {
				used[part] = true
			}
		}
	})

	var diags []parser.Diagnostic
	for _, imp := range imports {
		if imp.ImportPath == "" {
			continue
		}
		parts := strings.Split(imp.ImportPath, "::")
		root, leaf := parts[0], parts[len(parts)-1]

		referenced := false
		if imp.ImportStar {
			// Namespace import: any reference into the namespace counts.
			for name := range used {
				if strings.HasPrefix(name, leaf) || strings.HasPrefix(name, root) {
					referenced = true
					break
				}
			}
		} else {
			referenced = used[leaf] || used[imp.ImportPath]
		}

		if !referenced {
			label := imp.ImportPath
			if imp.ImportStar {
				label += "::*"
			}
			diags = append(diags, ruleDiag("W031", parser.SeverityInfo,
				"Import '"+label+"' appears to be unused.",
				file.Path, imp.Span))
		}
	}
	return diags
}
