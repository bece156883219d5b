package sysml

import (
	"strings"

	"github.com/dhamidi/syslint/sysml/parser"
)

// Definition kinds that should carry a doc block.
var docDefKinds = map[string]bool{
	"part_def": true, "action_def": true, "requirement_def": true,
	"attribute_def": true, "port_def": true, "enum_def": true,
	"interface_def": true, "connection_def": true, "connector_def": true,
	"allocation_def": true, "metadata_def": true, "behavior_def": true,
	"function_def": true, "predicate_def": true, "calc_def": true,
	"analysis_def": true, "state_def": true, "rendering_def": true,
	"view_def": true, "viewpoint_def": true, "occurrence_def": true,
	"interaction_def": true, "class_def": true, "assoc_def": true,
	"classifier_def": true, "datatype_def": true, "struct_def": true,
	"item_def": true, "use_case_def": true, "constraint_def": true,
}

// minDocLen keeps trivially short docs from counting as documentation.
const minDocLen = 5

// DocumentationRule enforces W010 and W011: definitions should document
// themselves, requirements especially.
type DocumentationRule struct{}

func (DocumentationRule) Name() string { return "documentation" }

func (DocumentationRule) Check(file *parser.File) []parser.Diagnostic {
	var diags []parser.Diagnostic
	file.Walk(func(e, _ *parser.Element) {
		key := e.KindKey()
		if !docDefKinds[key] || e.Name == "" {
			return
		}
		if len(strings.TrimSpace(e.Doc)) >= minDocLen {
			return
		}
		if key == "requirement_def" {
			diags = append(diags, ruleDiag("W011", parser.SeverityWarning,
				"Requirement definition '"+e.Name+"' is missing a doc block. "+
					"Requirements should document their intent.",
				file.Path, e.Span))
		} else {
			diags = append(diags, ruleDiag("W010", parser.SeverityInfo,
				"Definition '"+e.Name+"' has no doc block.",
				file.Path, e.Span))
		}
	})
	return diags
}
