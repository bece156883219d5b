package sysml

import (
	"github.com/dhamidi/syslint/sysml/parser"
)

// Definitions that warrant a non-empty body.
var substantiveDefKinds = map[string]bool{
	"part_def": true, "action_def": true, "requirement_def": true,
	"interface_def": true, "connection_def": true, "port_def": true,
	"behavior_def": true, "function_def": true, "predicate_def": true,
	"calc_def": true, "analysis_def": true, "state_def": true,
	"use_case_def": true,
}

// Usages that should declare a type.
var typedUsageKinds = map[string]bool{
	"part": true, "port": true, "attribute": true, "item": true,
}

// StructureRule checks the shape of definitions: empty bodies (W020),
// requirement completeness (W021, W022), untyped usages (W023), and
// action definitions without sequencing (I001).
type StructureRule struct{}

func (StructureRule) Name() string { return "structure" }

func (StructureRule) Check(file *parser.File) []parser.Diagnostic {
	var diags []parser.Diagnostic
	file.Walk(func(e, _ *parser.Element) {
		key := e.KindKey()

		if substantiveDefKinds[key] && e.Name != "" && !hasSubstantiveChild(e) {
			diags = append(diags, ruleDiag("W020", parser.SeverityInfo,
				"Definition '"+e.Name+"' has an empty body.",
				file.Path, e.Span))
		}

		if key == "requirement_def" && e.Name != "" {
			// Composite requirements hold sub-requirements and don't need a
			// direct subject or constraint at this level.
			hasSubReqs := false
			hasSubject := false
			hasConstraint := false
			for _, child := range e.Children {
				switch child.KindKey() {
				case "requirement", "requirement_def":
					hasSubReqs = true
				case "subject":
					hasSubject = true
				case "require_constraint":
					hasConstraint = true
				}
			}
			if !hasSubject && !hasSubReqs {
				diags = append(diags, ruleDiag("W021", parser.SeverityWarning,
					"Requirement definition '"+e.Name+"' has no 'subject' declaration.",
					file.Path, e.Span))
			}
			if !hasConstraint && !hasSubReqs {
				diags = append(diags, ruleDiag("W022", parser.SeverityInfo,
					"Requirement definition '"+e.Name+"' has no 'require constraint' body.",
					file.Path, e.Span))
			}
		}

		if typedUsageKinds[key] && e.Name != "" && e.TypeRef == "" && len(e.Specializes) == 0 {
			diags = append(diags, ruleDiag("W023", parser.SeverityInfo,
				"Usage '"+e.Name+"' ("+key+") has no type annotation.",
				file.Path, e.Span))
		}

		if key == "action_def" && e.Name != "" && len(e.Children) > 0 {
			hasSubActions := false
			for _, child := range e.Children {
				if child.KindKey() == "action" {
					hasSubActions = true
					break
				}
			}
			if hasSubActions && !e.HasSequencing {
				diags = append(diags, ruleDiag("I001", parser.SeverityInfo,
					"Action definition '"+e.Name+"' defines sub-actions but has no 'first'/'then' sequencing.",
					file.Path, e.Span))
			}
		}
	})
	return diags
}

// hasSubstantiveChild reports whether the body holds anything beyond doc
// and comment annotations.
func hasSubstantiveChild(e *parser.Element) bool {
	for _, child := range e.Children {
		if child.Category != "doc" && child.Category != "comment" {
			return true
		}
	}
	return false
}
