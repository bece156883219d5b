package sysml

import (
	"regexp"
	"strings"

	"github.com/dhamidi/syslint/sysml/parser"
)

// Definition kinds whose names should be PascalCase.
var namingDefKinds = map[string]bool{
	"part_def": true, "action_def": true, "requirement_def": true,
	"attribute_def": true, "port_def": true, "enum_def": true,
	"interface_def": true, "connection_def": true, "connector_def": true,
	"allocation_def": true, "metadata_def": true, "behavior_def": true,
	"function_def": true, "predicate_def": true, "calc_def": true,
	"analysis_def": true, "state_def": true, "rendering_def": true,
	"view_def": true, "viewpoint_def": true, "occurrence_def": true,
	"interaction_def": true, "class_def": true, "assoc_def": true,
	"classifier_def": true, "datatype_def": true, "struct_def": true,
	"item_def": true, "type_def": true, "feature_def": true,
	"flow_def": true, "succession_def": true, "transition_def": true,
	"frame_def": true, "concern_def": true, "stakeholder_def": true,
	"constraint_def": true, "use_case_def": true, "verification_def": true,
}

// Usage kinds whose names should be camelCase or snake_case.
var namingUsageKinds = map[string]bool{
	"part": true, "action": true, "requirement": true, "attribute": true,
	"port": true, "interface": true, "connection": true, "connector": true,
	"allocation": true, "metadata": true, "behavior": true,
	"function": true, "predicate": true, "calc": true, "analysis": true,
	"state": true, "rendering": true, "view": true, "viewpoint": true,
	"occurrence": true, "interaction": true, "class": true, "assoc": true,
	"classifier": true, "datatype": true, "struct": true, "item": true,
	"type": true, "feature": true, "flow": true, "succession": true,
	"transition": true, "frame": true, "concern": true,
	"stakeholder": true, "constraint": true, "use_case": true,
}

var packageKinds = map[string]bool{"package": true, "namespace": true}

var (
	pascalCaseRE   = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	camelOrSnakeRE = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)
	wordSplitRE    = regexp.MustCompile(`[_\s]+`)
)

// isQuoted reports whether the name is a quoted restricted name. Those
// are exempt from naming conventions.
func isQuoted(name string) bool {
	return strings.HasPrefix(name, "'")
}

// NamingRule enforces the naming conventions W001, W002, and W003.
type NamingRule struct{}

func (NamingRule) Name() string { return "naming" }

func (NamingRule) Check(file *parser.File) []parser.Diagnostic {
	var diags []parser.Diagnostic
	file.Walk(func(e, _ *parser.Element) {
		name := e.Name
		if name == "" || isQuoted(name) {
			return
		}
		key := e.KindKey()
		switch {
		case packageKinds[key]:
			if !pascalCaseRE.MatchString(name) {
				diags = append(diags, ruleDiag("W003", parser.SeverityWarning,
					"Package/namespace '"+name+"' should use PascalCase (e.g. '"+toPascal(name)+"').",
					file.Path, e.Span))
			}
		case namingDefKinds[key]:
			if !pascalCaseRE.MatchString(name) {
				diags = append(diags, ruleDiag("W001", parser.SeverityWarning,
					"Definition '"+name+"' should use PascalCase (e.g. '"+toPascal(name)+"').",
					file.Path, e.Span))
			}
		case namingUsageKinds[key]:
			if !camelOrSnakeRE.MatchString(name) {
				diags = append(diags, ruleDiag("W002", parser.SeverityWarning,
					"Usage '"+name+"' should use camelCase or snake_case (e.g. '"+toCamel(name)+"').",
					file.Path, e.Span))
			}
		}
	})
	return diags
}

// toPascal is a best-effort PascalCase suggestion, used only in messages.
func toPascal(name string) string {
	var b strings.Builder
	for _, word := range wordSplitRE.Split(name, -1) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// toCamel is a best-effort camelCase suggestion, used only in messages.
func toCamel(name string) string {
	words := wordSplitRE.Split(name, -1)
	if len(words) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
