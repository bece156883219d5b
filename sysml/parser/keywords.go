package parser

// GrammarContext identifies a parser decision point. The same word can be
// reserved in one context and a perfectly good name in another (a part
// usage may literally be named "part"), so keyword classification happens
// here, at parse time, never in the lexer.
type GrammarContext int

const (
	// AtElementStart asks whether the word can begin a new element
	// declaration (package, part, requirement, ...).
	AtElementStart GrammarContext = iota
	// AtModifier asks whether the word is a visibility or prefix modifier.
	AtModifier
	// AtBodyMember asks whether the word starts any body member, including
	// the body-only constructs (perform, entry, first, ...).
	AtBodyMember
	// AtName is a declared-name position; nothing is reserved there.
	AtName
)

// IsKeywordAt reports whether text is reserved in the given context.
func IsKeywordAt(text string, ctx GrammarContext) bool {
	switch ctx {
	case AtElementStart:
		return elementKeywords[text] || text == "import" || text == "doc" ||
			text == "comment" || text == "require" || text == "assume" ||
			text == "use" || text == "return"
	case AtModifier:
		return visibilityKeywords[text] || prefixModifiers[text]
	case AtBodyMember:
		return IsKeywordAt(text, AtElementStart) || bodyOnlyKeywords[text] ||
			sequenceKeywords[text] || directionKeywords[text]
	case AtName:
		return false
	}
	return false
}

// IsReservedWord reports whether text appears anywhere in the SysML v2
// reserved word list. Used only for token classification in dumps; the
// parser itself always asks IsKeywordAt with a concrete context.
func IsReservedWord(text string) bool {
	return reservedWords[text]
}

// Keywords that start a named definition or usage. "use" is handled
// separately because it only opens an element when followed by "case".
var elementKeywords = map[string]bool{
	"package": true, "namespace": true,
	"part": true, "action": true, "requirement": true,
	"attribute": true, "port": true, "enum": true,
	"interface": true, "connection": true, "connector": true,
	"allocation": true, "metadata": true, "behavior": true,
	"function": true, "predicate": true, "calc": true,
	"analysis": true, "state": true, "rendering": true,
	"view": true, "viewpoint": true, "occurrence": true,
	"interaction": true, "class": true, "assoc": true,
	"classifier": true, "datatype": true, "struct": true,
	"item": true, "type": true, "multiplicity": true,
	"feature": true, "flow": true, "succession": true,
	"transition": true, "frame": true, "concern": true,
	"stakeholder": true, "constraint": true,
	"actor": true, "subject": true, "objective": true,
	"step": true, "filter": true, "fork": true,
	"join": true, "merge": true, "decide": true,
	"verification": true,
}

// Keywords that introduce body members without the standard
// keyword-name-tail shape. Parsed as skipped or thin elements.
var bodyOnlyKeywords = map[string]bool{
	"perform": true, "exhibit": true, "satisfy": true,
	"verify": true, "expose": true, "send": true,
	"accept": true, "assert": true, "include": true,
	"bind": true, "alias": true, "dependency": true,
	"specialization": true, "conjugation": true, "typing": true,
	"featuring": true, "disjoining": true, "redefines": true,
	"subsets": true, "member": true,
	"entry": true, "do": true, "exit": true,
	"when": true, "else": true, "if": true,
}

var visibilityKeywords = map[string]bool{
	"private": true, "protected": true, "public": true,
}

var prefixModifiers = map[string]bool{
	"abstract": true, "ref": true, "var": true, "derived": true,
	"ordered": true, "nonunique": true, "composite": true,
	"portion": true, "library": true, "individual": true,
	"variation": true, "variant": true, "standard": true,
	"const": true, "constant": true,
}

var directionKeywords = map[string]bool{
	"in": true, "out": true, "inout": true,
}

var sequenceKeywords = map[string]bool{
	"first": true, "then": true,
}

// The full reserved word candidate list from the SysML v2 textual
// notation grammar. Membership here never makes a token a keyword by
// itself; see IsKeywordAt.
var reservedWords = map[string]bool{
	"about": true, "abstract": true, "accept": true,
	"action": true, "actor": true, "after": true,
	"alias": true, "all": true, "allocate": true,
	"allocation": true, "analysis": true, "and": true,
	"as": true, "assert": true, "assign": true,
	"assoc": true, "assume": true, "at": true,
	"attribute": true, "behavior": true, "bind": true,
	"binding": true, "bool": true, "by": true,
	"calc": true, "case": true, "chains": true,
	"class": true, "classifier": true, "comment": true,
	"composite": true, "concern": true, "conjugate": true,
	"conjugates": true, "conjugation": true, "connect": true,
	"connection": true, "connector": true, "const": true,
	"constant": true, "constraint": true, "crosses": true,
	"datatype": true, "decide": true, "def": true,
	"default": true, "defined": true, "dependency": true,
	"derived": true, "differences": true, "disjoining": true,
	"disjoint": true, "do": true, "doc": true,
	"else": true, "end": true, "entry": true,
	"enum": true, "event": true, "exhibit": true,
	"exit": true, "expose": true, "expr": true,
	"false": true, "feature": true, "featured": true,
	"featuring": true, "filter": true, "first": true,
	"flow": true, "for": true, "fork": true,
	"frame": true, "from": true, "function": true,
	"hastype": true, "if": true, "implies": true,
	"import": true, "in": true, "include": true,
	"individual": true, "inout": true, "interaction": true,
	"interface": true, "intersects": true, "inv": true,
	"inverse": true, "inverting": true, "istype": true,
	"item": true, "join": true, "language": true,
	"library": true, "locale": true, "loop": true,
	"member": true, "merge": true, "message": true,
	"meta": true, "metaclass": true, "metadata": true,
	"multiplicity": true, "namespace": true, "new": true,
	"nonunique": true, "not": true, "null": true,
	"objective": true, "occurrence": true, "of": true,
	"or": true, "ordered": true, "out": true,
	"package": true, "parallel": true, "part": true,
	"perform": true, "port": true, "portion": true,
	"predicate": true, "private": true, "protected": true,
	"public": true, "redefines": true, "redefinition": true,
	"ref": true, "references": true, "render": true,
	"rendering": true, "rep": true, "require": true,
	"requirement": true, "return": true, "satisfy": true,
	"send": true, "snapshot": true, "specialization": true,
	"specializes": true, "stakeholder": true, "standard": true,
	"state": true, "step": true, "struct": true,
	"subclassifier": true, "subject": true, "subset": true,
	"subsets": true, "subtype": true, "succession": true,
	"terminate": true, "then": true, "timeslice": true,
	"to": true, "transition": true, "true": true,
	"type": true, "typed": true, "typing": true,
	"unions": true, "until": true, "use": true,
	"var": true, "variant": true, "variation": true,
	"verification": true, "verify": true, "via": true,
	"view": true, "viewpoint": true, "when": true,
	"while": true, "xor": true,
}
