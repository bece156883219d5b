package parser

// maxNestingDepth bounds body nesting. Deeper input gets a "nesting too
// deep" diagnostic and the rest of the block is skipped iteratively, so
// crafted files cannot exhaust the call stack.
const maxNestingDepth = 64

// Parser turns a token stream into a File. One Parser value owns the
// whole parse: cursor, token buffer, and diagnostic sink. It is not safe
// for concurrent use; create one per file.
type Parser struct {
	file        string
	tokens      []Token
	pos         int
	diags       []Diagnostic
	eofReported bool
}

// Parse runs the syntax front-end over one source file. It always returns
// a File: malformed input surfaces as diagnostics next to whatever
// elements could still be recognized, never as an error.
func Parse(input []byte, path string) *File {
	lexer := NewLexer(input, path)
	all := lexer.Tokenize()

	p := &Parser{file: path}
	for _, tok := range all {
		if tok.IsTrivia() {
			continue
		}
		p.tokens = append(p.tokens, tok)
	}
	p.diags = append(p.diags, lexer.Diagnostics()...)

	elements := p.parseBody(0, true)
	return &File{Path: path, Elements: elements, Diagnostics: p.diags}
}

// ------------------------------------------------------------------
// Token stream helpers
// ------------------------------------------------------------------

func (p *Parser) cur() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Kind: TokenEOF}
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return Token{Kind: TokenEOF}
}

func (p *Parser) advance() Token {
	tok := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == TokenEOF
}

// atSym matches punctuation/operator tokens by symbol text.
func (p *Parser) atSym(symbol string) bool {
	return p.cur().Is(symbol)
}

func (p *Parser) eatSym(symbol string) bool {
	if p.atSym(symbol) {
		p.advance()
		return true
	}
	return false
}

// atWord matches an identifier token with exactly the given text. This is
// how the parser commits to keyword-hood: only at positions where the
// grammar expects that word.
func (p *Parser) atWord(text string) bool {
	tok := p.cur()
	return tok.Kind == TokenIdent && tok.Text == text
}

func (p *Parser) eatWord(text string) bool {
	if p.atWord(text) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) atKeyword(ctx GrammarContext) bool {
	tok := p.cur()
	return tok.Kind == TokenIdent && IsKeywordAt(tok.Text, ctx)
}

func (p *Parser) prevEnd() Position {
	if p.pos > 0 {
		return p.tokens[p.pos-1].Span.End
	}
	return p.cur().Span.Start
}

// ------------------------------------------------------------------
// Diagnostics and recovery
// ------------------------------------------------------------------

func (p *Parser) errorf(msg string) {
	tok := p.cur()
	if tok.Kind == TokenEOF {
		if p.eofReported {
			return
		}
		p.eofReported = true
		msg = "unexpected end of file: " + msg
	}
	p.diags = append(p.diags, Diagnostic{
		Code:     "syntax",
		Severity: SeverityError,
		Message:  msg,
		Path:     p.file,
		Span:     tok.Span,
	})
}

// recover implements panic-mode synchronization. It discards tokens until
// the body-member sync set: ';' (consumed), '{' (consumed with its whole
// balanced block), '}' (left for the enclosing body to close), EOF, or a
// word that can start a new member. Each call consumes at least one token
// unless already synchronized, so recovery always terminates.
func (p *Parser) recover() {
	for {
		tok := p.cur()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.Is(";"):
			p.advance()
			return
		case tok.Is("}"):
			return
		case tok.Is("{"):
			p.advance()
			p.skipBalanced()
			return
		case tok.Kind == TokenIdent && IsKeywordAt(tok.Text, AtBodyMember):
			return
		}
		p.advance()
	}
}

// skipBalanced consumes tokens up to and including the '}' matching an
// already-consumed '{'. Iterative, so nesting depth costs no stack.
func (p *Parser) skipBalanced() {
	depth := 1
	for depth > 0 {
		if p.atEOF() {
			p.errorf("expected '}'")
			return
		}
		tok := p.advance()
		if tok.Is("{") {
			depth++
		} else if tok.Is("}") {
			depth--
		}
	}
}

// ------------------------------------------------------------------
// Body / element lists
// ------------------------------------------------------------------

func (p *Parser) parseBody(depth int, topLevel bool) []*Element {
	var elements []*Element
	for {
		if p.atEOF() {
			if !topLevel {
				p.errorf("expected '}'")
			}
			break
		}
		if p.atSym("}") {
			if !topLevel {
				break
			}
			p.errorf("unexpected '}'")
			p.advance()
			continue
		}

		// A block comment just before an element is its candidate doc.
		var pending *Token
		for p.cur().Kind == TokenBlockComment {
			tok := p.advance()
			pending = &tok
		}
		if p.atEOF() || (!topLevel && p.atSym("}")) {
			if p.atEOF() && !topLevel {
				p.errorf("expected '}'")
			}
			break
		}

		before := p.pos
		elem := p.parseElement(depth, pending)
		if elem != nil {
			elements = append(elements, elem)
		}
		if p.pos == before && !p.atEOF() {
			// Should be unreachable; guards the totality invariant.
			p.advance()
		}
	}
	return elements
}

// ------------------------------------------------------------------
// Single element
// ------------------------------------------------------------------

func (p *Parser) parseElement(depth int, pending *Token) *Element {
	if p.eatSym(";") {
		return nil
	}

	start := p.cur().Span.Start

	var modifiers []string
	if p.atKeyword(AtModifier) && visibilityKeywords[p.cur().Text] {
		modifiers = append(modifiers, p.advance().Text)
	}
	for p.cur().Kind == TokenIdent && prefixModifiers[p.cur().Text] {
		modifiers = append(modifiers, p.advance().Text)
	}

	// Stray subsetting/redefining lines after modifiers.
	if p.atSym(":>>") || p.atSym("::>") || p.atSym(":>") {
		return p.skipToEnd(start, ElementRelationship, "subsetting")
	}

	if p.atWord("import") {
		return p.parseImport(start, modifiers)
	}
	if p.atWord("doc") {
		return p.parseDoc(start, pending)
	}
	if p.atWord("comment") {
		return p.parseCommentElement(start)
	}
	if p.atWord("require") || p.atWord("assume") {
		return p.parseRequireOrAssume(start, modifiers)
	}

	// first/then successions, kept as thin elements for flow rules.
	if tok := p.cur(); tok.Kind == TokenIdent && sequenceKeywords[tok.Text] {
		kw := p.advance().Text
		name := p.parseNameToken()
		p.eatSym(";")
		return p.finishElement(&Element{
			Kind:     ElementRelationship,
			Category: kw,
			Name:     name,
			Span:     Span{Start: start},
		})
	}

	// return name : Type ;  declares an output parameter.
	if p.eatWord("return") {
		name := p.parseNameToken()
		elem := &Element{
			Kind:      ElementUsage,
			Category:  "return",
			Name:      name,
			Modifiers: append(modifiers, "return"),
			Span:      Span{Start: start},
		}
		if p.eatSym(":") {
			elem.TypeRef = p.parseQualifiedName()
		}
		p.eatSym(";")
		return p.finishElement(elem)
	}

	// Direction prefix for parameters and features.
	direction := ""
	if tok := p.cur(); tok.Kind == TokenIdent && directionKeywords[tok.Text] {
		direction = p.advance().Text
		modifiers = append(modifiers, direction)
	}

	// "use case" is the only two-word element keyword.
	if p.atWord("use") && p.peekN(1).Kind == TokenIdent && p.peekN(1).Text == "case" {
		return p.parseUseCase(start, depth, modifiers, pending)
	}

	// Body-only constructs (perform, entry, exhibit, ...) are recorded but
	// not modeled further.
	if tok := p.cur(); tok.Kind == TokenIdent && bodyOnlyKeywords[tok.Text] {
		return p.skipToEnd(start, ElementUnknown, tok.Text)
	}

	// Metadata usages  @Name ... / @@Name ...
	if p.atSym("@") || p.atSym("@@") {
		return p.skipToEnd(start, ElementUnknown, "metadata")
	}

	if tok := p.cur(); tok.Kind == TokenIdent && elementKeywords[tok.Text] {
		return p.parseKeywordElement(start, depth, modifiers, pending)
	}

	// A consumed direction keyword may prefix a plain parameter:
	//   in paramName : Type ;
	if direction != "" && p.cur().Kind == TokenIdent {
		name := p.advance().Text
		elem := &Element{
			Kind:      ElementUsage,
			Category:  "parameter",
			Name:      name,
			Modifiers: modifiers,
			Span:      Span{Start: start},
		}
		if p.eatSym(":") {
			elem.TypeRef = p.parseQualifiedName()
		}
		if p.atSym("[") {
			elem.Multiplicity = p.parseMultiplicity()
		}
		p.eatSym(";")
		return p.finishElement(elem)
	}

	// No production matches here.
	p.errorf("unexpected " + describeToken(p.cur()) + ", expected an element declaration")
	p.recover()
	return nil
}

func (p *Parser) parseKeywordElement(start Position, depth int, modifiers []string, pending *Token) *Element {
	primary := p.advance()
	qualifiers := []string{primary.Text}
	isDef := false
	if p.eatWord("def") {
		isDef = true
		qualifiers = append(qualifiers, "def")
	}

	elem := &Element{
		Kind:       elementKindFor(primary.Text, isDef),
		Category:   primary.Text,
		Qualifiers: qualifiers,
		Name:       p.parseIdentification(),
		Modifiers:  modifiers,
		Span:       Span{Start: start},
	}
	if pending != nil {
		elem.Doc = stripCommentText(pending.Text)
	}
	p.parseElementTail(elem, depth)
	return p.finishElement(elem)
}

func elementKindFor(category string, isDef bool) ElementKind {
	if isDef {
		return ElementDefinition
	}
	switch category {
	case "package", "namespace":
		return ElementPackage
	case "flow", "succession", "transition", "dependency":
		return ElementRelationship
	}
	return ElementUsage
}

// ------------------------------------------------------------------
// Element tail: type annotation, specializations, body or ';'
// ------------------------------------------------------------------

func (p *Parser) parseElementTail(elem *Element, depth int) {
	// Type annotation   : TypeName [multiplicity]
	if p.eatSym(":") {
		p.eatWord("typed") // alternative spelling
		elem.TypeRef = p.parseQualifiedName()
		if elem.TypeRef == "" {
			p.errorf("expected type name after ':'")
			p.recover()
			return
		}
		if p.atSym("[") {
			elem.Multiplicity = p.parseMultiplicity()
		}
	}

	// Specialization  :> Ref, ...  or  specializes Ref, ...
	if p.atSym(":>") || p.atWord("specializes") {
		p.advance()
		elem.Specializes = append(elem.Specializes, p.parseQualifiedName())
		for p.eatSym(",") {
			elem.Specializes = append(elem.Specializes, p.parseQualifiedName())
		}
	}

	// Redefinition  :>> name  is consumed but not modeled.
	if p.atSym(":>>") || p.atWord("redefines") {
		p.advance()
		p.parseQualifiedName()
	}

	if elem.Multiplicity == "" && p.atSym("[") {
		elem.Multiplicity = p.parseMultiplicity()
	}

	// Default value  = expr
	if p.eatSym("=") {
		p.skipExpression()
		return
	}

	if p.eatSym("{") {
		elem.HasBody = true
		if depth+1 > maxNestingDepth {
			p.errorf("nesting too deep")
			p.skipBalanced()
			return
		}
		elem.Children = p.parseBody(depth+1, false)
		p.closeBody(elem)
		p.eatSym("}")
		return
	}

	if !p.eatSym(";") {
		p.errorf("expected ';' after " + elem.Category + " declaration")
		p.recover()
	}
}

// closeBody derives the body-summary fields once all children are known.
func (p *Parser) closeBody(elem *Element) {
	for _, child := range elem.Children {
		switch {
		case child.Kind == ElementDoc && elem.Doc == "":
			elem.Doc = child.Doc
		case child.Category == "subject" && elem.Subject == "":
			if child.TypeRef != "" {
				elem.Subject = child.TypeRef
			} else {
				elem.Subject = child.Name
			}
		case sequenceKeywords[child.Category]:
			elem.HasSequencing = true
		}
	}
}

// ------------------------------------------------------------------
// Special element parsers
// ------------------------------------------------------------------

func (p *Parser) parseImport(start Position, modifiers []string) *Element {
	p.advance() // import
	p.eatWord("all")

	var parts []string
	star := false
	if name := p.parseNameToken(); name != "" {
		parts = append(parts, name)
	} else {
		p.errorf("expected qualified name after 'import'")
		p.recover()
		return nil
	}
	for p.eatSym("::") {
		if p.eatSym("*") {
			star = true
			break
		}
		if seg := p.parseNameToken(); seg != "" {
			parts = append(parts, seg)
		}
	}

	elem := &Element{
		Kind:       ElementImport,
		Category:   "import",
		Modifiers:  modifiers,
		ImportPath: joinQualified(parts),
		ImportStar: star,
		Span:       Span{Start: start},
	}

	if p.eatSym("{") {
		// Import filter body, not modeled.
		elem.HasBody = true
		p.skipBalanced()
	} else if !p.eatSym(";") {
		p.errorf("expected ';' after import")
		p.recover()
	}
	return p.finishElement(elem)
}

func (p *Parser) parseDoc(start Position, pending *Token) *Element {
	p.advance() // doc
	p.parseIdentification()
	if p.eatWord("locale") {
		if p.cur().Kind == TokenDoubleString {
			p.advance()
		}
	}

	text := ""
	switch {
	case p.cur().Kind == TokenBlockComment:
		text = stripCommentText(p.advance().Text)
	case p.cur().Kind == TokenDoubleString:
		text = stripQuotes(p.advance().Text)
	case pending != nil:
		text = stripCommentText(pending.Text)
	}
	return p.finishElement(&Element{
		Kind:     ElementDoc,
		Category: "doc",
		Doc:      text,
		Span:     Span{Start: start},
	})
}

func (p *Parser) parseCommentElement(start Position) *Element {
	p.advance() // comment
	p.parseIdentification()
	if p.eatWord("about") {
		p.parseQualifiedName()
		for p.eatSym(",") {
			p.parseQualifiedName()
		}
	}
	if p.eatWord("locale") {
		if p.cur().Kind == TokenDoubleString {
			p.advance()
		}
	}
	text := ""
	if p.cur().Kind == TokenBlockComment {
		text = stripCommentText(p.advance().Text)
	}
	return p.finishElement(&Element{
		Kind:     ElementComment,
		Category: "comment",
		Doc:      text,
		Span:     Span{Start: start},
	})
}

func (p *Parser) parseRequireOrAssume(start Position, modifiers []string) *Element {
	p.advance() // require or assume
	if !p.eatWord("constraint") {
		// 'require' in other positions is not modeled.
		return p.skipToEnd(start, ElementUnknown, "require")
	}
	elem := &Element{
		Kind:      ElementRequirementBody,
		Category:  "require_constraint",
		Modifiers: modifiers,
		Span:      Span{Start: start},
	}
	if p.eatSym("{") {
		elem.HasBody = true
		p.skipBalanced()
	} else {
		p.eatSym(";")
	}
	return p.finishElement(elem)
}

func (p *Parser) parseUseCase(start Position, depth int, modifiers []string, pending *Token) *Element {
	p.advance() // use
	p.advance() // case
	qualifiers := []string{"use", "case"}
	isDef := false
	if p.eatWord("def") {
		isDef = true
		qualifiers = append(qualifiers, "def")
	}
	kind := ElementUsage
	if isDef {
		kind = ElementDefinition
	}
	elem := &Element{
		Kind:       kind,
		Category:   "use_case",
		Qualifiers: qualifiers,
		Name:       p.parseIdentification(),
		Modifiers:  modifiers,
		Span:       Span{Start: start},
	}
	if pending != nil {
		elem.Doc = stripCommentText(pending.Text)
	}
	p.parseElementTail(elem, depth)
	return p.finishElement(elem)
}

// ------------------------------------------------------------------
// Names, types, multiplicity
// ------------------------------------------------------------------

// parseIdentification parses the optional  <shortName> name  pair and
// returns the declared name. Reserved words are valid names here: the
// grammar position, not the lexeme, decides keyword-hood.
func (p *Parser) parseIdentification() string {
	if p.eatSym("<") {
		p.parseNameToken()
		p.eatSym(">")
	}
	return p.parseNameToken()
}

// parseNameToken consumes an identifier or single-quoted name. Quoted
// names keep their quotes so downstream rules can recognize them.
func (p *Parser) parseNameToken() string {
	tok := p.cur()
	if tok.Kind == TokenIdent || tok.Kind == TokenString {
		p.advance()
		return tok.Text
	}
	return ""
}

func (p *Parser) parseQualifiedName() string {
	var parts []string
	if seg := p.parseNameToken(); seg != "" {
		parts = append(parts, seg)
	}
	for p.atSym("::") || p.atSym(".") {
		p.advance()
		if seg := p.parseNameToken(); seg != "" {
			parts = append(parts, seg)
		} else if p.eatSym("*") {
			parts = append(parts, "*")
		}
	}
	return joinQualified(parts)
}

func (p *Parser) parseMultiplicity() string {
	if !p.eatSym("[") {
		return ""
	}
	text := "["
	for !p.atSym("]") && !p.atEOF() {
		text += p.advance().Text
	}
	p.eatSym("]")
	return text + "]"
}

// ------------------------------------------------------------------
// Skipping
// ------------------------------------------------------------------

// skipToEnd consumes one unmodeled construct through its ';' or balanced
// body and records it as a thin element.
func (p *Parser) skipToEnd(start Position, kind ElementKind, category string) *Element {
	for !p.atSym(";") && !p.atSym("{") && !p.atSym("}") && !p.atEOF() {
		p.advance()
	}
	hasBody := false
	if !p.eatSym(";") {
		if p.eatSym("{") {
			hasBody = true
			p.skipBalanced()
		}
	}
	return p.finishElement(&Element{
		Kind:     kind,
		Category: category,
		HasBody:  hasBody,
		Span:     Span{Start: start},
	})
}

// skipExpression consumes a value expression, stopping after ';' or
// before an unbalanced closing delimiter.
func (p *Parser) skipExpression() {
	depth := 0
	for !p.atEOF() {
		switch {
		case p.atSym("{") || p.atSym("(") || p.atSym("["):
			depth++
			p.advance()
		case p.atSym("}") || p.atSym(")") || p.atSym("]"):
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		case p.atSym(";") && depth == 0:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

func (p *Parser) finishElement(elem *Element) *Element {
	elem.Span.End = p.prevEnd()
	return elem
}

// ------------------------------------------------------------------
// Utility
// ------------------------------------------------------------------

func describeToken(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of file"
	case TokenInvalid:
		return "invalid input"
	default:
		return "'" + tok.Text + "'"
	}
}

func joinQualified(parts []string) string {
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += "::"
		}
		out += part
	}
	return out
}
