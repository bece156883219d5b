package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer converts SysML v2 source text into tokens. It never fails: invalid
// input produces an error-flagged token plus a lex diagnostic and scanning
// resumes at the next character, so the token stream always ends in EOF.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	diags  []Diagnostic
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Diagnostics returns the lex-level diagnostics raised so far, in the
// order they occurred.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diags
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()

	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
		return l.scanWhitespace(start)
	}
	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(start)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(start)
	}
	if l.atNameStart() {
		return l.scanIdent(start)
	}
	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if ch == '.' && isDigit(l.peekN(1)) {
		return l.scanNumber(start)
	}
	if ch == '\'' {
		return l.scanString(start, '\'', TokenString)
	}
	if ch == '"' {
		return l.scanString(start, '"', TokenDoubleString)
	}
	return l.scanOperator(start)
}

// Tokenize scans the whole input, ending with exactly one EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	terminated := false
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			terminated = true
			break
		}
		l.advance()
	}
	if !terminated {
		l.errorf(start, "unterminated block comment")
	}
	return l.token(TokenBlockComment, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for l.atNamePart() {
		l.advanceRune()
	}
	return l.token(TokenIdent, start)
}

// advanceRune consumes one rune, however many bytes it spans. Column
// positions keep counting bytes, matching Position's contract.
func (l *Lexer) advanceRune() {
	if l.peek() < utf8.RuneSelf {
		l.advance()
		return
	}
	_, size := utf8.DecodeRune(l.input[l.pos:])
	l.advanceN(size)
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

// scanString scans a quoted literal. An unterminated string ends at the
// line break (or EOF) with a diagnostic at the opening quote, and scanning
// resumes from the next character.
func (l *Lexer) scanString(start Position, quote byte, kind TokenKind) Token {
	l.advance()
	terminated := false
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '\\' {
			l.advance()
			if l.pos < len(l.input) {
				l.advance()
			}
			continue
		}
		if ch == quote {
			l.advance()
			terminated = true
			break
		}
		if ch == '\n' {
			break
		}
		l.advance()
	}
	if !terminated {
		l.errorf(start, "unterminated string literal")
	}
	return l.token(kind, start)
}

var compoundOperators = []string{
	"!==", "::>", ":>>", "===",
	"!=", "**", "->", "..", ".?", "::", ":=", ":>",
	"<=", "==", "=>", ">=", "??", "@@",
}

var punctuation = map[byte]bool{
	'{': true, '}': true, '(': true, ')': true,
	'[': true, ']': true, ';': true, ',': true,
}

var singleOperators = map[byte]bool{
	'#': true, '$': true, '%': true, '&': true, '*': true,
	'+': true, '-': true, '.': true, '/': true, ':': true,
	'<': true, '=': true, '>': true, '?': true, '@': true,
	'^': true, '|': true, '~': true, '!': true,
}

func (l *Lexer) scanOperator(start Position) Token {
	// Longest match first.
	for _, op := range compoundOperators {
		if l.hasPrefix(op) {
			l.advanceN(len(op))
			return l.token(TokenOperator, start)
		}
	}

	ch := l.peek()
	if punctuation[ch] {
		l.advance()
		return l.token(TokenPunct, start)
	}
	if singleOperators[ch] {
		l.advance()
		return l.token(TokenOperator, start)
	}

	// Unknown character. Consume exactly one rune so scanning always makes
	// forward progress.
	r, size := utf8.DecodeRune(l.input[l.pos:])
	if size == 0 {
		size = 1
	}
	l.advanceN(size)
	l.errorf(start, "invalid character "+strconv.QuoteRune(r))
	return l.token(TokenInvalid, start)
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	return string(l.input[l.pos:l.pos+len(s)]) == s
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind: kind,
		Span: Span{Start: start, End: end},
		Text: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) errorf(at Position, msg string) {
	l.diags = append(l.diags, Diagnostic{
		Code:     "lex",
		Severity: SeverityError,
		Message:  msg,
		Path:     l.file,
		Span:     Span{Start: at, End: l.Position()},
	})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNameStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// atNameStart reports whether a name begins at the cursor. Non-ASCII
// input is decoded as a full rune so letters outside ASCII count.
func (l *Lexer) atNameStart() bool {
	ch := l.peek()
	if ch < utf8.RuneSelf {
		return isNameStart(ch)
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return unicode.IsLetter(r)
}

func (l *Lexer) atNamePart() bool {
	ch := l.peek()
	if ch < utf8.RuneSelf {
		return isNameStart(ch) || isDigit(ch)
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
