package parser

import "strconv"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid
	TokenWhitespace
	TokenLineComment
	TokenBlockComment

	// Literals. Keywords are not a token kind: reserved words surface as
	// TokenIdent carrying their raw text, and the parser decides
	// keyword-hood from grammar position.
	TokenIdent
	TokenString       // single-quoted 'restricted name'
	TokenDoubleString // double-quoted "string"
	TokenNumber

	TokenPunct
	TokenOperator
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenInvalid:      "Invalid",
	TokenWhitespace:   "Whitespace",
	TokenLineComment:  "LineComment",
	TokenBlockComment: "BlockComment",
	TokenIdent:        "Identifier",
	TokenString:       "StringLiteral",
	TokenDoubleString: "StringLiteral",
	TokenNumber:       "NumberLiteral",
	TokenPunct:        "Punctuation",
	TokenOperator:     "Operator",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind TokenKind
	Span Span
	Text string
}

// IsTrivia reports whether the token is skipped by the parser entirely.
// Block comments are not trivia: the parser keeps them to attach doc text.
func (t Token) IsTrivia() bool {
	return t.Kind == TokenWhitespace || t.Kind == TokenLineComment
}

// Is matches a punctuation or operator token by its symbol text.
func (t Token) Is(symbol string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenOperator) && t.Text == symbol
}
