// Package parser provides an error-tolerant syntax front-end for the
// SysML v2 textual notation.
//
// # Overview
//
// The front-end turns source bytes into a tree of generic Element nodes
// plus a flat list of diagnostics. It never fails: malformed input is
// reported through diagnostics while parsing continues, so editor and
// batch tooling always get a tree to work with.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │ (Elements)  │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │ lex         │     │ syntax      │
//	                    │ diagnostics │     │ diagnostics │
//	                    └─────────────┘     └─────────────┘
//
// # Contextual Keywords
//
// SysML v2 has no reserved words at the lexical level: "part", "action",
// and every other grammar word may also be a declared name. The lexer
// therefore emits only generic identifier tokens, and the parser decides
// keyword-hood per position through IsKeywordAt with a GrammarContext.
// This is how
//
//	part def part { }
//
// parses cleanly: the first "part" sits where a qualifier keyword is
// expected, the second where a name is expected.
//
// # Error Recovery
//
// On a syntax error the parser raises one Diagnostic and synchronizes:
// it discards tokens until a semicolon, brace, or a word that can start
// a new member, then resumes. Recovery always consumes at least one
// token when unsynchronized, so parsing terminates on any input. Body
// nesting is bounded; input beyond the limit gets a "nesting too deep"
// diagnostic and the rest of the block is skipped without recursion.
//
// # Entry Point
//
//	file := parser.Parse(src, "model.sysml")
//	for _, d := range file.Diagnostics { ... }
//	file.Walk(func(e, parent *parser.Element) { ... })
//
// The returned File is immutable after Parse and safe to share
// read-only across goroutines. A Parser instance itself is single-use
// and not safe for concurrent access.
package parser
