package parser

import "strings"

// stripCommentText extracts the human text of a /* ... */ comment:
// delimiters removed, leading '*' gutters removed, blank lines dropped,
// remaining lines joined with single spaces.
func stripCommentText(text string) string {
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}

// stripQuotes removes the surrounding quotes of a string literal. The
// closing quote may be missing when the literal was unterminated.
func stripQuotes(text string) string {
	if len(text) == 0 {
		return text
	}
	quote := text[0]
	if quote != '"' && quote != '\'' {
		return text
	}
	text = text[1:]
	if len(text) > 0 && text[len(text)-1] == quote {
		text = text[:len(text)-1]
	}
	return text
}
