// errors.go: human-readable rendering of lexical diagnostics.
//
// The scanner never raises errors; malformed spans come back as INVALID
// tokens inside the ordinary token sequence (lexer.go). This file turns
// those tokens into caret-annotated snippets of the original source so a
// shell or editor can point at the offending character:
//
//	LEXICAL ERROR at 2:13: Unexpected character '@' on line 1
//
//	   1 | var x = 1;
//	   2 | var y = x + @;
//	     |             ^
//	   3 | print y;
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places a caret under the column. Token
// coordinates are 0-based (lexer.go); rendering is 1-based and clamped to
// the source bounds so short or empty inputs never crash it.
package rlox

import (
	"fmt"
	"strings"
)

// Diagnostics returns the INVALID tokens of a scan in source order.
func Diagnostics(tokens []Token) []Token {
	var bad []Token
	for _, tok := range tokens {
		if tok.Type == INVALID {
			bad = append(bad, tok)
		}
	}
	return bad
}

// FormatInvalid renders one INVALID token as a caret-annotated snippet of
// src. Output is plain text (no ANSI escapes), suitable for logs and
// terminals.
func FormatInvalid(src string, tok Token) string {
	msg, _ := tok.Literal.(string)
	if msg == "" {
		msg = "invalid token"
	}
	return prettyErrorString(src, "LEXICAL ERROR", tok.Line+1, tok.Col+1, msg)
}

// prettyErrorString builds a Python-like snippet with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
