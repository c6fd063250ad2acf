package rlox

import (
	"strconv"
	"strings"
)

/* ---------- globals & tiny helpers ---------- */

var EnableColor = false // REPL-only; tests can leave this false

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}
func blue(s string) string  { return colorize(s, colorBlue) }
func green(s string) string { return colorize(s, colorGreen) }
func red(s string) string   { return colorize(s, colorRed) }

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

/* ---------- token rendering ---------- */

// FormatToken renders one token for debugging and REPL display: its kind,
// any literal payload, and the line it was recognized on.
//
//	LeftParen line 0
//	Identifier(radius) line 2
//	String("asd") line 0
//	Number(420.69) line 0
//	Invalid(Unexpected character '@' on line 1) line 1
func FormatToken(tok Token) string {
	var b strings.Builder

	name := tok.Type.String()
	switch tok.Type {
	case STRING:
		lit, _ := tok.Literal.(string)
		b.WriteString(green(name + "(" + quoteString(lit) + ")"))
	case NUMBER:
		v, _ := tok.Literal.(float64)
		b.WriteString(green(name + "(" + strconv.FormatFloat(v, 'f', -1, 64) + ")"))
	case IDENTIFIER:
		lit, _ := tok.Literal.(string)
		b.WriteString(green(name + "(" + lit + ")"))
	case INVALID:
		msg, _ := tok.Literal.(string)
		b.WriteString(red(name + "(" + msg + ")"))
	default:
		b.WriteString(blue(name))
	}

	b.WriteString(" line ")
	b.WriteString(strconv.Itoa(tok.Line))
	return b.String()
}

// FormatTokens renders a whole scan, one token per line.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatToken(tok))
	}
	return b.String()
}
