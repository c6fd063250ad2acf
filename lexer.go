package rlox

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scanner turns a Lox source string into tokens in one forward pass.
//
// Malformed input never aborts the scan: every unrecognized or unterminated
// span becomes an INVALID token whose Literal carries the diagnostic
// message, and scanning continues with the next character. The returned
// sequence always ends with a single EOF token.
type Scanner struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 0-based, ticks once per '\n' consumed
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	return s.src[s.cur], true
}

func (s *Scanner) peekN(n int) (byte, bool) {
	idx := s.cur + n
	if idx >= len(s.src) {
		return 0, false
	}
	return s.src[idx], true
}

func (s *Scanner) advance() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch, true
}

// match consumes the next byte only if it equals want.
func (s *Scanner) match(want byte) bool {
	b, ok := s.peek()
	if !ok || b != want {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) addToken(tt TokenType, lit interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.src[s.start:s.cur],
		Literal: lit,
		Line:    s.tokStartLine,
		Col:     s.tokStartCol,
	})
}

func (s *Scanner) addInvalid(msg string) {
	s.tokens = append(s.tokens, Token{
		Type:    INVALID,
		Lexeme:  s.src[s.start:s.cur],
		Literal: msg,
		Line:    s.tokStartLine,
		Col:     s.tokStartCol,
	})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- per-class scanners -----

// scanString consumes the body of a string literal, the opening quote
// already eaten. Contents are taken verbatim, no escape processing; the
// token is stamped with the line the string started on even if the body
// spans newlines.
func (s *Scanner) scanString() {
	for {
		b, ok := s.peek()
		if !ok {
			s.addInvalid(fmt.Sprintf("Unterminated string starting on line %d", s.tokStartLine))
			return
		}
		if b == '"' {
			s.advance()
			break
		}
		s.advance()
	}
	// exclude the surrounding quotes
	s.addToken(STRING, s.src[s.start+1:s.cur-1])
}

// scanNumber consumes a maximal digit run plus an optional fractional part.
// The '.' is taken only when the byte after it is a digit, so "42." scans
// as the number 42 followed by a Dot token, with no backtracking.
func (s *Scanner) scanNumber() {
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			break
		}
		s.advance()
	}

	if b, ok := s.peek(); ok && b == '.' {
		if b2, ok2 := s.peekN(1); ok2 && isDigit(b2) {
			s.advance() // consume '.'
			for {
				b, ok := s.peek()
				if !ok || !isDigit(b) {
					break
				}
				s.advance()
			}
		}
	}

	lex := s.src[s.start:s.cur]
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		s.addInvalid(fmt.Sprintf("Invalid number literal %q on line %d", lex, s.tokStartLine))
		return
	}
	s.addToken(NUMBER, v)
}

// scanIdentifier consumes [A-Za-z_][A-Za-z0-9_]* and resolves keywords.
func (s *Scanner) scanIdentifier() {
	for {
		b, ok := s.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		s.advance()
	}
	lex := s.src[s.start:s.cur]
	if tt, ok := keywords[lex]; ok {
		s.addToken(tt, nil)
		return
	}
	s.addToken(IDENTIFIER, lex)
}

// ignoreUntilNewline eats a comment body up to but excluding '\n', so the
// main loop sees the newline and ticks the line counter.
func (s *Scanner) ignoreUntilNewline() {
	for {
		b, ok := s.peek()
		if !ok || b == '\n' {
			return
		}
		s.advance()
	}
}

// ----- main scanner -----

// ScanTokens performs a single forward pass over the source and returns the
// complete ordered token sequence, EOF sentinel included. The source is
// never mutated and all scan state is reset on entry, so repeated calls on
// the same Scanner yield identical sequences.
func (s *Scanner) ScanTokens() []Token {
	s.start, s.cur = 0, 0
	s.line, s.col = 0, 0
	s.tokens = nil

	for !s.isAtEnd() {
		s.start = s.cur
		s.tokStartLine = s.line
		s.tokStartCol = s.col

		ch, _ := s.advance()

		switch ch {
		case '(':
			s.addToken(LEFT_PAREN, nil)
		case ')':
			s.addToken(RIGHT_PAREN, nil)
		case '{':
			s.addToken(LEFT_BRACE, nil)
		case '}':
			s.addToken(RIGHT_BRACE, nil)
		case ',':
			s.addToken(COMMA, nil)
		case '.':
			s.addToken(DOT, nil)
		case '-':
			s.addToken(MINUS, nil)
		case '+':
			s.addToken(PLUS, nil)
		case ';':
			s.addToken(SEMICOLON, nil)
		case '*':
			s.addToken(STAR, nil)

		// Divide or comment
		case '/':
			if s.match('/') {
				s.ignoreUntilNewline()
			} else {
				s.addToken(SLASH, nil)
			}

		// Equality and comparisons
		case '!':
			if s.match('=') {
				s.addToken(BANG_EQUAL, nil)
			} else {
				s.addToken(BANG, nil)
			}
		case '=':
			if s.match('=') {
				s.addToken(EQUAL_EQUAL, nil)
			} else {
				s.addToken(EQUAL, nil)
			}
		case '<':
			if s.match('=') {
				s.addToken(LESS_EQUAL, nil)
			} else {
				s.addToken(LESS, nil)
			}
		case '>':
			if s.match('=') {
				s.addToken(GREATER_EQUAL, nil)
			} else {
				s.addToken(GREATER, nil)
			}

		case '"':
			s.scanString()

		// Ignore whitespace; advance already ticked the line on '\n'.
		case ' ', '\r', '\t', '\n':

		default:
			if isDigit(ch) {
				s.scanNumber()
				break
			}
			if isAlpha(ch) {
				s.scanIdentifier()
				break
			}
			// Decode a whole rune so one multi-byte character yields one
			// INVALID token, not one per byte.
			if ch >= utf8.RuneSelf {
				s.cur--
				s.col--
				r, size := utf8.DecodeRuneInString(s.src[s.cur:])
				s.cur += size
				s.col += size
				s.addInvalid(fmt.Sprintf("Unexpected character %q on line %d", r, s.tokStartLine))
				break
			}
			s.addInvalid(fmt.Sprintf("Unexpected character %q on line %d", rune(ch), s.tokStartLine))
		}
	}

	s.start = s.cur
	s.tokStartLine = s.line
	s.tokStartCol = s.col
	s.addToken(EOF, nil)

	return s.tokens
}
