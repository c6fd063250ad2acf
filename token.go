package rlox

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	INVALID

	// Punctuation
	LEFT_PAREN  // "("
	RIGHT_PAREN // ")"
	LEFT_BRACE  // "{"
	RIGHT_BRACE // "}"
	COMMA       // ","
	DOT         // "."
	SEMICOLON   // ";"

	// Operators
	MINUS // "-"
	PLUS  // "+"
	SLASH // "/"
	STAR  // "*"

	BANG          // "!"
	BANG_EQUAL    // "!="
	EQUAL         // "="
	EQUAL_EQUAL   // "=="
	LESS          // "<"
	LESS_EQUAL    // "<="
	GREATER       // ">"
	GREATER_EQUAL // ">="

	// Literals & identifiers
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

// Token is a lexical token with optional literal value.
//
// Line is the 0-based source line the token starts on; the counter ticks
// once per '\n' consumed. Col is the 0-based byte column of the token's
// first character within that line.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for literals; message for INVALID
	Line    int
	Col     int
}

// keywords map
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

var tokenNames = map[TokenType]string{
	EOF:     "Eof",
	INVALID: "Invalid",

	LEFT_PAREN:  "LeftParen",
	RIGHT_PAREN: "RightParen",
	LEFT_BRACE:  "LeftBrace",
	RIGHT_BRACE: "RightBrace",
	COMMA:       "Comma",
	DOT:         "Dot",
	SEMICOLON:   "Semicolon",

	MINUS: "Minus",
	PLUS:  "Plus",
	SLASH: "Slash",
	STAR:  "Star",

	BANG:          "Bang",
	BANG_EQUAL:    "BangEqual",
	EQUAL:         "Equal",
	EQUAL_EQUAL:   "EqualEqual",
	LESS:          "Less",
	LESS_EQUAL:    "LessEqual",
	GREATER:       "Greater",
	GREATER_EQUAL: "GreaterEqual",

	IDENTIFIER: "Identifier",
	STRING:     "String",
	NUMBER:     "Number",

	AND:    "And",
	CLASS:  "Class",
	ELSE:   "Else",
	FALSE:  "False",
	FUN:    "Fun",
	FOR:    "For",
	IF:     "If",
	NIL:    "Nil",
	OR:     "Or",
	PRINT:  "Print",
	RETURN: "Return",
	SUPER:  "Super",
	THIS:   "This",
	TRUE:   "True",
	VAR:    "Var",
	WHILE:  "While",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "Unknown"
}
