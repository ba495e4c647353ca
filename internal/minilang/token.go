package minilang

import "fmt"

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF TokenKind = iota // sentinel: end of input

	// Literals
	NUMBER // integer or decimal literal
	STRING // string literal, lexeme holds the text between the quotes
	IDENT  // variable or function name
	OP     // maximal run of operator characters

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COLON     // :
	COMMA     // ,
	SEMICOLON // ;

	// Keywords
	FN
	RETURN
	IF
	ELSE
	WHILE
	PRINT
	TRUE
	FALSE
	TYPE_INT    // "int"
	TYPE_FLOAT  // "float"
	TYPE_BOOL   // "bool"
	TYPE_STRING // "string"
)

var tokenNames = [...]string{
	EOF:         "EOF",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	IDENT:       "IDENT",
	OP:          "OP",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	COLON:       "COLON",
	COMMA:       "COMMA",
	SEMICOLON:   "SEMICOLON",
	FN:          "FN",
	RETURN:      "RETURN",
	IF:          "IF",
	ELSE:        "ELSE",
	WHILE:       "WHILE",
	PRINT:       "PRINT",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	TYPE_INT:    "TYPE_INT",
	TYPE_FLOAT:  "TYPE_FLOAT",
	TYPE_BOOL:   "TYPE_BOOL",
	TYPE_STRING: "TYPE_STRING",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords maps reserved lexemes to their dedicated kinds. Identifier
// lexemes are reclassified through this table during lexing. The keyword
// "string" gets TYPE_STRING so it cannot collide with the literal kind.
var keywords = map[string]TokenKind{
	"fn":     FN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"print":  PRINT,
	"true":   TRUE,
	"false":  FALSE,
	"int":    TYPE_INT,
	"float":  TYPE_FLOAT,
	"bool":   TYPE_BOOL,
	"string": TYPE_STRING,
}

// Token is a single lexical unit with its position in the source. Lines are
// 1-based; columns are 0-based offsets from the start of the line.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER, STRING, IDENT, OP:
		return fmt.Sprintf("%s '%s' @%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
	default:
		return fmt.Sprintf("%s @%d:%d", t.Kind, t.Line, t.Column)
	}
}
