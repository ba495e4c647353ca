package minilang

import "unicode"

// Lexer converts source text into tokens in a single pass. It keeps the
// running line number and the offset of the current line's first rune so
// every token carries the position of its first character.
type Lexer struct {
	source    []rune
	start     int
	current   int
	line      int
	lineStart int
	tokens    []Token
}

// NewLexer creates a lexer over the given source text.
func NewLexer(source string) *Lexer {
	lx := new(Lexer)
	lx.source = []rune(source)
	lx.line = 1
	return lx
}

// Tokenize reads the whole source and returns its tokens, ending with a
// single EOF token. It stops at the first character that matches no token
// rule. A lexer is single use; create a new one for each source text.
func (lx *Lexer) Tokenize() ([]Token, error) {
	for lx.hasNext() {
		lx.start = lx.current
		switch r := lx.advance(); r {
		// Horizontal whitespace; \r is not whitespace in this language.
		case ' ', '\t':
		case '\n':
			lx.line++
			lx.lineStart = lx.current
		case '(':
			lx.addToken(LPAREN)
		case ')':
			lx.addToken(RPAREN)
		case '{':
			lx.addToken(LBRACE)
		case '}':
			lx.addToken(RBRACE)
		case ':':
			lx.addToken(COLON)
		case ',':
			lx.addToken(COMMA)
		case ';':
			lx.addToken(SEMICOLON)
		case '"':
			if err := lx.scanString(); err != nil {
				return nil, err
			}
		default:
			switch {
			case unicode.IsDigit(r):
				lx.scanNumber()
			case isOperator(r):
				lx.scanOperator()
			case isBeginIdent(r):
				lx.scanIdentifier()
			default:
				return nil, NewLexError(lx.line, r)
			}
		}
	}
	lx.start = lx.current
	lx.addToken(EOF)
	return lx.tokens, nil
}

// scanString reads until the closing quote. The stored lexeme is the raw
// text between the quotes: escape pairs are skipped so an escaped quote
// does not terminate the literal, but they are not decoded. A string may
// not span a line break; an unterminated string fails on its opening quote.
func (lx *Lexer) scanString() error {
	openLine := lx.line
	for lx.hasNext() && lx.peek() != '"' && lx.peek() != '\n' {
		if lx.peek() == '\\' && lx.peekNext() != '\n' && lx.peekNext() != 0 {
			lx.advance()
		}
		lx.advance()
	}
	if !lx.hasNext() || lx.peek() == '\n' {
		return NewLexError(openLine, '"')
	}
	lexeme := string(lx.source[lx.start+1 : lx.current])
	lx.advance()
	lx.addTokenLexeme(STRING, lexeme)
	return nil
}

// scanNumber reads digits with an optional fraction. A '.' not followed by
// a digit is left in place for the next scan, which fails on it.
func (lx *Lexer) scanNumber() {
	for unicode.IsDigit(lx.peek()) {
		lx.advance()
	}
	if lx.peek() == '.' && unicode.IsDigit(lx.peekNext()) {
		lx.advance()
		for unicode.IsDigit(lx.peek()) {
			lx.advance()
		}
	}
	lx.addToken(NUMBER)
}

// scanOperator consumes a maximal run of operator characters as one token.
// Adjacent single-character operators collapse: `x=-1` lexes as IDENT,
// OP "=-", NUMBER.
func (lx *Lexer) scanOperator() {
	for isOperator(lx.peek()) {
		lx.advance()
	}
	lx.addToken(OP)
}

func (lx *Lexer) scanIdentifier() {
	for isAlphanumeric(lx.peek()) {
		lx.advance()
	}
	lexeme := string(lx.source[lx.start:lx.current])
	if kind, isKeyword := keywords[lexeme]; isKeyword {
		lx.addToken(kind)
	} else {
		lx.addToken(IDENT)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given kind.
func (lx *Lexer) addToken(kind TokenKind) {
	lx.addTokenLexeme(kind, string(lx.source[lx.start:lx.current]))
}

func (lx *Lexer) addTokenLexeme(kind TokenKind, lexeme string) {
	lx.tokens = append(lx.tokens, Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   lx.line,
		Column: lx.start - lx.lineStart,
	})
}

// hasNext reports whether the lexer has not read past the source length.
func (lx *Lexer) hasNext() bool {
	return lx.current < len(lx.source)
}

// advance consumes and returns the rune at the current position.
func (lx *Lexer) advance() rune {
	r := lx.source[lx.current]
	lx.current++
	return r
}

// peek returns the rune at the current position without consuming it.
func (lx *Lexer) peek() rune {
	if !lx.hasNext() {
		return 0
	}
	return lx.source[lx.current]
}

// peekNext returns the rune one past the current position without
// consuming it.
func (lx *Lexer) peekNext() rune {
	if lx.current+1 >= len(lx.source) {
		return 0
	}
	return lx.source[lx.current+1]
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>', '!':
		return true
	}
	return false
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
