package minilang

import (
	"fmt"
	"strings"
)

// LexError reports a character that matches no token rule.
type LexError struct {
	Line int
	Char rune
}

// NewLexError creates the error for an unexpected character.
func NewLexError(line int, char rune) error {
	return &LexError{line, char}
}

func (err *LexError) Error() string {
	return fmt.Sprintf("line %d: unexpected character %q", err.Line, err.Char)
}

// SyntaxError reports a grammar violation at a known position. SourceLine
// holds the offending line's text so the rendered message can point a caret
// at the column.
type SyntaxError struct {
	Message    string
	Line       int
	Column     int
	SourceLine string
}

// NewSyntaxError creates a positioned syntax error.
func NewSyntaxError(message string, line, column int, sourceLine string) error {
	return &SyntaxError{message, line, column, sourceLine}
}

func (err *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d, column %d: %s", err.Line, err.Column, err.Message)
	if err.SourceLine != "" {
		fmt.Fprintf(&sb, "\n  %s\n  %s^", err.SourceLine, strings.Repeat(" ", err.Column))
	}
	return sb.String()
}

// SemanticKind classifies semantic violations.
type SemanticKind int

const (
	Redeclaration SemanticKind = iota
	UndeclaredVariable
	TypeMismatch
	InvalidCondition
	MissingReturnValue
	UnsupportedOperator
)

var semanticKindNames = [...]string{
	Redeclaration:       "redeclaration",
	UndeclaredVariable:  "undeclared variable",
	TypeMismatch:        "type mismatch",
	InvalidCondition:    "invalid condition",
	MissingReturnValue:  "missing return value",
	UnsupportedOperator: "unsupported operator",
}

func (k SemanticKind) String() string {
	if int(k) >= 0 && int(k) < len(semanticKindNames) {
		return semanticKindNames[k]
	}
	return fmt.Sprintf("SemanticKind(%d)", int(k))
}

// SemanticError reports the first scoping or typing violation found by the
// analyzer.
type SemanticError struct {
	Kind   SemanticKind
	Detail string
}

// NewSemanticError creates a semantic error of the given kind.
func NewSemanticError(kind SemanticKind, detail string) error {
	return &SemanticError{kind, detail}
}

func (err *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", err.Kind, err.Detail)
}
