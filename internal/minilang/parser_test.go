package minilang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(text string) *NumberLiteral {
	return &NumberLiteral{Text: text}
}

func TestParseMinimalProgram(t *testing.T) {
	src := "fn main(): int { return 0; }"
	want := &Program{Functions: []*Function{{
		Name:       "main",
		ReturnType: TypeInt,
		Body:       []Stmt{&Return{Value: num("0")}},
	}}}

	prog, err := NewParser(mustTokenize(t, src), src).Parse()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(want, prog)
}

func TestParseFunctionHeaders(t *testing.T) {
	testCases := []struct {
		src  string
		want *Function
	}{
		{"fn empty() {}",
			&Function{Name: "empty", ReturnType: TypeVoid}},
		{"fn ping(): bool {}",
			&Function{Name: "ping", ReturnType: TypeBool}},
		{"fn greet(name: string) {}",
			&Function{Name: "greet", Params: []Param{{"name", TypeString}}, ReturnType: TypeVoid}},
		{"fn add(a: int, b: int): int {}",
			&Function{Name: "add", Params: []Param{{"a", TypeInt}, {"b", TypeInt}}, ReturnType: TypeInt}},
		{"fn mix(x: float, s: string, ok: bool): float {}",
			&Function{Name: "mix", Params: []Param{{"x", TypeFloat}, {"s", TypeString}, {"ok", TypeBool}}, ReturnType: TypeFloat}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		prog, err := NewParser(mustTokenize(t, tc.src), tc.src).Parse()

		assert.NoError(err, tc.src)
		assert.Equal(&Program{Functions: []*Function{tc.want}}, prog, tc.src)
	}
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		src  string
		want []Stmt
	}{
		{"x: int;",
			[]Stmt{&VarDecl{Name: "x", Type: TypeInt}}},
		{"x: int = 5;",
			[]Stmt{&VarAssign{Name: "x", DeclaredType: TypeInt, Value: num("5")}}},
		{"x: int; x = 6;",
			[]Stmt{
				&VarDecl{Name: "x", Type: TypeInt},
				&VarAssign{Name: "x", Value: num("6")},
			}},
		{"return;",
			[]Stmt{&Return{}}},
		{"return 1 + 2;",
			[]Stmt{&Return{Value: &BinaryOp{Op: "+", Left: num("1"), Right: num("2")}}}},
		{`print("hi");`,
			[]Stmt{&Print{Value: &StringLiteral{Text: "hi"}}}},
		{"if (1) { return; }",
			[]Stmt{&If{Condition: num("1"), Then: []Stmt{&Return{}}}}},
		{"if (1) { return; } else { print(2); }",
			[]Stmt{&If{
				Condition: num("1"),
				Then:      []Stmt{&Return{}},
				Else:      []Stmt{&Print{Value: num("2")}},
			}}},
		{"while (1) { print(1); }",
			[]Stmt{&While{Condition: num("1"), Body: []Stmt{&Print{Value: num("1")}}}}},
		// call statements are parsed but contribute no node
		{"noop();", nil},
		{"noop(1, 2);", nil},
		{"x: int; noop(x); x = 2;",
			[]Stmt{
				&VarDecl{Name: "x", Type: TypeInt},
				&VarAssign{Name: "x", Value: num("2")},
			}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		src := "fn main() { " + tc.src + " }"
		prog, err := NewParser(mustTokenize(t, src), src).Parse()

		assert.NoError(err, tc.src)
		if assert.Len(prog.Functions, 1, tc.src) {
			assert.Equal(tc.want, prog.Functions[0].Body, tc.src)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	testCases := []struct {
		src  string
		want Expr
	}{
		{"1 + 2 * 3",
			&BinaryOp{Op: "+", Left: num("1"), Right: &BinaryOp{Op: "*", Left: num("2"), Right: num("3")}}},
		{"(1 + 2) * 3",
			&BinaryOp{Op: "*", Left: &BinaryOp{Op: "+", Left: num("1"), Right: num("2")}, Right: num("3")}},
		{"1 - 2 - 3",
			&BinaryOp{Op: "-", Left: &BinaryOp{Op: "-", Left: num("1"), Right: num("2")}, Right: num("3")}},
		{"1 / 2 * 3",
			&BinaryOp{Op: "*", Left: &BinaryOp{Op: "/", Left: num("1"), Right: num("2")}, Right: num("3")}},
		{"1 < 2 + 3",
			&BinaryOp{Op: "<", Left: num("1"), Right: &BinaryOp{Op: "+", Left: num("2"), Right: num("3")}}},
		{"1 + 2 == 3 + 4",
			&BinaryOp{
				Op:    "==",
				Left:  &BinaryOp{Op: "+", Left: num("1"), Right: num("2")},
				Right: &BinaryOp{Op: "+", Left: num("3"), Right: num("4")},
			}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		src := "fn main() { print(" + tc.src + "); }"
		prog, err := NewParser(mustTokenize(t, src), src).Parse()

		if !assert.NoError(err, tc.src) {
			continue
		}
		stmt := prog.Functions[0].Body[0].(*Print)
		assert.Equal(tc.want, stmt.Value, tc.src)
	}
}

func TestParseDeclaredNames(t *testing.T) {
	assert := assert.New(t)

	// assignment requires a preceding declaration
	src := "fn main(): int { y = 1; return y; }"
	prog, err := NewParser(mustTokenize(t, src), src).Parse()
	assert.Nil(prog)
	var synErr *SyntaxError
	if assert.True(errors.As(err, &synErr)) {
		assert.Equal("variable 'y' not declared before assignment", synErr.Message)
		assert.Equal(1, synErr.Line)
		assert.Equal(17, synErr.Column)
	}

	// parameters count as declarations
	src = "fn f(a: int) { a = 2; }"
	_, err = NewParser(mustTokenize(t, src), src).Parse()
	assert.NoError(err)

	// so does a declaration with initializer
	src = "fn f() { b: int = 1; b = 2; }"
	_, err = NewParser(mustTokenize(t, src), src).Parse()
	assert.NoError(err)

	// a call does not declare its name
	src = "fn f() { d(); d = 1; }"
	_, err = NewParser(mustTokenize(t, src), src).Parse()
	if assert.True(errors.As(err, &synErr)) {
		assert.Equal("variable 'd' not declared before assignment", synErr.Message)
	}
}

// The declared-name set spans the whole parse: a name declared in one
// function passes the assignment check in a later function. The analyzer
// rejects such programs instead.
func TestParseDeclaredNamesSpanFunctions(t *testing.T) {
	assert := assert.New(t)

	src := "fn f() { c: int = 1; } fn g() { c = 2; }"
	prog, err := NewParser(mustTokenize(t, src), src).Parse()

	assert.NoError(err)
	assert.Len(prog.Functions, 2)

	err = NewAnalyzer().Analyze(prog)
	var semErr *SemanticError
	if assert.True(errors.As(err, &semErr)) {
		assert.Equal(UndeclaredVariable, semErr.Kind)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src     string
		message string
		line    int
		column  int
	}{
		{"main() {}", "expected 'fn', found 'main'", 1, 0},
		{"fn () {}", "expected function name, found '('", 1, 3},
		{"fn main {}", "expected '(', found '{'", 1, 8},
		{"fn main( {}", "expected parameter name, found '{'", 1, 9},
		{"fn main(x) {}", "expected ':', found ')'", 1, 9},
		{"fn main(x:) {}", "expected type, found ')'", 1, 10},
		{"fn main(x: int {}", "expected ')', found '{'", 1, 15},
		{"fn main(): {}", "expected type, found '{'", 1, 11},
		{"fn main(): void {}", "expected type, found 'void'", 1, 11},
		{"fn main()", "unexpected end of input, expected '{'", 1, 9},
		{"fn main() { return 0 }", "expected ';', found '}'", 1, 21},
		{"fn main() { return 0;", "unexpected end of input, expected '}'", 1, 21},
		{"fn main() { return", "unexpected end of input in expression", 1, 18},
		{"fn main() { x = 1; }", "variable 'x' not declared before assignment", 1, 12},
		{"fn main() { x =- 1; }", "expected ':', '=', or '(' after 'x', found '=-'", 1, 14},
		{"fn main() { x: int = ; }", "unexpected token ';' in expression", 1, 21},
		{"fn main() { x: int 5; }", "expected ';' or '=', found '5'", 1, 19},
		{"fn main() { return true; }", "unexpected token 'true' in expression", 1, 19},
		{"fn main() { return (1; }", "expected ')', found ';'", 1, 21},
		{"fn main() { print 1; }", "expected '(', found '1'", 1, 18},
		{"fn main() { if 1 { } }", "expected '(', found '1'", 1, 15},
		{"fn main() { else { } }", "unexpected token 'else' in block", 1, 12},
		{"fn main() { 5; }", "unexpected token '5' in block", 1, 12},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		prog, err := NewParser(mustTokenize(t, tc.src), tc.src).Parse()

		assert.Nil(prog, tc.src)
		var synErr *SyntaxError
		if assert.True(errors.As(err, &synErr), tc.src) {
			assert.Equal(tc.message, synErr.Message, tc.src)
			assert.Equal(tc.line, synErr.Line, tc.src)
			assert.Equal(tc.column, synErr.Column, tc.src)
			assert.Equal(tc.src, synErr.SourceLine, tc.src)
		}
	}
}

// Identical tokens always yield a structurally identical tree.
func TestParsePure(t *testing.T) {
	src := "fn main(): int { x: int = 1; while (x < 10) { x = x + 1; } return x; }"
	toks := mustTokenize(t, src)

	first, err1 := NewParser(toks, src).Parse()
	second, err2 := NewParser(toks, src).Parse()

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}
