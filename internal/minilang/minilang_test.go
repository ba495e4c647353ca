package minilang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func tokEOF(line, column int) Token {
	return Token{Kind: EOF, Line: line, Column: column}
}

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := NewParser(mustTokenize(t, src), src).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func TestCompileValidProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile("fn main(): int { x: int = 5; print(x); return x; }")

	assert.NoError(err)
	if assert.Len(prog.Functions, 1) {
		assert.Equal("main", prog.Functions[0].Name)
		assert.Len(prog.Functions[0].Body, 3)
	}
}

// Each stage's error class surfaces unmodified, and an earlier stage always
// wins over a later one.
func TestCompileStageOrder(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile("fn main() { @ print(u) }")
	var lexErr *LexError
	assert.True(errors.As(err, &lexErr), "want LexError, got %v", err)

	_, err = Compile("fn main() { print(u) }")
	var synErr *SyntaxError
	assert.True(errors.As(err, &synErr), "want SyntaxError, got %v", err)

	_, err = Compile("fn main() { print(u); }")
	var semErr *SemanticError
	assert.True(errors.As(err, &semErr), "want SemanticError, got %v", err)
}

type corpusCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Want   string `yaml:"want"`
	ErrHas string `yaml:"errhas"`
}

func TestCompileCorpus(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "programs.yaml"))
	if err != nil {
		t.Fatalf("open corpus: %v", err)
	}
	defer f.Close()

	var cases []corpusCase
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cases); err != nil {
		t.Fatalf("decode corpus: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert := assert.New(t)
			prog, err := Compile(tc.Source)
			switch tc.Want {
			case "ok":
				assert.NoError(err)
				assert.NotNil(prog)
			case "lex":
				var lexErr *LexError
				assert.True(errors.As(err, &lexErr), "want LexError, got %v", err)
			case "syntax":
				var synErr *SyntaxError
				assert.True(errors.As(err, &synErr), "want SyntaxError, got %v", err)
			case "semantic":
				var semErr *SemanticError
				assert.True(errors.As(err, &semErr), "want SemanticError, got %v", err)
			default:
				t.Fatalf("unknown want %q", tc.Want)
			}
			if tc.ErrHas != "" && assert.Error(err) {
				assert.Contains(err.Error(), tc.ErrHas)
			}
		})
	}
}
