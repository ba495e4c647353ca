package minilang

// Compile runs the full front end over one source text: tokenize, parse,
// analyze. It returns the validated syntax tree ready for lowering, or the
// first stage's error unmodified. Each stage stays independently invocable
// through its own constructor.
func Compile(source string) (*Program, error) {
	tokens, err := NewLexer(source).Tokenize()
	if err != nil {
		return nil, err
	}
	prog, err := NewParser(tokens, source).Parse()
	if err != nil {
		return nil, err
	}
	if err := NewAnalyzer().Analyze(prog); err != nil {
		return nil, err
	}
	return prog, nil
}
