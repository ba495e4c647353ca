package minilang

// Scope maps declared variable names to their types during analysis of one
// function. If and while bodies share the enclosing function's scope; there
// is no block-local scoping.
type Scope struct {
	vars map[string]Type
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Type)}
}

// Declare records a name with its type. It reports false when the name is
// already declared, leaving the recorded type unchanged.
func (s *Scope) Declare(name string, typ Type) bool {
	if _, ok := s.vars[name]; ok {
		return false
	}
	s.vars[name] = typ
	return true
}

// Lookup returns the declared type of a name.
func (s *Scope) Lookup(name string) (Type, bool) {
	typ, ok := s.vars[name]
	return typ, ok
}
