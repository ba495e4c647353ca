package minilang

import "fmt"

// Analyzer walks the syntax tree and checks the scoping and typing rules.
// Functions are checked independently and in declaration order; the first
// violation aborts the walk with a SemanticError.
type Analyzer struct {
	scope   *Scope
	retType Type
	fnName  string
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return new(Analyzer)
}

// Analyze checks every function of the program.
func (a *Analyzer) Analyze(prog *Program) error {
	for _, fn := range prog.Functions {
		if err := a.function(fn); err != nil {
			return err
		}
	}
	return nil
}

// function checks one function against a fresh scope pre-populated with the
// function's parameters.
func (a *Analyzer) function(fn *Function) error {
	a.scope = NewScope()
	a.retType = fn.ReturnType
	a.fnName = fn.Name
	for _, param := range fn.Params {
		if !a.scope.Declare(param.Name, param.Type) {
			return NewSemanticError(Redeclaration,
				fmt.Sprintf("variable '%s' already declared", param.Name))
		}
	}
	return a.blockStmts(fn.Body)
}

func (a *Analyzer) blockStmts(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := a.statement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) statement(stmt Stmt) error {
	switch stmt := stmt.(type) {
	case *VarDecl:
		if !a.scope.Declare(stmt.Name, stmt.Type) {
			return NewSemanticError(Redeclaration,
				fmt.Sprintf("variable '%s' already declared", stmt.Name))
		}
		return nil
	case *VarAssign:
		return a.varAssign(stmt)
	case *Return:
		return a.returnStmt(stmt)
	case *Print:
		// Any type may be printed; the value is visited to surface nested
		// errors.
		_, err := a.expression(stmt.Value)
		return err
	case *If:
		if err := a.condition(stmt.Condition); err != nil {
			return err
		}
		if err := a.blockStmts(stmt.Then); err != nil {
			return err
		}
		return a.blockStmts(stmt.Else)
	case *While:
		if err := a.condition(stmt.Condition); err != nil {
			return err
		}
		return a.blockStmts(stmt.Body)
	default:
		panic(fmt.Sprintf("unhandled statement %T", stmt))
	}
}

// varAssign handles both the declaration-with-initializer form and the
// plain assignment. On the declare path the initializer's type is not
// compared against the annotation; the annotation alone enters the scope.
// On the assign path the annotation, if re-stated, is ignored and the value
// must match the type already in scope.
func (a *Analyzer) varAssign(stmt *VarAssign) error {
	valueType, err := a.expression(stmt.Value)
	if err != nil {
		return err
	}
	declared, ok := a.scope.Lookup(stmt.Name)
	if !ok {
		if stmt.DeclaredType == "" {
			return NewSemanticError(UndeclaredVariable,
				fmt.Sprintf("'%s' is not declared", stmt.Name))
		}
		a.scope.Declare(stmt.Name, stmt.DeclaredType)
		return nil
	}
	if valueType != declared {
		return NewSemanticError(TypeMismatch,
			fmt.Sprintf("cannot assign %s to '%s' of type %s", valueType, stmt.Name, declared))
	}
	return nil
}

// returnStmt checks a return against the enclosing function's declared
// type. A void function accepts `return expr`; the value is visited but not
// compared.
func (a *Analyzer) returnStmt(stmt *Return) error {
	if a.retType == TypeVoid {
		if stmt.Value != nil {
			_, err := a.expression(stmt.Value)
			return err
		}
		return nil
	}
	if stmt.Value == nil {
		return NewSemanticError(MissingReturnValue,
			fmt.Sprintf("function '%s' must return %s", a.fnName, a.retType))
	}
	valueType, err := a.expression(stmt.Value)
	if err != nil {
		return err
	}
	if valueType != a.retType {
		return NewSemanticError(TypeMismatch,
			fmt.Sprintf("return: expected %s, got %s", a.retType, valueType))
	}
	return nil
}

// condition accepts bool and int; an int condition means nonzero-is-true
// downstream.
func (a *Analyzer) condition(cond Expr) error {
	condType, err := a.expression(cond)
	if err != nil {
		return err
	}
	if condType != TypeBool && condType != TypeInt {
		return NewSemanticError(InvalidCondition,
			fmt.Sprintf("condition must be bool or int, got %s", condType))
	}
	return nil
}

// expression infers the type of an expression. Number literals always type
// as int; a decimal point does not make a float.
func (a *Analyzer) expression(expr Expr) (Type, error) {
	switch expr := expr.(type) {
	case *NumberLiteral:
		return TypeInt, nil
	case *StringLiteral:
		return TypeString, nil
	case *Identifier:
		typ, ok := a.scope.Lookup(expr.Name)
		if !ok {
			return "", NewSemanticError(UndeclaredVariable,
				fmt.Sprintf("'%s' is not declared", expr.Name))
		}
		return typ, nil
	case *BinaryOp:
		return a.binaryOp(expr)
	default:
		panic(fmt.Sprintf("unhandled expression %T", expr))
	}
}

func (a *Analyzer) binaryOp(expr *BinaryOp) (Type, error) {
	left, err := a.expression(expr.Left)
	if err != nil {
		return "", err
	}
	right, err := a.expression(expr.Right)
	if err != nil {
		return "", err
	}
	switch expr.Op {
	case "+", "-", "*", "/":
		if left != TypeInt || right != TypeInt {
			return "", NewSemanticError(TypeMismatch,
				fmt.Sprintf("binary op '%s': %s vs %s", expr.Op, left, right))
		}
		return TypeInt, nil
	case "<", ">", "<=", ">=", "==", "!=":
		if left != right {
			return "", NewSemanticError(TypeMismatch,
				fmt.Sprintf("binary op '%s': %s vs %s", expr.Op, left, right))
		}
		return TypeBool, nil
	default:
		// The grammar never produces another operator; this guards
		// hand-built trees.
		return "", NewSemanticError(UnsupportedOperator,
			fmt.Sprintf("operator '%s' is not supported", expr.Op))
	}
}
