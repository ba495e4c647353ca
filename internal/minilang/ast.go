package minilang

// The syntax tree is immutable once built: the parser allocates every node,
// hands the root to its caller, and never retains or mutates it. Stmt and
// Expr are closed sets; consumers dispatch with an exhaustive type switch.

// Program is the root node holding every function in source order.
type Program struct {
	Functions []*Function
}

// Function is a single function declaration.
type Function struct {
	Name       string
	Params     []Param
	ReturnType Type // TypeVoid when the declaration carries no return type
	Body       []Stmt
}

// Param is one name-with-type entry in a function's parameter list.
type Param struct {
	Name string
	Type Type
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// VarDecl is a pure declaration: `x: int;`.
type VarDecl struct {
	Name string
	Type Type
}

func (*VarDecl) stmtNode() {}

// VarAssign is an assignment `x = e;` or a declaration with initializer
// `x: int = e;`. DeclaredType is empty for the plain assignment form.
type VarAssign struct {
	Name         string
	DeclaredType Type
	Value        Expr
}

func (*VarAssign) stmtNode() {}

// Return is `return;` or `return e;`. Value is nil for the bare form.
type Return struct {
	Value Expr
}

func (*Return) stmtNode() {}

// Print is `print(e);`.
type Print struct {
	Value Expr
}

func (*Print) stmtNode() {}

// If is `if (cond) block` with an optional else block; Else is nil when the
// statement has no else branch.
type If struct {
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

func (*If) stmtNode() {}

// While is `while (cond) block`.
type While struct {
	Condition Expr
	Body      []Stmt
}

func (*While) stmtNode() {}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// NumberLiteral keeps the literal's source text unparsed; the lowering
// collaborator decides the machine representation.
type NumberLiteral struct {
	Text string
}

func (*NumberLiteral) exprNode() {}

// StringLiteral holds the text between the quotes, escapes kept as written.
type StringLiteral struct {
	Text string
}

func (*StringLiteral) exprNode() {}

// Identifier is a variable reference.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}

// BinaryOp is a binary expression. Op is one of
// + - * / < > <= >= == !=.
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryOp) exprNode() {}
