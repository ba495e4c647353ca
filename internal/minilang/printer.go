package minilang

import (
	"fmt"
	"strings"
)

// PrintProgram renders the syntax tree one node per line with two-space
// indentation, in source order. It is the output of `minilang ast` and a
// convenient shape assertion for tests.
func PrintProgram(prog *Program) string {
	var sb strings.Builder
	sb.WriteString("Program\n")
	for _, fn := range prog.Functions {
		printFunction(&sb, fn)
	}
	return sb.String()
}

func printFunction(sb *strings.Builder, fn *Function) {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", param.Name, param.Type)
	}
	fmt.Fprintf(sb, "  Function %s(%s) -> %s\n", fn.Name, strings.Join(params, ", "), fn.ReturnType)
	printStmts(sb, fn.Body, 2)
}

func printStmts(sb *strings.Builder, stmts []Stmt, depth int) {
	for _, stmt := range stmts {
		printStmt(sb, stmt, depth)
	}
}

func printStmt(sb *strings.Builder, stmt Stmt, depth int) {
	pad := strings.Repeat("  ", depth)
	switch stmt := stmt.(type) {
	case *VarDecl:
		fmt.Fprintf(sb, "%sVarDecl %s: %s\n", pad, stmt.Name, stmt.Type)
	case *VarAssign:
		if stmt.DeclaredType != "" {
			fmt.Fprintf(sb, "%sVarAssign %s: %s\n", pad, stmt.Name, stmt.DeclaredType)
		} else {
			fmt.Fprintf(sb, "%sVarAssign %s\n", pad, stmt.Name)
		}
		printExpr(sb, stmt.Value, depth+1)
	case *Return:
		fmt.Fprintf(sb, "%sReturn\n", pad)
		if stmt.Value != nil {
			printExpr(sb, stmt.Value, depth+1)
		}
	case *Print:
		fmt.Fprintf(sb, "%sPrint\n", pad)
		printExpr(sb, stmt.Value, depth+1)
	case *If:
		fmt.Fprintf(sb, "%sIf\n", pad)
		printExpr(sb, stmt.Condition, depth+1)
		fmt.Fprintf(sb, "%s  Then\n", pad)
		printStmts(sb, stmt.Then, depth+2)
		if stmt.Else != nil {
			fmt.Fprintf(sb, "%s  Else\n", pad)
			printStmts(sb, stmt.Else, depth+2)
		}
	case *While:
		fmt.Fprintf(sb, "%sWhile\n", pad)
		printExpr(sb, stmt.Condition, depth+1)
		fmt.Fprintf(sb, "%s  Body\n", pad)
		printStmts(sb, stmt.Body, depth+2)
	default:
		panic(fmt.Sprintf("unhandled statement %T", stmt))
	}
}

func printExpr(sb *strings.Builder, expr Expr, depth int) {
	pad := strings.Repeat("  ", depth)
	switch expr := expr.(type) {
	case *NumberLiteral:
		fmt.Fprintf(sb, "%sNumberLiteral %s\n", pad, expr.Text)
	case *StringLiteral:
		fmt.Fprintf(sb, "%sStringLiteral %q\n", pad, expr.Text)
	case *Identifier:
		fmt.Fprintf(sb, "%sIdentifier %s\n", pad, expr.Name)
	case *BinaryOp:
		fmt.Fprintf(sb, "%sBinaryOp %s\n", pad, expr.Op)
		printExpr(sb, expr.Left, depth+1)
		printExpr(sb, expr.Right, depth+1)
	default:
		panic(fmt.Sprintf("unhandled expression %T", expr))
	}
}
