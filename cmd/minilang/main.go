package main

// Command minilang runs the MiniLang front end over a source file: it
// checks programs and dumps tokens or syntax trees. Lowering and execution
// live elsewhere.

import (
	"fmt"
	"os"

	"github.com/ltungv/minilang/internal/minilang"
	"github.com/xyproto/env/v2"
)

const version = "minilang 0.1.0"

var debug = env.Bool("MINILANG_DEBUG")

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
	}
	switch cmd := args[0]; cmd {
	case "version":
		if len(args) != 1 {
			usage()
		}
		fmt.Println(version)
	case "check", "ast", "tokens":
		if len(args) != 2 {
			usage()
		}
		runFile(cmd, args[1])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: minilang (check|ast|tokens) [script] | minilang version")
	os.Exit(64)
}

func runFile(cmd, fpath string) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	source := string(bytes)
	reporter := minilang.NewSimpleReporter(os.Stderr)
	switch cmd {
	case "tokens":
		runTokens(source, reporter)
	case "ast":
		runAST(source, reporter)
	case "check":
		runCheck(source, reporter)
	}
	exitIf(reporter.HadError(), 65)
}

// Tokenize only; one token per line.
func runTokens(source string, reporter minilang.Reporter) {
	tokens, err := minilang.NewLexer(source).Tokenize()
	if err != nil {
		reporter.Report(err)
		return
	}
	trace("lexed %d tokens", len(tokens))
	for _, tok := range tokens {
		fmt.Println(tok)
	}
}

// Run the full front end and print the tree.
func runAST(source string, reporter minilang.Reporter) {
	prog, err := minilang.Compile(source)
	if err != nil {
		reporter.Report(err)
		return
	}
	trace("checked %d functions", len(prog.Functions))
	fmt.Print(minilang.PrintProgram(prog))
}

// Run the full front end; silent on success.
func runCheck(source string, reporter minilang.Reporter) {
	prog, err := minilang.Compile(source)
	if err != nil {
		reporter.Report(err)
		return
	}
	trace("checked %d functions", len(prog.Functions))
}

func trace(format string, args ...any) {
	if !debug {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
