package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/corvidae-labs/lox/internal/lox"
)

func main() {
	args := os.Args[1:]

	printAst := false
	if len(args) > 0 && args[0] == "-ast" {
		printAst = true
		args = args[1:]
	}

	if len(args) > 1 {
		fmt.Println("Usage: lox [script]")
		os.Exit(64)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	interpreter := lox.NewInterpreter(os.Stdout, reporter)
	if len(args) != 1 {
		runPrompt(interpreter, reporter, printAst)
	} else {
		runFile(args[0], interpreter, reporter, printAst)
	}
}

func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter, printAst bool) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()

	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}

	if printAst {
		printer := &lox.AstPrinter{}
		for _, stmt := range statements {
			if exprStmt, ok := stmt.(*lox.ExpressionStmt); ok {
				fmt.Fprintln(os.Stderr, printer.Print(exprStmt.Expression))
			}
		}
	}

	resolver := lox.NewResolver(interpreter, reporter)
	resolver.Resolve(statements)
	if reporter.HadError() {
		return
	}

	interpreter.Interpret(statements)
}

// runPrompt runs the interpreter in REPL mode: read a line, run it, reset
// per-line diagnostic state, repeat until EOF.
func runPrompt(interpreter *lox.Interpreter, reporter lox.Reporter, printAst bool) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), interpreter, reporter, printAst)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// runFile reads fpath and runs it once, translating reporter state into the
// process exit code.
func runFile(fpath string, interpreter *lox.Interpreter, reporter lox.Reporter, printAst bool) {
	bytes, err := ioutil.ReadFile(fpath)
	exitOnError(err, 1)

	run(string(bytes), interpreter, reporter, printAst)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
