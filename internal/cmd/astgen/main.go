// Command astgen emits the Expr/Stmt node types and their visitor
// interfaces for package lox. It is not part of the build; it is run by
// hand whenever the grammar changes, and its output is committed.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: astgen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]

	expressionTypes := []string{
		"Assign: Name *Token, Value Expr",
		"Binary: Left Expr, Op *Token, Right Expr",
		// Call stores the closing paren's token so a RuntimeError raised by
		// the call can be reported at a sensible source location.
		"Call: Callee Expr, Paren *Token, Args []Expr",
		"Grouping: Expression Expr",
		"Literal: Value interface{}",
		"Logical: Left Expr, Op *Token, Right Expr",
		"Unary: Op *Token, Right Expr",
		"Variable: Name *Token",
	}
	statementTypes := []string{
		"Block: Statements []Stmt",
		"Expression: Expression Expr",
		"Function: Name *Token, Params []*Token, Body []Stmt",
		"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
		"Print: Expression Expr",
		"Return: Keyword *Token, Value Expr",
		"Var: Name *Token, Initializer Expr",
		"While: Condition Expr, Body Stmt",
	}

	defineAst(outputDir, "Expr", expressionTypes, true)
	defineAst(outputDir, "Stmt", statementTypes, false)
}

func defineAst(outputDir, baseName string, types []string, withID bool) {
	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "// Code generated by internal/cmd/astgen. DO NOT EDIT.")
	fmt.Fprintln(w, "package lox")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "type %s interface {\n", baseName)
	fmt.Fprintf(w, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	if withID {
		fmt.Fprintln(w, "\tnodeID() int")
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	defineVisitor(w, baseName, types)

	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(w, baseName, typeName, fields, withID)
	}
}

func defineVisitor(w io.Writer, baseName string, types []string) {
	fmt.Fprintf(w, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.SplitN(t, ":", 2)[0])
		fmt.Fprintf(w, "\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName, strings.ToLower(baseName), typeName, baseName)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func defineType(w io.Writer, baseName, typeName, fieldList string, withID bool) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		fields = append(fields, strings.TrimSpace(f))
	}

	fmt.Fprintf(w, "type %s%s struct {\n", typeName, baseName)
	if withID {
		fmt.Fprintln(w, "\tid int")
	}
	for _, f := range fields {
		fmt.Fprintf(w, "\t%s\n", f)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	var fieldNames []string
	for _, f := range fields {
		fieldNames = append(fieldNames, strings.TrimSpace(strings.Split(f, " ")[0]))
	}
	fmt.Fprintf(w, "func New%s%s(%s) *%s%s {\n", typeName, baseName, fieldList, typeName, baseName)
	if withID {
		fmt.Fprintf(w, "\treturn &%s%s{nextNodeID(), %s}\n", typeName, baseName, strings.Join(fieldNames, ", "))
	} else {
		fmt.Fprintf(w, "\treturn &%s%s{%s}\n", typeName, baseName, strings.Join(fieldNames, ", "))
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	receiver := strings.ToLower(baseName[:1])
	fmt.Fprintf(w, "func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n", receiver, typeName, baseName, baseName)
	fmt.Fprintf(w, "\treturn visitor.Visit%s%s(%s)\n", typeName, baseName, receiver)
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	if withID {
		fmt.Fprintf(w, "func (%s *%s%s) nodeID() int {\n", receiver, typeName, baseName)
		fmt.Fprintf(w, "\treturn %s.id\n", receiver)
		fmt.Fprintln(w, "}")
		fmt.Fprintln(w)
	}
}
