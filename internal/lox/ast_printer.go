package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders an expression tree as a fully-parenthesized Lisp-like
// string, useful for debugging the parser (see the -ast flag).
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	value, _ := expr.Value.Accept(printer)
	return fmt.Sprintf("(= %s %s)", expr.Name.Lexeme, value), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, _ := expr.Callee.Accept(printer)
	args := make([]string, 0, len(expr.Args))
	for _, a := range expr.Args {
		s, _ := a.Accept(printer)
		args = append(args, fmt.Sprintf("%v", s))
	}
	return fmt.Sprintf("(call %s %s)", callee, strings.Join(args, " ")), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expression), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Right), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		s, _ := e.Accept(printer)
		b.WriteString(fmt.Sprintf("%v", s))
	}
	b.WriteString(")")
	return b.String()
}
