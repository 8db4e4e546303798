package lox

import "container/list"

// scope maps a name to whether its declaration has finished initializing:
// false between declare and define, true afterward. The global scope is not
// tracked here; a name unresolved in every local scope is assumed global.
type scope = map[string]bool

type fnType int

const (
	fnTypeNone fnType = iota
	fnTypeFunction
)

// Resolver walks the tree once to compute, for every local variable
// reference, the exact number of enclosing environment frames between the
// use and its declaring frame. The result is recorded into the
// interpreter's resolution side table, keyed by node id.
type Resolver struct {
	scopes      *list.List
	interpreter *Interpreter
	reporter    Reporter
	currentFn   fnType
}

// NewResolver creates a Resolver that records depths into interpreter.
func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	return &Resolver{
		scopes:      list.New(),
		interpreter: interpreter,
		reporter:    reporter,
		currentFn:   fnTypeNone,
	}
}

// Resolve resolves a whole program.
func (r *Resolver) Resolve(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	r.beginScope()
	for _, s := range stmt.Statements {
		r.resolveStmt(s)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	// declared+defined before the body is resolved, so the function can
	// recurse
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt, fnTypeFunction)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if r.currentFn == fnTypeNone {
		r.reporter.Report(NewResolveError(stmt.Keyword, "Can't return from top-level code."))
	}
	if stmt.Value != nil {
		r.resolveExpr(stmt.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	if front := r.scopes.Front(); front != nil {
		sc := front.Value.(scope)
		if defined, exists := sc[expr.Name.Lexeme]; exists && !defined {
			r.reporter.Report(NewResolveError(expr.Name, "Can't read local variable in its own initializer."))
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, typ fnType) {
	enclosingFn := r.currentFn
	r.currentFn = typ

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
	}
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveLocal finds the innermost scope declaring name and records the
// number of scopes walked (0 == current) against expr's node id. If no
// scope declares the name, the interpreter falls back to global lookup.
func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	depth := 0
	for e := r.scopes.Front(); e != nil; e = e.Next() {
		sc := e.Value.(scope)
		if _, ok := sc[name.Lexeme]; ok {
			r.interpreter.resolve(expr, depth)
			return
		}
		depth++
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr Expr) {
	expr.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scope))
}

func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) declare(name *Token) {
	front := r.scopes.Front()
	if front == nil {
		return
	}
	sc := front.Value.(scope)
	if _, exists := sc[name.Lexeme]; exists {
		r.reporter.Report(NewResolveError(name, "Already a variable with this name in this scope."))
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	front := r.scopes.Front()
	if front == nil {
		return
	}
	front.Value.(scope)[name.Lexeme] = true
}
