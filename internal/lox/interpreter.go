package lox

import (
	"fmt"
	"io"
)

// signal distinguishes a statement that completed normally from one that is
// propagating a `return`. Threading this through exec's result, rather than
// raising an error-like value to unwind the stack, keeps the normal path
// free of exceptional control flow.
type signal int

const (
	signalNone signal = iota
	signalReturn
)

type flow struct {
	sig signal
	val interface{}
}

// Interpreter evaluates a resolved syntax tree against a chain of lexical
// environments. It implements ExprVisitor and StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[int]int
	output      io.Writer
	reporter    Reporter
}

// NewInterpreter creates an Interpreter that writes `print` output to
// output and reports runtime errors to reporter. The global environment is
// seeded with the native `clock` function.
func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &nativeClock{})
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[int]int),
		output:      output,
		reporter:    reporter,
	}
}

// Interpret executes a program's top-level statements in order. A runtime
// error aborts execution and is reported; it never panics out to the
// caller.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			return
		}
	}
}

// resolve records that expr's node id resolves to the environment frame
// `depth` links outward from the current one. Called by the Resolver.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr.nodeID()] = depth
}

func (in *Interpreter) lookupVariable(name *Token, expr Expr) (interface{}, error) {
	if depth, ok := in.locals[expr.nodeID()]; ok {
		return in.environment.GetAt(depth, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	f, err := in.execBlock(stmt.Statements, NewEnvironment(in.environment))
	return f, err
}

// execBlock runs statements against env, restoring the previous environment
// on every exit path -- normal completion, an early return, or a runtime
// error.
func (in *Interpreter) execBlock(statements []Stmt, env *Environment) (flow, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		f, err := in.exec(stmt)
		if err != nil {
			return flow{}, err
		}
		if f.sig == signalReturn {
			return f, nil
		}
	}
	return flow{}, nil
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	if _, err := in.eval(stmt.Expression); err != nil {
		return nil, err
	}
	return flow{}, nil
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newUserFunction(stmt, in.environment)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return flow{}, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		f, err := in.exec(stmt.ThenBranch)
		return f, err
	}
	if stmt.ElseBranch != nil {
		f, err := in.exec(stmt.ElseBranch)
		return f, err
	}
	return flow{}, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(value))
	return flow{}, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var value interface{}
	if stmt.Value != nil {
		v, err := in.eval(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return flow{signalReturn, value}, nil
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var value interface{}
	if stmt.Initializer != nil {
		v, err := in.eval(stmt.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	in.environment.Define(stmt.Name.Lexeme, value)
	return flow{}, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return flow{}, nil
		}
		f, err := in.exec(stmt.Body)
		if err != nil {
			return nil, err
		}
		if f.sig == signalReturn {
			return f, nil
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	value, err := in.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[expr.nodeID()]; ok {
		in.environment.AssignAt(depth, expr.Name.Lexeme, value)
	} else if err := in.globals.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !valuesEqual(left, right), nil
	case EQUAL_EQUAL:
		return valuesEqual(left, right), nil
	case PLUS:
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")
	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, MINUS, SLASH, STAR:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		switch expr.Op.Typ {
		case GREATER:
			return ln > rn, nil
		case GREATER_EQUAL:
			return ln >= rn, nil
		case LESS:
			return ln < rn, nil
		case LESS_EQUAL:
			return ln <= rn, nil
		case MINUS:
			return ln - rn, nil
		case SLASH:
			return ln / rn, nil
		case STAR:
			return ln * rn, nil
		}
	}
	panic("lox: unreachable binary operator")
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(expr.Args))
	for _, a := range expr.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, NewRuntimeError(
			expr.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		)
	}
	return fn.Call(in, args)
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Op.Typ == OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(expr.Right)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	right, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(right), nil
	case MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
		}
		return -n, nil
	}
	panic("lox: unreachable unary operator")
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.lookupVariable(expr.Name, expr)
}

func (in *Interpreter) exec(stmt Stmt) (flow, error) {
	res, err := stmt.Accept(in)
	if err != nil {
		return flow{}, err
	}
	if res == nil {
		return flow{}, nil
	}
	return res.(flow), nil
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}
