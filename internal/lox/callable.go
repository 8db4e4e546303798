package lox

import (
	"fmt"
	"time"
)

// Callable is implemented by every value that can be invoked with call
// syntax: user-defined functions and native functions.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// userFunction bundles a function declaration with the environment live at
// its declaration site -- its closure. Each call gets its own fresh
// environment enclosed by that closure, so recursive and re-entrant calls
// don't share parameter bindings.
type userFunction struct {
	decl    *FunctionStmt
	closure *Environment
}

func newUserFunction(decl *FunctionStmt, closure *Environment) *userFunction {
	return &userFunction{decl, closure}
}

func (fn *userFunction) Arity() int {
	return len(fn.decl.Params)
}

func (fn *userFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	f, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if f.sig == signalReturn {
		return f.val, nil
	}
	return nil, nil
}

func (fn *userFunction) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// nativeClock implements the global `clock()` function: seconds elapsed
// since the Unix epoch.
type nativeClock struct{}

func (fn *nativeClock) Arity() int {
	return 0
}

func (fn *nativeClock) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return time.Since(time.Unix(0, 0)).Seconds(), nil
}

func (fn *nativeClock) String() string {
	return "<native fn clock>"
}
