package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeClockArityAndString(t *testing.T) {
	fn := &nativeClock{}
	assert.Equal(t, 0, fn.Arity())
	assert.Equal(t, "<native fn clock>", fn.String())

	value, err := fn.Call(nil, nil)
	assert.NoError(t, err)
	assert.IsType(t, float64(0), value)
}

func TestUserFunctionStringIncludesName(t *testing.T) {
	decl := NewFunctionStmt(NewToken(IDENTIFIER, "add", nil, 1), nil, nil)
	fn := newUserFunction(decl, NewEnvironment(nil))
	assert.Equal(t, "<fn add>", fn.String())
}

func TestUserFunctionArityMatchesParams(t *testing.T) {
	params := []*Token{
		NewToken(IDENTIFIER, "a", nil, 1),
		NewToken(IDENTIFIER, "b", nil, 1),
	}
	decl := NewFunctionStmt(NewToken(IDENTIFIER, "add", nil, 1), params, nil)
	fn := newUserFunction(decl, NewEnvironment(nil))
	assert.Equal(t, 2, fn.Arity())
}

func TestUserFunctionCallBindsParamsInFreshEnvironment(t *testing.T) {
	report := newMockReporter()
	scan := NewScanner([]rune(`fun identity(a) { return a; }`), report)
	stmts := NewParser(scan.Scan(), report).Parse()
	require.False(t, report.HadError())

	var out bytes.Buffer
	in := NewInterpreter(&out, report)
	NewResolver(in, report).Resolve(stmts)
	require.False(t, report.HadError())
	in.Interpret(stmts)

	fn, err := in.globals.Get(NewToken(IDENTIFIER, "identity", nil, 1))
	require.NoError(t, err)

	value, err := fn.(Callable).Call(in, []interface{}{42.0})
	assert.NoError(t, err)
	assert.Equal(t, 42.0, value)
}
