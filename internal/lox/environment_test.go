package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", 1.0)

	value, err := env.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, value)
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
	assert.Equal(t, "Undefined variable 'x'.\n[line 1]", err.Error())
}

func TestEnvironmentGetWalksEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", 1.0)
	inner := NewEnvironment(outer)

	value, err := inner.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, value)
}

func TestEnvironmentAssignWalksEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", 1.0)
	inner := NewEnvironment(outer)

	err := inner.Assign(NewToken(IDENTIFIER, "x", nil, 1), 2.0)
	require.NoError(t, err)

	value, err := outer.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, value)
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(NewToken(IDENTIFIER, "x", nil, 1), 2.0)
	require.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", 1.0)
	inner := NewEnvironment(outer)
	inner.Define("x", 2.0)

	value, err := inner.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, value)

	outerValue, err := outer.Get(NewToken(IDENTIFIER, "x", nil, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, outerValue)
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment(nil)
	middle := NewEnvironment(global)
	inner := NewEnvironment(middle)
	global.Define("x", 1.0)

	assert.Equal(t, 1.0, inner.GetAt(2, "x"))

	inner.AssignAt(2, "x", 5.0)
	assert.Equal(t, 5.0, global.values["x"])
}
