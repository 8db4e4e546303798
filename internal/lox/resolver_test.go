package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveSource runs the whole compile pipeline up to resolution and
// returns the interpreter (so locals can be inspected), the statements and
// whatever the reporter collected.
func resolveSource(t *testing.T, src string) (*Interpreter, []Stmt, *mockReporter) {
	t.Helper()
	report := newMockReporter()
	scan := NewScanner([]rune(src), report)
	toks := scan.Scan()
	parse := NewParser(toks, report)
	stmts := parse.Parse()
	require.False(t, report.HadError(), src)

	in := NewInterpreter(&bytes.Buffer{}, report)
	resolver := NewResolver(in, report)
	resolver.Resolve(stmts)
	return in, stmts, report
}

func TestResolverLocalVariableDepth(t *testing.T) {
	in, stmts, report := resolveSource(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	require.False(t, report.HadError())

	block := stmts[1].(*BlockStmt)
	printStmt := block.Statements[1].(*PrintStmt)
	binary := printStmt.Expression.(*BinaryExpr)

	// a is declared one scope out from the print statement's block.
	aRef := binary.Left.(*VariableExpr)
	depth, ok := in.locals[aRef.nodeID()]
	require.True(t, ok)
	assert.Equal(t, 1, depth)

	// b is declared in the same scope as the print statement.
	bRef := binary.Right.(*VariableExpr)
	depth, ok = in.locals[bRef.nodeID()]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolverGlobalVariableIsUnresolved(t *testing.T) {
	in, stmts, report := resolveSource(t, `
		var a = 1;
		print a;
	`)
	require.False(t, report.HadError())

	printStmt := stmts[1].(*PrintStmt)
	ref := printStmt.Expression.(*VariableExpr)
	_, ok := in.locals[ref.nodeID()]
	assert.False(t, ok)
}

func TestResolverClosureCapturesDeclarationTimeScope(t *testing.T) {
	in, stmts, report := resolveSource(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
	`)
	require.False(t, report.HadError())

	outer := stmts[0].(*FunctionStmt)
	inner := outer.Body[1].(*FunctionStmt)
	assignStmt := inner.Body[0].(*ExpressionStmt)
	assign := assignStmt.Expression.(*AssignExpr)

	depth, ok := in.locals[assign.nodeID()]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestResolverReadInOwnInitializerIsReported(t *testing.T) {
	_, _, report := resolveSource(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	require.True(t, report.HadError())
	assert.Contains(t, report.errors[0].Error(), "Can't read local variable in its own initializer.")
}

func TestResolverDuplicateDeclarationInLocalScope(t *testing.T) {
	_, _, report := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	require.True(t, report.HadError())
	assert.Contains(t, report.errors[0].Error(), "Already a variable with this name in this scope.")
}

func TestResolverDuplicateDeclarationAllowedAtGlobalScope(t *testing.T) {
	_, _, report := resolveSource(t, `
		var a = 1;
		var a = 2;
	`)
	assert.False(t, report.HadError())
}

func TestResolverReturnOutsideFunctionIsReported(t *testing.T) {
	_, _, report := resolveSource(t, `return 1;`)
	require.True(t, report.HadError())
	assert.Contains(t, report.errors[0].Error(), "Can't return from top-level code.")
}
