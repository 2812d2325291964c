package parser_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArithmeticExpression(t *testing.T) {
	prog, err := parser.ParseSource("1 + 2 * 3")
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
	sexpr, ok := prog.Decls[0].(*ast.SExpr)
	require.True(t, ok)
	assert.Equal(t, "1 + 2 * 3", sexpr.Expr.String())
}

func TestParseFibonacciLowersToSingleParamCase(t *testing.T) {
	src := `fib 0 = 0
fib 1 = 1
fib n = fib (n - 1) + fib (n - 2)`
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
	fd, ok := prog.Decls[0].(*ast.FunDecl)
	require.True(t, ok)
	assert.Equal(t, "fib", fd.Name)
	require.Len(t, fd.Params, 1)
	_, ok = fd.Body.(*ast.CaseExpr)
	assert.True(t, ok)
}

func TestParseMultiArgEquationUsesFakeTuple(t *testing.T) {
	src := `add 0 y = y
add x y = 1 + add (x - 1) y`
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	fd := prog.Decls[0].(*ast.FunDecl)
	require.Len(t, fd.Params, 2)
	caseExpr := fd.Body.(*ast.CaseExpr)
	_, ok := caseExpr.Alts[0].Pattern.(*ast.PatFakeTuple)
	assert.True(t, ok)
}

func TestParseLetIfCase(t *testing.T) {
	src := `f x = let y = x + 1 in if y > 0 then y else 0`
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	fd := prog.Decls[0].(*ast.FunDecl)
	require.NotNil(t, fd.Body)
}

func TestParseListsTuplesRanges(t *testing.T) {
	for _, src := range []string{
		"[1, 2, 3]",
		"(1, True, 'a')",
		"[1 .. 10]",
		"[1, 3 .. 9]",
		"[1 ..]",
	} {
		_, err := parser.ParseSource(src)
		assert.NoError(t, err, src)
	}
}

func TestParseLambdaAndCons(t *testing.T) {
	prog, err := parser.ParseSource(`f = \x xs -> x : xs`)
	require.NoError(t, err)
	fd := prog.Decls[0].(*ast.FunDecl)
	assert.Nil(t, fd.Params)
	lam, ok := fd.Body.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x", lam.Param)
}

func TestParseTypeSignatureAndAlias(t *testing.T) {
	prog, err := parser.ParseSource(`type Pair = (Int, Int)
addPair :: Int -> Int -> Int
addPair x y = x + y`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 3)
	_, ok := prog.Decls[0].(*ast.TypeAlias)
	assert.True(t, ok)
	sig, ok := prog.Decls[1].(*ast.TypeSignature)
	require.True(t, ok)
	assert.Equal(t, "addPair", sig.Name)
	_, ok = prog.Decls[2].(*ast.FunDecl)
	assert.True(t, ok)
}

func TestParseCaseOverPatterns(t *testing.T) {
	src := `describe xs = case xs of [] -> 0; (x:rest) -> 1 + describe rest`
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	fd := prog.Decls[0].(*ast.FunDecl)
	// A single-equation FunDecl with a bare Var param still lowers through
	// one outer Case (spec §4.2), so the user's own case sits in that
	// single alternative's body.
	outer := fd.Body.(*ast.CaseExpr)
	require.Len(t, outer.Alts, 1)
	inner := outer.Alts[0].Body.(*ast.CaseExpr)
	require.Len(t, inner.Alts, 2)
}
