package lower_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/lower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerSingleArityZeroEquation(t *testing.T) {
	c := &lower.Counter{}
	g := lower.Group{Name: "answer", Equations: []ast.Equation{
		{Name: "answer", Body: &ast.Lit{Lit: ast.LitInt{Value: 42}}},
	}}
	fd, err := lower.Lower(c, g)
	require.NoError(t, err)
	assert.Nil(t, fd.Params)
	assert.Equal(t, &ast.Lit{Lit: ast.LitInt{Value: 42}}, fd.Body)
}

func TestLowerDuplicateArityZeroIsError(t *testing.T) {
	c := &lower.Counter{}
	g := lower.Group{Name: "x", Equations: []ast.Equation{
		{Name: "x", Body: &ast.Lit{Lit: ast.LitInt{Value: 1}}},
		{Name: "x", Body: &ast.Lit{Lit: ast.LitInt{Value: 2}}},
	}}
	_, err := lower.Lower(c, g)
	assert.Error(t, err)
}

func TestLowerArityMismatchIsError(t *testing.T) {
	c := &lower.Counter{}
	g := lower.Group{Name: "f", Equations: []ast.Equation{
		{Name: "f", Patterns: []ast.Pattern{&ast.PatVar{Name: "x"}}, Body: &ast.Var{Name: "x"}},
		{Name: "f", Patterns: []ast.Pattern{&ast.PatVar{Name: "x"}, &ast.PatVar{Name: "y"}}, Body: &ast.Var{Name: "y"}},
	}}
	_, err := lower.Lower(c, g)
	assert.Error(t, err)
}

// TestLowerFibRenamesOnlyBareVarEquations checks spec §4.2's worked
// fibonacci example: the bare-Var equation's body gets its parameter
// renamed to the shared fresh argument name, and the literal-pattern
// equations are untouched aside from the pattern itself.
func TestLowerFibRenamesOnlyBareVarEquations(t *testing.T) {
	c := &lower.Counter{}
	g := lower.Group{Name: "fib", Equations: []ast.Equation{
		{Name: "fib", Patterns: []ast.Pattern{&ast.PatLiteral{Lit: ast.LitInt{Value: 0}}}, Body: &ast.Lit{Lit: ast.LitInt{Value: 0}}},
		{Name: "fib", Patterns: []ast.Pattern{&ast.PatLiteral{Lit: ast.LitInt{Value: 1}}}, Body: &ast.Lit{Lit: ast.LitInt{Value: 1}}},
		{Name: "fib", Patterns: []ast.Pattern{&ast.PatVar{Name: "n"}}, Body: &ast.BinOp{
			Left:  &ast.Application{Fun: &ast.Var{Name: "fib"}, Arg: &ast.BinOp{Left: &ast.Var{Name: "n"}, Op: ast.OpSub, Right: &ast.Lit{Lit: ast.LitInt{Value: 1}}}},
			Op:    ast.OpAdd,
			Right: &ast.Application{Fun: &ast.Var{Name: "fib"}, Arg: &ast.BinOp{Left: &ast.Var{Name: "n"}, Op: ast.OpSub, Right: &ast.Lit{Lit: ast.LitInt{Value: 2}}}},
		}},
	}}
	fd, err := lower.Lower(c, g)
	require.NoError(t, err)
	require.Len(t, fd.Params, 1)
	argName := fd.Params[0]

	ce, ok := fd.Body.(*ast.CaseExpr)
	require.True(t, ok)
	require.Len(t, ce.Alts, 3)

	// Third alt's pattern is the renamed bare Var.
	pv, ok := ce.Alts[2].Pattern.(*ast.PatVar)
	require.True(t, ok)
	assert.Equal(t, argName, pv.Name)

	// And every free occurrence of "n" in its body became argName.
	body := ce.Alts[2].Body.(*ast.BinOp)
	leftArg := body.Left.(*ast.Application).Arg.(*ast.BinOp).Left.(*ast.Var)
	assert.Equal(t, argName, leftArg.Name)

	// The literal-pattern alts' patterns are unchanged.
	lit0, ok := ce.Alts[0].Pattern.(*ast.PatLiteral)
	require.True(t, ok)
	assert.Equal(t, ast.LitInt{Value: 0}, lit0.Lit)
}

// TestLowerCompoundPatternKeepsOwnBindingNames checks that a FakeTuple's
// compound sub-pattern (here a cons pattern) is not renamed, since it
// destructures the argument rather than naming it directly.
func TestLowerCompoundPatternKeepsOwnBindingNames(t *testing.T) {
	c := &lower.Counter{}
	g := lower.Group{Name: "f", Equations: []ast.Equation{
		{Name: "f", Patterns: []ast.Pattern{
			&ast.PatList{Head: &ast.PatVar{Name: "h"}, Tail: &ast.PatVar{Name: "t"}},
			&ast.PatVar{Name: "acc"},
		}, Body: &ast.Var{Name: "h"}},
	}}
	fd, err := lower.Lower(c, g)
	require.NoError(t, err)
	ce := fd.Body.(*ast.CaseExpr)
	ft := ce.Alts[0].Pattern.(*ast.PatFakeTuple)
	require.Len(t, ft.Elems, 2)

	// First element (compound list pattern) keeps "h"/"t", not the fresh
	// argument name.
	pl, ok := ft.Elems[0].(*ast.PatList)
	require.True(t, ok)
	assert.Equal(t, "h", pl.Head.(*ast.PatVar).Name)
	assert.Equal(t, "t", pl.Tail.(*ast.PatVar).Name)

	// Second element (bare Var) is renamed to the second fresh argument name.
	pv, ok := ft.Elems[1].(*ast.PatVar)
	require.True(t, ok)
	assert.Equal(t, fd.Params[1], pv.Name)

	// The body's "h" reference is untouched since it was never an
	// argument-naming Var pattern.
	assert.Equal(t, "h", ce.Alts[0].Body.(*ast.Var).Name)
}
