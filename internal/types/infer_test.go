package types_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/parser"
	"github.com/minihs-lang/minihs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	return types.CheckProgram(prog)
}

func TestCheckArithmeticExpression(t *testing.T) {
	assert.NoError(t, check(t, "1 + 2 * 3"))
}

func TestCheckFibonacciTypechecks(t *testing.T) {
	src := `fib 0 = 0
fib 1 = 1
fib n = fib (n - 1) + fib (n - 2)
fib 10`
	assert.NoError(t, check(t, src))
}

func TestCheckLetPolymorphism(t *testing.T) {
	// `identity` is used at both Int and Bool within the same let body,
	// which only typechecks if it is generalized at the let-binding.
	src := `f = let identity = \x -> x in (identity 1, identity True)`
	assert.NoError(t, check(t, src))
}

func TestCheckTypeMismatchIsError(t *testing.T) {
	assert.Error(t, check(t, "1 + True"))
}

func TestCheckIfBranchMismatchIsError(t *testing.T) {
	assert.Error(t, check(t, "if True then 1 else False"))
}

func TestCheckUnknownIdentifierIsError(t *testing.T) {
	assert.Error(t, check(t, "undefinedName"))
}

func TestCheckTupleArityMismatchIsError(t *testing.T) {
	src := `f :: (Int, Int) -> Int
f (x, y, z) = x`
	assert.Error(t, check(t, src))
}

func TestCheckOccursCheckFails(t *testing.T) {
	// `\x -> x x` demands x :: a -> b unified with x :: a, an infinite type.
	assert.Error(t, check(t, `f = \x -> x x`))
}

func TestCheckExplicitSignatureConstrains(t *testing.T) {
	src := `double :: Int -> Int
double x = x + x
double 21`
	assert.NoError(t, check(t, src))
}

func TestCheckExplicitSignatureMismatchIsError(t *testing.T) {
	src := `double :: Bool -> Int
double x = x + x`
	assert.Error(t, check(t, src))
}
