package eval_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/eval"
	"github.com/minihs-lang/minihs/internal/parser"
	"github.com/minihs-lang/minihs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and typechecks src, then runs it end to end, returning the
// rendered results of every top-level expression statement in order.
func run(t *testing.T, src string) []string {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	require.NoError(t, types.CheckProgram(prog))
	in := eval.NewInterpreter()
	var out []string
	for _, d := range prog.Decls {
		res, err := in.RunDecl(d)
		require.NoError(t, err)
		if res != nil {
			out = append(out, res.Rendered)
		}
	}
	return out
}

func TestEvalArithmeticAndPrinting(t *testing.T) {
	assert.Equal(t, []string{"7"}, run(t, "1 + 2 * 3"))
}

func TestEvalFibonacci(t *testing.T) {
	src := `fib 0 = 0
fib 1 = 1
fib n = fib (n - 1) + fib (n - 2)
fib 10`
	assert.Equal(t, []string{"55"}, run(t, src))
}

func TestEvalLazinessOverInfiniteRange(t *testing.T) {
	// "take 3 [1..]" must terminate even though the range is unbounded;
	// this only works if Cons/Range are lazy in the tail.
	src := `take n xs = case (n, xs) of
  (0, ys) -> [];
  (m, []) -> [];
  (m, y:ys) -> y : take (m - 1) ys
take 3 [1 ..]`
	assert.Equal(t, []string{"[1, 2, 3]"}, run(t, src))
}

func TestEvalLetPolymorphismAtRuntime(t *testing.T) {
	src := `f = let identity = \x -> x in (identity 1, identity True)
f`
	assert.Equal(t, []string{"(1, True)"}, run(t, src))
}

func TestEvalLetIsNonRecursiveAndShadowsOuterBinding(t *testing.T) {
	// `let five = five + 1` must refer to the outer `five`, not itself:
	// a recursive let here would diverge instead of yielding 6.
	src := `five = 5
g = let five = five + 1 in five
g`
	assert.Equal(t, []string{"6"}, run(t, src))
}

func TestEvalPatternMatchFailure(t *testing.T) {
	src := `onlyZero 0 = 1
onlyZero 1 = 2
onlyZero 5`
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)
	in := eval.NewInterpreter()
	var lastErr error
	for _, d := range prog.Decls {
		_, lastErr = in.RunDecl(d)
		if lastErr != nil {
			break
		}
	}
	assert.Error(t, lastErr)
}

func TestEvalStringsAndChars(t *testing.T) {
	assert.Equal(t, []string{`"ab"`, "'x'"}, run(t, `"a" ++ "b"
'x'`))
}

func TestEvalEqualityOverLists(t *testing.T) {
	assert.Equal(t, []string{"True", "False"}, run(t, `[1, 2] == [1, 2]
[1, 2] == [1, 3]`))
}
