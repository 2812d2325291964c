package ast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/parser"
)

func dumpSource(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.ParseSource(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return ast.Dump(prog)
}

func TestDumpIsStableAcrossIdenticalInput(t *testing.T) {
	src := `double x = x + x
double 21`
	first := dumpSource(t, src)
	second := dumpSource(t, src)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Dump is not deterministic for identical input (-first +second):\n%s", diff)
	}
}

func TestDumpDistinguishesFakeTupleFromRealTuple(t *testing.T) {
	fake := dumpSource(t, `add x y = x + y
add 1 2`)
	real := dumpSource(t, `fst t = case t of (a, b) -> a
fst (1, 2)`)
	if diff := cmp.Diff(fake, real); diff == "" {
		t.Fatal("expected dumps of a multi-argument function and a real tuple pattern to differ")
	}
}

func TestDumpRendersBinOpAndIfShape(t *testing.T) {
	got := dumpSource(t, `classify n = if n == 0 then "zero" else "nonzero"
classify 0`)
	for _, want := range []string{`"node": "If"`, `"node": "BinOp"`, `"op": "=="`} {
		if !strings.Contains(got, want) {
			t.Fatalf("Dump output missing %q:\n%s", want, got)
		}
	}
}
