// Package pipeline wires the parse, typecheck, and evaluate phases
// together into the control flow spec §2 describes: typecheck every
// declaration first, reject the whole run on the first error, then
// evaluate in source order.
package pipeline

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/eval"
	"github.com/minihs-lang/minihs/internal/parser"
	"github.com/minihs-lang/minihs/internal/types"
)

// Output is one top-level expression statement's rendered result.
type Output struct {
	Rendered string
}

// Run parses, typechecks, and evaluates src, returning the rendered
// output of each top-level expression statement in source order. A
// typing error aborts before anything is evaluated; a runtime error
// aborts the remaining declarations but keeps whatever output was
// already produced.
func Run(src string) ([]Output, error) {
	prog, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	if err := types.CheckProgram(prog); err != nil {
		return nil, err
	}
	return Eval(prog)
}

// Eval evaluates an already-typechecked program, in source order.
func Eval(prog *ast.Program) ([]Output, error) {
	in := eval.NewInterpreter()
	var outs []Output
	for _, d := range prog.Decls {
		res, err := in.RunDecl(d)
		if err != nil {
			return outs, err
		}
		if res != nil {
			outs = append(outs, Output{Rendered: res.Rendered})
		}
	}
	return outs, nil
}

// Check parses and typechecks src without evaluating it, for the `check`
// CLI subcommand.
func Check(src string) (*ast.Program, error) {
	prog, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	if err := types.CheckProgram(prog); err != nil {
		return nil, err
	}
	return prog, nil
}
