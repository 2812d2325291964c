package eval

import "github.com/minihs-lang/minihs/internal/ast"

// Interpreter runs a program's declarations in source order against one
// shared function table, per spec §5's serial declaration processing.
type Interpreter struct {
	table *FuncTable
	root  *Env
}

// NewInterpreter returns an Interpreter with a fresh, empty function table.
func NewInterpreter() *Interpreter {
	table := NewFuncTable()
	return &Interpreter{table: table, root: NewEnv(table)}
}

// Result is one top-level SExpr's forced output, ready to print with
// the "> " prefix (spec §6).
type Result struct {
	Rendered string
}

// RunDecl executes one declaration. FunDecl installs a closure into the
// shared function table; SExpr evaluates and fully forces its
// expression, returning the rendered result; type declarations are
// runtime no-ops (spec §4.4).
func (in *Interpreter) RunDecl(d ast.Decl) (*Result, error) {
	switch d := d.(type) {
	case *ast.FunDecl:
		in.table.Install(d.Name, &Closure{Body: d.Body, Params: d.Params, Env: in.root})
		return nil, nil

	case *ast.SExpr:
		v, err := EvalExpr(in.root, d.Expr)
		if err != nil {
			return nil, err
		}
		v, err = ForceDeep(v)
		if err != nil {
			return nil, err
		}
		return &Result{Rendered: String(v)}, nil

	case *ast.TypeAlias, *ast.TypeSignature:
		return nil, nil

	default:
		return nil, nil
	}
}
