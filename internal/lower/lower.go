// Package lower implements surface-to-core lowering (spec §4.2): merging
// a function's multiple pattern-matching equations into a single
// FunDecl over fresh argument names and a Case scrutinee.
package lower

import (
	"strconv"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// Counter produces monotonically increasing fresh names, threaded
// explicitly through lowering rather than kept as hidden global state.
type Counter struct{ n int }

// Fresh returns a new name guaranteed not to collide with any
// user-written identifier (surface identifiers never start with '$').
func (c *Counter) Fresh(prefix string) string {
	c.n++
	return "$" + prefix + strconv.Itoa(c.n)
}

// Group is one function name's equations, in source order.
type Group struct {
	Name      string
	Equations []ast.Equation
}

// GroupEquations partitions a flat, source-ordered equation list into
// per-name groups, preserving the first-seen order of names and the
// relative order of equations within a name.
func GroupEquations(eqs []ast.Equation) []Group {
	var groups []Group
	index := map[string]int{}
	for _, eq := range eqs {
		if i, ok := index[eq.Name]; ok {
			groups[i].Equations = append(groups[i].Equations, eq)
			continue
		}
		index[eq.Name] = len(groups)
		groups = append(groups, Group{Name: eq.Name, Equations: []ast.Equation{eq}})
	}
	return groups
}

// Lower merges one Group's equations into a single FunDecl per spec §4.2.
func Lower(c *Counter, g Group) (*ast.FunDecl, error) {
	arity := len(g.Equations[0].Patterns)
	for _, eq := range g.Equations {
		if len(eq.Patterns) != arity {
			return nil, errors.ArityMismatch(g.Name)
		}
	}

	if arity == 0 {
		if len(g.Equations) > 1 {
			return nil, errors.DuplicateDefinition(g.Name)
		}
		return &ast.FunDecl{Name: g.Name, Params: nil, Body: g.Equations[0].Body}, nil
	}

	argNames := make([]string, arity)
	for i := range argNames {
		argNames[i] = c.Fresh("a")
	}

	alts := make([]ast.CaseAlt, len(g.Equations))
	for i, eq := range g.Equations {
		body := renameEquationVars(eq, argNames)
		pats := make([]ast.Pattern, arity)
		for j, p := range eq.Patterns {
			pats[j] = renamePatternVar(p, argNames[j])
		}
		if arity == 1 {
			alts[i] = ast.CaseAlt{Pattern: pats[0], Body: body}
		} else {
			alts[i] = ast.CaseAlt{Pattern: &ast.PatFakeTuple{Elems: pats}, Body: body}
		}
	}

	var scrutinee ast.Expr
	if arity == 1 {
		scrutinee = &ast.Var{Name: argNames[0]}
	} else {
		elems := make([]ast.Expr, arity)
		for i, n := range argNames {
			elems[i] = &ast.Var{Name: n}
		}
		scrutinee = &ast.TupleExpr{Elems: elems}
	}

	return &ast.FunDecl{
		Name:   g.Name,
		Params: argNames,
		Body:   &ast.CaseExpr{Scrutinee: scrutinee, Alts: alts},
	}, nil
}

// renamePatternVar implements "the pattern variable inside the FakeTuple
// is also renamed to a_i": only a bare Var pattern at an argument
// position names that whole argument, so only a bare Var is rewritten to
// the fresh argument name. Compound patterns (literals, wildcards,
// lists, tuples) destructure the argument rather than naming it, so
// their own sub-bindings keep their original spelling.
func renamePatternVar(p ast.Pattern, argName string) ast.Pattern {
	if _, ok := p.(*ast.PatVar); ok {
		return &ast.PatVar{Name: argName}
	}
	return p
}

// renameEquationVars renames every free occurrence, in eq.Body, of an
// argument-position Var pattern's name to the corresponding fresh
// argument name — the cross-equation unification rule of spec §4.2.
// Shadowed bindings inside the body (inner lambdas/lets/cases rebinding
// the same name) stop the rename at that boundary.
func renameEquationVars(eq ast.Equation, argNames []string) ast.Expr {
	rename := map[string]string{}
	for i, p := range eq.Patterns {
		if v, ok := p.(*ast.PatVar); ok {
			rename[v.Name] = argNames[i]
		}
	}
	if len(rename) == 0 {
		return eq.Body
	}
	return renameExpr(eq.Body, rename)
}

// collectPatternVars collects the names a pattern binds, used only to
// compute shadowing boundaries while renaming a case alternative's body.
func collectPatternVars(p ast.Pattern, _ string, out map[string]string) {
	switch p := p.(type) {
	case *ast.PatVar:
		out[p.Name] = p.Name
	case *ast.PatList:
		collectPatternVars(p.Head, "", out)
		collectPatternVars(p.Tail, "", out)
	case *ast.PatTuple:
		for _, e := range p.Elems {
			collectPatternVars(e, "", out)
		}
	case *ast.PatFakeTuple:
		for _, e := range p.Elems {
			collectPatternVars(e, "", out)
		}
	}
}

func renameExpr(e ast.Expr, sub map[string]string) ast.Expr {
	switch e := e.(type) {
	case *ast.Var:
		if to, ok := sub[e.Name]; ok {
			return &ast.Var{Name: to}
		}
		return e
	case *ast.Lit:
		return e
	case *ast.Application:
		return &ast.Application{Fun: renameExpr(e.Fun, sub), Arg: renameExpr(e.Arg, sub)}
	case *ast.Lambda:
		if _, shadowed := sub[e.Param]; shadowed {
			inner := without(sub, e.Param)
			return &ast.Lambda{Param: e.Param, Body: renameExpr(e.Body, inner)}
		}
		return &ast.Lambda{Param: e.Param, Body: renameExpr(e.Body, sub)}
	case *ast.LetExpr:
		bound := renameExpr(e.Bound, sub)
		bodySub := sub
		if _, shadowed := sub[e.Name]; shadowed {
			bodySub = without(sub, e.Name)
		}
		return &ast.LetExpr{Name: e.Name, Bound: bound, Body: renameExpr(e.Body, bodySub)}
	case *ast.IfExpr:
		return &ast.IfExpr{Cond: renameExpr(e.Cond, sub), Then: renameExpr(e.Then, sub), Else: renameExpr(e.Else, sub)}
	case *ast.CaseExpr:
		alts := make([]ast.CaseAlt, len(e.Alts))
		for i, a := range e.Alts {
			bound := patternBoundNames(a.Pattern)
			altSub := sub
			if anyShadowed(sub, bound) {
				altSub = withoutAll(sub, bound)
			}
			alts[i] = ast.CaseAlt{Pattern: a.Pattern, Body: renameExpr(a.Body, altSub)}
		}
		return &ast.CaseExpr{Scrutinee: renameExpr(e.Scrutinee, sub), Alts: alts}
	case *ast.BinOp:
		return &ast.BinOp{Left: renameExpr(e.Left, sub), Op: e.Op, Right: renameExpr(e.Right, sub)}
	case *ast.TupleExpr:
		elems := make([]ast.Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = renameExpr(el, sub)
		}
		return &ast.TupleExpr{Elems: elems}
	case *ast.ListExpr:
		return &ast.ListExpr{Elems: renameList(e.Elems, sub)}
	case *ast.RangeExpr:
		r := &ast.RangeExpr{Start: renameExpr(e.Start, sub), Step: renameExpr(e.Step, sub)}
		if e.Stop != nil {
			r.Stop = renameExpr(e.Stop, sub)
		}
		return r
	default:
		return e
	}
}

func renameList(l ast.List, sub map[string]string) ast.List {
	if l.Empty {
		return l
	}
	tail := renameList(*l.Tail, sub)
	return ast.List{Head: renameExpr(l.Head, sub), Tail: &tail}
}

func patternBoundNames(p ast.Pattern) []string {
	out := map[string]string{}
	collectPatternVars(p, "", out)
	names := make([]string, 0, len(out))
	for n := range out {
		names = append(names, n)
	}
	return names
}

func anyShadowed(sub map[string]string, names []string) bool {
	for _, n := range names {
		if _, ok := sub[n]; ok {
			return true
		}
	}
	return false
}

func without(sub map[string]string, name string) map[string]string {
	out := make(map[string]string, len(sub))
	for k, v := range sub {
		if k != name {
			out[k] = v
		}
	}
	return out
}

func withoutAll(sub map[string]string, names []string) map[string]string {
	skip := map[string]bool{}
	for _, n := range names {
		skip[n] = true
	}
	out := make(map[string]string, len(sub))
	for k, v := range sub {
		if !skip[k] {
			out[k] = v
		}
	}
	return out
}

// LowerProgram groups and lowers every FunDecl-equivalent in a raw
// declaration list, leaving TypeAlias/TypeSignature/SExpr untouched.
// Equations are grouped by name within each run of consecutive
// equations; any other declaration ends the run. Each group lowers into
// one FunDecl placed where its run stands. Equations for one name that
// are split across runs lower into separate FunDecls, and the arity and
// duplicate-definition checks do not look across runs.
func LowerProgram(c *Counter, decls []RawDecl) (*ast.Program, error) {
	prog := &ast.Program{}
	var pending []ast.Equation
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		for _, g := range GroupEquations(pending) {
			fd, err := Lower(c, g)
			if err != nil {
				return err
			}
			prog.Decls = append(prog.Decls, fd)
		}
		pending = nil
		return nil
	}

	for _, d := range decls {
		switch d := d.(type) {
		case ast.Equation:
			pending = append(pending, d)
		default:
			if err := flush(); err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, d.(ast.Decl))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return prog, nil
}

// RawDecl is either an ast.Equation (pre-lowering function clause) or an
// ast.Decl (already-final declaration: TypeAlias, TypeSignature, SExpr).
type RawDecl interface{}
