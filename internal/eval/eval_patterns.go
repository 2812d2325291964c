package eval

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// matchCase evaluates the scrutinee of a Case once into a thunk and
// tries each alternative's pattern against it in order, returning the
// first matching alternative's body and the environment extended with
// its bindings.
func matchCase(env *Env, e *ast.CaseExpr) (ast.Expr, *Env, error) {
	scrutinee := NewThunk(e.Scrutinee, env)
	for _, alt := range e.Alts {
		newEnv, matched, err := matchPattern(env, alt.Pattern, scrutinee)
		if err != nil {
			return nil, nil, err
		}
		if matched {
			return alt.Body, newEnv, nil
		}
	}
	return nil, nil, errors.NonExhaustivePattern()
}

// matchPattern tries pat against the (possibly still-suspended)
// scrutinee v, returning an environment extended with any bindings on
// success. Matching forces only as much of v as the pattern structurally
// demands (spec §4.4's match_pattern/matches_value rules): a Wildcard or
// Var never forces; a Literal/EmptyList forces to WHNF; a List forces
// one cons cell and recurses; Tuple/FakeTuple force to a tuple and
// match positionally.
func matchPattern(env *Env, pat ast.Pattern, v Value) (*Env, bool, error) {
	switch p := pat.(type) {
	case *ast.PatWildcard:
		return env, true, nil

	case *ast.PatVar:
		return env.Extend(p.Name, v), true, nil

	case *ast.PatLiteral:
		fv, err := Force(v)
		if err != nil {
			return nil, false, err
		}
		lit, ok := fv.(*LitValue)
		if !ok {
			return env, false, nil
		}
		return env, literalsEqual(p.Lit, lit.Lit), nil

	case *ast.PatEmptyList:
		fv, err := Force(v)
		if err != nil {
			return nil, false, err
		}
		_, ok := fv.(*EmptyListValue)
		return env, ok, nil

	case *ast.PatList:
		fv, err := Force(v)
		if err != nil {
			return nil, false, err
		}
		cons, ok := fv.(*ConsValue)
		if !ok {
			return env, false, nil
		}
		headEnv, matched, err := matchPattern(env, p.Head, cons.Head)
		if err != nil || !matched {
			return env, false, err
		}
		return matchPattern(headEnv, p.Tail, cons.Tail)

	case *ast.PatTuple:
		return matchTuple(env, p.Elems, v)

	case *ast.PatFakeTuple:
		return matchTuple(env, p.Elems, v)

	default:
		return env, false, nil
	}
}

func matchTuple(env *Env, pats []ast.Pattern, v Value) (*Env, bool, error) {
	fv, err := Force(v)
	if err != nil {
		return nil, false, err
	}
	tup, ok := fv.(*TupleValue)
	if !ok || len(tup.Elems) != len(pats) {
		return env, false, nil
	}
	cur := env
	for i, p := range pats {
		next, matched, err := matchPattern(cur, p, tup.Elems[i])
		if err != nil {
			return nil, false, err
		}
		if !matched {
			return env, false, nil
		}
		cur = next
	}
	return cur, true, nil
}

func literalsEqual(a, b ast.Literal) bool {
	switch a := a.(type) {
	case ast.LitInt:
		bv, ok := b.(ast.LitInt)
		return ok && a.Value == bv.Value
	case ast.LitBool:
		bv, ok := b.(ast.LitBool)
		return ok && a.Value == bv.Value
	case ast.LitChar:
		bv, ok := b.(ast.LitChar)
		return ok && a.Value == bv.Value
	case ast.LitString:
		bv, ok := b.(ast.LitString)
		return ok && a.Value == bv.Value
	default:
		return false
	}
}
