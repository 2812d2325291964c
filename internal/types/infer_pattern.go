package types

import "github.com/minihs-lang/minihs/internal/ast"

// InferPattern returns (extended env, sigma, T) for pattern under env,
// per spec §4.3's pattern table. Var bindings extend the returned env
// with a monomorphic scheme; Wildcard and EmptyList produce fresh
// variables; List unifies the tail with List(head-type); Tuple and
// FakeTuple produce Tuple(ts) (matching semantics is identical between
// the two, only their printed form differs — see ast.PatFakeTuple).
func (c *Checker) InferPattern(env Env, pat ast.Pattern) (Env, Substitution, ast.Type, error) {
	switch p := pat.(type) {
	case *ast.PatLiteral:
		return env, Substitution{}, literalType(p.Lit), nil

	case *ast.PatVar:
		v := c.Fresh.Var()
		return env.Extend(p.Name, Mono(v)), Substitution{}, v, nil

	case *ast.PatWildcard:
		return env, Substitution{}, c.Fresh.Var(), nil

	case *ast.PatEmptyList:
		return env, Substitution{}, &ast.List{Elem: c.Fresh.Var()}, nil

	case *ast.PatList:
		env1, sigma1, headT, err := c.InferPattern(env, p.Head)
		if err != nil {
			return nil, nil, nil, err
		}
		env2, sigma2, tailT, err := c.InferPattern(env1, p.Tail)
		if err != nil {
			return nil, nil, nil, err
		}
		sigma := Compose(sigma2, sigma1)
		listT := &ast.List{Elem: SubType(sigma, headT)}
		sigma, err = Unify(sigma, listT, SubType(sigma, tailT))
		if err != nil {
			return nil, nil, nil, err
		}
		return env2, sigma, SubType(sigma, listT), nil

	case *ast.PatTuple:
		return c.inferPatternSeq(env, p.Elems)

	case *ast.PatFakeTuple:
		return c.inferPatternSeq(env, p.Elems)

	default:
		return env, Substitution{}, c.Fresh.Var(), nil
	}
}

func (c *Checker) inferPatternSeq(env Env, pats []ast.Pattern) (Env, Substitution, ast.Type, error) {
	sigma := Substitution{}
	types := make([]ast.Type, len(pats))
	curEnv := env
	for i, p := range pats {
		nextEnv, s, t, err := c.InferPattern(curEnv, p)
		if err != nil {
			return nil, nil, nil, err
		}
		sigma = Compose(s, sigma)
		types[i] = t
		curEnv = SubEnv(sigma, nextEnv)
	}
	for i := range types {
		types[i] = SubType(sigma, types[i])
	}
	return curEnv, sigma, &ast.Tuple{Elems: types}, nil
}
