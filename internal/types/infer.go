package types

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// Checker holds the state threaded through a program's type inference:
// the monotonic fresh-name counter (spec §4.3).
type Checker struct {
	Fresh Fresh
}

// NewChecker returns a Checker ready to typecheck a program.
func NewChecker() *Checker {
	return &Checker{}
}

// InferExpr returns (sigma, T) for expr under env, per the table in
// spec §4.3.
func (c *Checker) InferExpr(env Env, expr ast.Expr) (Substitution, ast.Type, error) {
	switch e := expr.(type) {
	case *ast.Lit:
		return Substitution{}, literalType(e.Lit), nil

	case *ast.Var:
		sch, ok := env[e.Name]
		if !ok {
			return nil, nil, errors.UnknownIdentifier(e.Name)
		}
		return Substitution{}, Instantiate(&c.Fresh, sch), nil

	case *ast.Lambda:
		argVar := c.Fresh.Var()
		bodyEnv := env.Extend(e.Param, Mono(argVar))
		sigma, bodyT, err := c.InferExpr(bodyEnv, e.Body)
		if err != nil {
			return nil, nil, err
		}
		return sigma, &ast.Function{From: SubType(sigma, argVar), To: bodyT}, nil

	case *ast.Application:
		sigma1, funT, err := c.InferExpr(env, e.Fun)
		if err != nil {
			return nil, nil, err
		}
		sigma2, argT, err := c.InferExpr(SubEnv(sigma1, env), e.Arg)
		if err != nil {
			return nil, nil, err
		}
		sigma := Compose(sigma2, sigma1)
		result := c.Fresh.Var()
		sigma, err = Unify(sigma, SubType(sigma, funT), &ast.Function{From: SubType(sigma, argT), To: result})
		if err != nil {
			return nil, nil, err
		}
		return sigma, SubType(sigma, result), nil

	case *ast.LetExpr:
		sigma1, boundT, err := c.InferExpr(env, e.Bound)
		if err != nil {
			return nil, nil, err
		}
		env2 := SubEnv(sigma1, env)
		scheme := Generalize(SubType(sigma1, boundT), env2)
		env3 := env2.Extend(e.Name, scheme)
		sigma2, bodyT, err := c.InferExpr(env3, e.Body)
		if err != nil {
			return nil, nil, err
		}
		return Compose(sigma2, sigma1), bodyT, nil

	case *ast.IfExpr:
		sigma, condT, err := c.InferExpr(env, e.Cond)
		if err != nil {
			return nil, nil, err
		}
		sigma, err = Unify(sigma, condT, &ast.BoolType{})
		if err != nil {
			return nil, nil, err
		}
		sigmaThen, thenT, err := c.InferExpr(SubEnv(sigma, env), e.Then)
		if err != nil {
			return nil, nil, err
		}
		sigma = Compose(sigmaThen, sigma)
		sigmaElse, elseT, err := c.InferExpr(SubEnv(sigma, env), e.Else)
		if err != nil {
			return nil, nil, err
		}
		sigma = Compose(sigmaElse, sigma)
		sigma, err = Unify(sigma, SubType(sigma, thenT), SubType(sigma, elseT))
		if err != nil {
			return nil, nil, err
		}
		return sigma, SubType(sigma, thenT), nil

	case *ast.CaseExpr:
		sigma, scrutT, err := c.InferExpr(env, e.Scrutinee)
		if err != nil {
			return nil, nil, err
		}
		var returnT ast.Type
		for _, alt := range e.Alts {
			baseEnv := SubEnv(sigma, env)
			patEnv, patSigma, patT, err := c.InferPattern(baseEnv, alt.Pattern)
			if err != nil {
				return nil, nil, err
			}
			sigma = Compose(patSigma, sigma)
			sigma, err = Unify(sigma, SubType(sigma, scrutT), SubType(sigma, patT))
			if err != nil {
				return nil, nil, err
			}
			bodyEnv := SubEnv(sigma, patEnv)
			bodySigma, bodyT, err := c.InferExpr(bodyEnv, alt.Body)
			if err != nil {
				return nil, nil, err
			}
			sigma = Compose(bodySigma, sigma)
			if returnT != nil {
				sigma, err = Unify(sigma, SubType(sigma, returnT), SubType(sigma, bodyT))
				if err != nil {
					return nil, nil, err
				}
			}
			returnT = bodyT
		}
		return sigma, SubType(sigma, returnT), nil

	case *ast.BinOp:
		return c.inferBinOp(env, e)

	case *ast.TupleExpr:
		sigma := Substitution{}
		types := make([]ast.Type, len(e.Elems))
		curEnv := env
		for i, el := range e.Elems {
			s, t, err := c.InferExpr(curEnv, el)
			if err != nil {
				return nil, nil, err
			}
			sigma = Compose(s, sigma)
			types[i] = t
			curEnv = SubEnv(sigma, env)
		}
		for i := range types {
			types[i] = SubType(sigma, types[i])
		}
		return sigma, &ast.Tuple{Elems: types}, nil

	case *ast.ListExpr:
		return c.inferList(env, e.Elems)

	case *ast.RangeExpr:
		sigma, fromT, err := c.InferExpr(env, e.Start)
		if err != nil {
			return nil, nil, err
		}
		sigma, err = Unify(sigma, fromT, &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		sigmaStep, stepT, err := c.InferExpr(SubEnv(sigma, env), e.Step)
		if err != nil {
			return nil, nil, err
		}
		sigma = Compose(sigmaStep, sigma)
		sigma, err = Unify(sigma, SubType(sigma, stepT), &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		if e.Stop != nil {
			sigmaStop, stopT, err := c.InferExpr(SubEnv(sigma, env), e.Stop)
			if err != nil {
				return nil, nil, err
			}
			sigma = Compose(sigmaStop, sigma)
			sigma, err = Unify(sigma, SubType(sigma, stopT), &ast.IntType{})
			if err != nil {
				return nil, nil, err
			}
		}
		return sigma, &ast.List{Elem: &ast.IntType{}}, nil

	default:
		return nil, nil, errors.New(errors.TYP002, errors.PhaseType, "unhandled expression form", nil)
	}
}

func (c *Checker) inferList(env Env, l ast.List) (Substitution, ast.Type, error) {
	if l.Empty {
		return Substitution{}, &ast.List{Elem: c.Fresh.Var()}, nil
	}
	sigmaHead, headT, err := c.InferExpr(env, l.Head)
	if err != nil {
		return nil, nil, err
	}
	sigmaTail, tailT, err := c.inferList(SubEnv(sigmaHead, env), *l.Tail)
	if err != nil {
		return nil, nil, err
	}
	sigma := Compose(sigmaTail, sigmaHead)
	sigma, err = Unify(sigma, &ast.List{Elem: SubType(sigma, headT)}, SubType(sigma, tailT))
	if err != nil {
		return nil, nil, err
	}
	return sigma, SubType(sigma, &ast.List{Elem: headT}), nil
}

func (c *Checker) inferBinOp(env Env, e *ast.BinOp) (Substitution, ast.Type, error) {
	sigmaL, leftT, err := c.InferExpr(env, e.Left)
	if err != nil {
		return nil, nil, err
	}
	sigmaR, rightT, err := c.InferExpr(SubEnv(sigmaL, env), e.Right)
	if err != nil {
		return nil, nil, err
	}
	sigma := Compose(sigmaR, sigmaL)
	leftT, rightT = SubType(sigma, leftT), SubType(sigma, rightT)

	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		sigma, err = Unify(sigma, leftT, &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		sigma, err = Unify(sigma, SubType(sigma, rightT), &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		return sigma, &ast.IntType{}, nil

	case ast.OpEq, ast.OpNeq:
		sigma, err = Unify(sigma, leftT, rightT)
		if err != nil {
			return nil, nil, err
		}
		return sigma, &ast.BoolType{}, nil

	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		sigma, err = Unify(sigma, leftT, &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		sigma, err = Unify(sigma, SubType(sigma, rightT), &ast.IntType{})
		if err != nil {
			return nil, nil, err
		}
		return sigma, &ast.BoolType{}, nil

	case ast.OpAnd, ast.OpOr:
		sigma, err = Unify(sigma, leftT, &ast.BoolType{})
		if err != nil {
			return nil, nil, err
		}
		sigma, err = Unify(sigma, SubType(sigma, rightT), &ast.BoolType{})
		if err != nil {
			return nil, nil, err
		}
		return sigma, &ast.BoolType{}, nil

	case ast.OpAppend:
		sigma, err = Unify(sigma, leftT, rightT)
		if err != nil {
			return nil, nil, err
		}
		return sigma, SubType(sigma, leftT), nil

	case ast.OpCons:
		listT := &ast.List{Elem: leftT}
		sigma, err = Unify(sigma, listT, rightT)
		if err != nil {
			return nil, nil, err
		}
		return sigma, SubType(sigma, listT), nil

	default:
		return nil, nil, errors.New(errors.TYP002, errors.PhaseType, "unknown operator", nil)
	}
}

func literalType(l ast.Literal) ast.Type {
	switch l.(type) {
	case ast.LitInt:
		return &ast.IntType{}
	case ast.LitBool:
		return &ast.BoolType{}
	case ast.LitChar:
		return &ast.CharType{}
	case ast.LitString:
		return &ast.StringType{}
	default:
		return &ast.IntType{}
	}
}
