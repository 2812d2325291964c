package eval

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// EvalExpr evaluates expr to a Value under env, per the rules of
// spec §4.4. It returns as soon as it reaches a Literal, Closure,
// Tuple, EmptyList, or Cons WHNF — sub-components of Tuple/Cons/List
// stay as deferred thunks, consistent with non-strict evaluation.
func EvalExpr(env *Env, expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Lit:
		return &LitValue{Lit: e.Lit}, nil

	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, errors.VariableNotFound(e.Name)
		}
		if c, ok := v.(*Closure); ok && c.IsThunk() {
			return Force(c)
		}
		return v, nil

	case *ast.TupleExpr:
		elems := make([]Value, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = NewThunk(el, env)
		}
		return &TupleValue{Elems: elems}, nil

	case *ast.IfExpr:
		cond, err := evalBool(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if cond {
			return EvalExpr(env, e.Then)
		}
		return EvalExpr(env, e.Else)

	case *ast.Lambda:
		return &Closure{Body: e.Body, Params: []string{e.Param}, Env: env}, nil

	case *ast.LetExpr:
		// Non-recursive: the bound expression's thunk captures env, not
		// the extended environment, matching internal/types/infer.go's
		// LetExpr rule which infers the bound expression's type in the
		// un-extended environment.
		thunk := NewThunk(e.Bound, env)
		return EvalExpr(env.Extend(e.Name, thunk), e.Body)

	case *ast.Application:
		return evalApplication(env, e)

	case *ast.CaseExpr:
		body, caseEnv, err := matchCase(env, e)
		if err != nil {
			return nil, err
		}
		return EvalExpr(caseEnv, body)

	case *ast.ListExpr:
		return evalList(env, e.Elems), nil

	case *ast.RangeExpr:
		return evalRange(env, e)

	case *ast.BinOp:
		return evalBinOp(env, e)

	default:
		return nil, errors.New(errors.RUN003, errors.PhaseEval, "unhandled expression form", nil)
	}
}

// evalApplication implements spec §4.4's Application rule: evaluate the
// function position (must be a closure with pending parameters), bind
// its next parameter to a deferred thunk of the argument, and either
// return a shorter curried closure or, once fully applied, evaluate the
// body.
func evalApplication(env *Env, e *ast.Application) (Value, error) {
	fv, err := EvalExpr(env, e.Fun)
	if err != nil {
		return nil, err
	}
	closure, ok := fv.(*Closure)
	if !ok || closure.IsThunk() {
		return nil, errors.MissingArgument()
	}
	argThunk := NewThunk(e.Arg, env)
	nextParam := closure.Params[0]
	rest := closure.Params[1:]
	newEnv := closure.Env.Extend(nextParam, argThunk)
	if len(rest) == 0 {
		return EvalExpr(newEnv, closure.Body)
	}
	return &Closure{Body: closure.Body, Params: rest, Env: newEnv}, nil
}

func evalList(env *Env, l ast.List) Value {
	if l.Empty {
		return &EmptyListValue{}
	}
	return &ConsValue{
		Head: NewThunk(l.Head, env),
		Tail: NewThunk(&ast.ListExpr{Elems: *l.Tail}, env),
	}
}

// evalRange implements spec §4.4's Range rule, supporting unbounded
// generation: the tail is a thunk re-evaluating Range(start+step, step,
// stop) only when demanded.
func evalRange(env *Env, e *ast.RangeExpr) (Value, error) {
	start, err := evalInt(env, e.Start)
	if err != nil {
		return nil, err
	}
	step, err := evalInt(env, e.Step)
	if err != nil {
		return nil, err
	}
	if e.Stop != nil {
		stop, err := evalInt(env, e.Stop)
		if err != nil {
			return nil, err
		}
		if start > stop {
			return &EmptyListValue{}, nil
		}
	}
	nextRange := &ast.RangeExpr{
		Start: &ast.Lit{Lit: ast.LitInt{Value: start + step}},
		Step:  &ast.Lit{Lit: ast.LitInt{Value: step}},
		Stop:  e.Stop,
	}
	return &ConsValue{
		Head: &LitValue{Lit: ast.LitInt{Value: start}},
		Tail: NewThunk(nextRange, env),
	}, nil
}

func evalInt(env *Env, expr ast.Expr) (int64, error) {
	v, err := EvalExpr(env, expr)
	if err != nil {
		return 0, err
	}
	v, err = Force(v)
	if err != nil {
		return 0, err
	}
	if lit, ok := v.(*LitValue); ok {
		if i, ok := lit.Lit.(ast.LitInt); ok {
			return i.Value, nil
		}
	}
	return 0, errors.RuntimeTypeError("Int", "other")
}

func evalBool(env *Env, expr ast.Expr) (bool, error) {
	v, err := EvalExpr(env, expr)
	if err != nil {
		return false, err
	}
	v, err = Force(v)
	if err != nil {
		return false, err
	}
	if lit, ok := v.(*LitValue); ok {
		if b, ok := lit.Lit.(ast.LitBool); ok {
			return b.Value, nil
		}
	}
	return false, errors.RuntimeTypeError("Bool", "other")
}
