package eval

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// evalBinOp implements spec §4.4's BinOp rule. Arithmetic and
// comparisons force both operands; equality forces both sides and
// compares structurally over literal leaves (spec §9, §4.1); `++`
// forces and spines out its left list while preserving element thunks,
// then appends the right list; `:` builds a cons of two fresh thunks
// without evaluating either side.
func evalBinOp(env *Env, e *ast.BinOp) (Value, error) {
	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		l, err := evalInt(env, e.Left)
		if err != nil {
			return nil, err
		}
		r, err := evalInt(env, e.Right)
		if err != nil {
			return nil, err
		}
		return &LitValue{Lit: ast.LitInt{Value: arith(e.Op, l, r)}}, nil

	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		l, err := evalInt(env, e.Left)
		if err != nil {
			return nil, err
		}
		r, err := evalInt(env, e.Right)
		if err != nil {
			return nil, err
		}
		return &LitValue{Lit: ast.LitBool{Value: compareInt(e.Op, l, r)}}, nil

	case ast.OpAnd, ast.OpOr:
		l, err := evalBool(env, e.Left)
		if err != nil {
			return nil, err
		}
		r, err := evalBool(env, e.Right)
		if err != nil {
			return nil, err
		}
		if e.Op == ast.OpAnd {
			return &LitValue{Lit: ast.LitBool{Value: l && r}}, nil
		}
		return &LitValue{Lit: ast.LitBool{Value: l || r}}, nil

	case ast.OpEq, ast.OpNeq:
		lv, err := EvalExpr(env, e.Left)
		if err != nil {
			return nil, err
		}
		rv, err := EvalExpr(env, e.Right)
		if err != nil {
			return nil, err
		}
		eq, err := valuesEqual(lv, rv)
		if err != nil {
			return nil, err
		}
		if e.Op == ast.OpNeq {
			eq = !eq
		}
		return &LitValue{Lit: ast.LitBool{Value: eq}}, nil

	case ast.OpAppend:
		lv, err := EvalExpr(env, e.Left)
		if err != nil {
			return nil, err
		}
		rv, err := EvalExpr(env, e.Right)
		if err != nil {
			return nil, err
		}
		return appendLists(lv, rv)

	case ast.OpCons:
		return &ConsValue{Head: NewThunk(e.Left, env), Tail: NewThunk(e.Right, env)}, nil

	default:
		return nil, errors.RuntimeTypeError("operator", "unknown")
	}
}

func arith(op ast.Op, l, r int64) int64 {
	switch op {
	case ast.OpAdd:
		return l + r
	case ast.OpSub:
		return l - r
	case ast.OpMul:
		return l * r
	case ast.OpDiv:
		return l / r
	case ast.OpMod:
		return l % r
	default:
		return 0
	}
}

func compareInt(op ast.Op, l, r int64) bool {
	switch op {
	case ast.OpLt:
		return l < r
	case ast.OpGt:
		return l > r
	case ast.OpLe:
		return l <= r
	case ast.OpGe:
		return l >= r
	default:
		return false
	}
}

// valuesEqual implements the `==`/`/=` semantics of spec §4.1/§9: force
// both sides; literals compare by value; lists and tuples compare
// elementwise (forcing as they go); an unforced function closure (one
// still awaiting parameters) compares unequal to anything, including
// another such closure, since functions have no observable identity
// here.
func valuesEqual(a, b Value) (bool, error) {
	fa, err := Force(a)
	if err != nil {
		return false, err
	}
	fb, err := Force(b)
	if err != nil {
		return false, err
	}
	switch fa := fa.(type) {
	case *LitValue:
		fb, ok := fb.(*LitValue)
		return ok && literalsEqual(fa.Lit, fb.Lit), nil
	case *EmptyListValue:
		_, ok := fb.(*EmptyListValue)
		return ok, nil
	case *ConsValue:
		fbc, ok := fb.(*ConsValue)
		if !ok {
			return false, nil
		}
		headEq, err := valuesEqual(fa.Head, fbc.Head)
		if err != nil || !headEq {
			return false, err
		}
		return valuesEqual(fa.Tail, fbc.Tail)
	case *TupleValue:
		fbt, ok := fb.(*TupleValue)
		if !ok || len(fa.Elems) != len(fbt.Elems) {
			return false, nil
		}
		for i := range fa.Elems {
			eq, err := valuesEqual(fa.Elems[i], fbt.Elems[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

// appendLists implements `++`. Strings are a primitive literal (spec
// §3), not a cons-list of Char, so a LitString left operand concatenates
// directly; otherwise lv is spined out (preserving element thunks, never
// forcing them) until EmptyList, then those elements are consed back
// onto rv.
func appendLists(lv, rv Value) (Value, error) {
	flv, err := Force(lv)
	if err != nil {
		return nil, err
	}
	if sl, ok := flv.(*LitValue); ok {
		ls, ok := sl.Lit.(ast.LitString)
		if !ok {
			return nil, errors.RuntimeTypeError("List or String", "other literal")
		}
		frv, err := Force(rv)
		if err != nil {
			return nil, err
		}
		rlit, ok := frv.(*LitValue)
		if !ok {
			return nil, errors.RuntimeTypeError("String", "other")
		}
		rs, ok := rlit.Lit.(ast.LitString)
		if !ok {
			return nil, errors.RuntimeTypeError("String", "other")
		}
		return &LitValue{Lit: ast.LitString{Value: ls.Value + rs.Value}}, nil
	}

	var elems []Value
	cur := flv
	for {
		fc, err := Force(cur)
		if err != nil {
			return nil, err
		}
		switch c := fc.(type) {
		case *EmptyListValue:
			result := rv
			for i := len(elems) - 1; i >= 0; i-- {
				result = &ConsValue{Head: elems[i], Tail: result}
			}
			return result, nil
		case *ConsValue:
			elems = append(elems, c.Head)
			cur = c.Tail
		default:
			return nil, errors.RuntimeTypeError("List", "other")
		}
	}
}
