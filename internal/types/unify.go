package types

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// Unify extends phi so that SubType(result, t1) and SubType(result, t2)
// agree, or fails (spec §4.3's unify rules).
func Unify(phi Substitution, t1, t2 ast.Type) (Substitution, error) {
	if tv, ok := t1.(*ast.TypeVariable); ok {
		return unifyVar(phi, tv.Name, t2)
	}
	if tv, ok := t2.(*ast.TypeVariable); ok {
		return unifyVar(phi, tv.Name, t1)
	}

	switch t1 := t1.(type) {
	case *ast.Function:
		t2, ok := t2.(*ast.Function)
		if !ok {
			return nil, errors.CannotUnify(t1.String(), t2.String())
		}
		phi, err := Unify(phi, t1.From, t2.From)
		if err != nil {
			return nil, err
		}
		return Unify(phi, SubType(phi, t1.To), SubType(phi, t2.To))
	case *ast.Tuple:
		t2, ok := t2.(*ast.Tuple)
		if !ok {
			return nil, errors.CannotUnify(t1.String(), t2.String())
		}
		if len(t1.Elems) != len(t2.Elems) {
			return nil, errors.TupleArityMismatch(len(t1.Elems), len(t2.Elems))
		}
		var err error
		for i := range t1.Elems {
			phi, err = Unify(phi, SubType(phi, t1.Elems[i]), SubType(phi, t2.Elems[i]))
			if err != nil {
				return nil, err
			}
		}
		return phi, nil
	case *ast.List:
		t2, ok := t2.(*ast.List)
		if !ok {
			return nil, errors.CannotUnify(t1.String(), t2.String())
		}
		return Unify(phi, t1.Elem, t2.Elem)
	case *ast.IntType:
		if _, ok := t2.(*ast.IntType); ok {
			return phi, nil
		}
	case *ast.BoolType:
		if _, ok := t2.(*ast.BoolType); ok {
			return phi, nil
		}
	case *ast.CharType:
		if _, ok := t2.(*ast.CharType); ok {
			return phi, nil
		}
	case *ast.StringType:
		if _, ok := t2.(*ast.StringType); ok {
			return phi, nil
		}
	}
	return nil, errors.CannotUnify(t1.String(), t2.String())
}

// unifyVar unifies type variable v with t: if phi already maps v away
// from itself, recurse on the resolved types (the "either side is a
// variable" rule of spec §4.3); otherwise extend phi.
func unifyVar(phi Substitution, v string, t ast.Type) (Substitution, error) {
	phiT := SubType(phi, t)
	phiV := phi.Apply(v)
	if tv, ok := phiV.(*ast.TypeVariable); ok && tv.Name == v {
		return phi.Extend(v, phiT)
	}
	return Unify(phi, phiV, phiT)
}
