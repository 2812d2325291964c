// Package types implements Hindley-Milner type inference (spec §4.3):
// substitution, unification, let-generalization, and per-expression,
// per-pattern, and per-declaration inference rules.
package types

import (
	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/errors"
)

// Substitution is a finite mapping from type-variable name to Type.
type Substitution map[string]ast.Type

// Apply returns the substitution's binding for v, or TypeVariable(v)
// itself if unmapped.
func (s Substitution) Apply(v string) ast.Type {
	if t, ok := s[v]; ok {
		return t
	}
	return &ast.TypeVariable{Name: v}
}

// Extend guards against adding v -> TypeVariable(v) (a no-op) and runs
// the occurs check: if v appears free in t, extending would create an
// infinite type.
func (s Substitution) Extend(v string, t ast.Type) (Substitution, error) {
	if tv, ok := t.(*ast.TypeVariable); ok && tv.Name == v {
		return s, nil
	}
	if containsVar(t, v) {
		return nil, errors.OccursCheck(v, t.String())
	}
	next := make(Substitution, len(s)+1)
	for k, v2 := range s {
		next[k] = v2
	}
	next[v] = t
	return next, nil
}

// Compose returns a substitution mapping x to left(right(x)): apply
// left to every type in right's range, then add left's own entries
// (left wins on key collisions).
func Compose(left, right Substitution) Substitution {
	result := make(Substitution, len(left)+len(right))
	for k, t := range right {
		result[k] = SubType(left, t)
	}
	for k, t := range left {
		result[k] = t
	}
	return result
}

// Exclude removes entries keyed by names in vars, used when substituting
// the body of a type scheme (its own quantified vars must not be
// captured by an outer substitution).
func (s Substitution) Exclude(vars map[string]bool) Substitution {
	result := make(Substitution, len(s))
	for k, t := range s {
		if !vars[k] {
			result[k] = t
		}
	}
	return result
}

// SubType walks t, applying s to every TypeVariable, following chains
// to a fixed point (a -> b, b -> Int resolves to Int).
func SubType(s Substitution, t ast.Type) ast.Type {
	switch t := t.(type) {
	case *ast.TypeVariable:
		next := s.Apply(t.Name)
		if nv, ok := next.(*ast.TypeVariable); ok && nv.Name == t.Name {
			return next
		}
		return SubType(s, next)
	case *ast.Function:
		return &ast.Function{From: SubType(s, t.From), To: SubType(s, t.To)}
	case *ast.Tuple:
		elems := make([]ast.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = SubType(s, e)
		}
		return &ast.Tuple{Elems: elems}
	case *ast.List:
		return &ast.List{Elem: SubType(s, t.Elem)}
	default:
		return t
	}
}

// containsVar reports whether type variable name occurs free in t.
func containsVar(t ast.Type, name string) bool {
	for _, v := range TVarsIn(t) {
		if v == name {
			return true
		}
	}
	return false
}

// TVarsIn returns the (possibly repeated) type variable names free in t.
func TVarsIn(t ast.Type) []string {
	switch t := t.(type) {
	case *ast.TypeVariable:
		return []string{t.Name}
	case *ast.Function:
		return append(TVarsIn(t.From), TVarsIn(t.To)...)
	case *ast.Tuple:
		var out []string
		for _, e := range t.Elems {
			out = append(out, TVarsIn(e)...)
		}
		return out
	case *ast.List:
		return TVarsIn(t.Elem)
	default:
		return nil
	}
}
