// Package eval implements the lazy, closure-based evaluator of spec §4.4:
// a shared function table, per-call local frames, curried closures that
// double as thunks, cons-cell lists, and on-demand pattern matching.
package eval

import (
	"strconv"
	"strings"

	"github.com/minihs-lang/minihs/internal/ast"
)

// Value is a runtime value.
type Value interface {
	isValue()
}

// LitValue wraps a literal constant.
type LitValue struct{ Lit ast.Literal }

// TupleValue is a fixed-width tuple of (generally deferred) components.
type TupleValue struct{ Elems []Value }

// EmptyListValue is the empty list.
type EmptyListValue struct{}

// ConsValue is a non-empty list cell: Head and Tail are independently
// forceable (typically Closure thunks).
type ConsValue struct {
	Head Value
	Tail Value
}

// Closure represents either a thunk (Params empty) or a curried
// function awaiting len(Params) more arguments. Cached/Forced implement
// the update-on-force memoization spec §9 recommends: once a
// zero-parameter Closure is forced, its result is cached so re-forcing
// (e.g. a shared thunk referenced from two places, as in naive
// recursive fib) does not redo the work.
type Closure struct {
	Body   ast.Expr
	Params []string
	Env    *Env

	forced bool
	cached Value
}

func (*LitValue) isValue()       {}
func (*TupleValue) isValue()     {}
func (*EmptyListValue) isValue() {}
func (*ConsValue) isValue()      {}
func (*Closure) isValue()        {}

// NewThunk wraps expr/env as a suspended, zero-parameter Closure.
func NewThunk(expr ast.Expr, env *Env) *Closure {
	return &Closure{Body: expr, Env: env}
}

// IsThunk reports whether c has no pending parameters (a suspension, as
// opposed to a curried function still awaiting arguments).
func (c *Closure) IsThunk() bool { return len(c.Params) == 0 }

// String renders v the way the driver prints forced top-level results
// (spec §6): integers decimal, booleans True/False, chars quoted,
// strings quoted, tuples "(v1, v2, ...)", lists "[v1, v2, ...]", and
// closures as an opaque placeholder. Assumes v has already been forced
// as deeply as the caller needs (see Force in force.go); it does not
// force anything itself.
func String(v Value) string {
	switch v := v.(type) {
	case *LitValue:
		return litString(v.Lit)
	case *TupleValue:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = String(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *EmptyListValue:
		return "[]"
	case *ConsValue:
		var parts []string
		cur := Value(v)
		for {
			switch c := cur.(type) {
			case *EmptyListValue:
				return "[" + strings.Join(parts, ", ") + "]"
			case *ConsValue:
				parts = append(parts, String(c.Head))
				cur = c.Tail
			default:
				// An unforced tail here means the caller did not fully
				// force the spine; render what we have rather than panic.
				parts = append(parts, "...")
				return "[" + strings.Join(parts, ", ") + "]"
			}
		}
	case *Closure:
		return "<function>"
	default:
		return "<unknown>"
	}
}

func litString(l ast.Literal) string {
	switch l := l.(type) {
	case ast.LitInt:
		return strconv.FormatInt(l.Value, 10)
	case ast.LitBool:
		if l.Value {
			return "True"
		}
		return "False"
	case ast.LitChar:
		return "'" + string(l.Value) + "'"
	case ast.LitString:
		return "\"" + l.Value + "\""
	default:
		return "?"
	}
}
