package types

import (
	"strconv"

	"github.com/minihs-lang/minihs/internal/ast"
)

// Scheme is a quantified type: the set of quantified variable names
// together with the body type they range over.
type Scheme struct {
	Quantified map[string]bool
	Body       ast.Type
}

// Mono wraps t as an unquantified (monomorphic) scheme.
func Mono(t ast.Type) Scheme {
	return Scheme{Quantified: nil, Body: t}
}

// Env is a typing environment: identifier name to type scheme. Env
// values are immutable snapshots (Extend returns a new map) so that
// typechecking one branch never observes bindings introduced in another.
type Env map[string]Scheme

// Extend returns a copy of e with name bound to scheme.
func (e Env) Extend(name string, s Scheme) Env {
	next := make(Env, len(e)+1)
	for k, v := range e {
		next[k] = v
	}
	next[name] = s
	return next
}

// SubEnv applies a substitution to every scheme's body in e, excluding
// each scheme's own quantified variables from the substitution.
func SubEnv(s Substitution, e Env) Env {
	next := make(Env, len(e))
	for k, sch := range e {
		next[k] = Scheme{Quantified: sch.Quantified, Body: SubType(s.Exclude(sch.Quantified), sch.Body)}
	}
	return next
}

// Unknowns returns the type variables that appear free in some
// non-quantified position across every scheme in e.
func Unknowns(e Env) map[string]bool {
	out := map[string]bool{}
	for _, sch := range e {
		for _, v := range TVarsIn(sch.Body) {
			if !sch.Quantified[v] {
				out[v] = true
			}
		}
	}
	return out
}

// ScvsGivenEnv computes the schematic variables of t relative to env:
// the free type variables of t that are not "unknown" in env (spec
// §4.3's generalization rule). These are exactly the variables a `let`
// is free to quantify over.
func ScvsGivenEnv(t ast.Type, env Env) map[string]bool {
	unknown := Unknowns(env)
	out := map[string]bool{}
	for _, v := range TVarsIn(t) {
		if !unknown[v] {
			out[v] = true
		}
	}
	return out
}

// Fresh is a monotonic counter producing globally unique type-variable
// names, threaded explicitly through inference rather than kept as
// global mutable state.
type Fresh struct{ n int }

// Name returns a new, unique type-variable name.
func (f *Fresh) Name() string {
	f.n++
	return "t" + strconv.Itoa(f.n)
}

// Var returns a fresh TypeVariable.
func (f *Fresh) Var() *ast.TypeVariable {
	return &ast.TypeVariable{Name: f.Name()}
}

// Instantiate allocates a fresh name for each of the scheme's quantified
// variables and applies the resulting substitution to its body.
func Instantiate(f *Fresh, sch Scheme) ast.Type {
	if len(sch.Quantified) == 0 {
		return sch.Body
	}
	sub := make(Substitution, len(sch.Quantified))
	for v := range sch.Quantified {
		sub[v] = f.Var()
	}
	return SubType(sub, sch.Body)
}

// Generalize builds a scheme over t, quantifying exactly the schematic
// variables relative to env (Milner's let-generalization, spec §4.3).
func Generalize(t ast.Type, env Env) Scheme {
	return Scheme{Quantified: ScvsGivenEnv(t, env), Body: t}
}

// NewBuiltinEnv is the typing environment at the start of a program:
// empty, since minihs has no builtin functions — only primitive types
// and operators, both handled directly by the inference rules rather
// than by environment bindings. `Integer` is recognized syntactically
// as a spelling of Int by the lexer/parser (spec §6), not via an alias
// substitution, so no seeding is needed here.
func NewBuiltinEnv() Env {
	return Env{}
}
