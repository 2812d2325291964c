package types

import "github.com/minihs-lang/minihs/internal/ast"

// State is the typechecker's running state across a program's
// declarations: the typing environment, the accumulated substitution
// (aliases included), and the fresh-name checker.
type State struct {
	Env   Env
	Subst Substitution
	*Checker
}

// NewState returns the initial state for a fresh program: empty
// environment, identity substitution.
func NewState() *State {
	return &State{Env: NewBuiltinEnv(), Subst: Substitution{}, Checker: NewChecker()}
}

// CheckProgram typechecks every declaration in order, threading state
// (substitution and environment) through, per spec §2's control flow:
// typecheck all declarations first, rejecting the whole run on the
// first error.
func CheckProgram(prog *ast.Program) error {
	st := NewState()
	for _, d := range prog.Decls {
		if err := st.CheckDecl(d); err != nil {
			return err
		}
	}
	return nil
}

// CheckDecl typechecks one declaration, mutating st in place.
func (st *State) CheckDecl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.TypeAlias:
		sub, err := st.Subst.Extend(d.Name, d.Type)
		if err != nil {
			return err
		}
		st.Subst = sub
		return nil

	case *ast.TypeSignature:
		schematic := schematicVars(d.Type)
		prior, had := st.Env[d.Name]
		st.Env = st.Env.Extend(d.Name, Scheme{Quantified: schematic, Body: d.Type})
		if !had {
			return nil
		}
		freshLeft := renameScheme(&st.Fresh, Scheme{Quantified: schematic, Body: d.Type})
		freshRight := renameScheme(&st.Fresh, prior)
		sub, err := Unify(st.Subst, freshLeft, freshRight)
		if err != nil {
			return err
		}
		st.Subst = sub
		return nil

	case *ast.FunDecl:
		return st.checkFunDecl(d)

	case *ast.SExpr:
		_, _, err := st.InferExpr(st.Env, d.Expr)
		return err

	default:
		return nil
	}
}

// checkFunDecl implements spec §4.3's FunDecl rule: if the name has no
// prior binding, seed it with a fresh type variable so recursive calls
// typecheck; bind each parameter to a fresh monomorphic variable; infer
// the body; build the curried function type by right-folding the
// parameter variables; unify against any pre-existing binding; and
// generalize the result against the outer environment.
func (st *State) checkFunDecl(d *ast.FunDecl) error {
	if _, ok := st.Env[d.Name]; !ok {
		st.Env = st.Env.Extend(d.Name, Mono(st.Fresh.Var()))
	}

	paramVars := make([]*ast.TypeVariable, len(d.Params))
	bodyEnv := st.Env
	for i, p := range d.Params {
		paramVars[i] = st.Fresh.Var()
		bodyEnv = bodyEnv.Extend(p, Mono(paramVars[i]))
	}

	sigma, bodyT, err := st.InferExpr(bodyEnv, d.Body)
	if err != nil {
		return err
	}
	st.Subst = Compose(sigma, st.Subst)

	funT := SubType(st.Subst, bodyT)
	for i := len(paramVars) - 1; i >= 0; i-- {
		funT = &ast.Function{From: SubType(st.Subst, paramVars[i]), To: funT}
	}

	// A binding for d.Name is always present by now — either the
	// placeholder seeded above, or a prior TypeSignature/FunDecl scheme —
	// so unifying against it both closes the loop for recursive calls
	// (made through the placeholder) and checks the body against an
	// explicit signature when one was given.
	prior := st.Env[d.Name]
	sub, err := Unify(st.Subst, funT, prior.Body)
	if err != nil {
		return err
	}
	st.Subst = sub

	outerEnv := SubEnv(st.Subst, removeKey(st.Env, d.Name))
	st.Env = outerEnv.Extend(d.Name, Generalize(SubType(st.Subst, funT), outerEnv))
	return nil
}

func removeKey(env Env, name string) Env {
	next := make(Env, len(env))
	for k, v := range env {
		if k != name {
			next[k] = v
		}
	}
	return next
}

// schematicVars returns the names in a type signature whose identifiers
// begin with a lowercase letter — spec §6's rule for which names in a
// signature are schematic type variables versus built-in type names.
func schematicVars(t ast.Type) map[string]bool {
	out := map[string]bool{}
	for _, v := range TVarsIn(t) {
		if v != "" && v[0] >= 'a' && v[0] <= 'z' {
			out[v] = true
		}
	}
	return out
}

// renameScheme instantiates a scheme's quantified variables to fresh
// names, used to compare two independently-declared type signatures for
// the same name without capturing each other's variable names.
func renameScheme(f *Fresh, sch Scheme) ast.Type {
	return Instantiate(f, sch)
}
