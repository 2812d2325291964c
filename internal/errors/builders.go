package errors

// DuplicateDefinition reports two zero-parameter equations for the same name.
func DuplicateDefinition(name string) error {
	return New(LOW001, PhaseLower, "multiple definitions of '"+name+"'", map[string]any{"name": name})
}

// ArityMismatch reports equations for the same name with differing arity.
func ArityMismatch(name string) error {
	return New(LOW002, PhaseLower, "equations for '"+name+"' disagree on the number of arguments", map[string]any{"name": name})
}

// UnknownIdentifier reports a reference with no binding in the typing environment.
func UnknownIdentifier(name string) error {
	return New(TYP001, PhaseType, "unknown identifier '"+name+"'", map[string]any{"name": name})
}

// CannotUnify reports two concrete types that do not unify.
func CannotUnify(t1, t2 string) error {
	return New(TYP002, PhaseType, "cannot unify '"+t1+"' with '"+t2+"'", map[string]any{"left": t1, "right": t2})
}

// OccursCheck reports an attempt to unify a variable with a type containing it.
func OccursCheck(tvar, t string) error {
	return New(TYP003, PhaseType, "occurs check failed: '"+tvar+"' occurs in '"+t+"'", map[string]any{"var": tvar, "type": t})
}

// TupleArityMismatch reports tuple types of differing width.
func TupleArityMismatch(n1, n2 int) error {
	return New(TYP004, PhaseType, "cannot unify tuples of different arity", map[string]any{"left_arity": n1, "right_arity": n2})
}

// VariableNotFound reports a missing binding at evaluation time.
func VariableNotFound(name string) error {
	return New(RUN001, PhaseEval, "variable not found: '"+name+"'", map[string]any{"name": name})
}

// NonExhaustivePattern reports a case expression where no alternative matched.
func NonExhaustivePattern() error {
	return New(RUN002, PhaseEval, "non-exhaustive pattern match", nil)
}

// RuntimeTypeError reports a value with the wrong runtime shape for a
// demanded operation. Should not occur on a well-typed program.
func RuntimeTypeError(expected, got string) error {
	return New(RUN003, PhaseEval, "expected "+expected+", found "+got, map[string]any{"expected": expected, "found": got})
}

// MissingArgument reports an application whose function position did not
// evaluate to a function still awaiting an argument.
func MissingArgument() error {
	return New(RUN004, PhaseEval, "missing argument: applied value is not a function awaiting an argument", nil)
}
