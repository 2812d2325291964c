// Package errors provides centralized, structured error reporting for
// minihs. Every phase (lowering, typechecking, evaluation) returns a
// *Report instead of a bare error, so diagnostics stay machine-readable
// end to end.
package errors

// Error code constants, organized by phase. These mirror the three
// error families of the language: lowering (LOW###), typing (TYP###),
// and runtime (RUN###).
const (
	// ============================================================
	// Lowering errors (LOW###)
	// ============================================================

	// LOW001 indicates two zero-parameter equations define the same name.
	LOW001 = "LOW001"

	// LOW002 indicates equations for the same name disagree on arity.
	LOW002 = "LOW002"

	// ============================================================
	// Typing errors (TYP###)
	// ============================================================

	// TYP001 indicates a reference to an identifier with no binding.
	TYP001 = "TYP001"

	// TYP002 indicates two concrete types could not be unified.
	TYP002 = "TYP002"

	// TYP003 indicates an occurs-check failure (infinite type).
	TYP003 = "TYP003"

	// TYP004 indicates a tuple unification across mismatched arities.
	TYP004 = "TYP004"

	// ============================================================
	// Runtime errors (RUN###)
	// ============================================================

	// RUN001 indicates a variable had no binding at evaluation time.
	RUN001 = "RUN001"

	// RUN002 indicates no case alternative matched the scrutinee.
	RUN002 = "RUN002"

	// RUN003 indicates a value had the wrong runtime shape for the
	// demanded operation (defensive check; typechecking should prevent
	// this from firing on a well-typed program).
	RUN003 = "RUN003"

	// RUN004 indicates an application whose function position did not
	// evaluate to a function still awaiting an argument.
	RUN004 = "RUN004"
)

// Phase names used in Report.Phase.
const (
	PhaseLower = "lower"
	PhaseType  = "typecheck"
	PhaseEval  = "eval"
)
