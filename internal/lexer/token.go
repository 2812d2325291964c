// Package lexer tokenizes the reference surface syntax named informally
// in spec §6. This package, and internal/parser, are the "external
// collaborator" grammar layer spec §1 deliberately leaves out of the
// core's scope — kept deliberately small, since the engineering weight
// of this repository is the lowering/typechecking/evaluation core.
package lexer

// Kind identifies a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	Ident
	IntLit
	CharLit
	StringLit
	Keyword
	Symbol
)

// Token is one lexical token: its Kind, source Text, line and column
// (1-based) for diagnostics. Col is also what internal/parser uses in
// place of a full layout/off-side rule: a token starting at column 1
// begins a new top-level declaration, which is enough to bound a
// declaration's body without tracking indentation generally.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

var keywords = map[string]bool{
	"type": true, "if": true, "then": true, "else": true,
	"let": true, "in": true, "case": true, "of": true,
	"True": true, "False": true, "mod": true,
}

// symbols lists multi-character operators before any of their
// single-character prefixes, so the greedy scan in Lex picks the
// longest match first.
var symbols = []string{
	"::", "->", "==", "/=", "<=", ">=", "&&", "||", "++", "..",
	"(", ")", "[", "]", ",", "=", "+", "-", "*", "/", "<", ">", ":", "\\", "|", ";",
}
