package ast

import (
	"strconv"
	"strings"
)

// String renders a Type the way a user would write it: `a -> b`,
// `(a, b)`, `[a]`, or a primitive name.
func (t *TypeVariable) String() string { return t.Name }
func (t *Function) String() string {
	from := t.From.String()
	if _, ok := t.From.(*Function); ok {
		from = "(" + from + ")"
	}
	return from + " -> " + t.To.String()
}
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *List) String() string   { return "[" + t.Elem.String() + "]" }
func (*IntType) String() string  { return "Int" }
func (*BoolType) String() string { return "Bool" }
func (*CharType) String() string { return "Char" }
func (*StringType) String() string {
	return "String"
}

func (l LitInt) String() string { return strconv.FormatInt(l.Value, 10) }
func (l LitBool) String() string {
	if l.Value {
		return "True"
	}
	return "False"
}
func (l LitChar) String() string   { return "'" + string(l.Value) + "'" }
func (l LitString) String() string { return "\"" + l.Value + "\"" }

func (p *PatLiteral) String() string   { return p.Lit.String() }
func (p *PatVar) String() string       { return p.Name }
func (*PatWildcard) String() string    { return "_" }
func (*PatEmptyList) String() string   { return "[]" }
func (p *PatList) String() string      { return "(" + p.Head.String() + ":" + p.Tail.String() + ")" }
func (p *PatTuple) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (p *PatFakeTuple) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func (e *Var) String() string { return e.Name }
func (e *Lit) String() string { return e.Lit.String() }
func (e *Application) String() string {
	return e.Fun.String() + " " + e.Arg.String()
}
func (e *Lambda) String() string {
	return "\\" + e.Param + " -> " + e.Body.String()
}
func (e *LetExpr) String() string {
	return "let " + e.Name + " = " + e.Bound.String() + " in " + e.Body.String()
}
func (e *IfExpr) String() string {
	return "if " + e.Cond.String() + " then " + e.Then.String() + " else " + e.Else.String()
}
func (e *CaseExpr) String() string {
	var sb strings.Builder
	sb.WriteString("case ")
	sb.WriteString(e.Scrutinee.String())
	sb.WriteString(" of { ")
	for i, alt := range e.Alts {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(alt.Pattern.String())
		sb.WriteString(" -> ")
		sb.WriteString(alt.Body.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
func (e *BinOp) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}
func (e *TupleExpr) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (e *ListExpr) String() string { return e.Elems.String() }
func (e *RangeExpr) String() string {
	s := "[" + e.Start.String() + ", .." + e.Step.String()
	if e.Stop != nil {
		s += ".." + e.Stop.String()
	}
	return s + "]"
}

func (l List) String() string {
	if l.Empty {
		return "[]"
	}
	var parts []string
	cur := &l
	for !cur.Empty {
		parts = append(parts, cur.Head.String())
		cur = cur.Tail
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d *TypeAlias) String() string     { return "type " + d.Name + " = " + d.Type.String() }
func (d *TypeSignature) String() string { return d.Name + " :: " + d.Type.String() }
func (d *FunDecl) String() string {
	return d.Name + " " + strings.Join(d.Params, " ") + " = " + d.Body.String()
}
func (d *SExpr) String() string { return d.Expr.String() }
