package ast

import "encoding/json"

// Dump renders a Program as deterministic indented JSON, for golden
// snapshot tests of the parser/lowering pipeline. It walks the AST
// through plain Go values rather than relying on json tags on the
// interface-typed fields, since Type/Pattern/Expr/Decl/Literal carry no
// exported struct fields beyond their own variant data.
func Dump(p *Program) string {
	data, err := json.MarshalIndent(dumpProgram(p), "", "  ")
	if err != nil {
		return "error: " + err.Error()
	}
	return string(data)
}

func dumpProgram(p *Program) any {
	if p == nil {
		return nil
	}
	decls := make([]any, len(p.Decls))
	for i, d := range p.Decls {
		decls[i] = dumpDecl(d)
	}
	return map[string]any{"decls": decls}
}

func dumpDecl(d Decl) any {
	switch d := d.(type) {
	case *TypeAlias:
		return map[string]any{"node": "TypeAlias", "name": d.Name, "type": d.Type.String()}
	case *TypeSignature:
		return map[string]any{"node": "TypeSignature", "name": d.Name, "type": d.Type.String()}
	case *FunDecl:
		return map[string]any{"node": "FunDecl", "name": d.Name, "params": d.Params, "body": dumpExpr(d.Body)}
	case *SExpr:
		return map[string]any{"node": "SExpr", "expr": dumpExpr(d.Expr)}
	default:
		return map[string]any{"node": "unknown"}
	}
}

func dumpExpr(e Expr) any {
	switch e := e.(type) {
	case *Var:
		return map[string]any{"node": "Var", "name": e.Name}
	case *Lit:
		return map[string]any{"node": "Lit", "value": e.Lit.String()}
	case *Application:
		return map[string]any{"node": "Application", "fun": dumpExpr(e.Fun), "arg": dumpExpr(e.Arg)}
	case *Lambda:
		return map[string]any{"node": "Lambda", "param": e.Param, "body": dumpExpr(e.Body)}
	case *LetExpr:
		return map[string]any{"node": "Let", "name": e.Name, "bound": dumpExpr(e.Bound), "body": dumpExpr(e.Body)}
	case *IfExpr:
		return map[string]any{"node": "If", "cond": dumpExpr(e.Cond), "then": dumpExpr(e.Then), "else": dumpExpr(e.Else)}
	case *CaseExpr:
		alts := make([]any, len(e.Alts))
		for i, a := range e.Alts {
			alts[i] = map[string]any{"pattern": a.Pattern.String(), "body": dumpExpr(a.Body)}
		}
		return map[string]any{"node": "Case", "scrutinee": dumpExpr(e.Scrutinee), "alts": alts}
	case *BinOp:
		return map[string]any{"node": "BinOp", "op": e.Op.String(), "left": dumpExpr(e.Left), "right": dumpExpr(e.Right)}
	case *TupleExpr:
		elems := make([]any, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = dumpExpr(el)
		}
		return map[string]any{"node": "Tuple", "elems": elems}
	case *ListExpr:
		return map[string]any{"node": "List", "value": e.Elems.String()}
	case *RangeExpr:
		return map[string]any{"node": "Range", "value": e.String()}
	default:
		return map[string]any{"node": "unknown"}
	}
}
