package parser

import (
	"fmt"
	"strconv"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/lexer"
)

func parseIntLit(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseExpr parses a full expression at the lowest precedence: `||`.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("||") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: ast.OpOr, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("&&") {
		p.advance()
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: ast.OpAnd, Right: right}
	}
	return left, nil
}

var compareOps = map[string]ast.Op{
	"==": ast.OpEq, "/=": ast.OpNeq,
	"<": ast.OpLt, ">": ast.OpGt, "<=": ast.OpLe, ">=": ast.OpGe,
}

func (p *Parser) parseCompare() (ast.Expr, error) {
	left, err := p.parseConsAppend()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == lexer.Symbol {
		if op, ok := compareOps[p.cur().Text]; ok {
			p.advance()
			right, err := p.parseConsAppend()
			if err != nil {
				return nil, err
			}
			return &ast.BinOp{Left: left, Op: op, Right: right}, nil
		}
	}
	return left, nil
}

// parseConsAppend handles `:` and `++`, both right-associative and at
// the same precedence, above comparisons and below `+`/`-`.
func (p *Parser) parseConsAppend() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(":") {
		p.advance()
		right, err := p.parseConsAppend()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Left: left, Op: ast.OpCons, Right: right}, nil
	}
	if p.isSymbol("++") {
		p.advance()
		right, err := p.parseConsAppend()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Left: left, Op: ast.OpAppend, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("+") || p.isSymbol("-") {
		op := ast.OpAdd
		if p.cur().Text == "-" {
			op = ast.OpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("*") || p.isSymbol("/") || p.isKeyword("mod") {
		op := ast.OpMul
		switch {
		case p.cur().Text == "/":
			op = ast.OpDiv
		case p.cur().Text == "mod":
			op = ast.OpMod
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.isSymbol("-") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Left: &ast.Lit{Lit: ast.LitInt{Value: 0}}, Op: ast.OpSub, Right: operand}, nil
	}
	return p.parseApplication()
}

// parseApplication parses left-associative juxtaposition application:
// `f a b` is Application{Application{f, a}, b}.
func (p *Parser) parseApplication() (ast.Expr, error) {
	fn, err := p.parseAtomExpr()
	if err != nil {
		return nil, err
	}
	for p.startsAtomExpr() {
		arg, err := p.parseAtomExpr()
		if err != nil {
			return nil, err
		}
		fn = &ast.Application{Fun: fn, Arg: arg}
	}
	return fn, nil
}

// startsAtomExpr reports whether the current token can begin another
// application argument. A token sitting in column 1 instead begins the
// next top-level declaration (see the Col doc comment on lexer.Token) and
// must not be swallowed as a trailing argument of the previous one.
func (p *Parser) startsAtomExpr() bool {
	if p.cur().Col == 1 {
		return false
	}
	tok := p.cur()
	switch tok.Kind {
	case lexer.IntLit, lexer.CharLit, lexer.StringLit, lexer.Ident:
		return true
	case lexer.Keyword:
		return tok.Text == "True" || tok.Text == "False"
	}
	return p.isSymbol("(") || p.isSymbol("[") || p.isSymbol("\\")
}

func (p *Parser) parseAtomExpr() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.IntLit:
		p.advance()
		n, err := parseIntLit(tok.Text)
		if err != nil {
			return nil, err
		}
		return &ast.Lit{Lit: ast.LitInt{Value: n}}, nil
	case lexer.CharLit:
		p.advance()
		return &ast.Lit{Lit: ast.LitChar{Value: []rune(tok.Text)[0]}}, nil
	case lexer.StringLit:
		p.advance()
		return &ast.Lit{Lit: ast.LitString{Value: tok.Text}}, nil
	case lexer.Ident:
		p.advance()
		return &ast.Var{Name: tok.Text}, nil
	case lexer.Keyword:
		switch tok.Text {
		case "True":
			p.advance()
			return &ast.Lit{Lit: ast.LitBool{Value: true}}, nil
		case "False":
			p.advance()
			return &ast.Lit{Lit: ast.LitBool{Value: false}}, nil
		case "if":
			return p.parseIf()
		case "let":
			return p.parseLet()
		case "case":
			return p.parseCase()
		}
		return nil, fmt.Errorf("parser: line %d: unexpected keyword %q in expression", tok.Line, tok.Text)
	}
	if p.isSymbol("\\") {
		return p.parseLambda()
	}
	if p.isSymbol("(") {
		return p.parseParenOrTuple()
	}
	if p.isSymbol("[") {
		return p.parseListOrRange()
	}
	return nil, fmt.Errorf("parser: line %d: unexpected token %q in expression", tok.Line, tok.Text)
}

func (p *Parser) parseIf() (ast.Expr, error) {
	if err := p.expectKeyword("if"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	if err := p.expectKeyword("let"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LetExpr{Name: name, Bound: bound, Body: body}, nil
}

// parseCase parses `case e of alt; alt; ...`. There is no layout/
// off-side rule here (spec §1's "external collaborator" grammar is kept
// intentionally small): alternatives after the first must be separated
// by an explicit `;`, since an alternative's body is parsed by the same
// unbounded application/operator grammar as any other expression and so
// cannot otherwise tell where it ends.
func (p *Parser) parseCase() (ast.Expr, error) {
	if err := p.expectKeyword("case"); err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("of"); err != nil {
		return nil, err
	}
	var alts []ast.CaseAlt
	for {
		for p.isSymbol(";") {
			p.advance()
		}
		if p.atEOF() || !p.startsPattern() {
			break
		}
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("->"); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		alts = append(alts, ast.CaseAlt{Pattern: pat, Body: body})
		if !p.isSymbol(";") {
			break
		}
	}
	return &ast.CaseExpr{Scrutinee: scrutinee, Alts: alts}, nil
}

func (p *Parser) startsPattern() bool {
	tok := p.cur()
	switch tok.Kind {
	case lexer.IntLit, lexer.CharLit, lexer.StringLit, lexer.Ident:
		return true
	case lexer.Keyword:
		return tok.Text == "True" || tok.Text == "False"
	}
	return p.isSymbol("(") || p.isSymbol("[")
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	if err := p.expectSymbol("\\"); err != nil {
		return nil, err
	}
	var params []string
	for p.cur().Kind == lexer.Ident {
		name, _ := p.expectIdent()
		params = append(params, name)
	}
	if err := p.expectSymbol("->"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lambda{Param: params[i], Body: body}
	}
	return body, nil
}

func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	if p.isSymbol(")") {
		p.advance()
		return &ast.TupleExpr{}, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(",") {
		elems := []ast.Expr{first}
		for p.isSymbol(",") {
			p.advance()
			next, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, next)
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Elems: elems}, nil
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return first, nil
}

// parseListOrRange parses `[]`, `[e, e, e]`, `[a..]`, `[a..b]`, and
// `[a, b .. c]` (step derived from the first two elements).
func (p *Parser) parseListOrRange() (ast.Expr, error) {
	if err := p.expectSymbol("["); err != nil {
		return nil, err
	}
	if p.isSymbol("]") {
		p.advance()
		return &ast.ListExpr{Elems: ast.List{Empty: true}}, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.isSymbol("..") {
		p.advance()
		var stop ast.Expr
		if !p.isSymbol("]") {
			stop, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		return &ast.RangeExpr{Start: first, Step: &ast.Lit{Lit: ast.LitInt{Value: 1}}, Stop: stop}, nil
	}
	elems := []ast.Expr{first}
	for p.isSymbol(",") {
		p.advance()
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
		if p.isSymbol("..") {
			p.advance()
			var stop ast.Expr
			if !p.isSymbol("]") {
				stop, err = p.parseExpr()
				if err != nil {
					return nil, err
				}
			}
			if err := p.expectSymbol("]"); err != nil {
				return nil, err
			}
			return &ast.RangeExpr{Start: elems[0], Step: &ast.BinOp{Left: elems[1], Op: ast.OpSub, Right: elems[0]}, Stop: stop}, nil
		}
	}
	if err := p.expectSymbol("]"); err != nil {
		return nil, err
	}
	var list ast.List = ast.List{Empty: true}
	for i := len(elems) - 1; i >= 0; i-- {
		tail := list
		list = ast.List{Head: elems[i], Tail: &tail}
	}
	return &ast.ListExpr{Elems: list}, nil
}
