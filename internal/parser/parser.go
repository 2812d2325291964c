// Package parser is a recursive-descent parser over internal/lexer's
// token stream, producing the raw per-equation ast.Decl/ast.Equation
// values that internal/lower.LowerProgram merges into a finished
// ast.Program.
package parser

import (
	"fmt"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/lexer"
	"github.com/minihs-lang/minihs/internal/lower"
)

// Parser holds the token stream and current position.
type Parser struct {
	toks []lexer.Token
	pos  int
}

// New returns a Parser over toks, as produced by lexer.Lex.
func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseRaw lexes and parses src into a flat, un-lowered declaration
// list, for callers (such as the REPL) that need to lower each line
// against a fresh-name counter shared across an entire session.
func ParseRaw(src string) ([]lower.RawDecl, error) {
	toks, err := lexer.New(src).Lex()
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// ParseSource lexes and parses src in one step, returning a lowered,
// ready-to-check ast.Program.
func ParseSource(src string) (*ast.Program, error) {
	decls, err := ParseRaw(src)
	if err != nil {
		return nil, err
	}
	return lower.LowerProgram(&lower.Counter{}, decls)
}

func (p *Parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *Parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.EOF }

func (p *Parser) isSymbol(s string) bool {
	return p.cur().Kind == lexer.Symbol && p.cur().Text == s
}

func (p *Parser) isKeyword(k string) bool {
	return p.cur().Kind == lexer.Keyword && p.cur().Text == k
}

func (p *Parser) expectSymbol(s string) error {
	if !p.isSymbol(s) {
		return fmt.Errorf("parser: line %d: expected %q, got %q", p.cur().Line, s, p.cur().Text)
	}
	p.advance()
	return nil
}

func (p *Parser) expectKeyword(k string) error {
	if !p.isKeyword(k) {
		return fmt.Errorf("parser: line %d: expected keyword %q, got %q", p.cur().Line, k, p.cur().Text)
	}
	p.advance()
	return nil
}

func (p *Parser) expectIdent() (string, error) {
	if p.cur().Kind != lexer.Ident {
		return "", fmt.Errorf("parser: line %d: expected identifier, got %q", p.cur().Line, p.cur().Text)
	}
	t := p.advance()
	return t.Text, nil
}

// ParseProgram parses a whole source file into a flat, un-lowered
// declaration list: a mix of ast.Equation (one per `name pats = body`
// line) and finished ast.Decl values (type aliases, signatures, bare
// expression statements).
func (p *Parser) ParseProgram() ([]lower.RawDecl, error) {
	var decls []lower.RawDecl
	for !p.atEOF() {
		for p.isSymbol(";") {
			p.advance()
		}
		if p.atEOF() {
			break
		}
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		for p.isSymbol(";") {
			p.advance()
		}
	}
	return decls, nil
}

func (p *Parser) parseDecl() (lower.RawDecl, error) {
	if p.isKeyword("type") {
		return p.parseTypeAlias()
	}
	if p.cur().Kind == lexer.Ident {
		save := p.pos
		name, _ := p.expectIdent()
		if p.isSymbol("::") {
			p.advance()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &ast.TypeSignature{Name: name, Type: typ}, nil
		}
		p.pos = save
		if eq, ok, err := p.tryParseEquation(); ok || err != nil {
			return eq, err
		}
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.SExpr{Expr: expr}, nil
}

func (p *Parser) parseTypeAlias() (ast.Decl, error) {
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeAlias{Name: name, Type: typ}, nil
}

// tryParseEquation attempts `name pattern* = expr`. It returns ok=false
// without error when the input at the saved position is not shaped like
// an equation, so the caller can fall back to parsing a bare expression.
func (p *Parser) tryParseEquation() (ast.Equation, bool, error) {
	save := p.pos
	name, err := p.expectIdent()
	if err != nil {
		p.pos = save
		return ast.Equation{}, false, nil
	}
	var pats []ast.Pattern
	for !p.isSymbol("=") {
		if p.atEOF() || p.isSymbol(";") {
			p.pos = save
			return ast.Equation{}, false, nil
		}
		pat, err := p.parseAtomPattern()
		if err != nil {
			p.pos = save
			return ast.Equation{}, false, nil
		}
		pats = append(pats, pat)
	}
	p.advance() // consume '='
	body, err := p.parseExpr()
	if err != nil {
		return ast.Equation{}, false, err
	}
	return ast.Equation{Name: name, Patterns: pats, Body: body}, true, nil
}

// parseType parses a type expression: function arrows are right-
// associative and bind loosest.
func (p *Parser) parseType() (ast.Type, error) {
	left, err := p.parseAtomType()
	if err != nil {
		return nil, err
	}
	if p.isSymbol("->") {
		p.advance()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Function{From: left, To: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAtomType() (ast.Type, error) {
	if p.isSymbol("(") {
		p.advance()
		if p.isSymbol(")") {
			p.advance()
			return &ast.Tuple{}, nil
		}
		first, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.isSymbol(",") {
			elems := []ast.Type{first}
			for p.isSymbol(",") {
				p.advance()
				t, err := p.parseType()
				if err != nil {
					return nil, err
				}
				elems = append(elems, t)
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return &ast.Tuple{Elems: elems}, nil
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return first, nil
	}
	if p.isSymbol("[") {
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		return &ast.List{Elem: elem}, nil
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	switch name {
	case "Int", "Integer":
		return &ast.IntType{}, nil
	case "Bool":
		return &ast.BoolType{}, nil
	case "Char":
		return &ast.CharType{}, nil
	case "String":
		return &ast.StringType{}, nil
	default:
		return &ast.TypeVariable{Name: name}, nil
	}
}
