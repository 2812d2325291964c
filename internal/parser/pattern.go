package parser

import (
	"fmt"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/lexer"
)

// parsePattern parses a full pattern, including the right-associative
// cons pattern `p : p`.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	left, err := p.parseAtomPattern()
	if err != nil {
		return nil, err
	}
	if p.isSymbol(":") {
		p.advance()
		right, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return &ast.PatList{Head: left, Tail: right}, nil
	}
	return left, nil
}

// parseAtomPattern parses one pattern atom: a literal, wildcard,
// variable, empty/bracketed list, or parenthesized (tuple) pattern.
// Used both for function-equation argument patterns and case
// alternatives.
func (p *Parser) parseAtomPattern() (ast.Pattern, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.IntLit:
		p.advance()
		n, err := parseIntLit(tok.Text)
		if err != nil {
			return nil, err
		}
		return &ast.PatLiteral{Lit: ast.LitInt{Value: n}}, nil
	case lexer.CharLit:
		p.advance()
		return &ast.PatLiteral{Lit: ast.LitChar{Value: []rune(tok.Text)[0]}}, nil
	case lexer.StringLit:
		p.advance()
		return &ast.PatLiteral{Lit: ast.LitString{Value: tok.Text}}, nil
	case lexer.Ident:
		p.advance()
		if tok.Text == "_" {
			return &ast.PatWildcard{}, nil
		}
		return &ast.PatVar{Name: tok.Text}, nil
	case lexer.Keyword:
		if tok.Text == "True" {
			p.advance()
			return &ast.PatLiteral{Lit: ast.LitBool{Value: true}}, nil
		}
		if tok.Text == "False" {
			p.advance()
			return &ast.PatLiteral{Lit: ast.LitBool{Value: false}}, nil
		}
		return nil, fmt.Errorf("parser: line %d: unexpected keyword %q in pattern", tok.Line, tok.Text)
	}
	if p.isSymbol("[") {
		p.advance()
		if p.isSymbol("]") {
			p.advance()
			return &ast.PatEmptyList{}, nil
		}
		elems, err := p.parsePatternList()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		return elems, nil
	}
	if p.isSymbol("(") {
		p.advance()
		if p.isSymbol(")") {
			p.advance()
			return &ast.PatTuple{}, nil
		}
		first, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if p.isSymbol(",") {
			elems := []ast.Pattern{first}
			for p.isSymbol(",") {
				p.advance()
				next, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				elems = append(elems, next)
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return &ast.PatTuple{Elems: elems}, nil
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return first, nil
	}
	return nil, fmt.Errorf("parser: line %d: unexpected token %q in pattern", tok.Line, tok.Text)
}

// parsePatternList parses comma-separated pattern elements of a bracketed
// list pattern `[p, p, p]` into nested PatList cells terminated by
// PatEmptyList.
func (p *Parser) parsePatternList() (ast.Pattern, error) {
	first, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	elems := []ast.Pattern{first}
	for p.isSymbol(",") {
		p.advance()
		next, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	var result ast.Pattern = &ast.PatEmptyList{}
	for i := len(elems) - 1; i >= 0; i-- {
		result = &ast.PatList{Head: elems[i], Tail: result}
	}
	return result, nil
}
