package parser

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
)

func (p *Parser) parseFunc() *ast.FnDecl {
	p.consume() // Function keyword which is guaranteed

	name := p.expect(token.IDENT, "function name")
	p.expect(token.LPAREN, "( after function name")
	p.expect(token.RPAREN, ") since functions take no parameters")
	p.expect(token.ARROW, "-> before return type")

	typ := p.parseType()
	block := p.parseBlock()

	return &ast.FnDecl{
		Name:    name,
		RetType: typ,
		Body:    block,
	}
}

func (p *Parser) parseVar() *ast.VarDecl {
	p.consume() // Let keyword which is guaranteed

	name := p.expect(token.IDENT, "variable name")
	p.expect(token.EQ, "= after variable name")
	init := p.parseExpr(LOWEST)
	semi := p.expect(token.SEMI, "; after variable declaration")

	return &ast.VarDecl{
		Name: name,
		Init: init,
		Type: ast.UNRESOLVED,
		Semi: semi,
	}
}

func (p *Parser) parseType() ast.TypeKind {
	if p.panicMode {
		return ast.UNRESOLVED
	}

	kind := ast.TokenToTypeKind(p.cur().Type)
	if kind == ast.UNRESOLVED {
		p.err(p.cur(), "return type")
		return kind
	}

	p.consume()
	return kind
}
