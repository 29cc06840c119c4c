package parser

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
)

type precedence int

const (
	LOWEST precedence = iota + 1
	ADDITIVE
	CALL
)

func precedenceOf(t token.TokenType) precedence {
	switch t {
	case token.LPAREN:
		return CALL
	case token.PLUS:
		return ADDITIVE
	default:
		return LOWEST
	}
}

// parseExpr parses a primary expression and then keeps folding infix
// operators into it while they bind tighter than prec.
func (p *Parser) parseExpr(prec precedence) ast.Expr {
	lhs := p.parsePrimary()

	for !p.eofOrPanic() && prec < precedenceOf(p.cur().Type) {
		switch p.cur().Type {
		case token.LPAREN:
			lhs = p.parseCall(lhs)
		case token.PLUS:
			lhs = p.parseBinOp(lhs)
		default:
			return lhs
		}
	}

	return lhs
}

// Arguments are parsed at call precedence, so each one is a single primary
// expression. A comma after an argument is optional.
func (p *Parser) parseCall(lhs ast.Expr) ast.Expr {
	callee, ok := lhs.(*ast.Ident)
	if !ok {
		p.err(firstToken(lhs), "identifier as call target")
		return nil
	}

	p.consume() // Left paren
	args := []ast.Expr{}

	for !p.eofOrPanic() && !p.match(token.RPAREN) && startsExpr(p.cur().Type) {
		args = append(args, p.parseExpr(CALL))
		if p.match(token.COMMA) {
			p.consume()
		}
	}

	rparen := p.expect(token.RPAREN, ") after argument list")
	return &ast.Call{
		T:      callee.T,
		Callee: callee.Name,
		Args:   args,
		RParen: rparen,
	}
}

// Right hand side is parsed at the operators own precedence, making chains
// of the same operator left associative.
func (p *Parser) parseBinOp(lhs ast.Expr) ast.Expr {
	op := p.consume()
	rhs := p.parseExpr(precedenceOf(op.Type))

	return &ast.BinOp{
		OpTok: op,
		Op:    ast.PLUS,
		Lhs:   lhs,
		Rhs:   rhs,
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.cur()

	switch t.Type {
	case token.IDENT:
		p.consume()
		return &ast.Ident{T: t, Name: t.Lexeme}

	case token.STRING:
		p.consume()
		return &ast.Literal{T: t, Kind: ast.STR_LIT, Value: t.Lexeme}

	case token.NUMBER:
		p.consume()
		return &ast.Literal{T: t, Kind: ast.NUM_LIT, Value: t.Lexeme, Num: t.Num}
	}

	p.err(t, "expression")
	return nil
}

func startsExpr(t token.TokenType) bool {
	return t == token.IDENT || t == token.STRING || t == token.NUMBER
}

func firstToken(e ast.Expr) token.Token {
	switch e := e.(type) {
	case *ast.Ident:
		return e.T
	case *ast.Literal:
		return e.T
	case *ast.Call:
		return e.T
	case *ast.BinOp:
		return firstToken(e.Lhs)
	}
	return token.Token{}
}
