package parser

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
)

// parseStmt dispatches on the current token. Which statements are legal at
// global scope and inside functions is decided by the code generator.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Type {
	case token.FUNCTION:
		return p.parseFunc()
	case token.LET:
		return p.parseVar()
	case token.RETURN:
		return p.parseReturn()

	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturn() *ast.Return {
	ret := p.consume() // Return keyword is guaranteed
	expr := p.parseExpr(LOWEST)
	p.expect(token.SEMI, "; after return value")

	return &ast.Return{
		Ret: ret,
		E:   expr,
	}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr(LOWEST)
	semi := p.expect(token.SEMI, "; after expression")

	return &ast.ExprStmt{
		E:    expr,
		Semi: semi,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	if p.panicMode {
		return nil
	}

	lbrace := p.expect(token.LBRACE, "{ to open function body")
	stmts := []ast.Stmt{}

	for !p.eofOrPanic() && !p.match(token.RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	rbrace := p.expect(token.RBRACE, "} to close function body")
	return &ast.Block{
		LBrace: lbrace,
		Stmts:  stmts,
		RBrace: rbrace,
	}
}
