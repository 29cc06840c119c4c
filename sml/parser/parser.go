package parser

import (
	"fmt"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/util"
)

// Source yields one token at a time. Once the end of input is reached it
// must keep returning EOF tokens. *scanner.Scanner implements Source.
type Source interface {
	Scan() token.Token
}

// ParseError is returned for the first token that does not fit the grammar.
type ParseError struct {
	Tok    token.Token // Offending token
	Expect string      // What the parser expected to find instead
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Tok.Pos, e.Expect, e.Tok)
}

type Parser struct {
	errors    util.ErrorList
	cursor    *cursor
	panicMode bool // Set on the first error, parsing stops
	NumErrors int
}

func New(src Source) *Parser {
	return &Parser{
		cursor: newCursor(src),
	}
}

// Parse parses statements until EOF. Returns nil if an error occurred, the
// error is available through Error.
func (p *Parser) Parse() *ast.Ast {
	tree := &ast.Ast{}

	for !p.eofOrPanic() {
		stmt := p.parseStmt()
		if p.panicMode {
			break
		}

		tree.Nodes = append(tree.Nodes, stmt)
	}

	if p.panicMode {
		return nil
	}

	return tree
}

func (p *Parser) Error() error {
	return p.errors.Error()
}

func (p *Parser) cur() token.Token {
	return p.cursor.cur
}

func (p *Parser) consume() token.Token {
	return p.cursor.advance()
}

func (p *Parser) match(typ token.TokenType) bool {
	return p.cur().Type == typ
}

func (p *Parser) eofOrPanic() bool {
	return p.cur().Eof || p.panicMode
}

// expect consumes the current token if it has the given type. Otherwise an
// error is reported with expectation as the expected construct.
func (p *Parser) expect(typ token.TokenType, expectation string) token.Token {
	if !p.match(typ) {
		p.err(p.cur(), expectation)
		return token.Token{}
	}

	return p.consume()
}

// Only the first error is kept, everything after it is noise.
func (p *Parser) err(tok token.Token, expectation string) {
	if p.panicMode {
		return
	}

	if tok.Type == token.ILLEGAL {
		expectation = "legal character"
	}

	p.errors.Add(&ParseError{Tok: tok, Expect: expectation})
	p.NumErrors++
	p.panicMode = true
}

// Pretty formats the error with the offending source line.
func (e *ParseError) Pretty() string {
	return util.PrettyAt(e.Tok.Pos, max(e.Tok.Length, 1), fmt.Sprintf("expected %s, got %s", e.Expect, e.Tok))
}
