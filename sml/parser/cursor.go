package parser

import "github.com/jesperkha/sml/sml/token"

// cursor is the two token lookahead window over a Source.
type cursor struct {
	src  Source
	cur  token.Token
	peek token.Token
}

// newCursor primes the window with the first two tokens.
func newCursor(src Source) *cursor {
	c := &cursor{src: src}
	c.advance()
	c.advance()
	return c
}

// advance shifts peek into cur, pulls a fresh token, and returns the token
// that was current before the call.
func (c *cursor) advance() token.Token {
	prev := c.cur
	c.cur = c.peek
	c.peek = c.src.Scan()
	return prev
}

type tokenList struct {
	toks []token.Token
	pos  int
}

// FromTokens returns a Source reading from a finite list of tokens. An EOF
// token is produced when the list runs out, so the list does not need to
// end with one.
func FromTokens(toks []token.Token) Source {
	return &tokenList{toks: toks}
}

func (l *tokenList) Scan() token.Token {
	if l.pos >= len(l.toks) {
		return token.Token{Type: token.EOF, Eof: true}
	}

	tok := l.toks[l.pos]
	l.pos++
	return tok
}
