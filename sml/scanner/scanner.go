package scanner

import (
	"fmt"
	"strconv"

	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/util"
)

// LexError is reported for illegal characters and malformed literals.
type LexError struct {
	Tok token.Token
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tok.Pos, e.Msg)
}

// Pretty formats the error with the offending source line.
func (e *LexError) Pretty() string {
	return util.PrettyAt(e.Tok.Pos, max(e.Tok.Length, 1), e.Msg)
}

type Scanner struct {
	file      *token.File
	text      []byte
	offset    int // Offset of current character
	line      int // Current row
	lineBegin int // Offset of first character on current line
	errors    util.ErrorList
	NumErrors int
}

// New makes a new Scanner object for the given file. Scanner only accepts
// ascii text.
func New(file *token.File) *Scanner {
	return &Scanner{
		file: file,
		text: file.Src,
	}
}

// Error returns all lex errors joined, or nil.
func (s *Scanner) Error() error {
	return s.errors.Error()
}

// ScanAll scans the whole file. The last token is always EOF.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Eof {
			return toks
		}
	}
}

// Scan consumes the next token and returns it, advancing the Scanner. Once
// the end of input is reached every call returns EOF.
func (s *Scanner) Scan() token.Token {
	for !s.eof() && isWhitespace(s.cur()) {
		s.consume()
	}

	start := s.pos()
	if s.eof() {
		return token.Token{Type: token.EOF, Pos: start, EndPos: start, Eof: true}
	}

	c := s.cur()
	switch {
	case isAlpha(c):
		word := s.readWhile(isAlphaNum)
		if typ, ok := token.Keywords[word]; ok {
			return s.token(typ, start, word)
		}
		return s.token(token.IDENT, start, word)

	case isNum(c):
		return s.scanNumber(start)

	case c == '"':
		return s.scanString(start)
	}

	if s.peek() != 0 {
		if typ, ok := token.DoubleSymbols[string([]byte{c, s.peek()})]; ok {
			s.consume()
			s.consume()
			return s.token(typ, start, typ.String())
		}
	}

	if typ, ok := token.SingleSymbols[string(c)]; ok {
		s.consume()
		return s.token(typ, start, string(c))
	}

	s.consume()
	tok := s.token(token.ILLEGAL, start, string(c))
	tok.Invalid = true
	s.err(tok, fmt.Sprintf("illegal character '%c'", c))
	return tok
}

func (s *Scanner) scanNumber(start token.Pos) token.Token {
	lexeme := s.readWhile(isNum)
	tok := s.token(token.NUMBER, start, lexeme)

	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		tok.Invalid = true
		s.err(tok, "number literal out of range")
		return tok
	}

	tok.Num = n
	return tok
}

// Reads a string literal. The lexeme is the raw body between the quotes,
// escape sequences are left untouched.
func (s *Scanner) scanString(start token.Pos) token.Token {
	s.consume() // Opening quote
	body := s.readWhile(func(c byte) bool { return c != '"' })

	if s.eof() {
		tok := s.token(token.STRING, start, body)
		tok.Invalid = true
		s.err(tok, "unterminated string literal")
		return tok
	}

	s.consume() // Closing quote
	return s.token(token.STRING, start, body)
}

func (s *Scanner) token(typ token.TokenType, start token.Pos, lexeme string) token.Token {
	return token.Token{
		Type:   typ,
		Pos:    start,
		EndPos: s.pos(),
		Lexeme: lexeme,
		Length: s.offset - start.Offset,
	}
}

func (s *Scanner) err(tok token.Token, msg string) {
	s.errors.Add(&LexError{Tok: tok, Msg: msg})
	s.NumErrors++
}

func (s *Scanner) readWhile(pred func(c byte) bool) string {
	begin := s.offset
	for !s.eof() && pred(s.cur()) {
		s.consume()
	}
	return string(s.text[begin:s.offset])
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{
		Row:    s.line,
		Col:    s.offset - s.lineBegin,
		Offset: s.offset,
		File:   s.file,
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.text)
}

func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.offset]
}

func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.text) {
		return 0
	}
	return s.text[s.offset+1]
}

func (s *Scanner) consume() byte {
	c := s.cur()
	s.offset++
	if c == '\n' {
		s.line++
		s.lineBegin = s.offset
	}
	return c
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNum(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || isNum(c)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}
