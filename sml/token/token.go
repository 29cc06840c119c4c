package token

import "fmt"

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	EndPos Pos    // Position of character immediately after token
	Lexeme string // Identifier label, string body without quotes, or the illegal character
	Length int    // The character length of the token in the source
	Num    int64  // Value of NUMBER tokens

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool

	// True if the token is malformed. Always true if the type is ILLEGAL.
	// An unterminated string literal is a STRING token marked Invalid.
	Invalid bool
}

// String formats the token the way diagnostics print it, eg. IDENT 'main'.
func (t Token) String() string {
	switch t.Type {
	case IDENT, ILLEGAL:
		return fmt.Sprintf("%s '%s'", t.Type, t.Lexeme)
	case STRING:
		return fmt.Sprintf("STRING \"%s\"", t.Lexeme)
	case NUMBER:
		return fmt.Sprintf("NUMBER %d", t.Num)
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("'%s'", t.Type)
}

type Pos struct {
	Col    int   // Column in file
	Row    int   // Row in file, same as line number -1
	Offset int   // Byte offset in file
	File   *File // File this position refers to
}

// String returns the position as line:col, both starting at 1.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}
