package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	IDENT
	NUMBER
	STRING

	FUNCTION
	RETURN
	LET

	INT_TYPE
	STR_TYPE

	PLUS
	EQ
	COMMA
	SEMI
	ARROW
	LPAREN
	RPAREN
	LBRACE
	RBRACE
)

var Keywords = map[string]TokenType{
	"function": FUNCTION,
	"return":   RETURN,
	"let":      LET,
	"int":      INT_TYPE,
	"str":      STR_TYPE,
}

var SingleSymbols = map[string]TokenType{
	"+": PLUS,
	"=": EQ,
	",": COMMA,
	";": SEMI,
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
}

var DoubleSymbols = map[string]TokenType{
	"->": ARROW,
}

var names = [...]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	IDENT:    "IDENT",
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	FUNCTION: "function",
	RETURN:   "return",
	LET:      "let",
	INT_TYPE: "int",
	STR_TYPE: "str",
	PLUS:     "+",
	EQ:       "=",
	COMMA:    ",",
	SEMI:     ";",
	ARROW:    "->",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "UNKNOWN"
}
