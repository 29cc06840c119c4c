package ast

import "github.com/jesperkha/sml/sml/token"

type TypeKind int

const (
	UNRESOLVED TypeKind = iota
	INT
	STR
)

func (t TypeKind) String() string {
	switch t {
	case INT:
		return "int"
	case STR:
		return "str"
	}
	return "unresolved"
}

// TokenToTypeKind maps a type keyword to its kind. Returns UNRESOLVED for
// tokens that are not type keywords.
func TokenToTypeKind(t token.TokenType) TypeKind {
	switch t {
	case token.INT_TYPE:
		return INT
	case token.STR_TYPE:
		return STR
	}
	return UNRESOLVED
}
