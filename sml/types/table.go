package types

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
)

// The SemanticTable includes all global variable and function declarations
// in the file, and their respective types.
type SemanticTable struct {
	symbols map[string]*Symbol
	order   []*Symbol
}

// The TableReader hides the declaration side of the SemanticTable from
// consumers that only need to look symbols up, such as the IR builder.
type TableReader interface {
	// Symbol returns the global symbol with the given name.
	Symbol(name string) (sym *Symbol, ok bool)
}

// A Symbol is any declared global name. In the case of functions, the type
// is the return type.
type Symbol struct {
	Name string     // Symbol name as it appears in the file.
	Kind SymbolKind // Type of symbol, eg. variable or function.
	Pos  token.Pos
	Type ast.TypeKind
}

type SymbolKind int

const (
	VarSymbol SymbolKind = iota
	FuncSymbol
)

func (k SymbolKind) String() string {
	if k == FuncSymbol {
		return "function"
	}
	return "variable"
}

func NewSemanticTable() *SemanticTable {
	return &SemanticTable{
		symbols: make(map[string]*Symbol),
	}
}

// Symbol returns the Symbol value for the given name. Returns ok bool to
// indicate if the symbol was found.
func (t *SemanticTable) Symbol(name string) (sym *Symbol, ok bool) {
	sym, ok = t.symbols[name]
	return sym, ok
}

// Declare adds sym to the table. If the name is already taken the existing
// symbol is returned with ok set to false and the table is left unchanged.
func (t *SemanticTable) Declare(sym Symbol) (prev *Symbol, ok bool) {
	if prev, exists := t.symbols[sym.Name]; exists {
		return prev, false
	}

	s := &sym
	t.symbols[sym.Name] = s
	t.order = append(t.order, s)
	return s, true
}

// Symbols returns all symbols in declaration order.
func (t *SemanticTable) Symbols() []*Symbol {
	return t.order
}
