package types

import (
	"fmt"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/util"
)

// TypeError is reported for global declarations the checker cannot type.
type TypeError struct {
	Pos token.Pos
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Pretty formats the error with the offending source line.
func (e *TypeError) Pretty() string {
	return util.PrettyAt(e.Pos, 1, e.Msg)
}

// Checker implements the Visitor interface to traverse the top level of the
// AST. It resolves the type of every global variable from its initializer and
// records all global names in a SemanticTable. Function bodies are not
// visited.
type Checker struct {
	errors    util.ErrorList
	tree      *ast.Ast
	table     *SemanticTable
	NumErrors int
}

func NewChecker(tree *ast.Ast) *Checker {
	return &Checker{
		tree:  tree,
		table: NewSemanticTable(),
	}
}

// Check runs the pass and returns the same tree with every valid VarDecl
// typed. NumErrors holds the number of errors found.
func (c *Checker) Check() *ast.Ast {
	util.Assert(c.tree != nil, "tree is nil")

	for _, node := range c.tree.Nodes {
		node.Accept(c)
	}

	return c.tree
}

func (c *Checker) Error() error {
	return c.errors.Error()
}

// Table returns the global symbols collected by Check.
func (c *Checker) Table() *SemanticTable {
	return c.table
}

func (c *Checker) err(node ast.Node, format string, args ...any) {
	c.errors.Add(&TypeError{
		Pos: node.Pos(),
		Msg: fmt.Sprintf(format, args...),
	})
	c.NumErrors++
}

func (c *Checker) declare(name token.Token, kind SymbolKind, typ ast.TypeKind, node ast.Node) {
	prev, ok := c.table.Declare(Symbol{
		Name: name.Lexeme,
		Kind: kind,
		Pos:  name.Pos,
		Type: typ,
	})

	if !ok {
		c.err(node, "%s '%s' redeclared, previous declaration at %s", kind, name.Lexeme, prev.Pos)
	}
}

func (c *Checker) VisitVarDecl(node *ast.VarDecl) {
	typ, ok := literalType(node.Init)
	if !ok {
		c.err(node.Init, "unsupported initializer for '%s', global variables must be initialized with a literal", node.Name.Lexeme)
		return
	}

	node.Type = typ
	c.declare(node.Name, VarSymbol, typ, node)
}

func (c *Checker) VisitFnDecl(node *ast.FnDecl) {
	c.declare(node.Name, FuncSymbol, node.RetType, node)
}

func literalType(e ast.Expr) (ast.TypeKind, bool) {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return ast.UNRESOLVED, false
	}

	switch lit.Kind {
	case ast.NUM_LIT:
		return ast.INT, true
	case ast.STR_LIT:
		return ast.STR, true
	}

	return ast.UNRESOLVED, false
}

// Statements and expressions below global scope are left to the IR builder.

func (c *Checker) VisitBlock(node *ast.Block)       {}
func (c *Checker) VisitReturn(node *ast.Return)     {}
func (c *Checker) VisitExprStmt(node *ast.ExprStmt) {}
func (c *Checker) VisitCall(node *ast.Call)         {}
func (c *Checker) VisitBinOp(node *ast.BinOp)       {}
func (c *Checker) VisitLiteral(node *ast.Literal)   {}
func (c *Checker) VisitIdent(node *ast.Ident)       {}
