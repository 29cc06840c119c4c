package ast

import "github.com/jesperkha/sml/sml/token"

type (
	Ast struct {
		// The program block. Only function and global variable declarations
		// may appear here, which the parser and code generator both enforce.
		Nodes []Stmt
	}

	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	Expr interface {
		Node
		exprNode()
	}

	Stmt interface {
		Node
		stmtNode()
	}
)

func (t *Ast) Walk(v Visitor) {
	for _, node := range t.Nodes {
		node.Accept(v)
	}
}

type LitKind int

const (
	NUM_LIT LitKind = iota
	STR_LIT
)

type BinOperator int

const (
	PLUS BinOperator = iota
)

func (op BinOperator) String() string {
	switch op {
	case PLUS:
		return "+"
	}
	return "?"
}

type (
	// Single token identifier. Refers to a global symbol.
	Ident struct {
		T    token.Token
		Name string
	}

	// Number or string literal. Value is the raw lexeme, string literals are
	// kept escaped until code generation.
	Literal struct {
		T     token.Token
		Kind  LitKind
		Value string
		Num   int64 // Set for NUM_LIT literals
	}

	// Call of a builtin function by its alias.
	Call struct {
		T      token.Token // Callee identifier
		Callee string
		Args   []Expr
		RParen token.Token
	}

	BinOp struct {
		OpTok token.Token
		Op    BinOperator
		Lhs   Expr
		Rhs   Expr
	}
)

type (
	Return struct {
		Ret token.Token
		E   Expr
	}

	// Expression evaluated for its side effect, result is discarded.
	ExprStmt struct {
		E    Expr
		Semi token.Token
	}

	Block struct {
		LBrace token.Token
		Stmts  []Stmt
		RBrace token.Token
	}

	FnDecl struct {
		Name    token.Token
		RetType TypeKind
		Body    *Block
	}

	// Global variable declaration. Type is UNRESOLVED until the type pass
	// has run.
	VarDecl struct {
		Name token.Token
		Init Expr
		Type TypeKind
		Semi token.Token
	}
)

func (*Ident) exprNode()   {}
func (*Literal) exprNode() {}
func (*Call) exprNode()    {}
func (*BinOp) exprNode()   {}

func (*Return) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
func (*FnDecl) stmtNode()   {}
func (*VarDecl) stmtNode()  {}

func (i *Ident) Pos() token.Pos { return i.T.Pos }
func (i *Ident) End() token.Pos { return i.T.EndPos }

func (l *Literal) Pos() token.Pos { return l.T.Pos }
func (l *Literal) End() token.Pos { return l.T.EndPos }

func (c *Call) Pos() token.Pos { return c.T.Pos }
func (c *Call) End() token.Pos { return c.RParen.EndPos }

func (b *BinOp) Pos() token.Pos { return b.Lhs.Pos() }
func (b *BinOp) End() token.Pos { return b.Rhs.End() }

func (r *Return) Pos() token.Pos { return r.Ret.Pos }
func (r *Return) End() token.Pos { return r.E.End() }

func (e *ExprStmt) Pos() token.Pos { return e.E.Pos() }
func (e *ExprStmt) End() token.Pos { return e.Semi.EndPos }

func (b *Block) Pos() token.Pos { return b.LBrace.Pos }
func (b *Block) End() token.Pos { return b.RBrace.EndPos }

func (f *FnDecl) Pos() token.Pos { return f.Name.Pos }
func (f *FnDecl) End() token.Pos { return f.Body.End() }

func (v *VarDecl) Pos() token.Pos { return v.Name.Pos }
func (v *VarDecl) End() token.Pos { return v.Semi.EndPos }
