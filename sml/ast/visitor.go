package ast

type Visitor interface {
	VisitFnDecl(node *FnDecl)
	VisitVarDecl(node *VarDecl)
	VisitBlock(node *Block)
	VisitReturn(node *Return)
	VisitExprStmt(node *ExprStmt)
	VisitCall(node *Call)
	VisitBinOp(node *BinOp)
	VisitLiteral(node *Literal)
	VisitIdent(node *Ident)
}

func (n *FnDecl) Accept(v Visitor)   { v.VisitFnDecl(n) }
func (n *VarDecl) Accept(v Visitor)  { v.VisitVarDecl(n) }
func (n *Block) Accept(v Visitor)    { v.VisitBlock(n) }
func (n *Return) Accept(v Visitor)   { v.VisitReturn(n) }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *Call) Accept(v Visitor)     { v.VisitCall(n) }
func (n *BinOp) Accept(v Visitor)    { v.VisitBinOp(n) }
func (n *Literal) Accept(v Visitor)  { v.VisitLiteral(n) }
func (n *Ident) Accept(v Visitor)    { v.VisitIdent(n) }
