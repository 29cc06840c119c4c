package ast

import (
	"fmt"
	"strings"
)

// Number of spaces each tree level is indented by.
const IndentStep = 4

// DebugVisitor implements the Visitor interface. It prints out each node as
// it visits it, forming a fully printed AST. Used for golden tests and the
// -ast flag.
type DebugVisitor struct {
	sb     *strings.Builder
	indent int
}

func NewDebugVisitor() *DebugVisitor {
	return &DebugVisitor{
		sb:     &strings.Builder{},
		indent: 0,
	}
}

// Print returns the rendered tree.
func Print(tree *Ast) string {
	d := NewDebugVisitor()
	tree.Walk(d)
	return d.String()
}

func (d *DebugVisitor) String() string {
	return d.sb.String()
}

func (d *DebugVisitor) write(f string, args ...any) {
	d.sb.WriteString(strings.Repeat(" ", d.indent*IndentStep) + fmt.Sprintf(f, args...) + "\n")
}

func (d *DebugVisitor) child(n Node) {
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *DebugVisitor) VisitFnDecl(node *FnDecl) {
	d.write("function: %s -> %s", node.Name.Lexeme, node.RetType)
	d.child(node.Body)
}

func (d *DebugVisitor) VisitVarDecl(node *VarDecl) {
	d.write("let: %s %s", node.Name.Lexeme, node.Type)
	d.child(node.Init)
}

func (d *DebugVisitor) VisitBlock(node *Block) {
	d.write("block:")
	for _, stmt := range node.Stmts {
		d.child(stmt)
	}
}

func (d *DebugVisitor) VisitReturn(node *Return) {
	d.write("return:")
	d.child(node.E)
}

func (d *DebugVisitor) VisitExprStmt(node *ExprStmt) {
	d.write("expr:")
	d.child(node.E)
}

func (d *DebugVisitor) VisitCall(node *Call) {
	d.write("call: %s", node.Callee)
	for _, arg := range node.Args {
		d.child(arg)
	}
}

func (d *DebugVisitor) VisitBinOp(node *BinOp) {
	d.write("binop: %s", node.Op)
	d.child(node.Lhs)
	d.child(node.Rhs)
}

func (d *DebugVisitor) VisitLiteral(node *Literal) {
	if node.Kind == STR_LIT {
		d.write("literal: \"%s\"", node.Value)
		return
	}
	d.write("literal: %d", node.Num)
}

func (d *DebugVisitor) VisitIdent(node *Ident) {
	d.write("ident: %s", node.Name)
}
