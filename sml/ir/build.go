package ir

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/types"
	"github.com/jesperkha/sml/sml/util"
)

// Builder lowers a type checked AST into a Module. It walks the tree once,
// in statement order, and stops at the first error.
type Builder struct {
	tree    *ast.Ast
	tr      types.TableReader
	reg     *builtin.Registry
	mod     Module
	globals map[string]Value // Globals emitted so far
	natives map[string]Value // Native declarations by native name
	defined map[string]bool  // Names of all emitted functions and globals
}

// operand is a lowered expression together with its source type. String
// literals are kept as constants until they are used, since a global
// initializer and a call argument materialize them differently.
type operand struct {
	v        Value
	typ      ast.TypeKind
	num      int64 // Value of integer constants
	str      string
	constStr bool
}

func NewBuilder(tree *ast.Ast, reader types.TableReader, reg *builtin.Registry, mod Module) *Builder {
	return &Builder{
		tree:    tree,
		tr:      reader,
		reg:     reg,
		mod:     mod,
		globals: make(map[string]Value),
		natives: make(map[string]Value),
		defined: make(map[string]bool),
	}
}

// Build lowers every top level statement. Only function and global variable
// declarations are allowed at global scope.
func (b *Builder) Build() error {
	util.Assert(b.tree != nil, "tree is nil")

	for _, node := range b.tree.Nodes {
		var err error

		switch node := node.(type) {
		case *ast.FnDecl:
			err = b.buildFunc(node)
		case *ast.VarDecl:
			err = b.buildGlobal(node)
		default:
			err = errorf(node.Pos(), "%s not allowed at global scope", stmtName(node))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) define(name token.Token) error {
	if b.defined[name.Lexeme] {
		return errorf(name.Pos, "'%s' redeclared", name.Lexeme)
	}

	b.defined[name.Lexeme] = true
	return nil
}

func (b *Builder) buildFunc(node *ast.FnDecl) error {
	if err := b.define(node.Name); err != nil {
		return err
	}

	name := node.Name.Lexeme
	b.mod.DefineFunc(name, node.RetType)
	returned := false

	for _, stmt := range node.Body.Stmts {
		if returned {
			return errorf(stmt.Pos(), "unreachable statement after return in '%s'", name)
		}

		switch stmt := stmt.(type) {
		case *ast.Return:
			op, err := b.expr(stmt.E)
			if err != nil {
				return err
			}

			if op.typ != node.RetType {
				return errorf(stmt.E.Pos(), "return type mismatch in '%s': expected %s, got %s", name, node.RetType, op.typ)
			}

			b.mod.Ret(b.value(op))
			returned = true

		case *ast.ExprStmt:
			if _, err := b.expr(stmt.E); err != nil {
				return err
			}

		default:
			return errorf(stmt.Pos(), "%s not allowed inside function", stmtName(stmt))
		}
	}

	if !returned {
		return errorf(node.Body.RBrace.Pos, "missing return at end of function '%s'", name)
	}

	return nil
}

func (b *Builder) buildGlobal(node *ast.VarDecl) error {
	name := node.Name.Lexeme

	if node.Type == ast.UNRESOLVED {
		return errorf(node.Pos(), "type of '%s' is unresolved", name)
	}

	if _, ok := node.Init.(*ast.Literal); !ok {
		return errorf(node.Init.Pos(), "unsupported initializer for global '%s'", name)
	}

	if err := b.define(node.Name); err != nil {
		return err
	}

	op, err := b.expr(node.Init)
	if err != nil {
		return err
	}

	if op.typ != node.Type {
		return errorf(node.Init.Pos(), "global '%s' has type %s but is initialized with %s", name, node.Type, op.typ)
	}

	if op.constStr {
		b.globals[name] = b.mod.GlobalBytes(name, op.str)
	} else {
		b.globals[name] = b.mod.GlobalInt(name, op.num)
	}

	return nil
}

func (b *Builder) expr(e ast.Expr) (operand, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return b.literal(e), nil
	case *ast.Ident:
		return b.ident(e)
	case *ast.Call:
		return b.call(e)
	case *ast.BinOp:
		return b.binop(e)
	}

	return operand{}, errorf(e.Pos(), "unsupported expression")
}

// value returns the backend value of op, materializing string constants.
func (b *Builder) value(op operand) Value {
	if op.constStr {
		return b.mod.StringPtr(op.str)
	}
	return op.v
}

// Numbers are 32 bits wide. Values outside that range wrap.
func (b *Builder) literal(node *ast.Literal) operand {
	if node.Kind == ast.STR_LIT {
		return operand{
			typ:      ast.STR,
			str:      Unescape(node.Value),
			constStr: true,
		}
	}

	n := int64(int32(node.Num))
	return operand{
		v:   b.mod.ConstInt(n),
		typ: ast.INT,
		num: n,
	}
}

func (b *Builder) ident(node *ast.Ident) (operand, error) {
	sym, ok := b.tr.Symbol(node.Name)
	if !ok {
		return operand{}, errorf(node.Pos(), "undefined reference to '%s'", node.Name)
	}

	if sym.Kind == types.FuncSymbol {
		return operand{}, errorf(node.Pos(), "cannot use function '%s' as a value", node.Name)
	}

	global, ok := b.globals[node.Name]
	if !ok {
		return operand{}, errorf(node.Pos(), "'%s' used before its declaration at %s", node.Name, sym.Pos)
	}

	if sym.Type == ast.STR {
		return operand{v: b.mod.GlobalPtr(global), typ: ast.STR}, nil
	}

	return operand{v: b.mod.Load(global), typ: ast.INT}, nil
}

func (b *Builder) call(node *ast.Call) (operand, error) {
	proto, ok := b.reg.Lookup(node.Callee)
	if !ok {
		return operand{}, errorf(node.Pos(), "calling non-defined function '%s'", node.Callee)
	}

	if len(proto.Params) != len(node.Args) {
		return operand{}, errorf(node.Pos(), "argument count mismatch calling '%s': expected %d, got %d",
			node.Callee, len(proto.Params), len(node.Args))
	}

	args := make([]Value, len(node.Args))
	for i, arg := range node.Args {
		op, err := b.expr(arg)
		if err != nil {
			return operand{}, err
		}

		if op.typ != proto.Params[i] {
			return operand{}, errorf(arg.Pos(), "argument type mismatch calling '%s': argument %d must be %s, got %s",
				node.Callee, i+1, proto.Params[i], op.typ)
		}

		args[i] = b.value(op)
	}

	fn, err := b.native(node, proto)
	if err != nil {
		return operand{}, err
	}

	return operand{
		v:   b.mod.Call(fn, proto, args),
		typ: proto.Return,
	}, nil
}

// native returns the declaration of proto, adding it on first use.
func (b *Builder) native(node *ast.Call, proto builtin.Prototype) (Value, error) {
	if fn, ok := b.natives[proto.Name]; ok {
		return fn, nil
	}

	if sym, ok := b.tr.Symbol(proto.Name); ok {
		return nil, errorf(node.Pos(), "'%s' calls native function '%s', which is shadowed by the %s declared at %s",
			node.Callee, proto.Name, sym.Kind, sym.Pos)
	}

	fn := b.mod.DeclareFunc(proto)
	b.natives[proto.Name] = fn
	return fn, nil
}

func (b *Builder) binop(node *ast.BinOp) (operand, error) {
	lhs, err := b.expr(node.Lhs)
	if err != nil {
		return operand{}, err
	}

	rhs, err := b.expr(node.Rhs)
	if err != nil {
		return operand{}, err
	}

	util.Assert(node.Op == ast.PLUS, "unknown binary operator %d", node.Op)

	if lhs.typ != ast.INT || rhs.typ != ast.INT {
		return operand{}, errorf(node.OpTok.Pos, "operator %s requires int operands, got %s and %s", node.Op, lhs.typ, rhs.typ)
	}

	return operand{
		v:   b.mod.Add(lhs.v, rhs.v),
		typ: ast.INT,
	}, nil
}

func stmtName(s ast.Stmt) string {
	switch s.(type) {
	case *ast.FnDecl:
		return "function declaration"
	case *ast.VarDecl:
		return "variable declaration"
	case *ast.Return:
		return "return statement"
	case *ast.ExprStmt:
		return "expression statement"
	}
	return "statement"
}
