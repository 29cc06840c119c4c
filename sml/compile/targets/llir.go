package targets

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
	smlir "github.com/jesperkha/sml/sml/ir"
	"github.com/jesperkha/sml/sml/util"
)

// LLIRModule implements the ir.Module contract on top of llir, a pure Go
// LLVM IR library. It needs no LLVM installation and is the default target.
type LLIRModule struct {
	name  string
	m     *ir.Module
	block *ir.Block // Entry block of the function being built
	strs  int       // Number of call site string constants
}

func NewLLIR(name string) *LLIRModule {
	return &LLIRModule{
		name: name,
		m:    ir.NewModule(),
	}
}

func llirType(t ast.TypeKind) types.Type {
	util.Assert(t != ast.UNRESOLVED, "unresolved type in backend")
	if t == ast.STR {
		return types.I8Ptr
	}
	return types.I32
}

// Pointer to the first byte of a global byte array.
func firstByte(g *ir.Global) constant.Constant {
	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(g.ContentType, g, zero, zero)
}

func (l *LLIRModule) SetSourceFileName(name string) {
	l.m.SourceFilename = name
}

func (l *LLIRModule) DefineFunc(name string, ret ast.TypeKind) {
	fn := l.m.NewFunc(name, llirType(ret))
	l.block = fn.NewBlock("entry")
}

func (l *LLIRModule) DeclareFunc(proto builtin.Prototype) smlir.Value {
	params := make([]*ir.Param, len(proto.Params))
	for i, p := range proto.Params {
		params[i] = ir.NewParam("", llirType(p))
	}

	fn := l.m.NewFunc(proto.Name, llirType(proto.Return), params...)
	fn.Sig.Variadic = proto.Variadic
	return fn
}

func (l *LLIRModule) GlobalInt(name string, v int64) smlir.Value {
	return l.m.NewGlobalDef(name, constant.NewInt(types.I32, v))
}

func (l *LLIRModule) GlobalBytes(name string, s string) smlir.Value {
	return l.m.NewGlobalDef(name, constant.NewCharArrayFromString(s+"\x00"))
}

// String constants are named .str, .str.1, .str.2 and so on in the order
// they are requested, which keeps the output stable.
func (l *LLIRModule) StringPtr(s string) smlir.Value {
	name := ".str"
	if l.strs > 0 {
		name = fmt.Sprintf(".str.%d", l.strs)
	}
	l.strs++

	g := l.m.NewGlobalDef(name, constant.NewCharArrayFromString(s+"\x00"))
	g.Linkage = enum.LinkagePrivate
	g.UnnamedAddr = enum.UnnamedAddrUnnamedAddr
	g.Immutable = true
	return firstByte(g)
}

func (l *LLIRModule) GlobalPtr(global smlir.Value) smlir.Value {
	return firstByte(global.(*ir.Global))
}

func (l *LLIRModule) Load(global smlir.Value) smlir.Value {
	g := global.(*ir.Global)
	return l.block.NewLoad(g.ContentType, g)
}

func (l *LLIRModule) ConstInt(v int64) smlir.Value {
	return constant.NewInt(types.I32, v)
}

func (l *LLIRModule) Call(fn smlir.Value, proto builtin.Prototype, args []smlir.Value) smlir.Value {
	vals := make([]value.Value, len(args))
	for i, arg := range args {
		vals[i] = arg.(value.Value)
	}

	return l.block.NewCall(fn.(value.Value), vals...)
}

func (l *LLIRModule) Add(lhs, rhs smlir.Value) smlir.Value {
	return l.block.NewAdd(lhs.(value.Value), rhs.(value.Value))
}

func (l *LLIRModule) Ret(v smlir.Value) {
	l.block.NewRet(v.(value.Value))
}

func (l *LLIRModule) String() string {
	return fmt.Sprintf("; ModuleID = '%s'\n%s", l.name, l.m.String())
}
