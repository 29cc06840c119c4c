//go:build llvm

package targets

import (
	"tinygo.org/x/go-llvm"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
	smlir "github.com/jesperkha/sml/sml/ir"
	"github.com/jesperkha/sml/sml/util"
)

// New returns the LLVM backend when built with the llvm tag.
func New(name string) smlir.Module {
	return NewLLVM(name)
}

// LLVMModule implements the ir.Module contract with the LLVM C API through
// go-llvm. Requires LLVM with opaque pointers (15 or later).
type LLVMModule struct {
	name string
	m    llvm.Module
	b    llvm.Builder
}

// Globals keep their content type around for loads.
type llvmGlobal struct {
	v    llvm.Value
	elem llvm.Type
}

// Calls need the function type next to the function value.
type llvmFunc struct {
	v   llvm.Value
	typ llvm.Type
}

func NewLLVM(name string) *LLVMModule {
	return &LLVMModule{
		name: name,
		m:    llvm.NewModule(name),
		b:    llvm.NewBuilder(),
	}
}

func llvmType(t ast.TypeKind) llvm.Type {
	util.Assert(t != ast.UNRESOLVED, "unresolved type in backend")
	if t == ast.STR {
		return llvm.PointerType(llvm.Int8Type(), 0)
	}
	return llvm.Int32Type()
}

// The C API exposed by go-llvm has no setter for the source file name.
func (l *LLVMModule) SetSourceFileName(name string) {}

func (l *LLVMModule) DefineFunc(name string, ret ast.TypeKind) {
	typ := llvm.FunctionType(llvmType(ret), nil, false)
	fn := llvm.AddFunction(l.m, name, typ)
	entry := llvm.AddBasicBlock(fn, "entry")
	l.b.SetInsertPointAtEnd(entry)
}

func (l *LLVMModule) DeclareFunc(proto builtin.Prototype) smlir.Value {
	params := make([]llvm.Type, len(proto.Params))
	for i, p := range proto.Params {
		params[i] = llvmType(p)
	}

	typ := llvm.FunctionType(llvmType(proto.Return), params, proto.Variadic)
	return llvmFunc{v: llvm.AddFunction(l.m, proto.Name, typ), typ: typ}
}

func (l *LLVMModule) GlobalInt(name string, v int64) smlir.Value {
	typ := llvm.Int32Type()
	g := llvm.AddGlobal(l.m, typ, name)
	g.SetInitializer(llvm.ConstInt(typ, uint64(v), true))
	return llvmGlobal{v: g, elem: typ}
}

func (l *LLVMModule) GlobalBytes(name string, s string) smlir.Value {
	init := llvm.ConstString(s, true)
	g := llvm.AddGlobal(l.m, init.Type(), name)
	g.SetInitializer(init)
	return llvmGlobal{v: g, elem: init.Type()}
}

func (l *LLVMModule) StringPtr(s string) smlir.Value {
	return l.b.CreateGlobalStringPtr(s, ".str")
}

// With opaque pointers the global itself points at its first byte.
func (l *LLVMModule) GlobalPtr(global smlir.Value) smlir.Value {
	return global.(llvmGlobal).v
}

func (l *LLVMModule) Load(global smlir.Value) smlir.Value {
	g := global.(llvmGlobal)
	return l.b.CreateLoad(g.elem, g.v, "")
}

func (l *LLVMModule) ConstInt(v int64) smlir.Value {
	return llvm.ConstInt(llvm.Int32Type(), uint64(v), true)
}

func (l *LLVMModule) Call(fn smlir.Value, proto builtin.Prototype, args []smlir.Value) smlir.Value {
	f := fn.(llvmFunc)
	vals := make([]llvm.Value, len(args))
	for i, arg := range args {
		vals[i] = arg.(llvm.Value)
	}

	return l.b.CreateCall(f.typ, f.v, vals, "")
}

func (l *LLVMModule) Add(lhs, rhs smlir.Value) smlir.Value {
	return l.b.CreateAdd(lhs.(llvm.Value), rhs.(llvm.Value), "")
}

func (l *LLVMModule) Ret(v smlir.Value) {
	l.b.CreateRet(v.(llvm.Value))
}

func (l *LLVMModule) Verify() error {
	return llvm.VerifyModule(l.m, llvm.ReturnStatusAction)
}

func (l *LLVMModule) String() string {
	return l.m.String()
}

func (l *LLVMModule) Dispose() {
	l.b.Dispose()
	l.m.Dispose()
}
