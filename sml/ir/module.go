package ir

import (
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
)

// Value is a backend specific handle to a lowered value or symbol. The
// Builder never inspects it, it only passes values back to the Module that
// produced them.
type Value any

// Module is the contract a backend implements to receive lowered code. All
// integers are 32 bits wide; the Builder truncates before calling ConstInt
// and GlobalInt.
type Module interface {
	SetSourceFileName(name string)

	// DefineFunc adds a function with no parameters, opens its entry block,
	// and positions the builder at the end of it.
	DefineFunc(name string, ret ast.TypeKind)

	// DeclareFunc adds an external declaration for a native function. Called
	// at most once per native name.
	DeclareFunc(proto builtin.Prototype) Value

	// GlobalInt adds a global scalar initialized to v.
	GlobalInt(name string, v int64) Value

	// GlobalBytes adds a global byte array holding s followed by a NUL byte.
	GlobalBytes(name string, s string) Value

	// StringPtr adds a private NUL terminated string constant and returns a
	// pointer to its first byte.
	StringPtr(s string) Value

	// GlobalPtr returns a pointer to the first byte of a GlobalBytes global.
	GlobalPtr(global Value) Value

	// Load reads the current value of a GlobalInt global.
	Load(global Value) Value

	ConstInt(v int64) Value
	Call(fn Value, proto builtin.Prototype, args []Value) Value
	Add(lhs, rhs Value) Value
	Ret(v Value)

	// String returns the textual form of the module.
	String() string
}
