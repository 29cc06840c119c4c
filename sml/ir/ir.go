package ir

import (
	"fmt"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
)

type OpCode int

const (
	NOP OpCode = iota

	FUNC
	DECLARE
	GLOBAL
	STRING
	LOAD
	PTR
	CALL
	ADD
	RET
)

type Instruction struct {
	Op OpCode

	Name    string
	RetType ast.TypeKind
	Proto   builtin.Prototype // Set for DECLARE

	Dest  Operand
	Value Operand
	Args  []Operand

	Integer int64
	Str     string
}

const (
	Immediate = iota
	Global
	Variable
)

// Operand is the Value type used by Listing.
type Operand struct {
	Type    int
	Idx     int    // Variable number
	Name    string // Global name
	Integer int64  // Immediate value
}

func (o Operand) String() string {
	switch o.Type {
	case Immediate:
		return fmt.Sprint(o.Integer)
	case Global:
		return "@" + o.Name
	}
	return fmt.Sprintf("$%d", o.Idx)
}

// Listing is a Module that records lowered code as a flat instruction list.
// It has no native backend and is used for testing the Builder and for
// inspecting its output. Globals and declarations are kept apart from
// function bodies, like in a real module.
type Listing struct {
	Name         string
	Source       string
	Header       []Instruction // Globals, strings, and native declarations
	Instructions []Instruction // Function definitions and their bodies
	ctr          int
	strs         int
}

func NewListing(name string) *Listing {
	return &Listing{Name: name}
}

// Get next available variable
func (l *Listing) idx() Operand {
	prev := l.ctr
	l.ctr++
	return Operand{Type: Variable, Idx: prev}
}

func (l *Listing) emit(ins Instruction) {
	l.Instructions = append(l.Instructions, ins)
}

func (l *Listing) SetSourceFileName(name string) {
	l.Source = name
}

func (l *Listing) DefineFunc(name string, ret ast.TypeKind) {
	l.ctr = 0
	l.emit(Instruction{Op: FUNC, Name: name, RetType: ret})
}

func (l *Listing) DeclareFunc(proto builtin.Prototype) Value {
	l.Header = append(l.Header, Instruction{Op: DECLARE, Name: proto.Name, Proto: proto, RetType: proto.Return})
	return Operand{Type: Global, Name: proto.Name}
}

func (l *Listing) GlobalInt(name string, v int64) Value {
	l.Header = append(l.Header, Instruction{Op: GLOBAL, Name: name, RetType: ast.INT, Integer: v})
	return Operand{Type: Global, Name: name}
}

func (l *Listing) GlobalBytes(name string, s string) Value {
	l.Header = append(l.Header, Instruction{Op: GLOBAL, Name: name, RetType: ast.STR, Str: s})
	return Operand{Type: Global, Name: name}
}

func (l *Listing) StringPtr(s string) Value {
	name := ".str"
	if l.strs > 0 {
		name = fmt.Sprintf(".str.%d", l.strs)
	}
	l.strs++

	l.Header = append(l.Header, Instruction{Op: STRING, Name: name, Str: s})
	return Operand{Type: Global, Name: name}
}

func (l *Listing) GlobalPtr(global Value) Value {
	dest := l.idx()
	l.emit(Instruction{Op: PTR, Dest: dest, Value: global.(Operand)})
	return dest
}

func (l *Listing) Load(global Value) Value {
	dest := l.idx()
	l.emit(Instruction{Op: LOAD, Dest: dest, Value: global.(Operand)})
	return dest
}

func (l *Listing) ConstInt(v int64) Value {
	return Operand{Type: Immediate, Integer: v}
}

func (l *Listing) Call(fn Value, proto builtin.Prototype, args []Value) Value {
	ops := make([]Operand, len(args))
	for i, arg := range args {
		ops[i] = arg.(Operand)
	}

	dest := l.idx()
	l.emit(Instruction{Op: CALL, Dest: dest, Value: fn.(Operand), Args: ops, RetType: proto.Return})
	return dest
}

func (l *Listing) Add(lhs, rhs Value) Value {
	dest := l.idx()
	l.emit(Instruction{Op: ADD, Dest: dest, Args: []Operand{lhs.(Operand), rhs.(Operand)}})
	return dest
}

func (l *Listing) Ret(v Value) {
	l.emit(Instruction{Op: RET, Value: v.(Operand)})
}

func (l *Listing) String() string {
	return IrFmt(append(append([]Instruction{}, l.Header...), l.Instructions...))
}
