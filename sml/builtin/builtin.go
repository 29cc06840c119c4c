// Package builtin maps source level call aliases to native functions.
package builtin

import (
	"fmt"
	"strings"

	"github.com/jesperkha/sml/sml/ast"
)

// Prototype describes a native callable function.
type Prototype struct {
	Name     string // Native symbol name
	Params   []ast.TypeKind
	Return   ast.TypeKind
	Variadic bool // Native calling convention only, arity checks use Params
}

func (p Prototype) String() string {
	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}

	if p.Variadic {
		params = append(params, "...")
	}

	return fmt.Sprintf("%s(%s) -> %s", p.Name, strings.Join(params, ", "), p.Return)
}

// Registry is populated once and only read afterwards.
type Registry struct {
	fns map[string]Prototype
}

func New() *Registry {
	return &Registry{
		fns: make(map[string]Prototype),
	}
}

// Default returns the registry every program is compiled against.
func Default() *Registry {
	r := New()
	r.MustRegister("print", Prototype{
		Name:     "printf",
		Params:   []ast.TypeKind{ast.STR},
		Return:   ast.INT,
		Variadic: true,
	})
	return r
}

// Register binds alias to proto. Aliases are unique.
func (r *Registry) Register(alias string, proto Prototype) error {
	if alias == "" {
		return fmt.Errorf("builtin: empty alias for %s", proto.Name)
	}
	if _, ok := r.fns[alias]; ok {
		return fmt.Errorf("builtin: alias '%s' already registered", alias)
	}

	r.fns[alias] = proto
	return nil
}

func (r *Registry) MustRegister(alias string, proto Prototype) {
	if err := r.Register(alias, proto); err != nil {
		panic(err)
	}
}

// Lookup finds the prototype bound to alias by exact match.
func (r *Registry) Lookup(alias string) (Prototype, bool) {
	proto, ok := r.fns[alias]
	return proto, ok
}
