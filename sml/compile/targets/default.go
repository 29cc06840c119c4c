//go:build !llvm

package targets

import (
	smlir "github.com/jesperkha/sml/sml/ir"
)

// New returns the default backend. Build with -tags llvm to use the system
// LLVM instead of llir.
func New(name string) smlir.Module {
	return NewLLIR(name)
}
