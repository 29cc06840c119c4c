package targets

import (
	smlir "github.com/jesperkha/sml/sml/ir"
)

// Verify runs the backend verifier on mod if it has one.
func Verify(mod smlir.Module) error {
	if v, ok := mod.(interface{ Verify() error }); ok {
		return v.Verify()
	}
	return nil
}

// Dispose frees backend resources held by mod, if any.
func Dispose(mod smlir.Module) {
	if d, ok := mod.(interface{ Dispose() }); ok {
		d.Dispose()
	}
}
