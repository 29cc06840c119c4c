package ir

import (
	"fmt"

	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/util"
)

// CodegenError is returned for the first construct the Builder cannot lower.
type CodegenError struct {
	Pos token.Pos
	Msg string
}

func (e *CodegenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Pretty formats the error with the offending source line.
func (e *CodegenError) Pretty() string {
	return util.PrettyAt(e.Pos, 1, e.Msg)
}

func errorf(pos token.Pos, format string, args ...any) error {
	return &CodegenError{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	}
}
