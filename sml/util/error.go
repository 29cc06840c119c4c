package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jesperkha/sml/sml/token"
)

// ErrorList collects the errors of one compiler phase.
type ErrorList struct {
	errs []error
}

func (e *ErrorList) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorList) Len() int {
	return len(e.errs)
}

// Error joins all errors in the list, or returns nil if it is empty.
func (e *ErrorList) Error() error {
	return errors.Join(e.errs...)
}

// Pretty shows msg above the source line with the columns colStart up to
// colEnd underlined.
func Pretty(line int, lineStr string, msg string, colStart int, colEnd int) string {
	length := max(colEnd-colStart, 1)

	err := ""
	err += fmt.Sprintf("error: %s\n", msg)
	err += fmt.Sprintf("%3d | %s\n", line, lineStr)
	err += fmt.Sprintf("    | %s%s\n", strings.Repeat(" ", colStart), strings.Repeat("^", length))
	return err
}

// PrettyAt formats msg with the source line pos refers to. Falls back to a
// plain file:line:col prefix when the position has no source attached.
func PrettyAt(pos token.Pos, length int, msg string) string {
	if pos.File == nil || pos.Row >= len(pos.File.Lines) {
		return msg
	}

	header := fmt.Sprintf("%s:%s: %s", pos.File.Name, pos, msg)
	return Pretty(pos.Row+1, pos.File.Line(pos.Row), header, pos.Col, pos.Col+length)
}
