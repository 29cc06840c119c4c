package util

import "fmt"

// Assert panics if v is false. Only used for conditions the earlier phases
// guarantee, never for user errors.
func Assert(v bool, format string, args ...any) {
	if !v {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
	}
}
