package sml

import (
	"strings"
)

// Pretty formats err for the terminal. Errors from the compiler phases are
// shown with the source line they point at, joined errors are formatted one
// by one.
func Pretty(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := []string{}
		for _, e := range joined.Unwrap() {
			parts = append(parts, strings.TrimRight(Pretty(e), "\n"))
		}
		return strings.Join(parts, "\n")
	}

	if p, ok := err.(interface{ Pretty() string }); ok {
		return p.Pretty()
	}

	return err.Error()
}
