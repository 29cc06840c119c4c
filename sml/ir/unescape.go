package ir

import "strings"

// Unescape replaces the escape sequences \n, \t, \r, and \\ in s with the
// characters they stand for. A backslash followed by anything else is kept
// as is, together with the character after it.
func Unescape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			if r, ok := escapes[s[i+1]]; ok {
				sb.WriteByte(r)
				i++
				continue
			}
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
}
