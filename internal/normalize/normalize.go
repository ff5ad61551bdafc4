// Package normalize collapses whitespace runs in raw input text.
package normalize

import "strings"

// Text collapses every run of whitespace in s to a single space. It does
// not trim leading/trailing whitespace and does not touch non-whitespace
// bytes — splitting Sanskrit from non-Sanskrit runs is the chedaka's job,
// not this package's.
func Text(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
