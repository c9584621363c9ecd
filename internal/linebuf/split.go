// Package linebuf provides line splitting utilities
// that don't care which newline convention the input uses.
package linebuf

import "strings"

// Split splits s into lines.
// "\r\n", "\r", and "\n" are all treated as line separators.
//
// The separators are not included in the returned lines.
// A trailing separator produces a trailing empty line,
// so Split always returns at least one element:
//
//	Split("")       == [""]
//	Split("a\nb")   == ["a", "b"]
//	Split("a\r\n")  == ["a", ""]
func Split(s string) []string {
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for {
		idx := strings.IndexAny(s, "\r\n")
		if idx < 0 {
			break
		}

		lines = append(lines, s[:idx])
		if s[idx] == '\r' && idx+1 < len(s) && s[idx+1] == '\n' {
			idx++ // \r\n is a single separator
		}
		s = s[idx+1:]
	}
	return append(lines, s)
}

// Normalize replaces every "\r\n" and "\r" in s with "\n".
//
// The number of lines reported by [Split] is the same
// before and after normalization.
func Normalize(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return strings.Join(Split(s), "\n")
}
