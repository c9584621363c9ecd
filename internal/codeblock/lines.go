package codeblock

import (
	"sort"
	"strconv"
	"strings"
)

// LineSet is a set of 1-based line numbers.
type LineSet map[int]struct{}

// Has reports whether line n is in the set.
func (s LineSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of lines in the set.
func (s LineSet) Len() int {
	return len(s)
}

// Sorted returns the lines in the set in ascending order.
func (s LineSet) Sorted() []int {
	lines := make([]int, 0, len(s))
	for n := range s {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// ParseRanges expands a line range specification into a LineSet.
//
// The specification is a comma-separated list of tokens.
// Each token is a line number ("3"), or an inclusive range ("5-7").
// Ranges may be written in either direction: "7-5" is the same as "5-7".
//
// Tokens that don't start with a positive number are ignored,
// and so is a line numbered 0.
// If the end of a range is missing or not a positive number,
// the token names only its start line.
//
// Ranges are expanded eagerly.
// A range like "1-1000000" produces a million entries.
func ParseRanges(spec string) LineSet {
	lines := make(LineSet)
	for _, tok := range strings.Split(spec, ",") {
		parts := strings.Split(tok, "-")
		start, err := strconv.Atoi(parts[0])
		if err != nil || start == 0 {
			continue
		}

		end := start
		if len(parts) > 1 {
			if n, err := strconv.Atoi(parts[1]); err == nil && n != 0 {
				end = n
			}
		}

		lo, hi := min(start, end), max(start, end)
		for n := lo; ; n++ {
			lines[n] = struct{}{}
			if n == hi {
				break
			}
		}
	}
	return lines
}
