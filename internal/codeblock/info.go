package codeblock

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLanguage is the language of code blocks
// that don't specify one.
const DefaultLanguage = "text"

const _linesMarker = "lines="

// Info is a parsed info string.
//
// It is either plain, naming only a language,
// or annotated with a line range specification.
type Info struct {
	// Language of the code block.
	// This is never empty.
	Language string

	// Ranges is the unparsed line range specification
	// that followed "lines=" in the info string.
	// This is empty for plain info strings.
	Ranges string
}

// Annotated reports whether the info string
// asked for lines to be highlighted.
func (i Info) Annotated() bool {
	return len(i.Ranges) > 0
}

// Lines expands the line range specification into a set of line numbers.
func (i Info) Lines() LineSet {
	return ParseRanges(i.Ranges)
}

// ParseInfo parses the info string of a fenced code block.
//
// The info string is annotated if it contains "lines=",
// preceded by whitespace and followed by at least one non-space character.
// The language is everything before that whitespace,
// and the range specification is the run of non-space characters
// after "lines=".
// If there are multiple such markers, the first one is used.
//
// Anything else is a plain info string
// whose language is the entire string with surrounding space removed.
//
// ParseInfo never fails. The language defaults to [DefaultLanguage].
func ParseInfo(s string) Info {
	var info Info
	if lang, ranges, ok := cutLinesMarker(s); ok {
		info = Info{Language: lang, Ranges: ranges}
	} else {
		info = Info{Language: s}
	}

	info.Language = strings.TrimSpace(info.Language)
	if len(info.Language) == 0 {
		info.Language = DefaultLanguage
	}
	return info
}

// cutLinesMarker looks for the first usable "lines=" marker in s,
// and splits s around it.
func cutLinesMarker(s string) (before, ranges string, ok bool) {
	for off := 0; off < len(s); {
		idx := strings.Index(s[off:], _linesMarker)
		if idx < 0 {
			break
		}
		idx += off
		off = idx + len(_linesMarker)

		r, _ := utf8.DecodeLastRuneInString(s[:idx])
		if idx == 0 || !unicode.IsSpace(r) {
			continue
		}

		rest := s[off:]
		if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
			rest = rest[:end]
		}
		if len(rest) == 0 {
			continue
		}

		return s[:idx], rest, true
	}
	return "", "", false
}
