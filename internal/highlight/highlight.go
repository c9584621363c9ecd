package highlight

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"go.abhg.dev/snippet/internal/linebuf"
)

// Chroma highlights code with Chroma,
// producing one line of HTML for each line of input.
//
// A Chroma must not be modified after its first use.
// It is safe for concurrent use after that.
type Chroma struct {
	// Style used for syntax highlighting of code.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	// Aliases maps language tags to the names of Chroma lexers.
	// Tags not listed here are looked up in Chroma directly.
	Aliases map[string]string

	// Lexers holds additional lexers by language tag.
	// These take precedence over Aliases and Chroma's own lexers.
	Lexers map[string]Lexer

	once      sync.Once
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (h *Chroma) init() {
	h.once.Do(func() {
		h.style = h.Style
		if h.style == nil {
			h.style = PlainStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Chroma) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style))
}

// Known reports whether the highlighter has a lexer for the given language.
func (h *Chroma) Known(lang string) bool {
	_, ok := h.lexer(lang)
	return ok
}

func (h *Chroma) lexer(lang string) (Lexer, bool) {
	if l, ok := h.Lexers[lang]; ok {
		return l, true
	}
	if name, ok := h.Aliases[lang]; ok {
		lang = name
	}
	return LookupLexer(lang)
}

// Highlight renders the given code as HTML
// using the lexer for the given language.
//
// The output has the same number of lines as code,
// as reported by [linebuf.Split], joined with "\n".
// It does not include a surrounding <pre> or <code>.
//
// An error is returned if the language is not known,
// or if the lexer fails.
func (h *Chroma) Highlight(code, lang string) (string, error) {
	h.init()

	lexer, ok := h.lexer(lang)
	if !ok {
		return "", errtrace.Errorf("no lexer for language %q", lang)
	}

	want := len(linebuf.Split(code))
	tokens, err := lexer.Lex(linebuf.Normalize(code))
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	// Lexers may add a trailing newline of their own,
	// so the token stream can have more lines than the input.
	// Those are dropped, and missing lines are left empty.
	lines := chroma.SplitTokensIntoLines(tokens)
	var buf bytes.Buffer
	for i := 0; i < want; i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if i >= len(lines) {
			continue
		}

		it := chroma.Literator(trimNewline(lines[i])...)
		if err := h.formatter.Format(&buf, h.style, it); err != nil {
			return "", errtrace.Wrap(err)
		}
	}
	return buf.String(), nil
}

// trimNewline drops the line terminator from a line of tokens.
func trimNewline(line []chroma.Token) []chroma.Token {
	out := make([]chroma.Token, 0, len(line))
	for _, tok := range line {
		tok.Value = strings.TrimSuffix(tok.Value, "\n")
		if len(tok.Value) > 0 {
			out = append(out, tok)
		}
	}
	return out
}
