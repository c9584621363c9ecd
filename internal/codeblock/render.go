package codeblock

import (
	"html/template"
	"log"
	"strconv"
	"strings"

	"go.abhg.dev/snippet/internal/highlight"
	"go.abhg.dev/snippet/internal/linebuf"
)

// Highlighter syntax-highlights code.
type Highlighter interface {
	// Known reports whether the highlighter supports the given language.
	Known(lang string) bool

	// Highlight renders code as escaped HTML.
	// The output must have the same number of lines as the input,
	// in the same order.
	Highlight(code, lang string) (string, error)
}

var _ Highlighter = (*highlight.Chroma)(nil)

// Class names used in rendered blocks.
const (
	SnippetClass         = "snippet"
	HighlighterClass     = "chroma"
	LineClass            = "line"
	HighlightedLineClass = "line--highlighted"
)

// Renderer renders code blocks to HTML.
//
// A Renderer is a pure function of its inputs:
// it holds no state between calls, and is safe for concurrent use
// so long as its Highlighter is.
type Renderer struct {
	// Highlighter used for syntax highlighting.
	// If unset, code is not highlighted.
	Highlighter Highlighter

	// Logger receives warnings about code that failed to highlight.
	// If unset, warnings are discarded.
	Logger *log.Logger
}

// Render renders a code block with the given info string.
//
// The output is always well-formed:
// if the code can't be highlighted, it's included as escaped text.
func (r *Renderer) Render(code, info string) string {
	return r.RenderInfo(code, ParseInfo(info))
}

// RenderInfo renders a code block with an already parsed info string.
func (r *Renderer) RenderInfo(code string, info Info) string {
	body, ok := r.highlight(code, info.Language)
	if !ok {
		body = template.HTMLEscapeString(code)
	}

	var sb strings.Builder
	lang := template.HTMLEscapeString(info.Language)
	sb.WriteString(`<pre class="` + SnippetClass + " " + HighlighterClass + " language-" + lang + `"`)
	sb.WriteString(` data-language="` + lang + `"><code>`)
	writeLines(&sb, body, info.Lines())
	sb.WriteString("</code></pre>")
	return sb.String()
}

func (r *Renderer) highlight(code, lang string) (string, bool) {
	if r.Highlighter == nil || !r.Highlighter.Known(lang) {
		return "", false
	}

	body, err := r.Highlighter.Highlight(code, lang)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Printf("warning: unable to highlight %v code: %v", lang, err)
		}
		return "", false
	}
	return body, true
}

// WrapLines wraps each line of body in its own element,
// and joins them with "\n".
//
// Line i (1-based) gets the class [HighlightedLineClass]
// if i is in highlighted, and [LineClass] otherwise.
func WrapLines(body string, highlighted LineSet) string {
	var sb strings.Builder
	writeLines(&sb, body, highlighted)
	return sb.String()
}

func writeLines(sb *strings.Builder, body string, highlighted LineSet) {
	for i, line := range linebuf.Split(body) {
		n := i + 1
		if i > 0 {
			sb.WriteByte('\n')
		}

		class := LineClass
		if highlighted.Has(n) {
			class = HighlightedLineClass
		}
		sb.WriteString(`<span class="` + class + `" data-line="` + strconv.Itoa(n) + `">`)
		sb.WriteString(line)
		sb.WriteString("</span>")
	}
}
