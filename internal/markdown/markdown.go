// Package markdown converts Markdown documents to HTML with goldmark,
// rendering code blocks with a [codeblock.Renderer].
package markdown

import (
	"bytes"

	"braces.dev/errtrace"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/snippet/internal/codeblock"
)

// Converter converts Markdown to HTML.
// It is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a Converter that renders code blocks with r.
//
// Documents are parsed as GitHub Flavored Markdown,
// headings get automatically generated IDs,
// and raw HTML in the document is passed through.
func NewConverter(r *codeblock.Renderer) *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&Extension{Renderer: r},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Converter{md: md}
}

// Convert renders the given Markdown document to HTML.
func (c *Converter) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buf.Bytes(), nil
}
