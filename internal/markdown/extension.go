package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/snippet/internal/codeblock"
)

// Extension is a goldmark extension that renders code blocks
// with a [codeblock.Renderer].
//
// Fenced code blocks pass their info string to the renderer.
// Indented code blocks have no info string,
// so they render as [codeblock.DefaultLanguage].
type Extension struct {
	Renderer *codeblock.Renderer // required
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend registers the code block renderer with m.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			// Lower values take precedence.
			// goldmark's own HTML renderer is at 1000.
			util.Prioritized(&codeBlockRenderer{r: e.Renderer}, 100),
		),
	)
}

type codeBlockRenderer struct {
	r *codeblock.Renderer
}

var _ renderer.NodeRenderer = (*codeBlockRenderer)(nil)

func (cr *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, cr.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, cr.renderCodeBlock)
}

func (cr *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, src []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)
	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(src))
	}
	return cr.render(w, src, n, info)
}

func (cr *codeBlockRenderer) renderCodeBlock(
	w util.BufWriter, src []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	return cr.render(w, src, node, "")
}

func (cr *codeBlockRenderer) render(w util.BufWriter, src []byte, node ast.Node, info string) (ast.WalkStatus, error) {
	var code strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(src))
	}

	_, _ = w.WriteString(cr.r.Render(code.String(), info))
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}
