package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/kyverno/policy-reporter-docs/internal/config"
)

// fallbackLanguage is used for fences without an info string.
const fallbackLanguage = "plaintext"

// CodeHighlighter is a goldmark extension rendering fenced code blocks
// through Highlight. Highlighter errors abort the conversion.
type CodeHighlighter struct {
	Highlight config.Highlighter
}

// Extend implements goldmark.Extender.
func (e *CodeHighlighter) Extend(m goldmark.Markdown) {
	if e.Highlight == nil {
		return
	}
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeBlockRenderer{highlight: e.Highlight}, 100),
	))
}

type codeBlockRenderer struct {
	highlight config.Highlighter
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	n := node.(*gmast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	lang := string(n.Language(source))
	if lang == "" {
		lang = fallbackLanguage
	}

	out, err := r.highlight(code.String(), lang)
	if err != nil {
		return gmast.WalkStop, err
	}
	_, _ = w.WriteString(out)
	_ = w.WriteByte('\n')
	return gmast.WalkSkipChildren, nil
}
