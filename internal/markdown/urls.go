package markdown

import (
	"net/url"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// URLsPluginName names the URL rewriting step in the site configuration.
const URLsPluginName = "rehype-urls"

// URLFunc returns a replacement for u, or false to keep it.
type URLFunc func(u *url.URL) (string, bool)

// URLRewriter is a goldmark extension applying Rewrite to every link and
// image destination, and to src and href attributes of raw HTML.
// Destinations that do not parse as URLs are kept.
type URLRewriter struct {
	Rewrite URLFunc
}

// Extend implements goldmark.Extender.
func (e *URLRewriter) Extend(m goldmark.Markdown) {
	if e.Rewrite == nil {
		return
	}
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&urlTransformer{rewrite: e.Rewrite}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newRawHTMLRenderer(e.Rewrite), 100),
	))
}

type urlTransformer struct {
	rewrite URLFunc
}

func (t *urlTransformer) Transform(doc *gmast.Document, _ text.Reader, _ parser.Context) {
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Image:
			node.Destination = t.apply(node.Destination)
		case *gmast.Link:
			node.Destination = t.apply(node.Destination)
		}
		return gmast.WalkContinue, nil
	})
}

func (t *urlTransformer) apply(dest []byte) []byte {
	if out, ok := applyURL(t.rewrite, string(dest)); ok {
		return []byte(out)
	}
	return dest
}

func applyURL(rewrite URLFunc, dest string) (string, bool) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", false
	}
	return rewrite(u)
}
