// Package markdown holds the content-pipeline plugins of the documentation
// site and wires them into a goldmark converter.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
)

// New builds a converter carrying the site's highlighter and plugins.
func New(site *config.Site) goldmark.Markdown {
	exts := []goldmark.Extender{extension.GFM}
	if h := site.Content.Markdown.Highlighter; h != nil {
		exts = append(exts, &CodeHighlighter{Highlight: h})
	}
	for _, p := range site.Content.Markdown.RehypePlugins {
		if p.Extension != nil {
			exts = append(exts, p.Extension)
		}
	}
	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// Convert renders source to an HTML fragment.
func Convert(md goldmark.Markdown, source []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", derrors.MarkdownFailed(err)
	}
	return buf.String(), nil
}
