package markdown

import (
	"bytes"
	"errors"
	"io"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	nethtml "golang.org/x/net/html"
)

const rawHTMLOmitted = "<!-- raw HTML omitted -->"

// rawHTMLRenderer renders inline and block raw HTML with URL attributes
// rewritten. It follows the html renderer's unsafe option.
type rawHTMLRenderer struct {
	gmhtml.Config
	rewrite URLFunc
}

func newRawHTMLRenderer(rewrite URLFunc) *rawHTMLRenderer {
	return &rawHTMLRenderer{Config: gmhtml.NewConfig(), rewrite: rewrite}
}

// SetOption implements renderer.SetOptioner.
func (r *rawHTMLRenderer) SetOption(name renderer.OptionName, value any) {
	r.Config.SetOption(name, value)
}

func (r *rawHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindRawHTML, r.renderRawHTML)
	reg.Register(gmast.KindHTMLBlock, r.renderHTMLBlock)
}

func (r *rawHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkSkipChildren, nil
	}
	if !r.Unsafe {
		_, _ = w.WriteString(rawHTMLOmitted)
		return gmast.WalkSkipChildren, nil
	}
	n := node.(*gmast.RawHTML)
	var raw bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		raw.Write(seg.Value(source))
	}
	_, _ = w.Write(rewriteHTMLURLs(raw.Bytes(), r.rewrite))
	return gmast.WalkSkipChildren, nil
}

func (r *rawHTMLRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	n := node.(*gmast.HTMLBlock)
	if entering {
		if !r.Unsafe {
			_, _ = w.WriteString(rawHTMLOmitted + "\n")
			return gmast.WalkContinue, nil
		}
		var raw bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			raw.Write(line.Value(source))
		}
		r.Writer.SecureWrite(w, rewriteHTMLURLs(raw.Bytes(), r.rewrite))
		return gmast.WalkContinue, nil
	}
	if n.HasClosure() {
		if !r.Unsafe {
			_, _ = w.WriteString(rawHTMLOmitted + "\n")
			return gmast.WalkContinue, nil
		}
		r.Writer.SecureWrite(w, rewriteHTMLURLs(n.ClosureLine.Value(source), r.rewrite))
	}
	return gmast.WalkContinue, nil
}

// rewriteHTMLURLs passes src and href attributes of every tag in fragment
// through rewrite. Tags without a rewritten attribute are copied byte for byte.
func rewriteHTMLURLs(fragment []byte, rewrite URLFunc) []byte {
	z := nethtml.NewTokenizer(bytes.NewReader(fragment))
	var out bytes.Buffer
	for {
		tt := z.Next()
		raw := append([]byte(nil), z.Raw()...)
		if tt == nethtml.ErrorToken {
			out.Write(raw)
			if !errors.Is(z.Err(), io.EOF) {
				return fragment
			}
			return out.Bytes()
		}
		if tt != nethtml.StartTagToken && tt != nethtml.SelfClosingTagToken {
			out.Write(raw)
			continue
		}

		tok := z.Token()
		changed := false
		for i, a := range tok.Attr {
			if a.Namespace != "" || (a.Key != "src" && a.Key != "href") {
				continue
			}
			if v, ok := applyURL(rewrite, a.Val); ok {
				tok.Attr[i].Val = v
				changed = true
			}
		}
		if changed {
			out.WriteString(tok.String())
		} else {
			out.Write(raw)
		}
	}
}
