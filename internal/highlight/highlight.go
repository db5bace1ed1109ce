// Package highlight renders fenced code blocks with Chroma and wraps the
// result in the markup the documentation theme styles.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
)

const (
	openTemplate = `<pre class="highlight-pre-container"><code class="language-%s hljs">`
	closeTag     = `</code></pre>`

	// RootClass is the class on the <code> element that token rules are scoped under.
	RootClass = "hljs"
	// chromaRoot is the wrapper class Chroma scopes its CSS under.
	chromaRoot = ".chroma"
)

var formatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// Code highlights rawCode as lang. The language tag is placed in the class
// attribute verbatim. An empty or unknown language is an error.
func Code(rawCode, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lang == "" || lexer == nil {
		return "", derrors.UnknownLanguage(lang)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, rawCode)
	if err != nil {
		return "", derrors.HighlightFailed(lang, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, openTemplate, lang)
	if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
		return "", derrors.HighlightFailed(lang, err)
	}
	b.WriteString(closeTag)
	return b.String(), nil
}

// StyleSheet writes the CSS for the token classes emitted by Code, scoped
// under the code element's RootClass. Unknown style names fall back to
// Chroma's default style.
func StyleSheet(w io.Writer, style string) error {
	var b strings.Builder
	if err := formatter.WriteCSS(&b, styles.Get(style)); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.ReplaceAll(b.String(), chromaRoot, "."+RootClass))
	return err
}
