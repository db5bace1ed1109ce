package highlight

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
)

func TestCode_Template(t *testing.T) {
	for _, lang := range []string{"go", "yaml", "bash", "json", "plaintext"} {
		t.Run(lang, func(t *testing.T) {
			out, err := Code("key: value\n", lang)
			require.NoError(t, err)

			prefix := `<pre class="highlight-pre-container"><code class="language-` + lang + ` hljs">`
			assert.True(t, strings.HasPrefix(out, prefix), "got %q", out)
			assert.True(t, strings.HasSuffix(out, "</code></pre>"), "got %q", out)
			assert.Equal(t, 1, strings.Count(out, "<pre"), "chroma must not add its own <pre>")
		})
	}
}

func TestCode_EscapesSource(t *testing.T) {
	out, err := Code(`if a < b && c > d {}`, "go")
	require.NoError(t, err)

	assert.Contains(t, out, "&lt;")
	assert.Contains(t, out, "&amp;&amp;")
	assert.NotContains(t, out, "a < b")
}

func TestCode_KeepsLanguageTagVerbatim(t *testing.T) {
	out, err := Code("apiVersion: v1", "YAML")
	require.NoError(t, err)
	assert.Contains(t, out, `class="language-YAML hljs"`)
}

func TestCode_UnknownLanguage(t *testing.T) {
	for _, lang := range []string{"", "definitely-not-a-language"} {
		_, err := Code("x", lang)
		require.Error(t, err)
		assert.True(t, derrors.IsCategory(err, derrors.CategoryHighlight))
	}
}

func TestStyleSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StyleSheet(&buf, "monokai"))
	assert.Contains(t, buf.String(), ".hljs .k ")
	assert.NotContains(t, buf.String(), ".chroma")

	buf.Reset()
	require.NoError(t, StyleSheet(&buf, "no-such-style"))
	assert.NotEmpty(t, buf.String())
}

var spanClass = regexp.MustCompile(`<span class="([a-z0-9]+)">`)

func TestStyleSheet_MatchesCodeMarkup(t *testing.T) {
	out, err := Code("package main\n\nfunc main() { return }\n", "go")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, StyleSheet(&buf, "monokai"))
	css := buf.String()

	assert.Contains(t, out, `class="language-go hljs"`)
	assert.Contains(t, css, ".hljs {", "background rule must target the code element")

	matched := 0
	for _, m := range spanClass.FindAllStringSubmatch(out, -1) {
		if strings.Contains(css, ".hljs ."+m[1]+" ") {
			matched++
		}
	}
	assert.Positive(t, matched, "no stylesheet rule applies to the highlighted tokens:\n%s", out)
}
