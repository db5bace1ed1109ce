package head

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"

	"github.com/kyverno/policy-reporter-docs/internal/config"
)

func TestRender_FaviconAndMeta(t *testing.T) {
	out, err := Render(
		[]config.Link{{Rel: "icon", Type: "image/x-icon", Href: "https://kyverno.github.io/policy-reporter/favicon.ico"}},
		[]config.Meta{{Charset: "utf-8"}, {Name: "viewport", Content: "width=device-width, initial-scale=1"}},
	)
	require.NoError(t, err)

	assert.Contains(t, out, `<meta charset="utf-8"/>`)
	assert.Contains(t, out, `<link rel="icon" type="image/x-icon" href="https://kyverno.github.io/policy-reporter/favicon.ico"/>`)
	assert.Less(t, strings.Index(out, "<meta"), strings.Index(out, "<link"))
}

func TestRender_EscapesAttributes(t *testing.T) {
	out, err := Render([]config.Link{{Rel: "icon", Href: `/x.ico?a=1&b="2"`}}, nil)
	require.NoError(t, err)

	nodes, err := nethtml.ParseFragment(strings.NewReader(out), &nethtml.Node{Type: nethtml.ElementNode, Data: "head"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	var href string
	for _, a := range nodes[0].Attr {
		if a.Key == "href" {
			href = a.Val
		}
	}
	assert.Equal(t, `/x.ico?a=1&b="2"`, href)
	assert.NotContains(t, out, `type=`)
}

func TestStylesheets(t *testing.T) {
	out, err := Stylesheets([]string{"a.css", "b.css"})
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" href="a.css"/><link rel="stylesheet" href="b.css"/>`, out)
}

func TestBaseTag(t *testing.T) {
	assert.Equal(t, "", BaseTag(""))
	assert.Equal(t, `<base href="/policy-reporter/">`, BaseTag("/policy-reporter/"))
}
