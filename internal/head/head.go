// Package head renders the page head tags declared in the site configuration.
package head

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kyverno/policy-reporter-docs/internal/config"
)

// Render renders meta tags followed by link tags, in declaration order.
func Render(links []config.Link, meta []config.Meta) (string, error) {
	var b strings.Builder
	for _, m := range meta {
		n := element(atom.Meta, "charset", m.Charset, "name", m.Name, "content", m.Content)
		if err := nethtml.Render(&b, n); err != nil {
			return "", err
		}
	}
	for _, l := range links {
		n := element(atom.Link, "rel", l.Rel, "type", l.Type, "href", l.Href)
		if err := nethtml.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Stylesheets renders a stylesheet link for each path.
func Stylesheets(paths []string) (string, error) {
	links := make([]config.Link, 0, len(paths))
	for _, p := range paths {
		links = append(links, config.Link{Rel: "stylesheet", Href: p})
	}
	return Render(links, nil)
}

// BaseTag returns the <base> tag the router emits for base, or "" when no
// base is set. The markup matches what the SSR hook strips.
func BaseTag(base string) string {
	if base == "" {
		return ""
	}
	return `<base href="` + html.EscapeString(base) + `">`
}

// element builds a void element from key/value pairs, skipping empty values.
func element(a atom.Atom, kv ...string) *nethtml.Node {
	n := &nethtml.Node{Type: nethtml.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		n.Attr = append(n.Attr, nethtml.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}
