// Package render previews a single markdown page through an assembled site
// configuration: content plugins, head tags and lifecycle hooks.
package render

import (
	"strings"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/head"
	"github.com/kyverno/policy-reporter-docs/internal/hooks"
	"github.com/kyverno/policy-reporter-docs/internal/markdown"
)

// Page renders source as a complete HTML document.
func Page(site *config.Site, source []byte) (string, error) {
	body, err := markdown.Convert(markdown.New(site), source)
	if err != nil {
		return "", err
	}
	tags, err := head.Render(site.Head.Link, site.Head.Meta)
	if err != nil {
		return "", derrors.RenderFailed("head", err)
	}
	css, err := head.Stylesheets(site.CSS)
	if err != nil {
		return "", derrors.RenderFailed("stylesheets", err)
	}

	params := &hooks.TemplateParams{
		HTMLAttrs: `lang="en"`,
		Head:      head.BaseTag(site.Router.Base) + tags + css,
		App:       `<div id="__nuxt">` + body + `</div>`,
	}
	if site.Hooks != nil {
		site.Hooks.Call(hooks.EventSSRTemplateParams, params)
	}
	return document(params), nil
}

func document(p *hooks.TemplateParams) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	b.WriteString("<html" + attrs(p.HTMLAttrs) + ">\n")
	b.WriteString("<head" + attrs(p.HeadAttrs) + ">" + p.Head + "</head>\n")
	b.WriteString("<body" + attrs(p.BodyAttrs) + ">" + p.App + p.BodyScripts + "</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

func attrs(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
