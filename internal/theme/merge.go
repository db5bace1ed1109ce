package theme

import (
	"github.com/kyverno/policy-reporter-docs/internal/config"
	"github.com/kyverno/policy-reporter-docs/internal/hooks"
)

// merge layers src over dst:
//   - scalars and functions: src wins when set
//   - sequences: src entries first, then the theme's
//   - hooks: theme callbacks run before src callbacks
func merge(dst, src *config.Site) {
	dst.Target = pick(src.Target, dst.Target)
	dst.CSS = concat(src.CSS, dst.CSS)
	dst.Docs.PrimaryColor = pick(src.Docs.PrimaryColor, dst.Docs.PrimaryColor)

	md := &dst.Content.Markdown
	if src.Content.Markdown.Highlighter != nil {
		md.Highlighter = src.Content.Markdown.Highlighter
	}
	md.RehypePlugins = concat(src.Content.Markdown.RehypePlugins, md.RehypePlugins)

	dst.Router.Base = pick(src.Router.Base, dst.Router.Base)
	dst.Generate.Dir = pick(src.Generate.Dir, dst.Generate.Dir)
	dst.Generate.Fallback = pick(src.Generate.Fallback, dst.Generate.Fallback)

	if dst.Hooks == nil {
		dst.Hooks = hooks.Registry{}
	}
	dst.Hooks.Merge(src.Hooks)

	dst.Head.Meta = concat(src.Head.Meta, dst.Head.Meta)
	dst.Head.Link = concat(src.Head.Link, dst.Head.Link)
	dst.Loading.Color = pick(src.Loading.Color, dst.Loading.Color)
	dst.BuildModules = concat(src.BuildModules, dst.BuildModules)
	dst.Modules = concat(src.Modules, dst.Modules)
}

func pick(override, base string) string {
	if override != "" {
		return override
	}
	return base
}

func concat[T any](first, second []T) []T {
	if len(first) == 0 {
		return second
	}
	out := make([]T, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}
