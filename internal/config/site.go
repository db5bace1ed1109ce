package config

import (
	"github.com/yuin/goldmark"

	"github.com/kyverno/policy-reporter-docs/internal/hooks"
)

// Highlighter renders a fenced code block to HTML.
type Highlighter func(rawCode, lang string) (string, error)

// Plugin is a named content-pipeline step applied while markdown is converted.
type Plugin struct {
	Name      string
	Extension goldmark.Extender
}

// Link describes a <link> tag injected into every page head.
type Link struct {
	Rel  string `yaml:"rel" json:"rel"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	Href string `yaml:"href" json:"href"`
}

// Meta describes a <meta> tag injected into every page head.
type Meta struct {
	Charset string `yaml:"charset,omitempty" json:"charset,omitempty"`
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

type Head struct {
	Meta []Meta
	Link []Link
}

type Markdown struct {
	Highlighter   Highlighter
	RehypePlugins []Plugin
}

type Content struct {
	Markdown Markdown
}

type Docs struct {
	PrimaryColor string
}

type Router struct {
	Base string
}

type Generate struct {
	Dir      string
	Fallback string
}

type Loading struct {
	Color string
}

// Site is the configuration handed to the site generator. It is built once
// per invocation and never persisted.
type Site struct {
	Target       string
	CSS          []string
	Docs         Docs
	Content      Content
	Router       Router
	Generate     Generate
	Hooks        hooks.Registry
	Head         Head
	Loading      Loading
	BuildModules []string
	Modules      []string
}

// Snapshot returns a serialisable view of the site. Function values are
// reported by name.
func (s *Site) Snapshot() map[string]any {
	plugins := make([]string, 0, len(s.Content.Markdown.RehypePlugins))
	for _, p := range s.Content.Markdown.RehypePlugins {
		plugins = append(plugins, p.Name)
	}
	var events []string
	if s.Hooks != nil {
		events = s.Hooks.Events()
	}
	return map[string]any{
		"target": s.Target,
		"css":    nonNil(s.CSS),
		"docs":   map[string]any{"primaryColor": s.Docs.PrimaryColor},
		"content": map[string]any{
			"markdown": map[string]any{
				"highlighter":   s.Content.Markdown.Highlighter != nil,
				"rehypePlugins": plugins,
			},
		},
		"router":   map[string]any{"base": s.Router.Base},
		"generate": map[string]any{"dir": s.Generate.Dir, "fallback": s.Generate.Fallback},
		"hooks":    nonNil(events),
		"head": map[string]any{
			"meta": nonNilMeta(s.Head.Meta),
			"link": nonNilLink(s.Head.Link),
		},
		"loading":      map[string]any{"color": s.Loading.Color},
		"buildModules": nonNil(s.BuildModules),
		"modules":      nonNil(s.Modules),
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilMeta(v []Meta) []Meta {
	if v == nil {
		return []Meta{}
	}
	return v
}

func nonNilLink(v []Link) []Link {
	if v == nil {
		return []Link{}
	}
	return v
}
