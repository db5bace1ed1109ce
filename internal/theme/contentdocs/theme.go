// Package contentdocs registers the content docs theme: a static,
// server-rendered documentation layout with Tailwind, color mode, PWA and
// web font build modules.
package contentdocs

import (
	"github.com/kyverno/policy-reporter-docs/internal/config"
	"github.com/kyverno/policy-reporter-docs/internal/hooks"
	"github.com/kyverno/policy-reporter-docs/internal/theme"
)

// Name is the registry key of the theme.
const Name = "content-theme-docs"

type Theme struct{}

func (Theme) Name() string { return Name }

func (Theme) Defaults() *config.Site {
	return &config.Site{
		Target: "static",
		Docs:   config.Docs{PrimaryColor: "#00CD81"},
		Generate: config.Generate{
			Fallback: "404.html",
		},
		Hooks: hooks.Registry{},
		Head: config.Head{
			Meta: []config.Meta{
				{Charset: "utf-8"},
				{Name: "viewport", Content: "width=device-width, initial-scale=1"},
			},
		},
		Loading: config.Loading{Color: "#00CD81"},
		BuildModules: []string{
			"@nuxtjs/tailwindcss",
			"@nuxtjs/color-mode",
			config.PWAModule,
			"@nuxtjs/google-fonts",
		},
		Modules: []string{"nuxt-i18n", "@nuxt/content"},
	}
}

func init() { theme.Register(Theme{}) }
