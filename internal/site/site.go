// Package site assembles the configuration the documentation generator
// consumes: theme defaults, the policy-reporter overrides, and the removal
// of unwanted build modules.
package site

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	"github.com/kyverno/policy-reporter-docs/internal/highlight"
	"github.com/kyverno/policy-reporter-docs/internal/hooks"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
	"github.com/kyverno/policy-reporter-docs/internal/markdown"
	"github.com/kyverno/policy-reporter-docs/internal/metrics"
	"github.com/kyverno/policy-reporter-docs/internal/theme"

	// registers the default theme
	_ "github.com/kyverno/policy-reporter-docs/internal/theme/contentdocs"
)

// Option customizes an assembly.
type Option func(*assembler)

// WithRecorder records callback activity on r.
func WithRecorder(r metrics.Recorder) Option {
	return func(a *assembler) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithLogger sets the logger used during assembly.
func WithLogger(l *slog.Logger) Option {
	return func(a *assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

type assembler struct {
	recorder metrics.Recorder
	logger   *slog.Logger
}

// BaseURL is the router base: the production base path for production
// builds, empty otherwise.
func BaseURL(env config.Environment, s config.Settings) string {
	if env.IsProduction() {
		return s.ProductionBase
	}
	return ""
}

// Assemble builds the site configuration for env.
func Assemble(env config.Environment, s config.Settings, opts ...Option) (*config.Site, error) {
	a := &assembler{recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, o := range opts {
		o(a)
	}
	start := time.Now()
	log := a.logger.With(logfields.BuildID(uuid.NewString()))

	baseURL := BaseURL(env, s)

	hk := hooks.Registry{}
	hk.On(hooks.EventSSRTemplateParams, a.counted(hooks.EventSSRTemplateParams, hooks.StripBaseHref(s.ProductionBase)))

	overrides := &config.Site{
		CSS:  append([]string(nil), s.CSS...),
		Docs: config.Docs{PrimaryColor: s.PrimaryColor},
		Content: config.Content{Markdown: config.Markdown{
			Highlighter: a.highlighter(),
			RehypePlugins: []config.Plugin{{
				Name:      markdown.URLsPluginName,
				Extension: &markdown.URLRewriter{Rewrite: a.imageRewriter(baseURL)},
			}},
		}},
		Router:   config.Router{Base: baseURL},
		Generate: config.Generate{Dir: s.GenerateDir},
		Hooks:    hk,
	}
	if s.Favicon != "" {
		overrides.Head.Link = []config.Link{{Rel: "icon", Type: "image/x-icon", Href: s.Favicon}}
	}

	out, err := theme.Apply(s.Theme, overrides)
	if err != nil {
		log.Error("Theme factory failed", logfields.Theme(s.Theme), logfields.Error(err))
		return nil, err
	}

	for _, id := range s.RemovedBuildModules {
		log.Debug("Removing build module", logfields.Module(id))
	}
	out.BuildModules = RemoveModules(out.BuildModules, s.RemovedBuildModules...)

	elapsed := time.Since(start)
	a.recorder.ObserveAssembleDuration(elapsed)
	log.Info("Assembled site configuration",
		logfields.Theme(s.Theme),
		logfields.Environment(env.NodeEnv),
		logfields.BaseURL(baseURL),
		slog.Int("build_modules", len(out.BuildModules)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return out, nil
}

// RemoveModules returns modules without any of ids. Matching is exact and
// the order of the remaining entries is kept.
func RemoveModules(modules []string, ids ...string) []string {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		if _, ok := drop[m]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (a *assembler) highlighter() config.Highlighter {
	return func(rawCode, lang string) (string, error) {
		out, err := highlight.Code(rawCode, lang)
		if err != nil {
			a.recorder.IncHighlight(lang, metrics.ResultFailure)
			a.logger.Debug("Highlight failed", logfields.Language(lang), logfields.Error(err))
			return "", err
		}
		a.recorder.IncHighlight(lang, metrics.ResultSuccess)
		return out, nil
	}
}

func (a *assembler) imageRewriter(baseURL string) markdown.URLFunc {
	return func(u *url.URL) (string, bool) {
		out, ok := markdown.RewriteImageURL(baseURL, u)
		if ok {
			a.recorder.IncURLRewrite(metrics.ResultSuccess)
		} else {
			a.recorder.IncURLRewrite(metrics.ResultSkipped)
		}
		return out, ok
	}
}

func (a *assembler) counted(event string, h hooks.Hook) hooks.Hook {
	return func(p *hooks.TemplateParams) {
		a.recorder.IncHookCall(event)
		h(p)
	}
}
