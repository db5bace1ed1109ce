// Package hooks holds the renderer lifecycle callbacks registered by the
// site configuration.
package hooks

import (
	"sort"
	"strings"
)

// EventSSRTemplateParams fires after server-side rendering, before the
// document template is filled in.
const EventSSRTemplateParams = "vue-renderer:ssr:templateParams"

// TemplateParams are the renderer's output fragments. Hooks mutate them in place.
type TemplateParams struct {
	HTMLAttrs   string
	HeadAttrs   string
	BodyAttrs   string
	Head        string
	App         string
	BodyScripts string
}

// Hook is a lifecycle callback.
type Hook func(params *TemplateParams)

// Registry maps lifecycle event names to their callbacks in registration order.
type Registry map[string][]Hook

// On appends h to the callbacks for event.
func (r Registry) On(event string, h Hook) {
	if h == nil {
		return
	}
	r[event] = append(r[event], h)
}

// Call runs the callbacks for event and returns how many ran.
func (r Registry) Call(event string, params *TemplateParams) int {
	hs := r[event]
	for _, h := range hs {
		h(params)
	}
	return len(hs)
}

// Merge appends other's callbacks after the receiver's, event by event.
func (r Registry) Merge(other Registry) {
	for event, hs := range other {
		r[event] = append(r[event], hs...)
	}
}

// Events returns the registered event names, sorted.
func (r Registry) Events() []string {
	out := make([]string, 0, len(r))
	for event, hs := range r {
		if len(hs) > 0 {
			out = append(out, event)
		}
	}
	sort.Strings(out)
	return out
}

// StripBaseHref returns a hook that removes the first literal
// <base href="base"> tag from the rendered head.
func StripBaseHref(base string) Hook {
	tag := `<base href="` + base + `">`
	return func(params *TemplateParams) {
		params.Head = strings.Replace(params.Head, tag, "", 1)
	}
}

// StripBaseHrefFromHead removes the GitHub Pages base tag from the head.
// Static pages resolve their assets relative to the router base already.
func StripBaseHrefFromHead(params *TemplateParams) {
	StripBaseHref("/policy-reporter/")(params)
}
