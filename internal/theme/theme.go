// Package theme is the registry of base documentation themes. A theme
// supplies a complete site configuration; Apply layers overrides on top.
package theme

import (
	"sort"
	"sync"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
)

// Theme provides the default configuration of a documentation site.
type Theme interface {
	Name() string
	// Defaults returns a fresh configuration; callers may mutate it.
	Defaults() *config.Site
}

var (
	regMu sync.RWMutex
	reg   = map[string]Theme{}
)

// Register registers a Theme implementation (idempotent).
func Register(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a theme by name.
func Get(name string) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// Names lists registered themes, sorted.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Apply returns the named theme's defaults with overrides merged in.
func Apply(name string, overrides *config.Site) (*config.Site, error) {
	t := Get(name)
	if t == nil {
		return nil, derrors.UnknownTheme(name).WithContext("available", Names())
	}
	site := t.Defaults()
	if overrides != nil {
		merge(site, overrides)
	}
	return site, nil
}
