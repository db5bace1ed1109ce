package contentdocs

import (
	"testing"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	"github.com/kyverno/policy-reporter-docs/internal/theme"
)

func TestThemeRegistered(t *testing.T) {
	tm := theme.Get(Name)
	if tm == nil {
		t.Fatalf("theme %s not registered", Name)
	}
	if tm.Name() != config.DefaultTheme {
		t.Fatalf("theme name %q does not match the default settings theme %q", tm.Name(), config.DefaultTheme)
	}
}

func TestDefaultsShipPWAModule(t *testing.T) {
	d := Theme{}.Defaults()
	found := false
	for _, m := range d.BuildModules {
		if m == config.PWAModule {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s in theme build modules %v", config.PWAModule, d.BuildModules)
	}
	if d.Target != "static" {
		t.Fatalf("target = %q, want static", d.Target)
	}
	if d.Hooks == nil {
		t.Fatal("hooks registry must be initialised")
	}
}
