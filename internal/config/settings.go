package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
)

// Settings holds the tunable constants of the documentation site. Every
// field has a default so an absent settings file yields the published site.
type Settings struct {
	Theme               string   `yaml:"theme"`
	ProductionBase      string   `yaml:"production_base"`
	GenerateDir         string   `yaml:"generate_dir"`
	PrimaryColor        string   `yaml:"primary_color"`
	CSS                 []string `yaml:"css"`
	Favicon             string   `yaml:"favicon"`
	RemovedBuildModules []string `yaml:"removed_build_modules"`
	HighlightStyle      string   `yaml:"highlight_style"`
}

const (
	DefaultTheme          = "content-theme-docs"
	DefaultProductionBase = "/policy-reporter/"
	DefaultGenerateDir    = "../docs"
	DefaultPrimaryColor   = "#E24F55"
	DefaultFavicon        = "https://kyverno.github.io/policy-reporter/favicon.ico"
	DefaultHighlightStyle = "monokai"

	// PWAModule is the build module excluded from every assembled site.
	PWAModule = "@nuxtjs/pwa"
)

// DefaultSettings returns the settings used to publish the site on GitHub Pages.
func DefaultSettings() Settings {
	return Settings{
		Theme:          DefaultTheme,
		ProductionBase: DefaultProductionBase,
		GenerateDir:    DefaultGenerateDir,
		PrimaryColor:   DefaultPrimaryColor,
		CSS: []string{
			"highlight.js/styles/vs2015.css",
			"assets/css/custom.css",
		},
		Favicon:             DefaultFavicon,
		RemovedBuildModules: []string{PWAModule},
		HighlightStyle:      DefaultHighlightStyle,
	}
}

// Load reads settings from path. An empty path or a missing file yields
// DefaultSettings; fields omitted from the file keep their defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Settings file not found, using defaults", logfields.Path(path))
			return s, nil
		}
		return s, derrors.ConfigRead(path, err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return s, derrors.ConfigParse(path, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks invariants the assembler relies on.
func (s Settings) Validate() error {
	if s.Theme == "" {
		return derrors.ValidationFailed("theme", "must not be empty")
	}
	if !strings.HasPrefix(s.ProductionBase, "/") || !strings.HasSuffix(s.ProductionBase, "/") {
		return derrors.ValidationFailed("production_base", fmt.Sprintf("%q must start and end with /", s.ProductionBase))
	}
	if s.GenerateDir == "" {
		return derrors.ValidationFailed("generate_dir", "must not be empty")
	}
	return nil
}
