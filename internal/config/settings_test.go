package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "/policy-reporter/", s.ProductionBase)
	assert.Equal(t, "../docs", s.GenerateDir)
	assert.Equal(t, "#E24F55", s.PrimaryColor)
	assert.Equal(t, []string{"highlight.js/styles/vs2015.css", "assets/css/custom.css"}, s.CSS)
	assert.Equal(t, []string{"@nuxtjs/pwa"}, s.RemovedBuildModules)
	assert.Equal(t, "https://kyverno.github.io/policy-reporter/favicon.ico", s.Favicon)
	require.NoError(t, s.Validate())
}

func TestLoad_EmptyPathAndMissingFile(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	s, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	t.Setenv("DOCS_COLOR", "#000000")
	p := writeFile(t, t.TempDir(), "docsite.yaml", `
production_base: /docs/
primary_color: ${DOCS_COLOR}
`)

	s, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/docs/", s.ProductionBase)
	assert.Equal(t, "#000000", s.PrimaryColor)
	assert.Equal(t, DefaultGenerateDir, s.GenerateDir)
	assert.Equal(t, DefaultTheme, s.Theme)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "docsite.yaml", "css: [unterminated")

	_, err := Load(p)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"missing leading slash", func(s *Settings) { s.ProductionBase = "policy-reporter/" }, "production_base"},
		{"missing trailing slash", func(s *Settings) { s.ProductionBase = "/policy-reporter" }, "production_base"},
		{"empty theme", func(s *Settings) { s.Theme = "" }, "theme"},
		{"empty generate dir", func(s *Settings) { s.GenerateDir = "" }, "generate_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			se, ok := derrors.As(err)
			require.True(t, ok)
			assert.Equal(t, derrors.CategoryValidation, se.Category)
			assert.Equal(t, tt.field, se.Context["field"])
		})
	}
}
