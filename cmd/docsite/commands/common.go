package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/kyverno/policy-reporter-docs/internal/config"
	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
	"github.com/kyverno/policy-reporter-docs/internal/metrics"
	"github.com/kyverno/policy-reporter-docs/internal/site"
)

// Global carries the process streams and shared collaborators into commands.
type Global struct {
	Out      io.Writer
	In       io.Reader
	Recorder metrics.Recorder
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Settings file path" default:"docsite.yaml" type:"path"`
	EnvDir      string           `name:"env-dir" help:"Directory holding .env and .env.local" default:"." type:"path"`
	Env         string           `name:"env" help:"Override NODE_ENV for this invocation" placeholder:"NODE_ENV"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	LogLevel    string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat   string           `name:"log-format" help:"Log format (text, json)" default:"text"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this file on exit" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Assemble  AssembleCmd  `cmd:"" help:"Assemble the site configuration and print it"`
	Highlight HighlightCmd `cmd:"" help:"Highlight a source file the way docs code blocks are rendered"`
	Preview   PreviewCmd   `cmd:"" help:"Render one markdown page through the site configuration"`
	StripHead StripHeadCmd `cmd:"" name:"strip-head" help:"Run the SSR template hook over a head fragment read from stdin"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.NormalizeLogLevel(c.LogLevel).SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if config.NormalizeLogFormat(c.LogFormat) == config.LogFormatJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// Settings loads the settings file (defaults when absent).
func (c *CLI) Settings() (config.Settings, error) {
	return config.Load(c.Config)
}

// Environment loads .env files and applies the --env override.
func (c *CLI) Environment() (config.Environment, error) {
	env, err := config.LoadEnvironment(c.EnvDir)
	if err != nil {
		return env, derrors.ConfigRead(filepath.Join(c.EnvDir, ".env"), err)
	}
	if c.Env != "" {
		env.NodeEnv = c.Env
	}
	return env, nil
}

// Site assembles the site configuration for this invocation.
func (c *CLI) Site(g *Global) (*config.Site, config.Settings, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, settings, err
	}
	env, err := c.Environment()
	if err != nil {
		return nil, settings, err
	}
	s, err := site.Assemble(env, settings, site.WithRecorder(g.Recorder), site.WithLogger(slog.Default()))
	if err != nil {
		return nil, settings, err
	}
	return s, settings, nil
}

// readInput reads path, or stdin when path is "-" or empty.
func readInput(g *Global, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(g.In)
		if err != nil {
			return nil, derrors.InternalError("failed to read stdin", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "failed to read input").
			WithContext("path", path)
	}
	return data, nil
}

// writeOutput writes data to path, or to g.Out when path is empty.
func writeOutput(g *Global, path string, data []byte) error {
	if path == "" {
		if _, err := g.Out.Write(data); err != nil {
			return derrors.WriteFailed("stdout", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return derrors.WriteFailed(dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return derrors.WriteFailed(path, err)
	}
	slog.Info("Wrote output", logfields.Path(path), slog.Int("bytes", len(data)))
	return nil
}
