package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
	"github.com/kyverno/policy-reporter-docs/internal/watch"
)

// AssembleCmd implements the 'assemble' command.
type AssembleCmd struct {
	Format string `short:"f" help:"Output format" enum:"yaml,json" default:"yaml"`
	Output string `short:"o" help:"Write to file instead of stdout" type:"path"`
	Watch  bool   `short:"w" help:"Re-assemble whenever the settings file changes"`
}

func (a *AssembleCmd) Run(g *Global, root *CLI) error {
	if err := a.emit(g, root); err != nil {
		return err
	}
	if !a.Watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	w, err := watch.New(root.Config, 0, func(context.Context) error { return a.emit(g, root) })
	if err != nil {
		return derrors.InternalError("failed to start watcher", err)
	}
	return w.Run(ctx)
}

func (a *AssembleCmd) emit(g *Global, root *CLI) error {
	s, _, err := root.Site(g)
	if err != nil {
		return err
	}
	data, err := encode(s.Snapshot(), a.Format)
	if err != nil {
		return derrors.InternalError("failed to encode site configuration", err)
	}
	slog.Debug("Encoded site configuration", logfields.Format(a.Format))
	return writeOutput(g, a.Output, data)
}

func encode(v any, format string) ([]byte, error) {
	if format == "json" {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(v)
}
