package commands

import (
	"log/slog"

	"github.com/kyverno/policy-reporter-docs/internal/hooks"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
)

// StripHeadCmd implements the 'strip-head' command.
type StripHeadCmd struct{}

func (c *StripHeadCmd) Run(g *Global, root *CLI) error {
	s, _, err := root.Site(g)
	if err != nil {
		return err
	}
	src, err := readInput(g, "-")
	if err != nil {
		return err
	}
	params := &hooks.TemplateParams{Head: string(src)}
	n := s.Hooks.Call(hooks.EventSSRTemplateParams, params)
	slog.Debug("Ran lifecycle hooks", logfields.Event(hooks.EventSSRTemplateParams), slog.Int("hooks", n))
	return writeOutput(g, "", []byte(params.Head))
}
