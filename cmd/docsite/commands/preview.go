package commands

import (
	"log/slog"

	"github.com/kyverno/policy-reporter-docs/internal/logfields"
	"github.com/kyverno/policy-reporter-docs/internal/render"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	Output string `short:"o" help:"Write the page to file instead of stdout" type:"path"`
	File   string `arg:"" help:"Markdown page ('-' for stdin)"`
}

func (p *PreviewCmd) Run(g *Global, root *CLI) error {
	s, _, err := root.Site(g)
	if err != nil {
		return err
	}
	src, err := readInput(g, p.File)
	if err != nil {
		return err
	}
	doc, err := render.Page(s, src)
	if err != nil {
		return err
	}
	slog.Debug("Rendered preview", logfields.Path(p.File), logfields.BaseURL(s.Router.Base))
	return writeOutput(g, p.Output, []byte(doc))
}
