package commands

import (
	"bytes"

	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/highlight"
)

// HighlightCmd implements the 'highlight' command.
type HighlightCmd struct {
	Lang   string `short:"l" help:"Language of the source"`
	CSS    bool   `name:"css" help:"Print the stylesheet for the configured highlight style instead"`
	Output string `short:"o" help:"Write to file instead of stdout" type:"path"`
	File   string `arg:"" optional:"" help:"Source file ('-' for stdin)" default:"-"`
}

func (h *HighlightCmd) Run(g *Global, root *CLI) error {
	if h.CSS {
		settings, err := root.Settings()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := highlight.StyleSheet(&buf, settings.HighlightStyle); err != nil {
			return derrors.HighlightFailed(settings.HighlightStyle, err)
		}
		return writeOutput(g, h.Output, buf.Bytes())
	}

	if h.Lang == "" {
		return derrors.ValidationFailed("lang", "required unless --css is given")
	}
	s, _, err := root.Site(g)
	if err != nil {
		return err
	}
	src, err := readInput(g, h.File)
	if err != nil {
		return err
	}
	out, err := s.Content.Markdown.Highlighter(string(src), h.Lang)
	if err != nil {
		return err
	}
	return writeOutput(g, h.Output, []byte(out+"\n"))
}
