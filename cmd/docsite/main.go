package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/kyverno/policy-reporter-docs/cmd/docsite/commands"
	derrors "github.com/kyverno/policy-reporter-docs/internal/errors"
	"github.com/kyverno/policy-reporter-docs/internal/logfields"
	"github.com/kyverno/policy-reporter-docs/internal/metrics"
	"github.com/kyverno/policy-reporter-docs/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli := &commands.CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Description("Assemble and inspect the policy-reporter documentation site configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(cli),
	)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	reg := prom.NewRegistry()
	g := &commands.Global{
		Out:      os.Stdout,
		In:       os.Stdin,
		Recorder: metrics.NewPrometheusRecorder(reg),
	}
	runErr := ctx.Run(g)

	if cli.MetricsFile != "" {
		if err := metrics.WriteTextfile(cli.MetricsFile, reg); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(cli.MetricsFile), logfields.Error(err))
		}
	}
	return derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(runErr)
}
