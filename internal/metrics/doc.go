// Package metrics records what the site configuration callbacks did during
// one invocation.
//
// Components receive a Recorder and default to NoopRecorder, so no nil
// checks are needed at call sites:
//
//	rec := metrics.NewPrometheusRecorder(reg)
//	site, err := site.Assemble(env, settings, site.WithRecorder(rec))
//
// The CLI writes the registry to a node-exporter textfile on exit when
// --metrics-file is given; there is no long-running process to scrape.
package metrics
