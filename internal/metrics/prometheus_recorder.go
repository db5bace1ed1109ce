package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	assembleDuration prom.Histogram
	highlights       *prom.CounterVec
	urlRewrites      *prom.CounterVec
	hookCalls        *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		assembleDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docsite",
			Name:      "assemble_duration_seconds",
			Help:      "Duration of site configuration assembly",
			Buckets:   prom.DefBuckets,
		}),
		highlights: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "highlight_total",
			Help:      "Highlighted code blocks by language and result",
		}, []string{"language", "result"}),
		urlRewrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "url_rewrites_total",
			Help:      "Content URLs inspected by the rewriter, by result",
		}, []string{"result"}),
		hookCalls: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "hook_calls_total",
			Help:      "Lifecycle hook invocations by event",
		}, []string{"event"}),
	}
	reg.MustRegister(pr.assembleDuration, pr.highlights, pr.urlRewrites, pr.hookCalls)
	return pr
}

func (p *PrometheusRecorder) ObserveAssembleDuration(d time.Duration) {
	p.assembleDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHighlight(lang string, result ResultLabel) {
	p.highlights.WithLabelValues(lang, string(result)).Inc()
}

func (p *PrometheusRecorder) IncURLRewrite(result ResultLabel) {
	p.urlRewrites.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncHookCall(event string) {
	p.hookCalls.WithLabelValues(event).Inc()
}

// WriteTextfile writes the gathered metrics in the text exposition format.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
