package metrics

import "time"

// ResultLabel enumerates callback result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailure ResultLabel = "failure"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder defines observability hooks for assembly and content callbacks.
type Recorder interface {
	ObserveAssembleDuration(d time.Duration)
	IncHighlight(lang string, result ResultLabel)
	IncURLRewrite(result ResultLabel)
	IncHookCall(event string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveAssembleDuration(time.Duration) {}
func (NoopRecorder) IncHighlight(string, ResultLabel)      {}
func (NoopRecorder) IncURLRewrite(ResultLabel)             {}
func (NoopRecorder) IncHookCall(string)                    {}
