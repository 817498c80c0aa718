// Package metrics defines observability hooks for site builds.
package metrics

import "time"

// Recorder defines observability hooks for build and page metrics.
// Implementations may forward to Prometheus or anything else; the
// NoopRecorder allows optional injection.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	ObservePageDuration(slug string, d time.Duration)
	IncPagesRendered()
	IncMathSpans(kind string, n int)
	IncLinksRewritten(n int)
	IncMathRenderFailures()
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)        {}
func (NoopRecorder) ObservePageDuration(string, time.Duration) {}
func (NoopRecorder) IncPagesRendered()                         {}
func (NoopRecorder) IncMathSpans(string, int)                  {}
func (NoopRecorder) IncLinksRewritten(int)                     {}
func (NoopRecorder) IncMathRenderFailures()                    {}
