package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration  prom.Histogram
	pageDuration   *prom.HistogramVec
	pagesRendered  prom.Counter
	mathSpans      *prom.CounterVec
	linksRewritten prom.Counter
	mathFailures   prom.Counter
}

// NewPrometheusRecorder constructs and registers build metrics on reg (a
// fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "mdsite",
			Name:      "build_duration_seconds",
			Help:      "Total site build duration",
			Buckets:   prom.DefBuckets,
		}),
		pageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "mdsite",
			Name:      "page_duration_seconds",
			Help:      "Per-page render duration",
			Buckets:   prom.DefBuckets,
		}, []string{"slug"}),
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "mdsite",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across builds",
		}),
		mathSpans: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "mdsite",
			Name:      "math_spans_total",
			Help:      "Math spans processed, by kind",
		}, []string{"kind"}),
		linksRewritten: prom.NewCounter(prom.CounterOpts{
			Namespace: "mdsite",
			Name:      "links_rewritten_total",
			Help:      "Internal links retargeted to compiled paths",
		}),
		mathFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "mdsite",
			Name:      "math_render_failures_total",
			Help:      "Math spans that degraded to an error element",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.pageDuration, pr.pagesRendered, pr.mathSpans, pr.linksRewritten, pr.mathFailures)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObservePageDuration(slug string, d time.Duration) {
	p.pageDuration.WithLabelValues(slug).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPagesRendered() {
	p.pagesRendered.Inc()
}

func (p *PrometheusRecorder) IncMathSpans(kind string, n int) {
	p.mathSpans.WithLabelValues(kind).Add(float64(n))
}

func (p *PrometheusRecorder) IncLinksRewritten(n int) {
	p.linksRewritten.Add(float64(n))
}

func (p *PrometheusRecorder) IncMathRenderFailures() {
	p.mathFailures.Inc()
}
