package commands

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/mdsite/internal/config"
	"git.home.luguber.info/inful/mdsite/internal/metrics"
	"git.home.luguber.info/inful/mdsite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Content string `help:"Content directory to read (overrides config)"`
	Metrics bool   `help:"Collect Prometheus build metrics and log a summary"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg := config.Load(root.Config)
	if b.Output != "" {
		cfg.OutputDir = b.Output
	}
	if b.Content != "" {
		cfg.ContentDir = b.Content
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var reg *prometheus.Registry
	if b.Metrics {
		reg = prometheus.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
	}

	gen, err := site.NewGenerator(cfg, rec)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	slog.Info("Starting site build", "content", cfg.ContentDir, "output", cfg.OutputDir)
	if err := gen.Build(); err != nil {
		return err
	}
	slog.Info("Site build completed", "output", cfg.OutputDir)

	if reg != nil {
		logMetricsSummary(reg)
	}
	return nil
}

// logMetricsSummary gathers the build registry and logs counter totals so a
// one-shot build still surfaces its metrics without a scrape endpoint.
func logMetricsSummary(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		slog.Warn("Failed to gather build metrics", "error", err)
		return
	}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				slog.Info("Build metric", "name", fam.GetName(), "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				slog.Info("Build metric", "name", fam.GetName(),
					"count", m.GetHistogram().GetSampleCount(),
					"sum", m.GetHistogram().GetSampleSum())
			}
		}
	}
}
