package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/mdsite/internal/config"
	"git.home.luguber.info/inful/mdsite/internal/metrics"
	"git.home.luguber.info/inful/mdsite/internal/site"
)

// ServeCmd builds the site and serves the output directory over HTTP, with
// build metrics exposed on /metrics.
type ServeCmd struct {
	Port    int  `short:"p" default:"8080" help:"Port to listen on"`
	NoBuild bool `name:"no-build" help:"Serve the existing output without rebuilding first"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg := config.Load(root.Config)

	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	if !s.NoBuild {
		gen, err := site.NewGenerator(cfg, rec)
		if err != nil {
			return fmt.Errorf("create generator: %w", err)
		}
		if err := gen.Build(); err != nil {
			return err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", http.FileServer(http.Dir(cfg.OutputDir)))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving site", "addr", server.Addr, "dir", cfg.OutputDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}
