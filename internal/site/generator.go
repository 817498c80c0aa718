// Package site orchestrates the build: discovery, the per-document content
// pipeline (frontmatter → math transform → markdown → math restore → link
// rewrite), navigation, page assembly and output writing.
package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdsite/internal/config"
	"git.home.luguber.info/inful/mdsite/internal/docs"
	"git.home.luguber.info/inful/mdsite/internal/links"
	"git.home.luguber.info/inful/mdsite/internal/markdown"
	"git.home.luguber.info/inful/mdsite/internal/mathspan"
	"git.home.luguber.info/inful/mdsite/internal/metrics"
	"git.home.luguber.info/inful/mdsite/internal/nav"
)

// Generator builds a site from the configured content tree. The pipeline is
// single-threaded and deterministic: output is a pure function of the
// content tree and configuration.
type Generator struct {
	Config  config.Config
	Metrics metrics.Recorder
	log     *slog.Logger
	convert *markdown.Converter
	mathTr  mathspan.Transformer
}

// NewGenerator wires the generator from configuration. The recorder may be
// nil; a no-op recorder is used then.
func NewGenerator(cfg config.Config, rec metrics.Recorder) (*Generator, error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	tr, err := mathspan.New(cfg.Math.Strategy, nil)
	if err != nil {
		return nil, err
	}
	if emb, ok := tr.(mathspan.Embedder); ok {
		emb.OnError = func(string) { rec.IncMathRenderFailures() }
		tr = emb
	}
	return &Generator{
		Config:  cfg,
		Metrics: rec,
		log:     slog.With("build_id", uuid.NewString()),
		convert: markdown.NewConverter(),
		mathTr:  tr,
	}, nil
}

// Build runs a full site build.
func (g *Generator) Build() error {
	start := time.Now()

	documents, err := docs.Discover(g.Config.ContentDir)
	if err != nil {
		return fmt.Errorf("discover documents: %w", err)
	}
	if len(documents) == 0 {
		g.log.Warn("No documents found", "content_dir", g.Config.ContentDir)
	}

	idx, err := links.NewIndex(docs.Slugs(documents))
	if err != nil {
		// Ambiguous final segments make permissive link matching
		// unpredictable; surface it instead of silently picking one.
		return fmt.Errorf("document set: %w", err)
	}

	navCfg := g.Config.Nav()
	model := nav.Build(documents, navCfg, idx, g.Config.Title)
	ordered := nav.OrderDocuments(documents, navCfg.PageOrder)

	footer := g.loadFooter()

	for _, d := range ordered {
		if err := g.renderPage(d, model, idx, footer); err != nil {
			return fmt.Errorf("render %s: %w", d.Slug, err)
		}
	}

	if err := g.copyAssets(); err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}

	g.Metrics.ObserveBuildDuration(time.Since(start))
	g.log.Info("Build complete", "pages", len(ordered), "duration", time.Since(start))
	return nil
}

// renderPage runs one document through the content pipeline and writes the
// compiled page to its mirrored output path.
func (g *Generator) renderPage(d docs.Document, model *nav.Model, idx *links.Index, footer template.HTML) error {
	pageStart := time.Now()
	body := string(d.Body)

	g.recordSpans(body)

	protected, restore := g.mathTr.Transform(body)

	rendered, err := g.convert.ToHTML([]byte(protected))
	if err != nil {
		return fmt.Errorf("markdown conversion: %w", err)
	}

	htmlBody := restore(string(rendered))
	htmlBody, nRewritten := links.RewriteCounted(htmlBody, idx)
	if nRewritten > 0 {
		g.Metrics.IncLinksRewritten(nRewritten)
	}

	navbar, err := model.ForPage(d.Slug, d.Depth).RenderHTML()
	if err != nil {
		return fmt.Errorf("render navigation: %w", err)
	}

	page, err := assemblePage(pageData{
		Title:   d.Title,
		Prefix:  nav.RootPrefix(d.Depth),
		Navbar:  navbar,
		Content: template.HTML(htmlBody),
		Footer:  footer,
	})
	if err != nil {
		return fmt.Errorf("assemble page: %w", err)
	}

	outPath := filepath.Join(g.Config.OutputDir, filepath.FromSlash(d.Slug)+links.OutputExt)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return err
	}

	g.Metrics.IncPagesRendered()
	g.Metrics.ObservePageDuration(d.Slug, time.Since(pageStart))
	g.log.Info("Generated page", "slug", d.Slug, "path", outPath)
	return nil
}

// recordSpans feeds math span counts to the recorder.
func (g *Generator) recordSpans(body string) {
	inline, display := 0, 0
	for _, seg := range mathspan.Scan(body) {
		if !seg.Math {
			continue
		}
		if seg.Kind == mathspan.KindDisplay {
			display++
		} else {
			inline++
		}
	}
	if inline > 0 {
		g.Metrics.IncMathSpans("inline", inline)
	}
	if display > 0 {
		g.Metrics.IncMathSpans("display", display)
	}
}

// loadFooter reads the optional shared footer fragment. Absence is normal.
func (g *Generator) loadFooter() template.HTML {
	data, err := os.ReadFile(filepath.Join(g.Config.AssetsDir, "footer.html"))
	if err != nil {
		return ""
	}
	return template.HTML(data)
}
