package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/mdsite/internal/config"
	"git.home.luguber.info/inful/mdsite/internal/docs"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Content string `help:"Content directory to scan (overrides config)"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg := config.Load(root.Config)
	if d.Content != "" {
		cfg.ContentDir = d.Content
	}

	documents, err := docs.Discover(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("discover documents: %w", err)
	}

	slog.Info("Discovery completed", "content", cfg.ContentDir, "documents", len(documents))
	for _, doc := range documents {
		fmt.Printf("%-40s %-30s depth=%d\n", doc.Slug, doc.Title, doc.Depth)
	}
	return nil
}
