package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/mdsite/internal/config"
	"git.home.luguber.info/inful/mdsite/internal/linkcheck"
)

// LintCmd implements the 'lint' command, checking internal links in a
// generated site.
type LintCmd struct {
	Output string `short:"o" help:"Output directory to verify (overrides config)"`
	Quiet  bool   `short:"q" help:"Only set the exit code, do not print issues"`
}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg := config.Load(root.Config)
	outputDir := cfg.OutputDir
	if l.Output != "" {
		outputDir = l.Output
	}

	issues, err := linkcheck.Verify(outputDir)
	if err != nil {
		return fmt.Errorf("verify links: %w", err)
	}

	if len(issues) == 0 {
		if !l.Quiet {
			fmt.Println("No broken internal links found")
		}
		return nil
	}

	if !l.Quiet {
		for _, issue := range issues {
			fmt.Printf("%s: broken link %q\n", issue.Page, issue.Href)
		}
		fmt.Printf("%d broken internal links\n", len(issues))
	}
	os.Exit(1)
	return nil
}
