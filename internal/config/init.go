package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// starterConfig is written by `mdsite init`. It demonstrates every
// configuration key, including both dropdown shapes.
const starterConfig = `# mdsite configuration
title: My Site

content_dir: content
output_dir: dist
assets_dir: assets

math:
  # protect: shield math from the markdown converter, emit raw TeX for MathJax
  # embed:   render math to HTML during the build
  strategy: protect

# page_order controls the order pages are generated and listed in the navbar.
# The root index page is always first; unlisted pages follow alphabetically.
page_order:
  - getting-started
  - guides

# navbar_order, when present, fully determines the navbar contents.
#navbar_order:
#  - getting-started
#  - dropdown: Reference
#  - url: https://example.com
#    text: External

# Dropdowns group several links under one navbar menu. A mapping lists
# title/URL pairs verbatim; a sequence lists page slugs and external links.
#dropdowns:
#  Reference:
#    api: https://example.com/api
#    changelog: https://example.com/changelog
#  Guides:
#    - guides/install
#    - url: https://example.com/forum
#      text: Forum
`

// Init writes a starter configuration file. An existing file is only
// overwritten when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
