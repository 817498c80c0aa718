package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdsite/internal/mathspan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, mathspan.StrategyProtect, cfg.Math.Strategy)
	assert.Empty(t, cfg.PageOrder)
	assert.Empty(t, cfg.Dropdowns)
}

func TestLoad_InvalidYAMLFallsBackToDefaults(t *testing.T) {
	p := writeConfig(t, "page_order: [unclosed\n")

	cfg := Load(p)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FullConfiguration(t *testing.T) {
	p := writeConfig(t, `
title: Course Site
output_dir: public
math:
  strategy: embed
page_order:
  - about
  - {url: "https://example.com", text: "Docs"}
navbar_order:
  - about
  - {dropdown: Resources}
dropdowns:
  Resources:
    - math/sir
  Syllabi:
    spring: "https://syllabus/spring.pdf"
`)

	cfg := Load(p)

	assert.Equal(t, "Course Site", cfg.Title)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, mathspan.StrategyEmbed, cfg.Math.Strategy)

	n := cfg.Nav()
	require.Len(t, n.PageOrder, 2)
	require.Len(t, n.NavbarOrder, 2)
	require.Len(t, n.Dropdowns, 2)
	assert.Equal(t, "Resources", n.Dropdowns[0].Name)
	assert.Equal(t, "Syllabi", n.Dropdowns[1].Name)
}

func TestLoad_UnknownMathStrategyResets(t *testing.T) {
	p := writeConfig(t, "math:\n  strategy: typeset-later\n")

	cfg := Load(p)
	assert.Equal(t, mathspan.StrategyProtect, cfg.Math.Strategy)
}

func TestInit_WritesLoadableStarterConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, Init(p, false))

	cfg := Load(p)
	assert.Equal(t, "My Site", cfg.Title)
	assert.Equal(t, mathspan.StrategyProtect, cfg.Math.Strategy)
	require.Len(t, cfg.PageOrder, 2)

	// Refuses to clobber without force.
	require.Error(t, Init(p, false))
	require.NoError(t, Init(p, true))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MDSITE_CONTENT_DIR", "/srv/content")
	t.Setenv("MDSITE_OUTPUT_DIR", "/srv/out")

	p := writeConfig(t, "title: T\n")
	cfg := Load(p)

	assert.Equal(t, "/srv/content", cfg.ContentDir)
	assert.Equal(t, "/srv/out", cfg.OutputDir)
}
