package linkcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOutput(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestVerify_ResolvedLinksPass(t *testing.T) {
	root := t.TempDir()
	writeOutput(t, root, "index.html", `<a href="about.html">a</a><a href="math/sir.html#model">s</a>`)
	writeOutput(t, root, "about.html", `<a href="index.html">home</a>`)
	writeOutput(t, root, "math/sir.html", `<a href="../index.html">up</a>`)

	issues, err := Verify(root)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestVerify_ReportsMissingTargets(t *testing.T) {
	root := t.TempDir()
	writeOutput(t, root, "index.html", `<a href="gone.html">x</a><a href="https://example.com">ok</a><a href="#frag">ok</a>`)

	issues, err := Verify(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "index.html", issues[0].Page)
	assert.Equal(t, "gone.html", issues[0].Href)
}

func TestVerify_DepthRelativeResolution(t *testing.T) {
	root := t.TempDir()
	writeOutput(t, root, "index.html", "<p>root</p>")
	writeOutput(t, root, "a/b.html", `<a href="../index.html">ok</a><a href="../missing.html">bad</a>`)

	issues, err := Verify(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "a/b.html", issues[0].Page)
	assert.True(t, strings.HasSuffix(issues[0].Href, "missing.html"))
}

func TestVerify_AssetLinksChecked(t *testing.T) {
	root := t.TempDir()
	writeOutput(t, root, "assets/file.pdf", "%PDF")
	writeOutput(t, root, "index.html", `<a href="assets/file.pdf">pdf</a>`)

	issues, err := Verify(root)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
