package site

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// copyAssets copies the flat files of the assets directory into the output
// tree so generated pages can reference them via the depth prefix. A
// missing assets directory is not an error.
func (g *Generator) copyAssets() error {
	entries, err := os.ReadDir(g.Config.AssetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No assets directory", "path", g.Config.AssetsDir)
			return nil
		}
		return err
	}

	destDir := filepath.Join(g.Config.OutputDir, "assets")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(g.Config.AssetsDir, entry.Name())
		dst := filepath.Join(destDir, entry.Name())
		if err := copyFile(src, dst); err != nil {
			return err
		}
		g.log.Info("Copied asset", "src", src, "dst", dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
