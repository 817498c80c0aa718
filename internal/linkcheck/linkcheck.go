// Package linkcheck verifies internal links in generated HTML output,
// reporting anchors that point at files the build did not produce.
package linkcheck

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/mdsite/internal/links"
)

// Issue is one unresolved internal link found in the output tree.
type Issue struct {
	Page string // output-relative page the anchor appears on
	Href string // the unresolved href value
}

// Verify walks the output directory, extracts every anchor from each
// generated page, and returns the internal hrefs that do not resolve to a
// file in the tree. External hrefs are never checked.
func Verify(outputDir string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(outputDir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(p), ".html") {
			return nil
		}

		rel, err := filepath.Rel(outputDir, p)
		if err != nil {
			return err
		}
		page := filepath.ToSlash(rel)

		f, err := os.Open(filepath.Clean(p))
		if err != nil {
			return err
		}
		hrefs, err := extractAnchors(f)
		_ = f.Close()
		if err != nil {
			return err
		}

		for _, href := range hrefs {
			if links.IsExternal(href) {
				continue
			}
			base, _ := links.SplitSuffix(href)
			if base == "" {
				continue
			}
			target := path.Join(path.Dir(page), base)
			if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(target))); err != nil {
				issues = append(issues, Issue{Page: page, Href: href})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// extractAnchors returns the href values of all <a> elements in the HTML.
func extractAnchors(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs, nil
}
