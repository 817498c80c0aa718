// Package docs discovers markdown documents under the content root and
// assigns each its canonical slug, display title and directory depth.
package docs

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/mdsite/internal/frontmatter"
)

// RootSlug is the distinguished slug treated as the site root. It is never
// listed as an ordinary navigation entry.
const RootSlug = "index"

// Document is a discovered markdown source file. Documents are immutable
// once discovery completes.
type Document struct {
	Slug  string // extension-less path relative to the content root, `/` separated
	Title string // frontmatter title, or derived from the filename
	Depth int    // directory segments between the file and the content root
	Body  []byte // markdown body with frontmatter stripped
	Meta  frontmatter.Meta
}

// IsRoot reports whether this document is the site root page.
func (d Document) IsRoot() bool { return d.Slug == RootSlug }

var titleCaser = cases.Title(language.English)

// Discover walks root recursively and returns all markdown documents.
// README files (any case) and files that are really HTML documents are
// skipped, matching long-standing site conventions.
func Discover(root string) ([]Document, error) {
	var documents []Document

	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if strings.EqualFold(stem, "README") {
			slog.Debug("Skipping README file", "path", p)
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if isHTMLDocument(content) {
			slog.Debug("Skipping HTML file with markdown extension", "path", p)
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		slug := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))

		meta, body, _ := frontmatter.Split(content)
		title := meta.Title
		if title == "" {
			title = TitleFromFilename(stem)
		}

		documents = append(documents, Document{
			Slug:  slug,
			Title: title,
			Depth: strings.Count(slug, "/"),
			Body:  body,
			Meta:  meta,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of filesystem iteration; build-time
	// ordering directives are applied later by the navigation builder.
	sort.Slice(documents, func(i, j int) bool { return documents[i].Slug < documents[j].Slug })

	slog.Debug("Discovery complete", "documents", len(documents))
	return documents, nil
}

// Slugs returns the slug set of a document list, in order.
func Slugs(documents []Document) []string {
	out := make([]string, len(documents))
	for i, d := range documents {
		out[i] = d.Slug
	}
	return out
}

// Titles returns a slug→title lookup for the document set.
func Titles(documents []Document) map[string]string {
	out := make(map[string]string, len(documents))
	for _, d := range documents {
		out[d.Slug] = d.Title
	}
	return out
}

// TitleFromFilename derives a display title from a file stem, turning
// separator characters into spaces and title-casing the words.
func TitleFromFilename(stem string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "Untitled"
	}
	return titleCaser.String(s)
}

func isHTMLDocument(content []byte) bool {
	trimmed := bytes.TrimLeft(content, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) || bytes.HasPrefix(trimmed, []byte("<html"))
}
