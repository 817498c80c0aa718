// Package markdown wraps the Goldmark renderer as the pure
// markdown-to-HTML collaborator of the content pipeline.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Converter renders markdown bodies to HTML fragments.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds the site's converter. Raw HTML is kept (WithUnsafe)
// because the math transformer substitutes markup and placeholder tokens
// that must survive conversion untouched.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				ghtml.WithUnsafe(),
			),
		),
	}
}

// ToHTML converts a markdown body (frontmatter already removed) to an HTML
// fragment.
func (c *Converter) ToHTML(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
