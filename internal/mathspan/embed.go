package mathspan

import (
	"fmt"
	"html"
	"strings"
)

// Renderer turns TeX source into markup. It is consumed as a pure function
// and may fail per span; the display flag tells the renderer whether the
// span is block-level.
type Renderer func(source string, display bool) (string, error)

// Embedder implements the render-and-embed strategy: math spans are rendered
// to markup up front, but the markup itself is spliced in only after
// markdown conversion, via the same placeholder indirection the protect
// strategy uses. Splicing markup directly into the body would expose its
// delimiters (`\(`, `\[`) to markdown backslash-escape handling. A failed
// span degrades to a visibly-marked error element carrying the original
// source; it never aborts the document.
type Embedder struct {
	Render Renderer
	// OnError, when set, observes each failed span (for metrics).
	OnError func(source string)
}

func (e Embedder) Transform(body string) (string, RestoreFunc) {
	segs := Scan(body)

	var out strings.Builder
	out.Grow(len(body))
	spans := make([]protectedSpan, 0, len(segs))
	id := 0

	for _, seg := range segs {
		if !seg.Math {
			out.WriteString(seg.Text)
			continue
		}

		markup, err := e.Render(seg.Source, seg.Kind == KindDisplay)
		if err != nil {
			if e.OnError != nil {
				e.OnError(seg.Source)
			}
			markup = fmt.Sprintf(`<span class="math-error" title="math rendering failed">%s</span>`,
				html.EscapeString(seg.Raw))
		}

		var token string
		if seg.Kind == KindDisplay {
			token = fmt.Sprintf(blockTokenFormat, id)
			out.WriteString("\n\n")
			out.WriteString(token)
			out.WriteString("\n\n")
		} else {
			token = fmt.Sprintf(inlineTokenFormat, id)
			out.WriteString(token)
		}
		spans = append(spans, protectedSpan{token: token, kind: seg.Kind, raw: markup})
		id++
	}

	return out.String(), func(rendered string) string {
		return restore(rendered, spans)
	}
}

// MathJaxMarkup is the default Renderer for the embed strategy. It wraps the
// source in span/div elements using the `\(..\)` / `\[..\]` delimiter pair so
// a page-load MathJax pass can typeset it; the markup itself never fails.
func MathJaxMarkup(source string, display bool) (string, error) {
	escaped := html.EscapeString(source)
	if display {
		return `<div class="math display">\[` + escaped + `\]</div>`, nil
	}
	return `<span class="math inline">\(` + escaped + `\)</span>`, nil
}
