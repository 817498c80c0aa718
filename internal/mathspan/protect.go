package mathspan

import (
	"fmt"
	"strings"
)

// placeholder token namespaces. Block and inline tokens are disjoint so a
// collision between the two kinds cannot occur; ids increase monotonically
// per document so tokens within a kind are unique too.
const (
	blockTokenFormat  = "MATH_BLOCK_%d"
	inlineTokenFormat = "MATH_INLINE_%d"
)

// protectedSpan records one span swapped out for a placeholder token.
type protectedSpan struct {
	token string
	kind  Kind
	raw   string
}

// Protector implements the protect-and-restore strategy: before markdown
// conversion every math span is replaced by a unique placeholder token;
// after conversion each token is located in the HTML and replaced back with
// the original delimited source, leaving page-load-time typesetting to a
// script. The placeholder registry is a per-call value, not shared state.
type Protector struct{}

func (Protector) Transform(body string) (string, RestoreFunc) {
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
		var token string
		if seg.Kind == KindDisplay {
			token = fmt.Sprintf(blockTokenFormat, id)
			// Blank lines around the token force the renderer to give it
			// its own paragraph, which restore unwraps again.
			out.WriteString("\n\n")
			out.WriteString(token)
			out.WriteString("\n\n")
		} else {
			token = fmt.Sprintf(inlineTokenFormat, id)
			out.WriteString(token)
		}
		spans = append(spans, protectedSpan{token: token, kind: seg.Kind, raw: seg.Raw})
		id++
	}

	return out.String(), func(html string) string {
		return restore(html, spans)
	}
}

// restore replaces placeholder tokens in rendered HTML with the original
// delimited math source. Spans are processed in reverse insertion order,
// mirroring the order-sensitive replacement the placeholders were created
// with.
func restore(html string, spans []protectedSpan) string {
	result := html
	for i := len(spans) - 1; i >= 0; i-- {
		span := spans[i]
		if span.kind == KindDisplay {
			result = restoreDisplay(result, span)
			continue
		}
		result = strings.ReplaceAll(result, span.token, span.raw)
	}
	return result
}

// restoreDisplay strips the paragraph wrapping the renderer may have put
// around a block placeholder that occupied its own paragraph. Known wrapping
// shapes are tried from most to least specific before falling back to a
// bare token replace.
func restoreDisplay(html string, span protectedSpan) string {
	wrappers := []string{
		"<p>" + span.token + "</p>",
		"<p>\n" + span.token + "\n</p>",
		span.token + "\n",
		"\n" + span.token + "\n",
		"\n\n" + span.token + "\n\n",
	}
	for _, w := range wrappers {
		if strings.Contains(html, w) {
			return strings.ReplaceAll(html, w, span.raw)
		}
	}
	return strings.ReplaceAll(html, span.token, span.raw)
}
