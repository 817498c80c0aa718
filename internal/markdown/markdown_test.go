package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_BasicConversion(t *testing.T) {
	c := NewConverter()

	out, err := c.ToHTML([]byte("# Hello\n\nSome *text*.\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1 id=\"hello\">Hello</h1>")
	assert.Contains(t, string(out), "<em>text</em>")
}

func TestToHTML_RawHTMLSurvives(t *testing.T) {
	c := NewConverter()

	out, err := c.ToHTML([]byte(`keep <span class="note">as-is</span> inline`))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<span class="note">as-is</span>`)
}

func TestToHTML_BackslashDelimitersAreEscaped(t *testing.T) {
	c := NewConverter()

	// Text content is still markdown even inside raw HTML tags, so
	// backslash-paren delimiters cannot be spliced in before conversion;
	// they have to arrive via post-conversion token replacement.
	out, err := c.ToHTML([]byte(`<span class="math inline">\(x\)</span>`))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `\(x\)`)
}

func TestToHTML_PlaceholderTokenIsNotEmphasized(t *testing.T) {
	c := NewConverter()

	// Intra-word underscores must not become <em> or the restore step
	// could no longer find the token.
	out, err := c.ToHTML([]byte("MATH_INLINE_0 stands alone\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "MATH_INLINE_0")
	assert.NotContains(t, string(out), "<em>")
}
