// Package frontmatter splits an optional leading YAML metadata block
// (`---` delimited) from a markdown document body.
//
// The splitter is deliberately fail-open: malformed metadata never blocks
// rendering. Any parse failure, or a missing closing delimiter, yields the
// whole original input as body with no metadata extracted.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Meta holds the parsed metadata fields of a document. Only Title is
// consumed by the pipeline; the remaining fields are retained for
// diagnostics and future use.
type Meta struct {
	Title  string
	Fields map[string]any
}

// Split separates YAML frontmatter from the markdown body.
//
// If the document does not start with a frontmatter delimiter, or the
// closing delimiter is missing, or the enclosed YAML does not parse, had is
// false and body is the full input unchanged.
func Split(content []byte) (meta Meta, body []byte, had bool) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return Meta{}, content, false
	}

	start := len(open)

	// An immediately closing delimiter means empty (but well-formed) metadata.
	if bytes.HasPrefix(content[start:], open) {
		return Meta{Fields: map[string]any{}}, content[start+len(open):], true
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return Meta{}, content, false
	}

	raw := content[start : start+idx+len(nl)]
	rest := content[start+idx+len(closeSeq):]

	fields := map[string]any{}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return Meta{}, content, false
	}
	if fields == nil {
		fields = map[string]any{}
	}

	meta = Meta{Fields: fields}
	if title, ok := fields["title"].(string); ok {
		meta.Title = title
	}
	return meta, rest, true
}

func detectNewline(content []byte) string {
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
