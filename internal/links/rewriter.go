// Package links rewrites internal hyperlinks in rendered HTML so that
// document-relative references resolve to their compiled output paths.
package links

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

const (
	// SourceExt is the markdown source extension replaced during rewriting.
	SourceExt = ".md"
	// OutputExt is the compiled page extension.
	OutputExt = ".html"
)

// ErrAmbiguousSlug is wrapped by NewIndex when two documents in different
// directories share a filename, making final-segment matching ambiguous.
var ErrAmbiguousSlug = errors.New("ambiguous document slug")

// Index resolves href base paths against the set of known document slugs.
// Matching is permissive: an href matches a slug exactly, or matches the
// final path segment of a slug that includes directory components.
type Index struct {
	slugs     map[string]struct{}
	bySegment map[string]string
}

// NewIndex builds an Index from the discovered slug set. A final path
// segment shared by two slugs is a configuration error surfaced here, at
// construction time, rather than silently resolved during rewriting.
func NewIndex(slugs []string) (*Index, error) {
	idx := &Index{
		slugs:     make(map[string]struct{}, len(slugs)),
		bySegment: make(map[string]string, len(slugs)),
	}

	sorted := append([]string(nil), slugs...)
	sort.Strings(sorted)

	for _, slug := range sorted {
		idx.slugs[slug] = struct{}{}
		seg := path.Base(slug)
		if prev, ok := idx.bySegment[seg]; ok && prev != slug {
			return nil, fmt.Errorf("%w: %q matches both %q and %q", ErrAmbiguousSlug, seg, prev, slug)
		}
		idx.bySegment[seg] = slug
	}
	return idx, nil
}

// Resolve maps an extension-less href base to a known slug, or reports no
// match.
func (idx *Index) Resolve(base string) (string, bool) {
	if _, ok := idx.slugs[base]; ok {
		return base, true
	}
	if slug, ok := idx.bySegment[base]; ok {
		return slug, true
	}
	return "", false
}

// anchorPattern captures the href value and trailing attributes of anchor
// opening tags. Submatch 1 is the href, submatch 2 the remaining attributes.
var anchorPattern = regexp.MustCompile(`<a\s+href="([^"]+)"([^>]*)>`)

// Rewrite retargets internal anchors in rendered HTML. External hrefs
// (scheme-prefixed, mailto, fragment-only, absolute, or containing "://")
// are untouched; `.md` targets get the output extension; bare hrefs that
// resolve against the index are rewritten to the slug's compiled path. The
// fragment or query suffix, if any, is reattached unchanged. Hrefs matching
// no rule are left alone since the author may intend a non-generated target.
func Rewrite(html string, idx *Index) string {
	out, _ := RewriteCounted(html, idx)
	return out
}

// RewriteCounted is Rewrite plus the number of anchors retargeted.
func RewriteCounted(html string, idx *Index) (string, int) {
	// Snapshot all match positions before mutating, then apply replacements
	// in reverse so earlier edits never shift later offsets.
	matches := anchorPattern.FindAllStringSubmatchIndex(html, -1)

	rewritten := 0
	result := html
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		href := html[m[2]:m[3]]
		attrs := html[m[4]:m[5]]

		newHref, ok := rewriteHref(href, idx)
		if !ok {
			continue
		}

		replacement := `<a href="` + newHref + `"` + attrs + `>`
		result = result[:m[0]] + replacement + result[m[1]:]
		rewritten++
	}
	return result, rewritten
}

// rewriteHref classifies a single href and returns its rewritten form.
func rewriteHref(href string, idx *Index) (string, bool) {
	if IsExternal(href) {
		return "", false
	}

	base, suffix := SplitSuffix(href)

	if strings.HasSuffix(base, SourceExt) {
		return strings.TrimSuffix(base, SourceExt) + OutputExt + suffix, true
	}

	if !strings.Contains(path.Base(base), ".") {
		if slug, ok := idx.Resolve(base); ok {
			return slug + OutputExt + suffix, true
		}
	}

	return "", false
}

// IsExternal reports whether an href must be left untouched: scheme
// prefixed, mailto, fragment-only, absolute, or containing "://" anywhere.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "/") ||
		strings.Contains(href, "://")
}

// SplitSuffix cuts an href at the first `#` or `?`, whichever comes first,
// returning the base path and the suffix (delimiter included).
func SplitSuffix(href string) (string, string) {
	cut := len(href)
	if i := strings.IndexByte(href, '#'); i >= 0 {
		cut = i
	}
	if i := strings.IndexByte(href, '?'); i >= 0 && i < cut {
		cut = i
	}
	return href[:cut], href[cut:]
}
