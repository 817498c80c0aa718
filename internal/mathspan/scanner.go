// Package mathspan isolates TeX-style math notation embedded in markdown so
// that the markdown renderer, which knows nothing about TeX, cannot
// reinterpret control characters (`_`, `*`, `\`) as emphasis or escapes.
//
// Four delimiter grammars are recognized: display `$$…$$` and `\[…\]`,
// inline `$…$` and `\(…\)`. Scanning is a single left-to-right pass with one
// character of lookahead; an unterminated opening delimiter is never a span
// and falls back to verbatim emission of everything already consumed.
package mathspan

import "strings"

// Kind distinguishes display math (its own block) from inline math.
type Kind int

const (
	KindInline Kind = iota
	KindDisplay
)

// Segment is a contiguous run of scanned input: either literal text passed
// through unchanged, or a recognized math span.
type Segment struct {
	Math   bool
	Kind   Kind
	Text   string // literal text (Math == false)
	Source string // TeX source without delimiters (Math == true)
	Raw    string // full span including delimiters (Math == true)
}

// Scan walks text once and returns its segmentation into literal runs and
// math spans. Spans are non-overlapping and appear in source order;
// concatenating Raw (for math) and Text (for literal) segments reproduces
// the input exactly.
func Scan(text string) []Segment {
	var segs []Segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]

		switch {
		case c == '$':
			if i+1 < len(text) && text[i+1] == '$' {
				// Display $$…$$: first $$ after the opener terminates.
				end := strings.Index(text[i+2:], "$$")
				if end < 0 {
					lit.WriteString(text[i:])
					i = len(text)
					continue
				}
				flush()
				segs = append(segs, Segment{
					Math:   true,
					Kind:   KindDisplay,
					Source: text[i+2 : i+2+end],
					Raw:    text[i : i+2+end+2],
				})
				i += 2 + end + 2
				continue
			}
			// Inline $…$: never spans a line, never empty.
			j := i + 1
			for j < len(text) && text[j] != '$' && text[j] != '\n' {
				j++
			}
			if j >= len(text) || text[j] == '\n' || j == i+1 {
				// Unterminated, newline first, or empty content: the
				// opening $ and scanned text reappear verbatim and
				// scanning resumes after them.
				stop := j
				if stop < len(text) && text[stop] == '\n' {
					stop++
				}
				lit.WriteString(text[i:stop])
				i = stop
				continue
			}
			flush()
			segs = append(segs, Segment{
				Math:   true,
				Kind:   KindInline,
				Source: text[i+1 : j],
				Raw:    text[i : j+1],
			})
			i = j + 1

		case c == '\\' && i+1 < len(text) && text[i+1] == '(':
			j, ok := scanUntil(text, i+2, "\\)", true)
			if !ok || j == i+2 {
				stop := j
				if !ok && stop < len(text) && text[stop] == '\n' {
					stop++
				}
				if ok {
					// Empty span: emit the delimiters verbatim.
					stop = j + 2
				}
				lit.WriteString(text[i:stop])
				i = stop
				continue
			}
			flush()
			segs = append(segs, Segment{
				Math:   true,
				Kind:   KindInline,
				Source: text[i+2 : j],
				Raw:    text[i : j+2],
			})
			i = j + 2

		case c == '\\' && i+1 < len(text) && text[i+1] == '[':
			j, ok := scanUntil(text, i+2, "\\]", false)
			if !ok {
				lit.WriteString(text[i:])
				i = len(text)
				continue
			}
			flush()
			segs = append(segs, Segment{
				Math:   true,
				Kind:   KindDisplay,
				Source: text[i+2 : j],
				Raw:    text[i : j+2],
			})
			i = j + 2

		default:
			lit.WriteByte(c)
			i++
		}
	}

	flush()
	return segs
}

// scanUntil returns the index where term begins, searching from start. When
// breakOnNewline is set the search stops at the first newline (inline math
// never spans a line) and the returned index is that of the newline, with
// ok false.
func scanUntil(text string, start int, term string, breakOnNewline bool) (int, bool) {
	for j := start; j+len(term) <= len(text); j++ {
		if breakOnNewline && text[j] == '\n' {
			return j, false
		}
		if text[j:j+len(term)] == term {
			return j, true
		}
	}
	if breakOnNewline {
		// Report any trailing newline so the caller can resume after it.
		if idx := strings.IndexByte(text[start:], '\n'); idx >= 0 {
			return start + idx, false
		}
	}
	return len(text), false
}
