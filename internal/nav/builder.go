package nav

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/mdsite/internal/docs"
	"git.home.luguber.info/inful/mdsite/internal/links"
)

// ParentMarker is the relative path step emitted once per depth level to
// reach the site root from a nested page.
const ParentMarker = "../"

// RootPrefix returns the prefix a page at the given directory depth needs
// to address the site root: depth repetitions of the parent marker.
func RootPrefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(ParentMarker, depth)
}

// Model is the site-wide navigation model. It is built once per build and
// treated as read-only by every page render.
type Model struct {
	Entries    []Entry
	Config     Config
	Titles     map[string]string
	Index      *links.Index
	IndexTitle string
	SiteTitle  string
}

// Build resolves the declarative configuration against the discovered
// document set into the concrete navigation model.
func Build(documents []docs.Document, cfg Config, idx *links.Index, siteTitle string) *Model {
	titles := docs.Titles(documents)

	indexTitle := siteTitle
	if t, ok := titles[docs.RootSlug]; ok {
		indexTitle = t
	}

	return &Model{
		Entries:    buildEntries(documents, cfg, idx),
		Config:     cfg,
		Titles:     titles,
		Index:      idx,
		IndexTitle: indexTitle,
		SiteTitle:  siteTitle,
	}
}

// OrderDocuments returns documents in build order: the root document first;
// documents named in the order list by list position; unlisted documents
// after all listed ones, lexicographically by slug.
func OrderDocuments(documents []docs.Document, order []OrderItem) []docs.Document {
	position := map[string]int{}
	for i, item := range order {
		if item.IsName() {
			if _, seen := position[item.Name]; !seen {
				position[item.Name] = i
			}
		}
	}

	out := append([]docs.Document(nil), documents...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsRoot() != b.IsRoot() {
			return a.IsRoot()
		}
		ai, aListed := position[a.Slug]
		bi, bListed := position[b.Slug]
		switch {
		case aListed && bListed:
			return ai < bi
		case aListed != bListed:
			return aListed
		default:
			return a.Slug < b.Slug
		}
	})
	return out
}

// buildEntries constructs the top-level entry list. navbar_order wins when
// present; page_order is the fallback (with dropdowns appended in
// configuration order); with neither, every document becomes an entry in
// sorted order followed by the dropdowns.
func buildEntries(documents []docs.Document, cfg Config, idx *links.Index) []Entry {
	titles := docs.Titles(documents)
	suppressed := cfg.SuppressedSlugs()

	resolvePage := func(name string) (Entry, bool) {
		slug := name
		if idx != nil {
			if resolved, ok := idx.Resolve(name); ok {
				slug = resolved
			}
		}
		title, known := titles[slug]
		if !known {
			return Entry{}, false
		}
		return Entry{Kind: KindPage, Slug: slug, Title: title}, true
	}

	var entries []Entry

	switch {
	case len(cfg.NavbarOrder) > 0:
		for _, item := range cfg.NavbarOrder {
			switch {
			case item.IsName():
				if _, isDropdown := cfg.FindDropdown(item.Name); isDropdown {
					entries = append(entries, Entry{Kind: KindDropdown, Dropdown: item.Name})
					continue
				}
				if e, ok := resolvePage(item.Name); ok && e.Slug != docs.RootSlug {
					entries = append(entries, e)
				}
			case item.IsDropdown():
				entries = append(entries, Entry{Kind: KindDropdown, Dropdown: item.Dropdown})
			case item.IsExternal():
				entries = append(entries, Entry{Kind: KindExternal, URL: item.URL, Text: item.Text})
			}
		}

	case len(cfg.PageOrder) > 0:
		for _, item := range cfg.PageOrder {
			switch {
			case item.IsName():
				e, ok := resolvePage(item.Name)
				if !ok || e.Slug == docs.RootSlug {
					continue
				}
				if _, hidden := suppressed[e.Slug]; hidden {
					continue
				}
				entries = append(entries, e)
			case item.IsExternal():
				entries = append(entries, Entry{Kind: KindExternal, URL: item.URL, Text: item.Text})
			}
		}
		entries = appendDropdowns(entries, cfg)

	default:
		for _, d := range OrderDocuments(documents, nil) {
			if d.IsRoot() {
				continue
			}
			if _, hidden := suppressed[d.Slug]; hidden {
				continue
			}
			entries = append(entries, Entry{Kind: KindPage, Slug: d.Slug, Title: d.Title})
		}
		entries = appendDropdowns(entries, cfg)
	}

	return entries
}

func appendDropdowns(entries []Entry, cfg Config) []Entry {
	for _, d := range cfg.Dropdowns {
		entries = append(entries, Entry{Kind: KindDropdown, Dropdown: d.Name})
	}
	return entries
}
