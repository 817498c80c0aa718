// Package nav builds the site navigation model: an ordered list of entries
// (page links, external links, dropdown groups) resolved from the declarative
// site configuration, plus per-page depth-relative path prefixes.
package nav

// EntryKind tags the navigation entry variants.
type EntryKind int

const (
	// KindPage links to a generated page by slug.
	KindPage EntryKind = iota
	// KindExternal links to a URL outside the site, opened in a new tab.
	KindExternal
	// KindDropdown references a configured dropdown group by name.
	KindDropdown
)

// Entry is one top-level navigation item. Exactly the fields of its kind
// are populated.
type Entry struct {
	Kind EntryKind

	Slug  string // KindPage
	Title string // KindPage

	URL  string // KindExternal
	Text string // KindExternal

	Dropdown string // KindDropdown: group name

	Active bool // set per rendered page
}

// DropdownKind tags the two dropdown content variants.
type DropdownKind int

const (
	// DropdownMapping is an ordered name→url mapping. Slugs referenced here
	// stay independently listed in the top-level navigation.
	DropdownMapping DropdownKind = iota
	// DropdownSequence is a list of slugs and external links. Slugs
	// referenced here are reachable only through the dropdown and are
	// suppressed from the top-level navigation.
	DropdownSequence
)

// Dropdown is a named, configuration-declared cluster of links rendered as
// one expandable menu entry.
type Dropdown struct {
	Name  string
	Kind  DropdownKind
	Pairs []NamePair // DropdownMapping, in configuration order
	Items []Item     // DropdownSequence, in configuration order
}

// NamePair is one key→url pair of a mapping dropdown. The key is resolved
// to a known document's title for display when possible.
type NamePair struct {
	Name string
	URL  string
}

// Item is one element of a sequence dropdown: either a bare document slug
// or a literal external link.
type Item struct {
	Slug string // bare slug item when non-empty
	URL  string // external item
	Text string // external item
}

// IsExternal reports whether the item is a literal {url, text} pair.
func (it Item) IsExternal() bool { return it.Slug == "" }

// OrderItem is one element of page_order or navbar_order: a name (slug or
// dropdown reference), an explicit {dropdown: name} reference, or an
// external {url, text} link.
type OrderItem struct {
	Name     string
	Dropdown string
	URL      string
	Text     string
}

// IsName reports a bare string entry.
func (o OrderItem) IsName() bool { return o.Name != "" }

// IsDropdown reports an explicit dropdown reference entry.
func (o OrderItem) IsDropdown() bool { return o.Dropdown != "" }

// IsExternal reports an external-link entry.
func (o OrderItem) IsExternal() bool { return o.URL != "" && o.Text != "" }

// Config is the typed navigation configuration, decoded once at
// configuration-load time.
type Config struct {
	PageOrder   []OrderItem
	NavbarOrder []OrderItem
	Dropdowns   []Dropdown // in configuration key order
}

// FindDropdown returns the configured dropdown with the given name.
func (c Config) FindDropdown(name string) (Dropdown, bool) {
	for _, d := range c.Dropdowns {
		if d.Name == name {
			return d, true
		}
	}
	return Dropdown{}, false
}

// SuppressedSlugs returns the slugs referenced by sequence dropdowns; these
// are excluded from top-level navigation (the root slug never is).
func (c Config) SuppressedSlugs() map[string]struct{} {
	out := map[string]struct{}{}
	for _, d := range c.Dropdowns {
		if d.Kind != DropdownSequence {
			continue
		}
		for _, it := range d.Items {
			if it.Slug != "" {
				out[it.Slug] = struct{}{}
			}
		}
	}
	return out
}
