package nav

import (
	"git.home.luguber.info/inful/mdsite/internal/docs"
	"git.home.luguber.info/inful/mdsite/internal/links"
)

// NavLink is one concrete, fully-resolved hyperlink in a rendered navbar.
type NavLink struct {
	Href   string
	Text   string
	Active bool
	NewTab bool
}

// NavItem is one rendered top-level navigation slot: either a plain link or
// an expandable dropdown.
type NavItem struct {
	IsDropdown bool
	Link       NavLink
	Name       string    // dropdown display name
	Links      []NavLink // dropdown content
}

// PageNav is the navigation view for one rendered page. Every href is
// adjusted for the page's depth so the page works however deep it is
// nested.
type PageNav struct {
	Prefix string // repeated parent markers up to the site root
	Logo   NavLink
	Items  []NavItem
}

// ForPage resolves the site model into the navigation view of the page with
// the given slug and depth. At most one entry is marked active; a page
// reachable only through a dropdown marks none.
func (m *Model) ForPage(slug string, depth int) PageNav {
	prefix := RootPrefix(depth)

	page := PageNav{
		Prefix: prefix,
		Logo: NavLink{
			Href:   prefix + docs.RootSlug + links.OutputExt,
			Text:   m.IndexTitle,
			Active: slug == docs.RootSlug,
		},
	}

	for _, e := range m.Entries {
		switch e.Kind {
		case KindPage:
			page.Items = append(page.Items, NavItem{
				Link: NavLink{
					Href:   prefix + e.Slug + links.OutputExt,
					Text:   e.Title,
					Active: e.Slug == slug,
				},
			})

		case KindExternal:
			page.Items = append(page.Items, NavItem{
				Link: NavLink{Href: e.URL, Text: e.Text, NewTab: true},
			})

		case KindDropdown:
			d, ok := m.Config.FindDropdown(e.Dropdown)
			if !ok {
				continue
			}
			page.Items = append(page.Items, NavItem{
				IsDropdown: true,
				Name:       d.Name,
				Links:      m.dropdownLinks(d, prefix),
			})
		}
	}

	return page
}

// dropdownLinks resolves dropdown content to concrete links. Mapping URLs
// are taken verbatim (already-resolved targets); sequence slugs are
// depth-adjusted like any page link.
func (m *Model) dropdownLinks(d Dropdown, prefix string) []NavLink {
	var out []NavLink

	if d.Kind == DropdownMapping {
		for _, pair := range d.Pairs {
			text := pair.Name
			if title, ok := m.Titles[pair.Name]; ok {
				text = title
			}
			out = append(out, NavLink{Href: pair.URL, Text: text})
		}
		return out
	}

	for _, item := range d.Items {
		if item.IsExternal() {
			if item.URL == "" || item.Text == "" {
				continue
			}
			out = append(out, NavLink{Href: item.URL, Text: item.Text, NewTab: true})
			continue
		}

		slug := item.Slug
		if m.Index != nil {
			if resolved, ok := m.Index.Resolve(item.Slug); ok {
				slug = resolved
			}
		}
		text := item.Slug
		if title, ok := m.Titles[slug]; ok {
			text = title
		}
		out = append(out, NavLink{Href: prefix + slug + links.OutputExt, Text: text})
	}
	return out
}
