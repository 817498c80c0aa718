package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdsite/internal/docs"
	"git.home.luguber.info/inful/mdsite/internal/links"
)

func doc(slug, title string, depth int) docs.Document {
	return docs.Document{Slug: slug, Title: title, Depth: depth}
}

func testDocs() []docs.Document {
	return []docs.Document{
		doc("a", "Alpha", 0),
		doc("b", "Beta", 0),
		doc("c", "Gamma", 0),
		doc("index", "Home", 0),
	}
}

func testIndex(t *testing.T, documents []docs.Document) *links.Index {
	t.Helper()
	idx, err := links.NewIndex(docs.Slugs(documents))
	require.NoError(t, err)
	return idx
}

func names(order ...string) []OrderItem {
	out := make([]OrderItem, len(order))
	for i, n := range order {
		out[i] = OrderItem{Name: n}
	}
	return out
}

func TestOrderDocuments_ListedThenUnlistedAlphabetical(t *testing.T) {
	ordered := OrderDocuments(testDocs(), names("b", "a"))

	assert.Equal(t, []string{"index", "b", "a", "c"}, docs.Slugs(ordered))
}

func TestOrderDocuments_NoOrderListIsAlphabeticalIndexFirst(t *testing.T) {
	ordered := OrderDocuments(testDocs(), nil)

	assert.Equal(t, []string{"index", "a", "b", "c"}, docs.Slugs(ordered))
}

func TestOrderDocuments_ExternalEntriesDoNotAffectPositions(t *testing.T) {
	order := []OrderItem{{URL: "https://x", Text: "X"}, {Name: "c"}, {Name: "a"}}

	ordered := OrderDocuments(testDocs(), order)
	assert.Equal(t, []string{"index", "c", "a", "b"}, docs.Slugs(ordered))
}

func TestBuild_DefaultEntries_SortedAndRootExcluded(t *testing.T) {
	documents := testDocs()
	m := Build(documents, Config{}, testIndex(t, documents), "Site")

	require.Len(t, m.Entries, 3)
	assert.Equal(t, "a", m.Entries[0].Slug)
	assert.Equal(t, "b", m.Entries[1].Slug)
	assert.Equal(t, "c", m.Entries[2].Slug)
	assert.Equal(t, "Home", m.IndexTitle)
}

func TestBuild_NavbarOrderWinsOverPageOrder(t *testing.T) {
	cfg := Config{
		NavbarOrder: names("c", "a"),
		PageOrder:   names("a", "b", "c"),
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "c", m.Entries[0].Slug)
	assert.Equal(t, "a", m.Entries[1].Slug)
}

func TestBuild_NavbarOrder_MixedEntryShapes(t *testing.T) {
	cfg := Config{
		NavbarOrder: []OrderItem{
			{Name: "b"},
			{Name: "Resources"}, // names a configured dropdown
			{Dropdown: "More"},
			{URL: "https://example.com", Text: "Docs"},
			{Name: "nonexistent"},
			{Name: "index"}, // root entry is synthesized separately
		},
		Dropdowns: []Dropdown{
			{Name: "Resources", Kind: DropdownSequence, Items: []Item{{Slug: "a"}}},
			{Name: "More", Kind: DropdownMapping, Pairs: []NamePair{{Name: "b", URL: "https://b"}}},
		},
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	require.Len(t, m.Entries, 4)
	assert.Equal(t, KindPage, m.Entries[0].Kind)
	assert.Equal(t, "b", m.Entries[0].Slug)
	assert.Equal(t, KindDropdown, m.Entries[1].Kind)
	assert.Equal(t, "Resources", m.Entries[1].Dropdown)
	assert.Equal(t, KindDropdown, m.Entries[2].Kind)
	assert.Equal(t, "More", m.Entries[2].Dropdown)
	assert.Equal(t, KindExternal, m.Entries[3].Kind)
}

func TestBuild_PageOrder_DropdownsAppendedInKeyOrder(t *testing.T) {
	cfg := Config{
		PageOrder: names("b", "a"),
		Dropdowns: []Dropdown{
			{Name: "First", Kind: DropdownMapping},
			{Name: "Second", Kind: DropdownSequence},
		},
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	require.Len(t, m.Entries, 4)
	assert.Equal(t, "b", m.Entries[0].Slug)
	assert.Equal(t, "a", m.Entries[1].Slug)
	assert.Equal(t, "First", m.Entries[2].Dropdown)
	assert.Equal(t, "Second", m.Entries[3].Dropdown)
}

func TestBuild_SequenceDropdownSuppressesEntry(t *testing.T) {
	cfg := Config{
		Dropdowns: []Dropdown{
			{Name: "Resources", Kind: DropdownSequence, Items: []Item{{Slug: "b"}}},
		},
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	for _, e := range m.Entries {
		assert.NotEqual(t, "b", e.Slug, "slug referenced by a sequence dropdown must be suppressed")
	}
}

func TestBuild_MappingDropdownDoesNotSuppress(t *testing.T) {
	cfg := Config{
		Dropdowns: []Dropdown{
			{Name: "Syllabi", Kind: DropdownMapping, Pairs: []NamePair{{Name: "b", URL: "https://b"}}},
		},
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	var found bool
	for _, e := range m.Entries {
		if e.Kind == KindPage && e.Slug == "b" {
			found = true
		}
	}
	assert.True(t, found, "slug in a mapping dropdown stays independently listed")
}

func TestBuild_PageOrderSuppressionKeepsExternalLinks(t *testing.T) {
	cfg := Config{
		PageOrder: []OrderItem{{Name: "a"}, {URL: "https://x", Text: "X"}},
		Dropdowns: []Dropdown{
			{Name: "R", Kind: DropdownSequence, Items: []Item{{Slug: "a"}}},
		},
	}
	documents := testDocs()

	m := Build(documents, cfg, testIndex(t, documents), "Site")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, KindExternal, m.Entries[0].Kind)
	assert.Equal(t, KindDropdown, m.Entries[1].Kind)
}

func TestRootPrefix(t *testing.T) {
	assert.Equal(t, "", RootPrefix(0))
	assert.Equal(t, "../", RootPrefix(1))
	assert.Equal(t, "../../../", RootPrefix(3))
}
