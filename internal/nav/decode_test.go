package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderItem_DecodeShapes(t *testing.T) {
	var items []OrderItem
	src := `
- about
- {dropdown: Resources}
- {url: "https://example.com", text: "Docs"}
- {bogus: true}
- [nested, list]
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &items))
	require.Len(t, items, 5)

	assert.True(t, items[0].IsName())
	assert.Equal(t, "about", items[0].Name)

	assert.True(t, items[1].IsDropdown())
	assert.Equal(t, "Resources", items[1].Dropdown)

	assert.True(t, items[2].IsExternal())
	assert.Equal(t, "https://example.com", items[2].URL)
	assert.Equal(t, "Docs", items[2].Text)

	// Unrecognized shapes decode to ignorable zero items.
	assert.False(t, items[3].IsName() || items[3].IsDropdown() || items[3].IsExternal())
	assert.False(t, items[4].IsName() || items[4].IsDropdown() || items[4].IsExternal())
}

func TestDropdownSet_DecodePreservesKeyOrder(t *testing.T) {
	var set DropdownSet
	src := `
Zeta:
  alpha: "https://a"
  beta: "https://b"
Alpha:
  - sir
  - {url: "https://x", text: "X"}
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &set))
	require.Len(t, set, 2)

	assert.Equal(t, "Zeta", set[0].Name)
	assert.Equal(t, DropdownMapping, set[0].Kind)
	require.Len(t, set[0].Pairs, 2)
	assert.Equal(t, NamePair{Name: "alpha", URL: "https://a"}, set[0].Pairs[0])
	assert.Equal(t, NamePair{Name: "beta", URL: "https://b"}, set[0].Pairs[1])

	assert.Equal(t, "Alpha", set[1].Name)
	assert.Equal(t, DropdownSequence, set[1].Kind)
	require.Len(t, set[1].Items, 2)
	assert.Equal(t, Item{Slug: "sir"}, set[1].Items[0])
	assert.Equal(t, Item{URL: "https://x", Text: "X"}, set[1].Items[1])
}

func TestDropdownSet_IncompleteExternalItemDropped(t *testing.T) {
	var set DropdownSet
	src := `
R:
  - {url: "https://x"}
  - {text: "no url"}
  - good
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &set))
	require.Len(t, set, 1)
	require.Len(t, set[0].Items, 1)
	assert.Equal(t, "good", set[0].Items[0].Slug)
}

func TestDropdownSet_NonMappingIsError(t *testing.T) {
	var set DropdownSet
	require.Error(t, yaml.Unmarshal([]byte(`- a`), &set))
}

func TestSuppressedSlugs(t *testing.T) {
	cfg := Config{
		Dropdowns: []Dropdown{
			{Name: "S", Kind: DropdownSequence, Items: []Item{{Slug: "a"}, {URL: "https://x", Text: "X"}}},
			{Name: "M", Kind: DropdownMapping, Pairs: []NamePair{{Name: "b", URL: "u"}}},
		},
	}

	suppressed := cfg.SuppressedSlugs()
	_, aHidden := suppressed["a"]
	_, bHidden := suppressed["b"]
	assert.True(t, aHidden)
	assert.False(t, bHidden, "mapping dropdown must not suppress")
}
