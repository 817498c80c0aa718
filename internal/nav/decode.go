package nav

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes one order-list element. A scalar is a name (slug or
// dropdown reference), a mapping with a `dropdown` key is an explicit
// dropdown reference, and a mapping with `url` and `text` is an external
// link. Anything else is warned about here, at load time, and yields a zero
// item the builder ignores.
func (o *OrderItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		o.Name = s
		return nil

	case yaml.MappingNode:
		var m struct {
			Dropdown string `yaml:"dropdown"`
			URL      string `yaml:"url"`
			Text     string `yaml:"text"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		switch {
		case m.Dropdown != "":
			o.Dropdown = m.Dropdown
		case m.URL != "" && m.Text != "":
			o.URL = m.URL
			o.Text = m.Text
		default:
			slog.Warn("Ignoring unrecognized order entry", "line", node.Line)
		}
		return nil

	default:
		slog.Warn("Ignoring unrecognized order entry", "line", node.Line)
		return nil
	}
}

// DropdownSet decodes the `dropdowns` configuration mapping while
// preserving its key order, which is significant for navigation.
type DropdownSet []Dropdown

// UnmarshalYAML decodes the name→group mapping. Each group value is either
// a name→url mapping or a sequence of slugs and {url, text} links.
func (s *DropdownSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("dropdowns must be a mapping, got %s at line %d", nodeKind(node), node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		d := Dropdown{Name: keyNode.Value}
		switch valNode.Kind {
		case yaml.MappingNode:
			d.Kind = DropdownMapping
			for j := 0; j+1 < len(valNode.Content); j += 2 {
				d.Pairs = append(d.Pairs, NamePair{
					Name: valNode.Content[j].Value,
					URL:  valNode.Content[j+1].Value,
				})
			}

		case yaml.SequenceNode:
			d.Kind = DropdownSequence
			for _, itemNode := range valNode.Content {
				item, ok := decodeItem(itemNode)
				if !ok {
					slog.Warn("Ignoring unrecognized dropdown item", "dropdown", d.Name, "line", itemNode.Line)
					continue
				}
				d.Items = append(d.Items, item)
			}

		default:
			slog.Warn("Ignoring dropdown with unrecognized shape", "dropdown", d.Name, "line", valNode.Line)
			continue
		}

		*s = append(*s, d)
	}
	return nil
}

func decodeItem(node *yaml.Node) (Item, bool) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Item{Slug: node.Value}, node.Value != ""

	case yaml.MappingNode:
		var m struct {
			URL  string `yaml:"url"`
			Text string `yaml:"text"`
		}
		if err := node.Decode(&m); err != nil || m.URL == "" || m.Text == "" {
			return Item{}, false
		}
		return Item{URL: m.URL, Text: m.Text}, true

	default:
		return Item{}, false
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}
