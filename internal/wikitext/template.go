package wikitext

import "strings"

// FindTemplates parses s and returns every template node, at any nesting
// depth (inside bold/italic/tag contents or a wikilink's display text),
// whose Name equals name. Pass an empty name to collect every template.
func FindTemplates(s string, name string) []Node {
	var out []Node
	var walk func(ns []Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			if n.Kind == KindTemplate && (name == "" || n.Name == name) {
				out = append(out, n)
			}
			switch n.Kind {
			case KindBold, KindItalic, KindTag:
				walk(n.Children)
			case KindWikiLink:
				walk(n.Display)
			}
		}
	}
	walk(Parse(s))
	return out
}

// FirstListBlock returns the items of the first contiguous list block in
// text, or nil if text has no list (spec §4.6 step 4: "the first
// top-level list").
func FirstListBlock(text string) []ListItem {
	blocks := ParseListBlocks(text)
	if len(blocks) == 0 {
		return nil
	}
	return blocks[0]
}

// ExampleItems returns every item nested under item (at any depth) whose
// marker matches the "#:*" pattern (spec §4.6 step 5: examples are the
// sublist items "matching the pattern #:*", not every nested line — a
// bare "#:" source-citation line or a differently-marked sub-item is not
// an example).
func ExampleItems(item ListItem) []ListItem {
	var out []ListItem
	var walk func(items []ListItem)
	walk = func(items []ListItem) {
		for _, c := range items {
			if strings.HasPrefix(c.Marker, "#:*") {
				out = append(out, c)
			}
			walk(c.Children)
		}
	}
	walk(item.Children)
	return out
}
