// Package wikitext is the minimal wikitext access layer the extraction
// pipeline is built on: a node-tree tokenizer, the markup normalizer, the
// section tree builder, the list extractor, and the non-grammar value
// parsers. No corpus example ships a wikitext AST library, so this package
// plays that role directly (see DESIGN.md).
package wikitext

// Kind tags a Node's variant. Matching on Kind replaces the dynamic
// attribute access a scripting-language wikitext parser would use.
type Kind int

const (
	KindText Kind = iota
	KindBold
	KindItalic
	KindWikiLink
	KindTag
	KindTemplate
)

// Arg is one template argument. Name is empty for positional arguments.
// Value is the raw, unparsed wikitext of the argument — callers re-parse
// or strip it as needed.
type Arg struct {
	Name  string
	Value string
}

// Node is one element of a parsed wikitext fragment. Only the fields
// relevant to Kind are populated; see the Kind constants above.
type Node struct {
	Kind Kind

	// KindText
	Text string

	// KindBold, KindItalic, KindTag: inner content, already parsed.
	Children []Node

	// KindWikiLink: link target. KindTag: tag name.
	Target string

	// KindWikiLink: parsed display nodes; nil when no display text was given
	// ([[target]] rather than [[target|display]]).
	Display []Node

	// KindTemplate
	Name string
	Args []Arg
}

// containsWikiLink reports whether any node in ns is itself a wikilink,
// recursing into bold/italic/tag contents and wikilink display text. Used
// to detect the image/file-reference case: a wikilink whose display text
// contains a nested wikilink.
func containsWikiLink(ns []Node) bool {
	for _, n := range ns {
		switch n.Kind {
		case KindWikiLink:
			return true
		case KindBold, KindItalic, KindTag:
			if containsWikiLink(n.Children) {
				return true
			}
		}
	}
	return false
}
