package wikitext

import (
	"regexp"
	"strings"
)

// ListItem is one line of a MediaWiki list (`#`, `*`, `:` prefixed,
// possibly nested via repeated/combined prefix characters, e.g. `#:*`
// for a bulleted sub-item under a numbered item). Text is the raw
// wikitext of the line after its marker; callers strip or further parse
// it as needed.
type ListItem struct {
	Marker   string
	Text     string
	Children []ListItem
}

var listLineRe = regexp.MustCompile(`^([#*:]+)\s?(.*)$`)

// listNode is the pointer-based working tree used while parsing; it is
// converted to the value-typed ListItem tree once parsing completes so
// that appending children never invalidates a previously taken pointer.
type listNode struct {
	Marker   string
	Text     string
	Children []*listNode
}

// ParseListBlocks splits text into separate list blocks: a run of
// consecutive list-marker lines forms one block, and any intervening
// non-list line (blank or prose) starts a new block. This distinguishes
// the Entry Assembler's "first top-level list" (spec §4.6 step 4, which
// wants exactly one block) from the List Extractor's "concatenate every
// top-level list" (spec §4.3, which wants every block flattened).
func ParseListBlocks(text string) [][]ListItem {
	var blocks [][]ListItem
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, parseBlock(current))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if listLineRe.MatchString(line) {
			current = append(current, line)
		} else {
			flush()
		}
	}
	flush()

	return blocks
}

// ParseLists returns every top-level list item in text, flattening
// separate blocks into one sequence in document order (spec §4.3).
func ParseLists(text string) []ListItem {
	var out []ListItem
	for _, block := range ParseListBlocks(text) {
		out = append(out, block...)
	}
	return out
}

func parseBlock(lines []string) []ListItem {
	var top []*listNode
	var stack []*listNode // stack[i] holds the item at depth i+1

	for _, line := range lines {
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		marker, rest := m[1], m[2]
		depth := len(marker)
		// attach is the structural nesting depth, capped to the stack's
		// current capacity; marker keeps its full literal text regardless,
		// since callers (e.g. the "#:*" example-marker filter) match on it.
		attach := depth
		if attach > len(stack)+1 {
			attach = len(stack) + 1
		}

		node := &listNode{Marker: marker, Text: rest}
		if attach == 1 {
			top = append(top, node)
		} else {
			parent := stack[attach-2]
			parent.Children = append(parent.Children, node)
		}

		if attach-1 < len(stack) {
			stack = stack[:attach-1]
		}
		stack = append(stack, node)
	}

	return toListItems(top)
}

func toListItems(nodes []*listNode) []ListItem {
	out := make([]ListItem, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ListItem{Marker: n.Marker, Text: n.Text, Children: toListItems(n.Children)})
	}
	return out
}
