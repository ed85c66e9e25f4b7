package wikitext

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip implements the Markup Normalizer: it renders a wikitext fragment
// to plain text, unwrapping bold/italic/wikilink/tag constructs while
// preserving their inner text, dropping image-style wikilinks (a wikilink
// whose display text itself contains a nested wikilink), and decoding
// HTML entities in a final pass — mirroring the teacher's own use of
// golang.org/x/net/html.UnescapeString in normalizeHeadword.
//
// Each node is rendered independently; a node this package doesn't know
// how to render (templates, anything malformed) contributes nothing
// rather than aborting the whole fragment, matching the defensive
// per-node skip semantics of the original normalizer.
func Strip(s string) string {
	var b strings.Builder
	for _, n := range Parse(s) {
		writeStripped(&b, n)
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}

func writeStripped(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindBold, KindItalic, KindTag:
		for _, c := range n.Children {
			writeStripped(b, c)
		}
	case KindWikiLink:
		if containsWikiLink(n.Display) {
			return // image/file reference: dropped entirely
		}
		if n.Display != nil {
			for _, c := range n.Display {
				writeStripped(b, c)
			}
		} else {
			b.WriteString(n.Target)
		}
	case KindTemplate:
		// Templates carry semantics the normalizer doesn't interpret on its
		// own (that's the Entry Assembler's job); they render as nothing.
	}
}

// RenderPlain is Strip's building block reused by value parsers and the
// grammar normalizer that already hold a parsed node slice (e.g. a
// wikilink's display text) and want its plain-text rendering without
// re-parsing.
func RenderPlain(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeStripped(&b, n)
	}
	return strings.TrimSpace(b.String())
}
