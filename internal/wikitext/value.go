package wikitext

import (
	"strings"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
)

// ParseWikiLinks implements parse_wikilinks (spec §4.4): every wikilink
// in s, including image-style ones (unlike Strip, this parser is not
// trying to render prose — it wants the links themselves), mapped to a
// WikiLink with text defaulting to target.
func ParseWikiLinks(s string) []lexicon.WikiLink {
	var out []lexicon.WikiLink
	var walk func(ns []Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch n.Kind {
			case KindWikiLink:
				text := n.Target
				if len(n.Display) > 0 {
					text = RenderPlain(n.Display)
					if text == "" {
						text = n.Target
					}
				}
				out = append(out, lexicon.WikiLink{Text: text, Link: n.Target})
				walk(n.Display)
			case KindBold, KindItalic, KindTag:
				walk(n.Children)
			}
		}
	}
	walk(Parse(s))
	return out
}

// ParseAntonym implements parse_antonym (spec §4.4): wikilinks when
// present, else the raw string as a single plain-text Reference when it
// has non-whitespace content, else nothing.
func ParseAntonym(s string) []lexicon.Reference {
	if links := ParseWikiLinks(s); len(links) > 0 {
		out := make([]lexicon.Reference, len(links))
		for i, l := range links {
			out[i] = lexicon.LinkRef(l)
		}
		return out
	}
	if strings.TrimSpace(s) != "" {
		return []lexicon.Reference{lexicon.PlainRef(s)}
	}
	return nil
}

// ExampleFromStr implements Example.from_str (spec §4.4): when s
// contains a template, its first positional argument (markup-stripped)
// becomes the example text, the template name becomes kind, and the raw
// values of the remaining positional arguments become source. Otherwise
// the whole string, markup-stripped, is the text with kind "plain-text".
func ExampleFromStr(s string) lexicon.Example {
	for _, n := range Parse(s) {
		if n.Kind != KindTemplate {
			continue
		}
		var positional []string
		for _, a := range n.Args {
			if a.Name == "" {
				positional = append(positional, a.Value)
			}
		}
		var text string
		if len(positional) > 0 {
			text = Strip(positional[0])
		}
		var source []string
		if len(positional) > 1 {
			source = append(source, positional[1:]...)
		}
		return lexicon.Example{Text: text, Kind: n.Name, Source: source}
	}
	return lexicon.Example{Text: Strip(s), Kind: "plain-text"}
}
