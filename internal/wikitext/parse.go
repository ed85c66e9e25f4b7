package wikitext

import "strings"

// Parse tokenizes a wikitext fragment into a flat sequence of top-level
// nodes (bold/italic spans, wikilinks, templates, tags and text each
// becoming one node; nested content is parsed recursively into Children /
// Display / Args).
func Parse(s string) []Node {
	nodes, _ := parseUntil(s, 0, "")
	return nodes
}

// parseUntil parses s starting at pos until either the end of the string
// or, when closeTag is non-empty, a matching "</closeTag>" is found (in
// which case its length is consumed and included in the returned position).
func parseUntil(s string, pos int, closeTag string) ([]Node, int) {
	var nodes []Node
	var textStart = pos

	flushText := func(end int) {
		if end > textStart {
			nodes = append(nodes, Node{Kind: KindText, Text: s[textStart:end]})
		}
	}

	for pos < len(s) {
		if closeTag != "" {
			if end, ok := matchClosingTag(s, pos, closeTag); ok {
				flushText(pos)
				return nodes, end
			}
		}

		switch {
		case strings.HasPrefix(s[pos:], "'''"):
			flushText(pos)
			n, next := parseBold(s, pos)
			nodes = append(nodes, n)
			pos = next
			textStart = pos
		case strings.HasPrefix(s[pos:], "''"):
			flushText(pos)
			n, next := parseItalic(s, pos)
			nodes = append(nodes, n)
			pos = next
			textStart = pos
		case strings.HasPrefix(s[pos:], "{{"):
			flushText(pos)
			n, next := parseTemplate(s, pos)
			nodes = append(nodes, n)
			pos = next
			textStart = pos
		case strings.HasPrefix(s[pos:], "[["):
			flushText(pos)
			n, next := parseWikiLink(s, pos)
			nodes = append(nodes, n)
			pos = next
			textStart = pos
		case strings.HasPrefix(s[pos:], "<!--"):
			flushText(pos)
			end := strings.Index(s[pos:], "-->")
			if end < 0 {
				pos = len(s)
			} else {
				pos += end + len("-->")
			}
			textStart = pos
		case s[pos] == '<':
			if n, next, ok := parseTag(s, pos); ok {
				flushText(pos)
				nodes = append(nodes, n)
				pos = next
				textStart = pos
				continue
			}
			pos++
		default:
			pos++
		}
	}

	flushText(len(s))
	return nodes, pos
}

func matchClosingTag(s string, pos int, tag string) (int, bool) {
	want := "</" + tag
	if !strings.HasPrefix(strings.ToLower(s[pos:]), strings.ToLower(want)) {
		return 0, false
	}
	rest := s[pos+len(want):]
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return 0, false
	}
	return pos + len(want) + end + 1, true
}

// parseBold consumes a non-recursive '''bold''' span. If no closing
// delimiter exists, the markers are treated as plain text.
func parseBold(s string, pos int) (Node, int) {
	return parseQuoted(s, pos, "'''")
}

// parseItalic consumes a non-recursive ''italic'' span.
func parseItalic(s string, pos int) (Node, int) {
	return parseQuoted(s, pos, "''")
}

func parseQuoted(s string, pos int, delim string) (Node, int) {
	kind := KindItalic
	if delim == "'''" {
		kind = KindBold
	}
	start := pos + len(delim)
	idx := strings.Index(s[start:], delim)
	if idx < 0 {
		// Unterminated: fall back to plain text for the delimiter itself.
		return Node{Kind: KindText, Text: delim}, pos + len(delim)
	}
	inner := s[start : start+idx]
	children := Parse(inner)
	return Node{Kind: kind, Children: children}, start + idx + len(delim)
}

// parseTemplate consumes a {{name|arg|name=value}} construct, tracking
// brace/bracket nesting so that templates and wikilinks may appear inside
// argument values.
func parseTemplate(s string, pos int) (Node, int) {
	end := matchBalanced(s, pos, "{{", "}}")
	inner := s[pos+2 : end]
	if strings.HasSuffix(inner, "}}") {
		inner = inner[:len(inner)-2]
	}
	parts := splitTopLevel(inner, '|')

	name := strings.TrimSpace(parts[0])
	var args []Arg
	for _, p := range parts[1:] {
		if eq := topLevelIndex(p, '='); eq >= 0 {
			args = append(args, Arg{Name: strings.TrimSpace(p[:eq]), Value: strings.TrimSpace(p[eq+1:])})
		} else {
			args = append(args, Arg{Value: strings.TrimSpace(p)})
		}
	}
	return Node{Kind: KindTemplate, Name: name, Args: args}, end
}

// parseWikiLink consumes a [[target|display]] construct. A nested
// wikilink inside the display portion marks this as an image/file
// reference (detected later via containsWikiLink).
func parseWikiLink(s string, pos int) (Node, int) {
	end := matchBalanced(s, pos, "[[", "]]")
	inner := s[pos+2 : end]
	if strings.HasSuffix(inner, "]]") {
		inner = inner[:len(inner)-2]
	}
	parts := splitTopLevel(inner, '|')

	target := strings.TrimSpace(parts[0])
	var display []Node
	if len(parts) > 1 {
		display = Parse(strings.Join(parts[1:], "|"))
	}
	return Node{Kind: KindWikiLink, Target: target, Display: display}, end
}

// parseTag consumes an HTML-ish <tag>...</tag> or self-closing <tag/>
// element. ok is false when pos does not begin a well-formed tag, in
// which case the caller treats '<' as a literal character.
func parseTag(s string, pos int) (Node, int, bool) {
	close := strings.IndexByte(s[pos:], '>')
	if close < 0 {
		return Node{}, pos, false
	}
	close += pos
	head := s[pos+1 : close]
	if head == "" || !isNameStart(head[0]) {
		return Node{}, pos, false
	}

	selfClosing := strings.HasSuffix(strings.TrimSpace(head), "/")
	name := firstToken(strings.TrimSuffix(strings.TrimSpace(head), "/"))

	if selfClosing {
		return Node{Kind: KindTag, Target: name}, close + 1, true
	}

	children, next := parseUntil(s, close+1, name)
	return Node{Kind: KindTag, Target: name, Children: children}, next, true
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func firstToken(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

// matchBalanced finds the end (exclusive, past the close marker) of a
// construct opened by open at pos, tracking nested occurrences of both
// open and close. If unterminated, the whole remaining string is consumed.
func matchBalanced(s string, pos int, open, close string) int {
	depth := 1
	i := pos + len(open)
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], open):
			depth++
			i += len(open)
		case strings.HasPrefix(s[i:], close):
			depth--
			i += len(close)
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return len(s)
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// {{...}} or [[...]].
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "{{") || strings.HasPrefix(s[i:], "[["):
			depth++
			i++
		case strings.HasPrefix(s[i:], "}}") || strings.HasPrefix(s[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i++
		case s[i] == sep && depth == 0:
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	parts = append(parts, s[last:])
	return parts
}

// topLevelIndex finds the first occurrence of b in s outside any
// {{...}}/[[...]] nesting, or -1.
func topLevelIndex(s string, b byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "{{") || strings.HasPrefix(s[i:], "[["):
			depth++
			i++
		case strings.HasPrefix(s[i:], "}}") || strings.HasPrefix(s[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i++
		case s[i] == b && depth == 0:
			return i
		}
	}
	return -1
}
