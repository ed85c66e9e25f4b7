package wikitext

import (
	"strings"
)

// Section is the transient scratch structure built by the Section Tree
// Builder (spec §4.2): Top holds this section's own body, excluding any
// descendant subsections' text; Children indexes direct subsections by
// stripped title, with later duplicates overwriting earlier ones (a
// source artifact, not an error — callers look up by canonical title).
type Section struct {
	Level    int
	Title    string
	Top      string
	Children map[string]*Section
	order    []string // first-occurrence insertion order of Children keys
}

// Ordered returns this section's direct subsections in document order
// (first-occurrence order for titles that repeat).
func (s *Section) Ordered() []*Section {
	out := make([]*Section, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.Children[t])
	}
	return out
}

func (s *Section) attach(child *Section) {
	if _, exists := s.Children[child.Title]; !exists {
		s.order = append(s.order, child.Title)
	}
	s.Children[child.Title] = child
}

type heading struct {
	level        int
	title        string
	lineStart    int
	contentStart int
}

// findHeadings scans text for MediaWiki heading lines (`== Title ==`).
// The heading level is the number of leading '=' characters; a
// malformed or unbalanced line (fewer trailing '=' than leading) is not
// a heading.
func findHeadings(text string) []heading {
	var out []heading
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if h, ok := parseHeadingLine(trimmed); ok {
			h.lineStart = offset
			h.contentStart = offset + len(line) + 1
			out = append(out, h)
		}
		offset += len(line) + 1
	}
	return out
}

func parseHeadingLine(line string) (heading, bool) {
	if !strings.HasPrefix(line, "=") {
		return heading{}, false
	}
	lead := 0
	for lead < len(line) && line[lead] == '=' {
		lead++
	}
	if lead < 1 || lead > 6 {
		return heading{}, false
	}
	rest := line[lead:]
	trail := len(rest)
	for trail > 0 && rest[trail-1] == '=' {
		trail--
	}
	trailCount := len(rest) - trail
	if trailCount < lead {
		return heading{}, false
	}
	title := strings.TrimSpace(rest[:trail])
	if title == "" {
		return heading{}, false
	}
	return heading{level: lead, title: title}, true
}

type frame struct {
	sec          *Section
	level        int
	contentStart int
	// firstChild is the line offset of this section's first attached
	// subsection heading, or -1 if none has been attached yet. Top must
	// stop there so it never absorbs a descendant's heading and body
	// (spec §4.2: "the body of this section excluding descendants").
	firstChild int
}

// closeFrame finalizes a frame's Section.Top: the slice from its own
// content start up to its first child heading (if any attached), or up
// to end otherwise.
func closeFrame(text string, f *frame, end int) {
	if f.firstChild >= 0 {
		end = f.firstChild
	}
	f.sec.Top = strings.TrimSpace(text[f.contentStart:end])
}

// BuildSections parses a page's full wikitext body into a tree of
// Sections rooted at an implicit level-0 root, returning the root's
// direct children in document order. Callers that need level-2 entries
// specifically should use CollectByLevel(BuildSections(text), 2).
func BuildSections(text string) []*Section {
	marks := findHeadings(text)

	root := &Section{Children: map[string]*Section{}}
	stack := []*frame{{sec: root, level: 0, contentStart: 0, firstChild: -1}}

	for _, m := range marks {
		for len(stack) > 1 && stack[len(stack)-1].level >= m.level {
			top := stack[len(stack)-1]
			closeFrame(text, top, m.lineStart)
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if parent.firstChild < 0 {
			parent.firstChild = m.lineStart
		}
		sec := &Section{Level: m.level, Title: m.title, Children: map[string]*Section{}}
		parent.sec.attach(sec)
		stack = append(stack, &frame{sec: sec, level: m.level, contentStart: m.contentStart, firstChild: -1})
	}

	for len(stack) > 1 {
		top := stack[len(stack)-1]
		closeFrame(text, top, len(text))
		stack = stack[:len(stack)-1]
	}
	if len(marks) == 0 {
		root.Top = strings.TrimSpace(text)
	} else {
		root.Top = strings.TrimSpace(text[:marks[0].lineStart])
	}

	return root.Ordered()
}

// CollectByLevel walks a section forest collecting every Section whose
// Level equals level, descending into shallower sections (never into a
// matched section's own children, since those are its subsections, not
// sibling entries).
func CollectByLevel(secs []*Section, level int) []*Section {
	var out []*Section
	for _, s := range secs {
		switch {
		case s.Level == level:
			out = append(out, s)
		case s.Level < level:
			out = append(out, CollectByLevel(s.Ordered(), level)...)
		}
	}
	return out
}

// ListFromSubsection implements the List Extractor (spec §4.3): the
// candidate titles are tried in order and the *first* one that exists as
// a subsection of sec is chosen; if that subsection has no list, the
// result is absent — later candidates are never consulted as a fallback.
func ListFromSubsection(sec *Section, candidates []string) ([]ListItem, bool) {
	var sub *Section
	for _, title := range candidates {
		if s, ok := sec.Children[title]; ok {
			sub = s
			break
		}
	}
	if sub == nil {
		return nil, false
	}
	items := ParseLists(sub.Top)
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}
