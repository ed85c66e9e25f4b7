package grammar

import (
	"log"
	"strings"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
	"github.com/temporal-IPA/hewiktparse/internal/wikitext"
	"github.com/temporal-IPA/tipa/pkg/ipa"
)

// Normalize implements the Grammar Normalizer (spec §4.5): it consumes
// the raw argument-name -> raw-value mapping taken from a ניתוח דקדוקי
// template and produces a typed GrammarInfo.
func Normalize(raw map[string]string) *lexicon.GrammarInfo {
	info := &lexicon.GrammarInfo{}

	if root, ok := raw["שורש"]; ok {
		info.Root = parseRoot(root)
	}

	if gender, ok := raw["מין"]; ok {
		if canon, ok := GenderTable[gender]; ok {
			info.Gender = &canon
		}
	}

	if pos, ok := raw["חלק דיבר"]; ok {
		if canon, ok := PartOfSpeechTable[pos]; ok {
			info.PartOfSpeech = &canon
		}
	}

	if pron, ok := raw["הגייה"]; ok {
		if p := normalizePronunciation(pron); p != "" {
			info.Pronunciation = &p
			if !strings.ContainsAny(p, ipa.Charset) {
				log.Printf("grammar: pronunciation %q has no IPA-charset rune after table substitution", p)
			}
		}
	}

	if km, ok := raw["כתיב מלא"]; ok && km != "" {
		info.KtivMale = &km
	}

	if morph, ok := raw["דרך תצורה"]; ok && morph != "" {
		info.Morphology = &morph
	}

	if decl, ok := raw["נטיות"]; ok && decl != "" {
		for _, piece := range DeclensionDelimiter.Split(decl, -1) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			info.Declensions = append(info.Declensions, ParseForm(piece))
		}
	}

	return info
}

// parseRoot implements the root rule from §4.5: the raw value is parsed
// as wikitext; a first template named שרש yields its first argument's
// value, while שרש3/שרש4/שרש5 yields the concatenation of its first N
// argument values (N = the trailing digit).
func parseRoot(raw string) *string {
	for _, n := range wikitext.Parse(raw) {
		if n.Kind != wikitext.KindTemplate {
			continue
		}
		switch n.Name {
		case "שרש":
			if len(n.Args) == 0 {
				return nil
			}
			v := n.Args[0].Value
			return &v
		case "שרש3", "שרש4", "שרש5":
			n3 := int(n.Name[len(n.Name)-1] - '0')
			if len(n.Args) < n3 {
				n3 = len(n.Args)
			}
			var b strings.Builder
			for _, a := range n.Args[:n3] {
				b.WriteString(a.Value)
			}
			v := b.String()
			return &v
		}
		return nil
	}
	return nil
}

// normalizePronunciation implements the §4.5 pronunciation pass: top-level
// bold spans are given a "!" stress prefix, the IPA table is applied by
// substitution, and "!" is finally replaced by the apostrophe stress mark.
func normalizePronunciation(raw string) string {
	var b strings.Builder
	for _, n := range wikitext.Parse(raw) {
		if n.Kind == wikitext.KindBold {
			b.WriteString("!")
			b.WriteString(wikitext.RenderPlain(n.Children))
			continue
		}
		b.WriteString(wikitext.RenderPlain([]wikitext.Node{n}))
	}

	marked := ipaPattern.ReplaceAllStringFunc(b.String(), func(tok string) string {
		return IPATable[tok]
	})
	return strings.ReplaceAll(marked, "!", "'")
}

// ParseForm implements parse_form (spec §4.4): a declension-item
// normalizer producing a canonical (tag, form) pair.
func ParseForm(f string) lexicon.Declension {
	f = strings.TrimSpace(f)
	if strings.ContainsAny(f, " \t\n") {
		for _, key := range sortedFormTagKeys {
			if !strings.HasPrefix(f, key) {
				continue
			}
			rest := f[len(key):]
			if rest == "" || (rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n') {
				continue
			}
			return lexicon.Declension{Tag: FormTagTable[key], Form: strings.TrimSpace(rest)}
		}
	}
	if strings.HasSuffix(f, "־") {
		return lexicon.Declension{Tag: "construct", Form: strings.TrimSuffix(f, "־")}
	}
	return lexicon.Declension{Tag: "unknown", Form: f}
}
