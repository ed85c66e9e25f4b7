// Package entry implements the Entry Assembler (spec §4.6): it builds
// one lexicon.Entry from a level-2 Section, orchestrating the List
// Extractor, the value parsers and the Grammar Normalizer.
package entry

import (
	"fmt"
	"strings"

	"github.com/temporal-IPA/hewiktparse/internal/grammar"
	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
	"github.com/temporal-IPA/hewiktparse/internal/wikitext"
)

const (
	grammarTemplate      = "ניתוח דקדוקי"
	translationSection   = "תרגום"
	translationTemplate  = "ת"
	extLinksSection      = "קישורים חיצוניים"
	extLinksTemplate     = "מיזמים"
	registerTemplate     = "משלב"
	registerAltTemplate  = `משלב/ר"ת`
	registerSlangLiteral = "סלנג"
	contextTemplate      = "הקשר"
	lackingTemplate      = "פירוש לקוי"
	borrowedTemplate     = "בהשאלה"
	timePeriodTemplate   = "רובד"
	timePeriodChazalLit  = "חזל"
	timePeriodMikraLit   = "מקרא"
)

var (
	expressionTitles = []string{"צירופים"}
	seeAlsoTitles    = []string{"ראו גם"}
	derivativeTitles = []string{"נגזרות"}
	etymologyTitles  = []string{"גיזרון", "גזרון"}
	synonymTitles    = []string{"מילים נרדפות"}
	antonymTitles    = []string{"ניגודים", "הפכים"}
)

// Assemble builds an Entry from a level-2 Section. sec.Level != 2 is a
// logic error (the caller is expected to have already filtered to
// level-2 sections via wikitext.CollectByLevel), not a recoverable data
// error, so it panics rather than returning an error.
func Assemble(sec *wikitext.Section) lexicon.Entry {
	if sec.Level != 2 {
		panic(fmt.Sprintf("entry: section %q is level %d, want 2", sec.Title, sec.Level))
	}

	e := lexicon.Entry{Title: sec.Title}

	if gi := grammarInfo(sec); gi != nil {
		e.GrammaticalInfo = gi
	}
	e.Translations = translations(sec)
	e.ExternalLinks = externalLinks(sec)
	e.Definitions = definitions(sec)

	e.Expressions = relationLinks(sec, expressionTitles)
	e.SeeAlso = relationLinks(sec, seeAlsoTitles)
	e.Derivatives = relationLinks(sec, derivativeTitles)
	e.Etymology = etymology(sec)
	e.Synonyms = relationRefs(sec, synonymTitles)
	e.Antonyms = relationRefs(sec, antonymTitles)

	return e
}

func grammarInfo(sec *wikitext.Section) *lexicon.GrammarInfo {
	tems := wikitext.FindTemplates(sec.Top, grammarTemplate)
	if len(tems) == 0 {
		return nil
	}
	args := tems[0].Args
	if len(args) > 0 {
		args = args[1:]
	}
	raw := make(map[string]string, len(args))
	for _, a := range args {
		if a.Name != "" {
			raw[strings.TrimSpace(a.Name)] = strings.TrimSpace(a.Value)
		}
	}
	return grammar.Normalize(raw)
}

func translations(sec *wikitext.Section) map[string][]string {
	sub, ok := sec.Children[translationSection]
	if !ok {
		return nil
	}
	out := map[string][]string{}
	for _, t := range wikitext.FindTemplates(sub.Top, translationTemplate) {
		if len(t.Args) < 2 {
			continue
		}
		key := strings.TrimSpace(t.Args[0].Value)
		val := strings.TrimSpace(t.Args[1].Value)
		out[key] = append(out[key], val)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func externalLinks(sec *wikitext.Section) map[string]string {
	sub, ok := sec.Children[extLinksSection]
	if !ok {
		return nil
	}
	out := map[string]string{}
	for _, t := range wikitext.FindTemplates(sub.Top, extLinksTemplate) {
		for _, a := range t.Args {
			if a.Name != "" {
				out[a.Name] = a.Value
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func definitions(sec *wikitext.Section) []lexicon.Definition {
	items := wikitext.FirstListBlock(sec.Top)
	if len(items) == 0 {
		return nil
	}
	defs := make([]lexicon.Definition, 0, len(items))
	for _, item := range items {
		defs = append(defs, buildDefinition(item))
	}
	return defs
}

func buildDefinition(item wikitext.ListItem) lexicon.Definition {
	tems := map[string]string{}
	for _, t := range wikitext.FindTemplates(item.Text, "") {
		vals := make([]string, 0, len(t.Args))
		for _, a := range t.Args {
			vals = append(vals, a.Value)
		}
		tems[t.Name] = strings.Join(vals, "|")
	}

	d := lexicon.Definition{Definition: wikitext.Strip(item.Text)}

	if v, ok := tems[registerTemplate]; ok {
		d.Register = &v
	} else if v, ok := tems[registerAltTemplate]; ok {
		d.Register = &v
	} else if _, ok := tems[registerSlangLiteral]; ok {
		v := registerSlangLiteral
		d.Register = &v
	}

	if v, ok := tems[contextTemplate]; ok {
		d.Context = &v
	}

	if v, ok := tems[timePeriodTemplate]; ok {
		d.TimePeriod = &v
	} else if _, ok := tems[timePeriodChazalLit]; ok {
		v := timePeriodChazalLit
		d.TimePeriod = &v
	} else if _, ok := tems[timePeriodMikraLit]; ok {
		v := timePeriodMikraLit
		d.TimePeriod = &v
	}

	_, d.IsLacking = tems[lackingTemplate]
	_, d.IsBorrowed = tems[borrowedTemplate]

	for _, ex := range wikitext.ExampleItems(item) {
		d.Examples = append(d.Examples, wikitext.ExampleFromStr(ex.Text))
	}

	return d
}

func relationLinks(sec *wikitext.Section, titles []string) []lexicon.WikiLink {
	items, ok := wikitext.ListFromSubsection(sec, titles)
	if !ok {
		return nil
	}
	var out []lexicon.WikiLink
	for _, it := range items {
		out = append(out, wikitext.ParseWikiLinks(it.Text)...)
	}
	return out
}

func relationRefs(sec *wikitext.Section, titles []string) []lexicon.Reference {
	items, ok := wikitext.ListFromSubsection(sec, titles)
	if !ok {
		return nil
	}
	var out []lexicon.Reference
	for _, it := range items {
		out = append(out, wikitext.ParseAntonym(it.Text)...)
	}
	return out
}

func etymology(sec *wikitext.Section) []string {
	items, ok := wikitext.ListFromSubsection(sec, etymologyTitles)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, wikitext.Strip(it.Text))
	}
	return out
}
