// Package grammar canonicalizes the raw Hebrew grammatical vocabulary
// (gender, part of speech, pronunciation, declension tags) into the fixed
// English vocabularies spec.md §3 names.
package grammar

import (
	"regexp"
	"sort"
	"strings"
)

// GenderTable maps raw "מין" argument values to the canonical gender set
// (male, female, male plural, female plural, male and female, male dual).
// Copied verbatim from the original parser's wiktionary_gender_to_english
// (see DESIGN.md) — the raw keys are source-authored spelling variants,
// not something this project invents.
var GenderTable = map[string]string{
	"זכר":     "male",
	"נקבה":    "female",
	"ז":       "male",
	"נ":       "female",
	"זכר רבוי": "male plural",
	"זכר רבים": "male plural",
	"זכר ונקבה": "male and female",
	"זכר ריבוי": "male plural",
	"זכר זוגי":  "male dual",
	`זו"נ`:      "male and female",
	"נקבה רבוי": "female plural",
	"ז'":        "male",
	"נקבה ריבוי": "female plural",
	"זכר יחיד":   "male",
	`ז"ר`:        "male plural",
	"נ'":         "female",
}

// PartOfSpeechTable maps raw "חלק דיבר" argument values to the canonical
// part-of-speech set. Copied verbatim from wiktionary_pos_to_english.
var PartOfSpeechTable = map[string]string{
	"שם־עצם":       "noun",
	"שם-עצם":       "noun",
	"שם עצם":       "noun",
	"צרף":          "phrase",
	"תואר":         "adjective",
	"שם־תואר":      "adjective",
	"תואר הפועל":   "adverb",
	"שם-תואר":      "adjective",
	"שם תואר":      "adjective",
	"שם פרטי":      "proper noun",
	"צירוף שמני":   "noun",
	"מילת קריאה":   "interjection",
	"פועל":         "verb",
	"שם־פעולה":     "gerund",
	"תואר־הפועל":   "adverb",
	"שם-פרטי":      "proper noun",
	"מילת חיבור":   "conjunction",
	"שם־פרטי":      "proper noun",
	"מילת יחס":     "preposition",
	"ביטוי":        "expression",
	"מילת שאלה":    "interrogative",
	"שם":           "noun",
	"שם עצם (תואר)": "noun",
	"תחילית":       "prefix",
	"שם־תאר":       "adjective",
	`שם־עצם, שם־תואר`: "noun",
	"תאר":          "adjective",
	"שם־עצם מופשט": "noun",
}

// IPATable maps pronunciation-field transliteration tokens to IPA. Taken
// bit-exact from spec.md §6's explicit excerpt, which overrides the
// original parser's table for "ch" and "j" (see DESIGN.md Open Question 1).
var IPATable = map[string]string{
	"׳":  "ʔ",
	"'":  "ʔ",
	"sh": "ʃ",
	"kh": "x",
	"ch": "tʃ",
	"j":  "ʒ",
	"y":  "j",
}

// FormTagTable maps declension-prefix tokens to canonical declension tags,
// including colon-suffixed variants (source pages sometimes write "ר': "
// rather than "ר' "). Unlike Gender/PartOfSpeech, this table has no
// original_source analogue — the original stores declensions as a raw
// passthrough string (see DESIGN.md Open Question 2) — so it is built
// fresh from spec.md §6's named examples and the standard Hebrew
// declension-prefix abbreviations.
var FormTagTable = map[string]string{
	"ר'":          "plural",
	"ר׳":          "plural",
	"ר':":         "plural",
	"ר׳:":         "plural",
	"רבים":        "plural",
	"רבים:":       "plural",
	"נ'":          "female",
	"נ׳":          "female",
	"נ':":         "female",
	"נ׳:":         "female",
	"נקבה":        "female",
	"נקבה:":       "female",
	`נ"ר`:         "female plural",
	"נ״ר":         "female plural",
	`נ"ר:`:        "female plural",
	"נ״ר:":        "female plural",
	"נקבה רבים":   "female plural",
	`ז"ר`:         "male plural",
	"ז״ר":         "male plural",
	`ז"ר:`:        "male plural",
	"ז״ר:":        "male plural",
	"זכר רבים":    "male plural",
	"סמיכות":      "construct",
	"סמיכות:":     "construct",
	"־":           "construct",
	`ר"ס`:         "construct plural",
	"ר״ס":         "construct plural",
	`ר"ס:`:        "construct plural",
	"ר״ס:":        "construct plural",
	"רבים סמיכות": "construct plural",
	"זוגי":        "dual",
	"זוגי:":       "dual",
	"שייכות":      "possessive",
	"שייכות:":     "possessive",
	"מיודע":       "definite",
	"מיודע:":      "definite",
	"יחיד":        "singular",
	"יחיד:":       "singular",
	`נ' סמיכות`:   "female construct",
	`נ׳ סמיכות`:   "female construct",
	"נקבה סמיכות": "female construct",
}

// sortedFormTagKeys is FormTagTable's keys sorted longest-first so that a
// multi-word key like "נ' סמיכות" is tried before its single-word prefix
// "נ'" when matching a declension form's leading tag.
var sortedFormTagKeys []string

// DeclensionDelimiter splits a raw declension field into individual
// forms: a comma or semicolon surrounded by optional whitespace.
var DeclensionDelimiter = regexp.MustCompile(`\s*[,;]\s*`)

// ipaPattern is the alternation of all IPATable keys, longest-first so
// that multi-character tokens ("sh", "kh", "ch") are preferred over any
// single-character key that happens to prefix them.
var ipaPattern *regexp.Regexp

func init() {
	RebuildFormTagKeys()
	RebuildIPAPattern()
}

// RebuildFormTagKeys recomputes sortedFormTagKeys from the current
// FormTagTable. Callers that merge overrides into FormTagTable (internal/
// config) must call this afterward so the longest-key-first match order
// still holds.
func RebuildFormTagKeys() {
	sortedFormTagKeys = sortedFormTagKeys[:0]
	for k := range FormTagTable {
		sortedFormTagKeys = append(sortedFormTagKeys, k)
	}
	sort.Slice(sortedFormTagKeys, func(i, j int) bool {
		return len(sortedFormTagKeys[i]) > len(sortedFormTagKeys[j])
	})
}

// RebuildIPAPattern recomputes ipaPattern from the current IPATable.
// Callers that merge overrides into IPATable (internal/config) must call
// this afterward so the longest-key-first alternation order still holds.
func RebuildIPAPattern() {
	keys := make([]string, 0, len(IPATable))
	for k := range IPATable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	ipaPattern = regexp.MustCompile(strings.Join(keys, "|"))
}
