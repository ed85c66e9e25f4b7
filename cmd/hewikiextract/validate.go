package main

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
)

// canonicalGenders and canonicalPartsOfSpeech are the fixed output
// vocabularies the Grammar Normalizer may ever emit (spec.md §3/§8),
// independent of whatever raw Hebrew spellings a config file's table
// overrides map onto them.
var canonicalGenders = map[string]bool{
	"male":            true,
	"female":          true,
	"male plural":     true,
	"female plural":   true,
	"male and female": true,
	"male dual":       true,
}

var canonicalPartsOfSpeech = map[string]bool{
	"noun":          true,
	"phrase":        true,
	"adjective":     true,
	"adverb":        true,
	"proper noun":   true,
	"interjection":  true,
	"verb":          true,
	"gerund":        true,
	"conjunction":   true,
	"preposition":   true,
	"expression":    true,
	"interrogative": true,
	"prefix":        true,
}

var canonicalDeclensionTags = map[string]bool{
	"plural":           true,
	"female":           true,
	"female plural":    true,
	"male plural":      true,
	"construct":        true,
	"construct plural": true,
	"dual":             true,
	"singular":         true,
	"possessive":       true,
	"definite":         true,
	"female construct": true,
	"unknown":          true,
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <pages.json>",
		Short: "Check a previously extracted pages.json against the extractor's invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}
			var pages []lexicon.Page
			if err := json.Unmarshal(data, &pages); err != nil {
				return fmt.Errorf("validate: parsing %s: %w", args[0], err)
			}

			if violation := firstViolation(pages); violation != "" {
				return fmt.Errorf("validate: %s", violation)
			}
			fmt.Printf("validate: %d pages OK\n", len(pages))
			return nil
		},
	}
	return cmd
}

// firstViolation returns a description of the first invariant violation
// found in pages, or "" if every universally quantified invariant in
// spec.md §8 holds.
func firstViolation(pages []lexicon.Page) string {
	for _, p := range pages {
		if hasASCIILetter(p.Title) {
			return fmt.Sprintf("page %q (pid %d): title contains an ASCII letter", p.Title, p.Pid)
		}
		for _, e := range p.Entries {
			if e.GrammaticalInfo != nil {
				if g := e.GrammaticalInfo.Gender; g != nil && !canonicalGenders[*g] {
					return fmt.Sprintf("entry %q: gender %q is not in the canonical set", e.Title, *g)
				}
				if pos := e.GrammaticalInfo.PartOfSpeech; pos != nil && !canonicalPartsOfSpeech[*pos] {
					return fmt.Sprintf("entry %q: part_of_speech %q is not in the canonical set", e.Title, *pos)
				}
				for _, d := range e.GrammaticalInfo.Declensions {
					if !canonicalDeclensionTags[d.Tag] {
						return fmt.Sprintf("entry %q: declension tag %q is not in the canonical set", e.Title, d.Tag)
					}
				}
			}
			for _, links := range [][]lexicon.WikiLink{e.Expressions, e.Derivatives, e.SeeAlso} {
				for _, wl := range links {
					if wl.Text == "" {
						return fmt.Sprintf("entry %q: WikiLink has empty text", e.Title)
					}
				}
			}
			for _, refs := range [][]lexicon.Reference{e.Synonyms, e.Antonyms} {
				for _, ref := range refs {
					if ref.Link != nil && ref.Link.Text == "" {
						return fmt.Sprintf("entry %q: WikiLink has empty text", e.Title)
					}
				}
			}
			for lang, vals := range e.Translations {
				if len(vals) == 0 {
					return fmt.Sprintf("entry %q: translations[%q] is empty", e.Title, lang)
				}
			}
		}
	}
	return ""
}

func hasASCIILetter(title string) bool {
	for _, r := range title {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
