package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
)

func TestFirstViolationCleanPages(t *testing.T) {
	gender := "male"
	pages := []lexicon.Page{
		{
			Pid:   1,
			Title: "שלום",
			Entries: []lexicon.Entry{
				{
					Title:           "שלום",
					GrammaticalInfo: &lexicon.GrammarInfo{Gender: &gender},
					Translations:    map[string][]string{"en": {"hello"}},
				},
			},
		},
	}
	require.Equal(t, "", firstViolation(pages))
}

func TestFirstViolationASCIITitle(t *testing.T) {
	pages := []lexicon.Page{{Pid: 1, Title: "hello"}}
	require.Contains(t, firstViolation(pages), "ASCII letter")
}

func TestFirstViolationBadGender(t *testing.T) {
	bad := "not-a-gender"
	pages := []lexicon.Page{{
		Title: "שלום",
		Entries: []lexicon.Entry{
			{Title: "שלום", GrammaticalInfo: &lexicon.GrammarInfo{Gender: &bad}},
		},
	}}
	require.Contains(t, firstViolation(pages), "canonical set")
}

func TestFirstViolationEmptyTranslationList(t *testing.T) {
	pages := []lexicon.Page{{
		Title: "שלום",
		Entries: []lexicon.Entry{
			{Title: "שלום", Translations: map[string][]string{"en": {}}},
		},
	}}
	require.Contains(t, firstViolation(pages), "translations")
}

func TestFirstViolationEmptyWikiLinkText(t *testing.T) {
	pages := []lexicon.Page{{
		Title: "שלום",
		Entries: []lexicon.Entry{
			{Title: "שלום", SeeAlso: []lexicon.WikiLink{{Text: "", Link: "x"}}},
		},
	}}
	require.Contains(t, firstViolation(pages), "WikiLink")
}
